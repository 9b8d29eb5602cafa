package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	config "github.com/codezon/lms-backend/configs"
	"github.com/codezon/lms-backend/middleware"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
)

const (
	brandingFolder  = "branding"
	maxBrandingSize = 2 * 1024 * 1024
)

var allowedBrandingTypes = map[string]bool{
	"image/jpeg":               true,
	"image/jpg":                true,
	"image/png":                true,
	"image/gif":                true,
	"image/webp":               true,
	"image/x-icon":             true,
	"image/vnd.microsoft.icon": true,
}

var (
	errFileTooLarge    = errors.New("File too large. Maximum size is 2MB.")
	errInvalidFileType = errors.New("Invalid file type. Use JPEG, PNG, GIF, WEBP or ICO.")
)

// validateBrandingFile checks MIME type and size. A file of exactly the
// maximum size is accepted.
func validateBrandingFile(contentType string, size int64) error {
	if !allowedBrandingTypes[contentType] {
		return errInvalidFileType
	}
	if size > maxBrandingSize {
		return errFileTooLarge
	}
	return nil
}

// UploadBranding stores a site logo or favicon in Cloudinary. Admin only.
func UploadBranding(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "No file provided"})
	}

	assetType := c.FormValue("assetType")
	if assetType != "logo" && assetType != "favicon" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "Invalid asset type"})
	}

	if err := validateBrandingFile(file.Header.Get("Content-Type"), file.Size); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "error": err.Error()})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to read file"})
	}
	defer src.Close()

	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Failed to initialize Cloudinary"})
	}

	adminID := middleware.ClaimString(c, "user_id")
	resp, err := cld.Upload.Upload(c.Context(), src, uploader.UploadParams{
		Folder:    brandingFolder,
		PublicID:  fmt.Sprintf("%s_%s", assetType, adminID),
		Overwrite: api.Bool(true),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "Upload failed"})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"imageUrl": resp.SecureURL,
		"publicId": resp.PublicID,
		"message":  "Branding asset uploaded successfully",
	})
}

// GenerateUploadSignature creates a signed parameter set so the frontend
// can upload directly to Cloudinary.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: brandingFolder,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   cld.Config.Cloud.APIKey,
		"folder":    brandingFolder,
	})
}
