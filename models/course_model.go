package models

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Slug        string    `gorm:"size:255;unique" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Price       float64   `gorm:"type:numeric(10,2);not null;default:0" json:"price" validate:"min=0"`
	FinalPrice  *float64  `gorm:"type:numeric(10,2)" json:"final_price,omitempty"`
	IsPublished bool      `gorm:"default:false" json:"is_published"`

	// Maintained by the rating recompute job, not written by handlers.
	AverageRating float64 `gorm:"type:numeric(3,2);default:0" json:"average_rating"`
	ReviewCount   int     `gorm:"default:0" json:"review_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EffectivePrice is what an enrollment gets charged: the list price, or
// the discounted price when the list price is unset.
func (c *Course) EffectivePrice() float64 {
	if c.Price != 0 {
		return c.Price
	}
	if c.FinalPrice != nil {
		return *c.FinalPrice
	}
	return 0
}
