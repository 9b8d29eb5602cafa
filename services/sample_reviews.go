package services

// Canned review content drawn by the seeder.

type textReviewSample struct {
	Title   string
	Comment string
	Rating  int
}

type videoReviewSample struct {
	VideoURL       string
	VideoThumbnail string
	Title          string
	Rating         int
}

var sampleComments = []textReviewSample{
	{
		Title:   "Excellent Course!",
		Comment: "This course exceeded my expectations. The instructor explains complex concepts clearly and the practical examples are very helpful. Highly recommended!",
		Rating:  5,
	},
	{
		Title:   "Great Learning Experience",
		Comment: "I learned a lot from this course. The content is well-structured and easy to follow. The assignments helped me understand the material better.",
		Rating:  5,
	},
	{
		Title:   "Very Informative",
		Comment: "The course covers all the important topics. The instructor is knowledgeable and provides good examples. Some sections could use more detail though.",
		Rating:  4,
	},
	{
		Title:   "Good Foundation",
		Comment: "This course provides a solid foundation. The explanations are clear and the pace is good. I would have liked more advanced topics.",
		Rating:  4,
	},
	{
		Title:   "Decent Course",
		Comment: "The course is okay overall. Some parts are explained well, but others could be clearer. The exercises are helpful for practice.",
		Rating:  3,
	},
	{
		Title:   "Could Be Better",
		Comment: "The course content is decent but the delivery could be improved. Some videos are too long and could be broken down into smaller segments.",
		Rating:  3,
	},
	{
		Title:   "Needs Improvement",
		Comment: "The course covers the basics but lacks depth in some areas. The instructor could provide more real-world examples and case studies.",
		Rating:  2,
	},
	{
		Title:   "Not What I Expected",
		Comment: "I found the course structure confusing and some explanations unclear. The content doesn't match the course description well.",
		Rating:  2,
	},
	{
		Title:   "Amazing Instructor!",
		Comment: "The instructor is fantastic! They make complex topics easy to understand. The course materials are comprehensive and well-organized.",
		Rating:  5,
	},
	{
		Title:   "Worth Every Penny",
		Comment: "This course is absolutely worth it. I've learned so much and the practical projects are excellent. The community support is also great.",
		Rating:  5,
	},
	{
		Title:   "Solid Course",
		Comment: "Good course with clear explanations. The instructor knows their stuff. Some sections could use more examples, but overall it's good.",
		Rating:  4,
	},
	{
		Title:   "Helpful Content",
		Comment: "The course helped me understand the fundamentals. The step-by-step approach is effective. Looking forward to more advanced courses.",
		Rating:  4,
	},
	{
		Title:   "Good but Not Great",
		Comment: "The course is informative but could be more engaging. Some parts feel rushed. Overall, it's a decent learning resource.",
		Rating:  3,
	},
	{
		Title:   "Comprehensive Coverage",
		Comment: "This course covers a lot of ground. The instructor explains things well and provides good resources. Highly recommend for beginners.",
		Rating:  5,
	},
	{
		Title:   "Well Structured",
		Comment: "I appreciate the well-organized structure of this course. Each module builds on the previous one. The quizzes help reinforce learning.",
		Rating:  4,
	},
}

var sampleVideoReviews = []videoReviewSample{
	{
		VideoURL:       "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		VideoThumbnail: "https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		Title:          "Video Review: My Experience",
		Rating:         5,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=jNQXAC9IVRw",
		VideoThumbnail: "https://img.youtube.com/vi/jNQXAC9IVRw/maxresdefault.jpg",
		Title:          "Quick Review Video",
		Rating:         4,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=9bZkp7q19f0",
		VideoThumbnail: "https://img.youtube.com/vi/9bZkp7q19f0/maxresdefault.jpg",
		Title:          "Detailed Course Review",
		Rating:         5,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=kJQP7kiw5Fk",
		VideoThumbnail: "https://img.youtube.com/vi/kJQP7kiw5Fk/maxresdefault.jpg",
		Title:          "Honest Course Review",
		Rating:         4,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=fJ9rUzIMcZQ",
		VideoThumbnail: "https://img.youtube.com/vi/fJ9rUzIMcZQ/maxresdefault.jpg",
		Title:          "What I Learned",
		Rating:         5,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=OPf0YbXqDm0",
		VideoThumbnail: "https://img.youtube.com/vi/OPf0YbXqDm0/maxresdefault.jpg",
		Title:          "Course Walkthrough",
		Rating:         4,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=ScMzIvxBSi4",
		VideoThumbnail: "https://img.youtube.com/vi/ScMzIvxBSi4/maxresdefault.jpg",
		Title:          "My Thoughts on This Course",
		Rating:         5,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=9bZkp7q19f0",
		VideoThumbnail: "https://img.youtube.com/vi/9bZkp7q19f0/maxresdefault.jpg",
		Title:          "Is This Course Worth It?",
		Rating:         4,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=JGwWNGJdvx8",
		VideoThumbnail: "https://img.youtube.com/vi/JGwWNGJdvx8/maxresdefault.jpg",
		Title:          "Complete Course Review",
		Rating:         5,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=2Vv-BfVoq4g",
		VideoThumbnail: "https://img.youtube.com/vi/2Vv-BfVoq4g/maxresdefault.jpg",
		Title:          "Student Review Video",
		Rating:         4,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=YQHsXMglC9A",
		VideoThumbnail: "https://img.youtube.com/vi/YQHsXMglC9A/maxresdefault.jpg",
		Title:          "After Completing This Course",
		Rating:         5,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=oyEuk8j8imI",
		VideoThumbnail: "https://img.youtube.com/vi/oyEuk8j8imI/maxresdefault.jpg",
		Title:          "Course Highlights Review",
		Rating:         4,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=7wtfhZwyrcc",
		VideoThumbnail: "https://img.youtube.com/vi/7wtfhZwyrcc/maxresdefault.jpg",
		Title:          "My Honest Opinion",
		Rating:         3,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=ZbZSe6N_BXs",
		VideoThumbnail: "https://img.youtube.com/vi/ZbZSe6N_BXs/maxresdefault.jpg",
		Title:          "Course Review & Feedback",
		Rating:         4,
	},
	{
		VideoURL:       "https://www.youtube.com/watch?v=YtHqZ2nqRjM",
		VideoThumbnail: "https://img.youtube.com/vi/YtHqZ2nqRjM/maxresdefault.jpg",
		Title:          "What You'll Learn",
		Rating:         5,
	},
}
