package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Course is a sellable item of the catalog.
type Course struct {
	ID          uint
	Name        string
	Price       decimal.Decimal // Two fraction digits.
	Discount    decimal.Decimal // Absolute amount subtracted from Price.
	Language    string
	Topic       string
	Level       string
	Description string
	Tags        []Tag
	Summary     *CourseSummary // Optional.
	Content     []Lesson       // Optional.
	ImageURL    string
	ImageAlt    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Tag is a colored label shown on course and blog cards.
type Tag struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// CourseSummary is the structured synopsis of a course.
type CourseSummary struct {
	Goal         string   `json:"goal"`
	Syllabus     []string `json:"syllabus"`
	Requirements []uint   `json:"requirements"` // Prerequisite course ids.
}

// Lesson is one unit of course content.
type Lesson struct {
	Title          string `json:"title"`
	Body           string `json:"body,omitempty"`
	Instructions   string `json:"instructions,omitempty"`
	ExpectedOutput string `json:"expected_output,omitempty"`
	Conclusion     string `json:"conclusion,omitempty"`
}

// FinalPrice returns the amount charged for the course today.
func (c *Course) FinalPrice() decimal.Decimal {
	return FinalPrice(c.Price, c.Discount)
}

// FinalPrice computes max(0, price - discount) rounded to cents.
func FinalPrice(price, discount decimal.Decimal) decimal.Decimal {
	final := price.Sub(discount)
	if final.IsNegative() {
		return decimal.Zero
	}

	return final.Round(2)
}

// CourseFilter narrows a catalog listing. Zero values mean "any".
type CourseFilter struct {
	Topic    string
	Level    string
	Language string
	Query    string // Case-insensitive substring of name or description.
	Limit    int
	Offset   int
}
