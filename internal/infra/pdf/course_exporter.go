// Package pdf renders catalog documents with fpdf.
package pdf

import (
	"fmt"
	"io"
	"strings"

	"academy/internal/domain/entity"
	"academy/internal/domain/service"
	"academy/internal/errors"

	"github.com/go-pdf/fpdf"
)

type palette struct {
	background [3]int
	text       [3]int
	muted      [3]int
	accent     [3]int
	panel      [3]int
}

var themes = map[string]palette{
	service.ThemeLight: {
		background: [3]int{255, 255, 255},
		text:       [3]int{33, 37, 41},
		muted:      [3]int{108, 117, 125},
		accent:     [3]int{13, 110, 253},
		panel:      [3]int{241, 243, 245},
	},
	service.ThemeDark: {
		background: [3]int{33, 37, 41},
		text:       [3]int{248, 249, 250},
		muted:      [3]int{173, 181, 189},
		accent:     [3]int{110, 168, 254},
		panel:      [3]int{52, 58, 64},
	},
}

const (
	margin     = 15.0
	lineHeight = 6.0
)

type courseExporter struct{}

// NewCourseExporter returns an A4 PDF exporter.
func NewCourseExporter() service.CourseExporter {
	return &courseExporter{}
}

// ExportPDF writes the course sheet to w. Unknown themes fall back to light.
func (e *courseExporter) ExportPDF(w io.Writer, course *entity.Course, theme string) error {
	if course == nil {
		return errors.New("course is required")
	}

	colors, ok := themes[strings.ToLower(theme)]
	if !ok {
		colors = themes[service.ThemeLight]
	}

	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	pageW, pageH := doc.GetPageSize()

	doc.SetTitle(course.Name, true)
	doc.SetCreationDate(course.UpdatedAt)
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.SetHeaderFunc(func() {
		doc.SetFillColor(colors.background[0], colors.background[1], colors.background[2])
		doc.Rect(0, 0, pageW, pageH, "F")
		doc.SetY(margin)
	})
	doc.SetFooterFunc(func() {
		doc.SetY(-margin + 2)
		setText(doc, colors.muted)
		doc.SetFont("Helvetica", "I", 8)
		doc.CellFormat(0, 5, fmt.Sprintf("%d", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	contentW := pageW - 2*margin

	setText(doc, colors.accent)
	doc.SetFont("Helvetica", "B", 20)
	doc.MultiCell(contentW, 9, tr(course.Name), "", "L", false)

	setText(doc, colors.muted)
	doc.SetFont("Helvetica", "", 10)
	doc.MultiCell(contentW, lineHeight, tr(metaLine(course)), "", "L", false)
	doc.Ln(2)

	if course.Description != "" {
		paragraph(doc, tr, colors, contentW, course.Description)
	}

	if s := course.Summary; s != nil {
		if s.Goal != "" {
			heading(doc, tr, colors, "Goal")
			paragraph(doc, tr, colors, contentW, s.Goal)
		}
		if len(s.Syllabus) > 0 {
			heading(doc, tr, colors, "Syllabus")
			for i, item := range s.Syllabus {
				paragraph(doc, tr, colors, contentW, fmt.Sprintf("%d. %s", i+1, item))
			}
		}
		if len(s.Requirements) > 0 {
			heading(doc, tr, colors, "Requirements")
			ids := make([]string, 0, len(s.Requirements))
			for _, id := range s.Requirements {
				ids = append(ids, fmt.Sprintf("Course #%d", id))
			}
			paragraph(doc, tr, colors, contentW, strings.Join(ids, ", "))
		}
	}

	if len(course.Content) > 0 {
		heading(doc, tr, colors, "Lessons")
		for i, lesson := range course.Content {
			setText(doc, colors.text)
			doc.SetFont("Helvetica", "B", 12)
			doc.MultiCell(contentW, 7, tr(fmt.Sprintf("%d. %s", i+1, lesson.Title)), "", "L", false)

			paragraph(doc, tr, colors, contentW, lesson.Body)
			labelled(doc, tr, colors, contentW, "Instructions", lesson.Instructions)
			if lesson.ExpectedOutput != "" {
				setText(doc, colors.muted)
				doc.SetFont("Helvetica", "B", 9)
				doc.MultiCell(contentW, 5, "Expected output", "", "L", false)
				setText(doc, colors.text)
				doc.SetFillColor(colors.panel[0], colors.panel[1], colors.panel[2])
				doc.SetFont("Courier", "", 9)
				doc.MultiCell(contentW, 5, tr(lesson.ExpectedOutput), "", "L", true)
				doc.Ln(2)
			}
			labelled(doc, tr, colors, contentW, "Conclusion", lesson.Conclusion)
			doc.Ln(2)
		}
	}

	if err := doc.Output(w); err != nil {
		return errors.Wrap(err, "render course pdf")
	}

	return nil
}

func metaLine(course *entity.Course) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{course.Topic, course.Level, course.Language} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	final := course.FinalPrice()
	price := "$" + final.StringFixed(2)
	if course.Discount.IsPositive() {
		price += " (was $" + course.Price.StringFixed(2) + ")"
	}

	return strings.Join(append(parts, price), " · ")
}

func setText(doc *fpdf.Fpdf, c [3]int) {
	doc.SetTextColor(c[0], c[1], c[2])
}

func heading(doc *fpdf.Fpdf, tr func(string) string, colors palette, title string) {
	doc.Ln(2)
	setText(doc, colors.accent)
	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")
}

func paragraph(doc *fpdf.Fpdf, tr func(string) string, colors palette, width float64, text string) {
	if text == "" {
		return
	}
	setText(doc, colors.text)
	doc.SetFont("Helvetica", "", 11)
	doc.MultiCell(width, lineHeight, tr(text), "", "L", false)
	doc.Ln(1)
}

func labelled(doc *fpdf.Fpdf, tr func(string) string, colors palette, width float64, label, text string) {
	if text == "" {
		return
	}
	setText(doc, colors.muted)
	doc.SetFont("Helvetica", "B", 9)
	doc.MultiCell(width, 5, label, "", "L", false)
	paragraph(doc, tr, colors, width, text)
}
