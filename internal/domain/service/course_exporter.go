package service

import (
	"io"

	"academy/internal/domain/entity"
)

// Export themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// CourseExporter renders a course as a printable document.
type CourseExporter interface {
	// ExportPDF writes the course as PDF to w.
	ExportPDF(w io.Writer, course *entity.Course, theme string) error
}
