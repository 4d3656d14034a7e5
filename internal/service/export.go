package service

import (
	"strings"
	"time"

	"career-passport/internal/domain"
)

// ExportHeader is the first line of a bookmark export.
const ExportHeader = "Title,Type,Category,Description,URL,Notes,Date Added,Tags"

// ExportCSV renders bookmarks one per line under ExportHeader. Every field
// is wrapped in double quotes. Quotes inside a field are written as they
// are, so such rows do not round-trip through a CSV parser.
func ExportCSV(bookmarks []domain.Bookmark) string {
	lines := make([]string, 0, len(bookmarks)+1)
	lines = append(lines, ExportHeader)
	for _, b := range bookmarks {
		fields := []string{
			b.Title,
			string(b.Type),
			b.Category,
			b.Description,
			b.URL,
			b.Notes,
			b.DateAdded,
			strings.Join(b.Tags, ", "),
		}
		for i, f := range fields {
			fields[i] = `"` + f + `"`
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

// ExportFileName is the download name of an export made on day t.
func ExportFileName(t time.Time) string {
	return "career-bookmarks-" + t.UTC().Format(domain.DateLayout) + ".csv"
}
