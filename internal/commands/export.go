package commands

import (
	"fmt"
	"html"
	"os"

	"github.com/dastanaron/quizcards/internal/bookmarks"
)

// ExportCommand writes the bookmarked cards to a standalone HTML page
type ExportCommand struct {
	bookmarkSvc *bookmarks.Service
}

// NewExportCommand creates a new export command
func NewExportCommand(bookmarkSvc *bookmarks.Service) *ExportCommand {
	return &ExportCommand{bookmarkSvc: bookmarkSvc}
}

// Execute exports the bookmark collection to filePath. Answers are present
// in the markup but marked hidden, matching the bookmarks view. The output
// uses the same card markup the import parser reads.
func (c *ExportCommand) Execute(filePath string) error {
	snapshots := c.bookmarkSvc.Load()

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "<!DOCTYPE html>\n")
	fmt.Fprintf(file, "<html>\n<head>\n")
	fmt.Fprintf(file, "<meta charset=\"UTF-8\">\n")
	fmt.Fprintf(file, "<title>Bookmarked Cards</title>\n")
	fmt.Fprintf(file, "</head>\n<body>\n")
	fmt.Fprintf(file, "<h1>Bookmarked Cards</h1>\n")

	for _, snap := range snapshots {
		snap = snap.Normalize()
		fmt.Fprintf(file, "  <div data-card=\"%s\">\n", html.EscapeString(snap.ID))
		fmt.Fprintf(file, "    <p class=\"question\">%s</p>\n", html.EscapeString(snap.Question))
		fmt.Fprintf(file, "    <p class=\"answer\" hidden>%s</p>\n", html.EscapeString(snap.Answer))
		fmt.Fprintf(file, "  </div>\n")
	}

	fmt.Fprintf(file, "</body>\n</html>\n")

	fmt.Printf("Exported %d bookmarks to %s\n", len(snapshots), filePath)
	return nil
}
