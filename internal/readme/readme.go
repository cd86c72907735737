// Package readme maintains the art section of a markdown document.
package readme

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/verte-zerg/gitart/internal/model"
)

const (
	// StartMarker opens the managed section.
	StartMarker = "<!-- git-art-section-start -->"
	// EndMarker closes the managed section, including its newline.
	EndMarker = "<!-- git-art-section-end -->\n"
)

var sectionPattern = regexp.MustCompile(regexp.QuoteMeta(StartMarker) + `[\s\S]*?` + regexp.QuoteMeta(EndMarker))

// Section renders the stats block and grid between the markers.
func Section(branch string, st model.Stats, grid [][]string) string {
	var b strings.Builder
	b.WriteString(StartMarker + "\n")
	fmt.Fprintf(&b, "# %s\n\n", branch)
	b.WriteString("Statistics:\n")
	fmt.Fprintf(&b, "- Start / End Date: %s / %s\n", st.DateStart, st.DateEnd)
	fmt.Fprintf(&b, "- Current Date: %s\n", st.DateCurrent)
	fmt.Fprintf(&b, "- Columns: %d / %d\n", st.ColsCurrent, st.ColsTotal)
	fmt.Fprintf(&b, "- Rows: %d / %d\n", st.RowsCurrent, st.RowsTotal)
	fmt.Fprintf(&b, "- Pixels: %d / %d\n", st.PixelsCurrent(), st.PixelsTotal)
	fmt.Fprintf(&b, "- On Pixels: %d / %d\n", st.OnPixelCurrent, st.OnPixelTotal)
	fmt.Fprintf(&b, "- Off Pixels: %d / %d\n", st.OffPixelCurrent, st.OffPixelTotal)
	fmt.Fprintf(&b, "- Commits: %d / %d\n\n", st.CommitsCurrent, st.CommitsTotal)
	b.WriteString("```\n")
	b.WriteString(Grid(grid))
	b.WriteString("\n```\n")
	b.WriteString(EndMarker)
	return b.String()
}

// Grid joins grid rows with newlines.
func Grid(grid [][]string) string {
	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = strings.Join(row, "")
	}
	return strings.Join(lines, "\n")
}

// Splice replaces every managed section in doc with section, or appends it
// when doc has none.
func Splice(doc, section string) string {
	if sectionPattern.MatchString(doc) {
		return sectionPattern.ReplaceAllLiteralString(doc, section)
	}
	return doc + "\n\n" + section
}

// Update rewrites the section in the file at path. A missing file counts as empty.
func Update(path, section string) error {
	original, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	updated := Splice(string(original), section)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
