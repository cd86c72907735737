// Package progress renders run status to a plain terminal, redrawing in place.
package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/gitart/internal/model"
)

// Console rewrites a block of text in place by moving the cursor back over
// the previously drawn lines.
type Console struct {
	w     io.Writer
	lines int
}

// NewConsole returns a console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Draw replaces the previous block with text.
func (c *Console) Draw(text string) error {
	var b strings.Builder
	if c.lines > 0 {
		b.WriteString(ansi.CursorUp(c.lines))
		b.WriteString(ansi.CursorHorizontalAbsolute(1))
	}
	body := strings.TrimSuffix(text, "\n")
	lines := strings.Split(body, "\n")
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(ansi.EraseLineRight)
		b.WriteByte('\n')
	}
	c.lines = len(lines)
	_, err := io.WriteString(c.w, b.String())
	return err
}

// Status formats a one-line commit counter.
func Status(st model.Stats) string {
	return fmt.Sprintf("Progress: %s/%s commits done.", humanize.Comma(int64(st.CommitsCurrent)), humanize.Comma(int64(st.CommitsTotal)))
}
