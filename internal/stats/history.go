package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/gitart/internal/model"
)

// RenderHistory prints journaled runs, newest first as given.
func RenderHistory(w io.Writer, runs []model.RunRecord) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs found.")
		return err
	}
	tbl := newTable(
		column{title: "Run"},
		column{title: "Started"},
		column{title: "Branch"},
		column{title: "Source", maxWidth: sourceWidth},
		column{title: "Weeks", right: true},
		column{title: "Commits", right: true},
		column{title: "Status"},
	)
	for _, r := range runs {
		tbl.add(
			shortID(r.ID),
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			r.Branch,
			r.Source,
			fmt.Sprintf("%d", r.Cols),
			fmt.Sprintf("%s/%s", humanize.Comma(int64(r.CommitsDone)), humanize.Comma(int64(r.CommitsTotal))),
			statusLabel(r),
		)
	}
	return tbl.writeTo(w)
}

const sourceWidth = 32

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func statusLabel(r model.RunRecord) string {
	if r.EndedAt.IsZero() || r.Status == model.RunRunning {
		return r.Status
	}
	return fmt.Sprintf("%s in %s", r.Status, r.EndedAt.Sub(r.StartedAt).Round(time.Second))
}
