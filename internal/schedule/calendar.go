// Package schedule maps a commit matrix onto dated calendar entries.
package schedule

import (
	"time"

	"github.com/verte-zerg/gitart/internal/model"
)

const (
	// CommitDateLayout is the fixed-width author date passed to git.
	CommitDateLayout = "Mon Jan 02 00:00 2006 +0000"
	// DisplayDateLayout is used for the start and end dates in stats.
	DisplayDateLayout = "Jan 02 2006"
)

// StartDate returns the first Sunday on or after the first day of the month, in UTC.
// Months outside 1..12 normalize the way time.Date does.
func StartDate(year int, month time.Month) time.Time {
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d.Weekday() != time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// DefaultStart is the month after now's month, one year back.
func DefaultStart(now time.Time) (int, time.Month) {
	now = now.UTC()
	d := time.Date(now.Year()-1, now.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return d.Year(), d.Month()
}

// CellDate is the row-th day of the col-th week after start.
func CellDate(start time.Time, col, row int) time.Time {
	return start.AddDate(0, 0, col*model.Rows+row)
}

// EndDate is the last day covered by cols weeks.
func EndDate(start time.Time, cols int) time.Time {
	return start.AddDate(0, 0, cols*model.Rows-1)
}

// FormatCommitDate formats d as a midnight UTC author date.
func FormatCommitDate(d time.Time) string {
	return d.UTC().Format(CommitDateLayout)
}

// FormatDisplayDate formats d for the stats block.
func FormatDisplayDate(d time.Time) string {
	return d.UTC().Format(DisplayDateLayout)
}

// BranchName builds the temporary branch name used while preparing the art branch.
func BranchName(t time.Time) string {
	months := []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
	return "art-" + months[t.Month()-1] + t.Format("-02-2006-150405")
}
