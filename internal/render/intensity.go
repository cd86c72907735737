// Package render turns text and images into commit-count matrices.
package render

import (
	"math"

	"github.com/verte-zerg/gitart/internal/model"
)

// CommitsForIntensity maps a 0-255 sample onto 0..MaxCommitsPerCell.
// Zero stays zero so a true black pixel never rounds up.
func CommitsForIntensity(intensity uint8) int {
	if intensity == 0 {
		return 0
	}
	return int(math.Round(float64(intensity) / 255 * model.MaxCommitsPerCell))
}
