// Package art plans and executes a calendar drawing.
package art

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/verte-zerg/gitart/internal/font"
	"github.com/verte-zerg/gitart/internal/model"
	"github.com/verte-zerg/gitart/internal/render"
)

// Input selects what to draw. ImagePath wins over Text.
type Input struct {
	Text          string
	ImagePath     string
	FontSource    string
	FontCacheDir  string
	RefreshFont   bool
	LetterSpacing int
	SpaceSpacing  int
}

// Source is a short label for the journal.
func (in Input) Source() string {
	if in.ImagePath != "" {
		return "image:" + filepath.Base(in.ImagePath)
	}
	return "text:" + in.Text
}

// Render produces the commit matrix for in.
func Render(ctx context.Context, in Input) (model.Matrix, error) {
	switch {
	case in.ImagePath != "":
		m, err := render.ImageFile(in.ImagePath)
		if err != nil {
			return model.Matrix{}, fmt.Errorf("error loading image: %w", err)
		}
		return m, nil
	case in.Text != "":
		if in.FontSource == "" {
			return model.Matrix{}, fmt.Errorf("%w: for text rendering, please provide a BDF font via --bdf-font", model.ErrInput)
		}
		f, err := font.Load(ctx, in.FontSource, in.FontCacheDir, in.RefreshFont)
		if err != nil {
			return model.Matrix{}, fmt.Errorf("error rendering text using BDF font: %w", err)
		}
		m, err := render.Text(in.Text, f, render.TextOptions{
			LetterSpacing: in.LetterSpacing,
			SpaceSpacing:  in.SpaceSpacing,
		})
		if err != nil {
			return model.Matrix{}, fmt.Errorf("error rendering text using BDF font: %w", err)
		}
		return m, nil
	default:
		return model.Matrix{}, fmt.Errorf("%w: either --string or --image must be provided", model.ErrInput)
	}
}
