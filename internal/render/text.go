package render

import (
	"fmt"

	"github.com/verte-zerg/gitart/internal/font"
	"github.com/verte-zerg/gitart/internal/model"
)

// GlyphSource resolves characters to glyphs.
type GlyphSource interface {
	Glyph(r rune) (font.Glyph, bool)
}

// TextOptions controls horizontal spacing.
type TextOptions struct {
	LetterSpacing int
	SpaceSpacing  int
}

// Text renders s left to right. Characters without a glyph become
// SpaceSpacing+LetterSpacing blank columns; every glyph is followed by
// LetterSpacing blank columns.
func Text(s string, src GlyphSource, opts TextOptions) (model.Matrix, error) {
	if src == nil {
		return model.Matrix{}, fmt.Errorf("%w: text rendering requires a font", model.ErrInput)
	}
	if opts.LetterSpacing < 0 {
		return model.Matrix{}, fmt.Errorf("%w: letter spacing must be >= 0", model.ErrInput)
	}
	if opts.SpaceSpacing < 0 {
		return model.Matrix{}, fmt.Errorf("%w: space spacing must be >= 0", model.ErrInput)
	}
	m := model.NewMatrix(0)
	var blank [model.Rows]int
	for _, ch := range s {
		g, ok := src.Glyph(ch)
		if !ok {
			for i := 0; i < opts.SpaceSpacing+opts.LetterSpacing; i++ {
				m.AppendColumn(blank)
			}
			continue
		}
		bmp := font.Rasterize(g, model.Rows)
		width := len(bmp[0])
		for x := 0; x < width; x++ {
			var col [model.Rows]int
			for y := 0; y < model.Rows; y++ {
				if bmp[y][x] != 0 {
					col[y] = model.TextIntensity
				}
			}
			m.AppendColumn(col)
		}
		for i := 0; i < opts.LetterSpacing; i++ {
			m.AppendColumn(blank)
		}
	}
	return m, nil
}
