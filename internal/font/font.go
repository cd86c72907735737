// Package font loads BDF bitmap fonts and rasterizes glyphs into fixed-height bitmaps.
package font

import (
	"context"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/zachomedia/go-bdf"

	"github.com/verte-zerg/gitart/internal/model"
)

// Glyph is a character bitmap. Rows are stored top to bottom.
type Glyph struct {
	Encoding rune
	Width    int
	Advance  int
	XOffset  int
	YOffset  int
	Rows     [][]uint8
}

// Height returns the number of bitmap rows.
func (g Glyph) Height() int {
	return len(g.Rows)
}

// Font maps character codes to glyphs.
type Font struct {
	Name    string
	Ascent  int
	Descent int
	glyphs  map[rune]Glyph
}

// New builds a font from glyphs. Later glyphs with the same encoding win.
func New(name string, glyphs []Glyph) *Font {
	f := &Font{Name: name, glyphs: make(map[rune]Glyph, len(glyphs))}
	for _, g := range glyphs {
		f.glyphs[g.Encoding] = g
	}
	return f
}

// Glyph looks up a character. The boolean is false when the font has no glyph for r.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// Len returns the number of glyphs.
func (f *Font) Len() int {
	return len(f.glyphs)
}

// Parse decodes BDF data. Glyphs with a negative ENCODING are skipped.
func Parse(data []byte) (f *Font, err error) {
	defer func() {
		if r := recover(); r != nil {
			f = nil
			err = fmt.Errorf("%w: failed to parse bdf: %v", model.ErrFontLoad, r)
		}
	}()
	parsed, err := bdf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse bdf: %v", model.ErrFontLoad, err)
	}
	encodings := sourceEncodings(data)
	if len(encodings) != len(parsed.Characters) {
		encodings = nil
	}
	glyphs := make([]Glyph, 0, len(parsed.Characters))
	for i, ch := range parsed.Characters {
		if encodings != nil && encodings[i] < 0 {
			continue
		}
		glyphs = append(glyphs, glyphFromAlpha(ch.Encoding, ch.Advance[0], ch.LowerPoint, ch.Alpha))
	}
	if len(glyphs) == 0 {
		return nil, fmt.Errorf("%w: font has no glyphs", model.ErrFontLoad)
	}
	f = New(parsed.Name, glyphs)
	f.Ascent = parsed.Ascent
	f.Descent = parsed.Descent
	return f, nil
}

// sourceEncodings lists the ENCODING value of each glyph in file order.
// The parser folds codes through a byte-wide charmap, so -1 would otherwise
// alias U+00FF.
func sourceEncodings(data []byte) []int {
	var out []int
	for _, line := range strings.Split(string(data), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != "ENCODING" {
			continue
		}
		code, err := strconv.Atoi(fields[1])
		if err != nil {
			code = -1
		}
		out = append(out, code)
	}
	return out
}

// Load reads a font from a local path or an http(s) URL. Remote fonts are
// cached in cacheDir; refresh forces a new download.
func Load(ctx context.Context, source, cacheDir string, refresh bool) (*Font, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: font source is empty", model.ErrInput)
	}
	path := source
	if isRemote(source) {
		fetched, err := Fetch(ctx, source, cacheDir, refresh)
		if err != nil {
			return nil, err
		}
		path = fetched.Path
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read font: %v", model.ErrFontLoad, err)
	}
	return Parse(data)
}

func glyphFromAlpha(enc rune, advance int, lower [2]int, alpha *image.Alpha) Glyph {
	g := Glyph{
		Encoding: enc,
		Advance:  advance,
		XOffset:  lower[0],
		YOffset:  lower[1],
	}
	if alpha == nil {
		g.Width = advance
		return g
	}
	b := alpha.Bounds()
	g.Width = b.Dx()
	g.Rows = make([][]uint8, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := make([]uint8, b.Dx())
		for x := b.Min.X; x < b.Max.X; x++ {
			if alpha.AlphaAt(x, y).A > 0 {
				row[x-b.Min.X] = 1
			}
		}
		g.Rows[y-b.Min.Y] = row
	}
	if g.Width == 0 {
		g.Width = advance
	}
	return g
}

// FromBottomUp builds a glyph whose source rows are listed bottom to top,
// each row given as an integer whose width low bits are the pixels, most
// significant bit leftmost.
func FromBottomUp(enc rune, width int, rows []uint64) Glyph {
	g := Glyph{Encoding: enc, Width: width, Advance: width}
	g.Rows = make([][]uint8, len(rows))
	for i, v := range rows {
		row := make([]uint8, width)
		for x := 0; x < width; x++ {
			if v&(1<<uint(width-1-x)) != 0 {
				row[x] = 1
			}
		}
		g.Rows[len(rows)-1-i] = row
	}
	return g
}
