package font

// Rasterize renders g into exactly height rows, left aligned, relative to the
// baseline: output row i holds the glyph pixels height-1-i rows above the
// baseline, so the last row sits on it. Pixels outside the glyph data and
// below the baseline are dropped.
func Rasterize(g Glyph, height int) [][]uint8 {
	width := g.Width
	if g.XOffset > 0 {
		width += g.XOffset
	}
	if width < 0 {
		width = 0
	}
	out := make([][]uint8, height)
	for i := range out {
		out[i] = make([]uint8, width)
	}
	if len(g.Rows) == 0 {
		return out
	}
	shift := 0
	if g.XOffset > 0 {
		shift = g.XOffset
	}
	// Source row r sits at YOffset+Height-1-r above the baseline.
	top := g.YOffset + len(g.Rows) - 1
	for i := 0; i < height; i++ {
		r := top - (height - 1 - i)
		if r < 0 || r >= len(g.Rows) {
			continue
		}
		src := g.Rows[r]
		for x, v := range src {
			if v == 0 {
				continue
			}
			dx := x + shift
			if dx < 0 || dx >= width {
				continue
			}
			out[i][dx] = 1
		}
	}
	return out
}
