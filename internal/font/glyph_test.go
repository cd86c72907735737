package font

import "testing"

func TestRasterizeBaselineRelative(t *testing.T) {
	// 1x10 glyph extending 2 rows below the baseline, every row lit.
	rows := make([][]uint8, 10)
	for i := range rows {
		rows[i] = []uint8{1}
	}
	g := Glyph{Encoding: 'x', Width: 1, Advance: 1, YOffset: -2, Rows: rows}
	rows[0] = []uint8{0}

	out := Rasterize(g, 7)
	if len(out) != 7 {
		t.Fatalf("expected 7 rows, got %d", len(out))
	}
	// Rows above the baseline start at source row 1; row 0 is the blank top.
	for i := 0; i < 7; i++ {
		if out[i][0] != 1 {
			t.Fatalf("expected row %d lit", i)
		}
	}
}

func TestRasterizeShortGlyphPadsTop(t *testing.T) {
	g := FromBottomUp('-', 3, []uint64{0b111, 0b000})
	out := Rasterize(g, 7)
	for i := 0; i < 6; i++ {
		for _, v := range out[i] {
			if v != 0 {
				t.Fatalf("expected row %d blank, got %v", i, out[i])
			}
		}
	}
	// Bottom-up source: first value is the baseline row.
	for x, v := range out[6] {
		if v != 1 {
			t.Fatalf("expected baseline pixel %d lit", x)
		}
	}
}

func TestRasterizeEmptyGlyph(t *testing.T) {
	out := Rasterize(Glyph{Encoding: ' ', Width: 4}, 7)
	if len(out) != 7 || len(out[0]) != 4 {
		t.Fatalf("expected 7x4 bitmap, got %dx%d", len(out), len(out[0]))
	}
	for _, row := range out {
		for _, v := range row {
			if v != 0 {
				t.Fatalf("expected blank bitmap")
			}
		}
	}
}

func TestFromBottomUpOrder(t *testing.T) {
	g := FromBottomUp('v', 2, []uint64{0b01, 0b10})
	if g.Rows[0][0] != 1 || g.Rows[0][1] != 0 {
		t.Fatalf("expected top row 10, got %v", g.Rows[0])
	}
	if g.Rows[1][0] != 0 || g.Rows[1][1] != 1 {
		t.Fatalf("expected bottom row 01, got %v", g.Rows[1])
	}
}
