package render

import (
	"errors"
	"testing"

	"github.com/verte-zerg/gitart/internal/font"
	"github.com/verte-zerg/gitart/internal/model"
)

func testFont() *font.Font {
	topRow := font.FromBottomUp('A', 5, []uint64{0, 0, 0, 0, 0, 0, 0b11111})
	bar := font.FromBottomUp('I', 1, []uint64{1, 1, 1, 1, 1, 1, 1})
	return font.New("test", []font.Glyph{topRow, bar})
}

func TestTextSingleGlyph(t *testing.T) {
	m, err := Text("A", testFont(), TextOptions{SpaceSpacing: model.DefaultSpaceSpacing})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	if m.Cols() != 5 {
		t.Fatalf("expected 5 columns, got %d", m.Cols())
	}
	for c := 0; c < 5; c++ {
		if m.At(0, c) != model.TextIntensity {
			t.Fatalf("expected row 0 col %d = 16, got %d", c, m.At(0, c))
		}
		for r := 1; r < model.Rows; r++ {
			if m.At(r, c) != 0 {
				t.Fatalf("expected row %d col %d blank", r, c)
			}
		}
	}
	if m.Sum() != 5*model.TextIntensity {
		t.Fatalf("expected %d commits, got %d", 5*model.TextIntensity, m.Sum())
	}
}

func TestTextSpacing(t *testing.T) {
	m, err := Text("I?I", testFont(), TextOptions{LetterSpacing: 1, SpaceSpacing: 4})
	if err != nil {
		t.Fatalf("text: %v", err)
	}
	// I(1) + 1, missing glyph 4+1, I(1) + 1.
	if m.Cols() != 9 {
		t.Fatalf("expected 9 columns, got %d", m.Cols())
	}
	lit := map[int]bool{0: true, 7: true}
	for c := 0; c < m.Cols(); c++ {
		want := 0
		if lit[c] {
			want = model.TextIntensity
		}
		if m.At(3, c) != want {
			t.Fatalf("col %d: expected %d, got %d", c, want, m.At(3, c))
		}
	}
}

func TestTextRequiresFont(t *testing.T) {
	_, err := Text("A", nil, TextOptions{})
	if !errors.Is(err, model.ErrInput) {
		t.Fatalf("expected ErrInput, got %v", err)
	}
}
