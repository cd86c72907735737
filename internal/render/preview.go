package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	"github.com/verte-zerg/gitart/internal/model"
)

// Preview draws the matrix as a grayscale picture, darker for more commits.
// Each cell becomes a scale x scale block.
func Preview(m model.Matrix, scale int) image.Image {
	if scale < 1 {
		scale = 1
	}
	base := image.NewGray(image.Rect(0, 0, m.Cols(), model.Rows))
	for y := 0; y < model.Rows; y++ {
		for x := 0; x < m.Cols(); x++ {
			base.SetGray(x, y, color.Gray{Y: previewGray(m.At(y, x))})
		}
	}
	if scale == 1 {
		return base
	}
	scaled := image.NewGray(image.Rect(0, 0, m.Cols()*scale, model.Rows*scale))
	xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), base, base.Bounds(), xdraw.Src, nil)
	return scaled
}

func previewGray(count int) uint8 {
	if count > model.MaxCommitsPerCell {
		count = model.MaxCommitsPerCell
	}
	return uint8(255 - int(math.Round(float64(count)/model.MaxCommitsPerCell*255)))
}

// SavePNG writes img to path through a temp file in the same directory.
func SavePNG(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create preview dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(dir, "preview-*.png")
	if err != nil {
		return fmt.Errorf("failed to create temp preview: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()
	if err := png.Encode(tmpFile, img); err != nil {
		return fmt.Errorf("failed to encode preview: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close preview: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}
