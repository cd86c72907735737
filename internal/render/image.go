package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // GIF decoder.
	_ "image/jpeg" // JPEG decoder.
	_ "image/png"  // PNG decoder.
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // BMP decoder.
	_ "golang.org/x/image/tiff" // TIFF decoder.
	_ "golang.org/x/image/webp" // WebP decoder.

	"github.com/verte-zerg/gitart/internal/model"
)

// ImageFile decodes the image at path and resamples it.
func ImageFile(path string) (model.Matrix, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.Matrix{}, fmt.Errorf("%w: error opening image: %v", model.ErrImageDecode, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only image.
			_ = cerr
		}
	}()
	return ImageReader(file)
}

// ImageReader decodes any registered image format from r and resamples it.
func ImageReader(r io.Reader) (model.Matrix, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return model.Matrix{}, fmt.Errorf("%w: error decoding image: %v", model.ErrImageDecode, err)
	}
	return Image(img)
}

// Image rescales img to height Rows keeping the aspect ratio and maps each
// pixel's red channel to a commit count. Alpha is discarded before scaling.
func Image(img image.Image) (model.Matrix, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return model.Matrix{}, fmt.Errorf("%w: image has no pixels", model.ErrImageDecode)
	}
	src := opaque(img)
	width := TargetWidth(b.Dx(), b.Dy())
	dst := image.NewNRGBA(image.Rect(0, 0, width, model.Rows))
	if width == b.Dx() && model.Rows == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	} else {
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	}

	m := model.NewMatrix(width)
	for y := 0; y < model.Rows; y++ {
		for x := 0; x < width; x++ {
			m.Set(y, x, CommitsForIntensity(dst.NRGBAAt(x, y).R))
		}
	}
	return m, nil
}

// opaque copies img's straight RGB values into a fully opaque image.
func opaque(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			c.A = 0xff
			out.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return out
}

// TargetWidth returns round(width*Rows/height), at least 1.
func TargetWidth(width, height int) int {
	if height <= 0 {
		return 1
	}
	w := int(math.Round(float64(width) * float64(model.Rows) / float64(height)))
	if w < 1 {
		w = 1
	}
	return w
}
