package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"

	// decoders accepted for the logo file
	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// logoMaxPixels longest side of the embedded logo; about 300 dpi at 100pt.
const logoMaxPixels = 400

// LoadLogo decodes a png, jpeg, gif, bmp or webp file and re-encodes it as an
// 8-bit RGBA PNG no larger than maxPixels on its longest side.
func LoadLogo(path string, maxPixels int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode logo %s: %w", path, err)
	}

	b := src.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("logo %s (%s) is empty", path, format)
	}
	w, h := fitWithin(b.Dx(), b.Dy(), maxPixels)

	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode logo: %w", err)
	}
	return buf.Bytes(), nil
}

func fitWithin(w, h, max int) (int, int) {
	if max <= 0 || (w <= max && h <= max) {
		return w, h
	}
	if w >= h {
		return max, maxInt(1, h*max/w)
	}
	return maxInt(1, w*max/h), max
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
