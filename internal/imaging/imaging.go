package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrSourceNotFound marks a replacement image path that cannot be read.
	ErrSourceNotFound = errors.New("replacement image not found")
	// ErrUnsupportedImage marks source bytes no registered decoder accepts.
	ErrUnsupportedImage = errors.New("unsupported image data")
)

const defaultJPEGQuality = 95

// Normalizer converts replacement image files into target-compatible
// payloads under the package's fixed flatten and encode policies.
type Normalizer struct {
	jpegQuality int
}

// New returns a Normalizer encoding JPEG payloads at the given quality.
// Values outside [1, 100] fall back to the default of 95.
func New(jpegQuality int) Normalizer {
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = defaultJPEGQuality
	}
	return Normalizer{jpegQuality: jpegQuality}
}

// Normalize decodes the image at sourcePath, flattens transparency under
// the discard-alpha policy, and re-encodes it for the target extension:
// ".png" stays lossless PNG, everything else becomes JPEG.
func (n Normalizer) Normalize(sourcePath, targetExt string) ([]byte, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, sourcePath, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedImage, sourcePath, err)
	}

	if needsFlatten(img) {
		img = flattenDiscardAlpha(img)
	}

	var buf bytes.Buffer
	if normalizeExt(targetExt) == "png" {
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode png: %w", err)
		}
	} else {
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: n.jpegQuality}); err != nil {
			return nil, fmt.Errorf("encode jpeg: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func needsFlatten(img image.Image) bool {
	if _, ok := img.(*image.Paletted); ok {
		return true
	}
	switch img.ColorModel() {
	case color.NRGBAModel, color.NRGBA64Model, color.RGBAModel, color.RGBA64Model,
		color.AlphaModel, color.Alpha16Model:
		return true
	}
	return false
}

// flattenDiscardAlpha redraws the image onto an opaque RGB canvas. The
// source is first converted to non-premultiplied NRGBA so the raw color
// channels survive, then the alpha channel is forced fully opaque.
func flattenDiscardAlpha(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, bounds.Min, draw.Src)

	out := image.NewRGBA(nrgba.Bounds())
	for i := 0; i < len(nrgba.Pix); i += 4 {
		out.Pix[i] = nrgba.Pix[i]
		out.Pix[i+1] = nrgba.Pix[i+1]
		out.Pix[i+2] = nrgba.Pix[i+2]
		out.Pix[i+3] = 0xFF
	}
	return out
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
}
