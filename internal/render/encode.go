package render

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/huangsam/gitwrapped/internal/contract"
	"github.com/huangsam/gitwrapped/schema"
)

// jpegQuality matches the usual default of image editors.
const jpegQuality = 90

// encodeImage writes img to w in the given format.
func encodeImage(w io.Writer, img image.Image, format schema.ImageFormat) error {
	switch format {
	case schema.PNGFormat:
		return png.Encode(w, img)
	case schema.JPEGFormat:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case schema.GIFFormat:
		return gif.Encode(w, img, nil)
	case schema.BMPFormat:
		return bmp.Encode(w, img)
	case schema.TIFFFormat:
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %s", contract.ErrUnsupportedFormat, format)
	}
}

// saveImage creates or overwrites path with the encoded image.
func saveImage(img image.Image, path string, format schema.ImageFormat) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create image file %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("cannot close image file %q: %w", path, cerr)
		}
	}()
	if err := encodeImage(f, img, format); err != nil {
		return fmt.Errorf("cannot encode %s image %q: %w", format, path, err)
	}
	return nil
}
