package images

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/disintegration/imaging"

	"docxview/common"
)

// PreviewDPI is density written into JFIF header of JPEG previews.
const PreviewDPI = 96

// Encode produces preview in requested format. When gray is set and picture
// has no color it is stored as single channel image.
func Encode(img image.Image, format common.PreviewFormat, quality int, gray bool) ([]byte, error) {
	if gray && colorless(img) {
		img = toGray(img)
	}

	buf := new(bytes.Buffer)
	switch format {
	case common.PreviewFormatPng:
		if err := imaging.Encode(buf, img, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
			return nil, fmt.Errorf("unable to encode PNG preview: %w", err)
		}
		return buf.Bytes(), nil
	case common.PreviewFormatJpeg:
		if err := imaging.Encode(buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
			return nil, fmt.Errorf("unable to encode JPEG preview: %w", err)
		}
		return withDensity(buf.Bytes(), PreviewDPI)
	default:
		return nil, fmt.Errorf("unsupported preview format: %s", format)
	}
}

func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	dst := image.NewGray(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
