package imagegeom

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads image in any supported raster format, EXIF orientation is
// applied.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image: %w", err)
	}
	return img, nil
}

// VisibleRect returns pixel rectangle of the clip window inside bounds.
// Edges are rounded to the nearest pixel.
func VisibleRect(bounds image.Rectangle, clip ClipSpec) (image.Rectangle, error) {
	if _, err := DeriveScaleTransform(clip); err != nil {
		return image.Rectangle{}, err
	}
	w, h := float64(bounds.Dx()), float64(bounds.Dy())
	r := image.Rect(
		bounds.Min.X+int(math.Round(w*clip.Left/100)),
		bounds.Min.Y+int(math.Round(h*clip.Top/100)),
		bounds.Max.X-int(math.Round(w*clip.Right/100)),
		bounds.Max.Y-int(math.Round(h*clip.Bottom/100)),
	)
	if r.Empty() {
		return image.Rectangle{}, fmt.Errorf("%w: visible window of %v is empty", ErrGeometryDegenerate, bounds)
	}
	return r, nil
}

// Crop returns the part of img the clip leaves visible. It is the raster
// counterpart of ApplyClip: scaling the result to the box gives the same
// picture the transformed element shows.
func Crop(img image.Image, clip ClipSpec) (*image.NRGBA, error) {
	r, err := VisibleRect(img.Bounds(), clip)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, r), nil
}
