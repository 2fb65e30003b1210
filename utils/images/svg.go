package images

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// defaultSVGSize is used when SVG viewBox has no size.
const defaultSVGSize = 1024

// maxRasterDim is the maximum pixel dimension (width or height) allowed when
// rasterizing an SVG. This prevents OOM from SVGs with enormous viewBox
// values.
var maxRasterDim = 8192

// RasterizeSVG rasterizes vector picture on white background, so crop
// previews of SVG pictures could be produced the same way as for raster
// ones.
//
// Rules:
//   - if targetW == 0 && targetH == 0: use SVG viewBox dimensions (fallback to 1024x1024)
//   - if only one of targetW/targetH is > 0: scale by that dimension keeping aspect ratio
//   - if both targetW and targetH are > 0: fit into that box keeping aspect ratio
func RasterizeSVG(svgData []byte, targetW, targetH int) (image.Image, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return nil, err
	}

	w, h := fitSize(int(math.Ceil(icon.ViewBox.W)), int(math.Ceil(icon.ViewBox.H)), targetW, targetH)
	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)
	return dst, nil
}

// fitSize computes raster size for intrinsic size and requested target,
// result never exceeds maxRasterDim and is at least 1x1.
func fitSize(intrW, intrH, targetW, targetH int) (int, int) {
	if intrW <= 0 {
		intrW = defaultSVGSize
	}
	if intrH <= 0 {
		intrH = defaultSVGSize
	}

	scale := 1.0
	switch {
	case targetW > 0 && targetH > 0:
		scale = min(float64(targetW)/float64(intrW), float64(targetH)/float64(intrH))
	case targetW > 0:
		scale = float64(targetW) / float64(intrW)
	case targetH > 0:
		scale = float64(targetH) / float64(intrH)
	}
	w, h := float64(intrW)*scale, float64(intrH)*scale

	if w > float64(maxRasterDim) || h > float64(maxRasterDim) {
		s := min(float64(maxRasterDim)/w, float64(maxRasterDim)/h)
		w, h = w*s, h*s
	}
	return max(int(math.Round(w)), 1), max(int(math.Round(h)), 1)
}
