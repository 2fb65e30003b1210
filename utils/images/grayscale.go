package images

import "image"

// colorless reports whether every pixel of img has equal color channels.
func colorless(img image.Image) bool {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return true
	case *image.YCbCr:
		// neutral chroma is 128 in both planes
		for _, c := range m.Cb {
			if c != 128 {
				return false
			}
		}
		for _, c := range m.Cr {
			if c != 128 {
				return false
			}
		}
		return true
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != g || g != bl {
				return false
			}
		}
	}
	return true
}
