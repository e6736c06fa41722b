package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationArea uses Catmull-Rom, a good quality choice for
	// downscaling to terminal cell grids.
	InterpolationArea Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func scalerFor(interp Interpolation) draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	dst := NewRGBAImage(width, height)
	dstRect := image.Rect(0, 0, width, height)
	scalerFor(interp).Scale(dst.RGBA, dstRect, img.RGBA, img.Bounds(), draw.Over, nil)
	return dst
}

// ResizeToWidth resizes an image to the specified width while
// maintaining aspect ratio.
func ResizeToWidth(img *RGBAImage, width int, interp Interpolation) *RGBAImage {
	aspectRatio := float64(img.Width()) / float64(img.Height())
	height := int(float64(width) / aspectRatio)
	return Resize(img, width, height, interp)
}

// FitWithin scales the image down to fit inside width x height while
// maintaining aspect ratio. Images already within the box are returned
// unchanged.
func FitWithin(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	if img.Width() <= width && img.Height() <= height {
		return img
	}
	scaleW := float64(width) / float64(img.Width())
	scaleH := float64(height) / float64(img.Height())
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	w := int(float64(img.Width()) * scale)
	h := int(float64(img.Height()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return Resize(img, w, h, interp)
}

// DrawAt copies src onto img with src's top-left corner at (x, y).
// Pixels falling outside img are clipped.
func (img *RGBAImage) DrawAt(src *RGBAImage, x, y int) {
	rect := image.Rect(x, y, x+src.Width(), y+src.Height())
	draw.Draw(img.RGBA, rect, src.RGBA, image.Point{}, draw.Src)
}
