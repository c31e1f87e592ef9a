package pcfrender

import (
	"image"
	"image/color"
	"image/draw"
)

// Pixel is a single colored point on a surface.
type Pixel struct {
	Point image.Point
	Color color.Color
}

// Surface is the pixel target text is rendered onto. The renderer makes no
// assumption about the surface's color model beyond "glyph pixels are on or
// off"; it composites bitmap pixels into whatever color type the client
// configured on the style.
//
// Implementations are expected to clip drawing to their own bounds.
type Surface interface {
	Bounds() image.Rectangle                     // the surface's bounding rectangle
	FillRect(image.Rectangle, color.Color) error // fill a region with one color
	DrawPixels([]Pixel) error                    // draw a sparse set of colored points
}

// --- Image-backed surface --------------------------------------------------

// ImageSurface is a Surface drawing into a standard library image. It is
// handy for tests and for software rendering without a display.
type ImageSurface struct {
	img draw.Image
}

// NewImageSurface wraps a drawable image as a rendering surface.
func NewImageSurface(img draw.Image) *ImageSurface {
	return &ImageSurface{img: img}
}

// Bounds returns the bounds of the underlying image.
func (s *ImageSurface) Bounds() image.Rectangle {
	return s.img.Bounds()
}

// FillRect fills a rectangular region, clipped to the image bounds.
func (s *ImageSurface) FillRect(r image.Rectangle, c color.Color) error {
	r = r.Intersect(s.img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.img.Set(x, y, c)
		}
	}
	return nil
}

// DrawPixels draws each point, discarding points outside the image bounds.
func (s *ImageSurface) DrawPixels(pixels []Pixel) error {
	bounds := s.img.Bounds()
	for _, px := range pixels {
		if px.Point.In(bounds) {
			s.img.Set(px.Point.X, px.Point.Y, px.Color)
		}
	}
	return nil
}
