package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Raster draws shape outlines into an in-memory RGBA image.
type Raster struct {
	img    *image.RGBA
	stroke color.RGBA
}

// NewRaster creates a white canvas of the given size with a black stroke.
func NewRaster(width, height int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	return &Raster{img: img, stroke: color.RGBA{A: 0xFF}}
}

func (r *Raster) SetStroke(c color.RGBA) {
	r.stroke = c
}

func (r *Raster) Image() image.Image {
	return r.img
}

func (r *Raster) Circle(cx, cy, rad float64) {
	steps := int(math.Max(100, rad*4))
	for i := 0; i < steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		px := int(math.Round(cx + rad*math.Cos(angle)))
		py := int(math.Round(cy + rad*math.Sin(angle)))
		r.setPixel(px, py)
	}
}

func (r *Raster) Polygon(points []float64) {
	if len(points) < 4 {
		return
	}
	n := len(points) / 2
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		r.line(
			int(math.Round(points[2*i])), int(math.Round(points[2*i+1])),
			int(math.Round(points[2*j])), int(math.Round(points[2*j+1])),
		)
	}
}

// line draws with Bresenham's algorithm.
func (r *Raster) line(x1, y1, x2, y2 int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		r.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func (r *Raster) setPixel(x, y int) {
	bounds := r.img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		r.img.SetRGBA(x, y, r.stroke)
	}
}

// Scaled resamples the canvas to the target size. Non-positive dimensions
// return the canvas unscaled.
func (r *Raster) Scaled(dstW, dstH int) image.Image {
	if dstW <= 0 || dstH <= 0 {
		return r.img
	}
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), r.img, r.img.Bounds(), xdraw.Over, nil)
	return dst
}

// WritePNG encodes the canvas, scaled when dstW and dstH are positive.
func (r *Raster) WritePNG(w io.Writer, dstW, dstH int) error {
	var img image.Image = r.img
	if dstW > 0 && dstH > 0 {
		img = r.Scaled(dstW, dstH)
	}
	return png.Encode(w, img)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
