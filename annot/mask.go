package annot

import (
	"image"

	"github.com/pkg/errors"

	"github.com/quantpath/planar/geom"
)

// Mask is a binary image: true marks pixels that belong to some masked
// region.
type Mask struct {
	W, H int
	Bits []bool
}

func NewMask(w, h int) *Mask {
	return &Mask{W: w, H: h, Bits: make([]bool, w*h)}
}

func (m *Mask) At(x, y int) bool {
	return m.Bits[y*m.W+x]
}

// AddRegion marks every pixel whose lattice point lies inside or on the
// polygon. Pixels outside the mask bounds are ignored, so a polygon may
// hang over the edge. The classification runs through the exact geometry
// core, so pixels exactly on the boundary are included deterministically.
func (m *Mask) AddRegion(poly geom.Polygon) {
	min, max := poly.Bounds()
	x0 := clamp(int(min.X), 0, m.W)
	x1 := clamp(int(max.X)+1, 0, m.W)
	y0 := clamp(int(min.Y), 0, m.H)
	y1 := clamp(int(max.Y)+1, 0, m.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if poly.BoundedSide(geom.Point{X: float64(x), Y: float64(y)}) != geom.OnUnboundedSide {
				m.Bits[y*m.W+x] = true
			}
		}
	}
}

// Apply zeroes every pixel of img that the mask excludes. Changes are made
// in place. The image must match the mask dimensions.
func (m *Mask) Apply(img *image.RGBA) error {
	b := img.Bounds()
	if b.Dx() != m.W || b.Dy() != m.H {
		return errors.Errorf("mask is %dx%d but image is %dx%d", m.W, m.H, b.Dx(), b.Dy())
	}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if m.At(x, y) {
				continue
			}
			off := img.PixOffset(b.Min.X+x, b.Min.Y+y)
			img.Pix[off+0] = 0
			img.Pix[off+1] = 0
			img.Pix[off+2] = 0
			img.Pix[off+3] = 0
		}
	}
	return nil
}

// SetOutside returns a copy of img with every pixel outside the polygonal
// region replaced by value (all four channels). The input is not modified.
func SetOutside(img *image.RGBA, poly geom.Polygon, value uint8) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for i := range out.Pix {
		out.Pix[i] = value
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := geom.Point{X: float64(x - b.Min.X), Y: float64(y - b.Min.Y)}
			if poly.BoundedSide(p) == geom.OnUnboundedSide {
				continue
			}
			src := img.PixOffset(x, y)
			dst := out.PixOffset(x, y)
			copy(out.Pix[dst:dst+4], img.Pix[src:src+4])
		}
	}
	return out
}

// CopyRegion copies the pixels of the polygonal region from src to dst,
// which must share the same bounds. Pixels outside the region keep their
// existing values in dst.
func CopyRegion(src, dst *image.RGBA, poly geom.Polygon) error {
	if src.Bounds() != dst.Bounds() {
		return errors.New("source and destination shapes differ")
	}
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := geom.Point{X: float64(x - b.Min.X), Y: float64(y - b.Min.Y)}
			if poly.BoundedSide(p) == geom.OnUnboundedSide {
				continue
			}
			so := src.PixOffset(x, y)
			do := dst.PixOffset(x, y)
			copy(dst.Pix[do:do+4], src.Pix[so:so+4])
		}
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
