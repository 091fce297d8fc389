// Package slide reads rectangular regions out of multiresolution
// microscopy images. Pyramid levels are power-of-two downscales of the
// base image: level 0 is full resolution, level n is the base scaled down
// by 2ⁿ. Images are plain TIFF files; every call opens and decodes the
// file, so the overhead matters for tiny regions but the reader never
// holds file handles between calls.
//
// Status codes follow the toolkit convention: operations return 0 on
// success and a distinct negative code per failure so callers across a
// binding boundary can tell them apart without an error type.
package slide

import (
	"image"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

const (
	StatusOK           = 0
	StatusBadBuffer    = -1 // destination buffer is inaccessible (nil)
	StatusCannotOpen   = -2 // file missing or not a decodable TIFF
	StatusOutOfBounds  = -3 // region coordinates, size, or level exceed the image
	StatusSizeMismatch = -4 // buffer length is not 4×width×height
)

// LevelCount returns the number of pyramid levels for a base image of the
// given size: halvings of both dimensions until the short side reaches one
// pixel.
func LevelCount(width, height int) int {
	if width < 1 || height < 1 {
		return 0
	}
	count := 1
	for width > 1 && height > 1 {
		width >>= 1
		height >>= 1
		count++
	}
	return count
}

// LevelDimensions returns the pixel dimensions of a pyramid level derived
// from a base image of the given size.
func LevelDimensions(width, height, level int) (w, h int) {
	return width >> uint(level), height >> uint(level)
}

// ReadRegion fills dst with the RGBA pixels of a rectangular region of one
// pyramid level of the image at filename. x and y locate the region's
// top-left corner in level-0 coordinates; width and height are the region
// size in level coordinates. dst must be pre-allocated to exactly
// 4×width×height bytes, one 32-bit pixel per sample, rows in order.
//
// The returned status is StatusOK on success. Failures: StatusBadBuffer
// for a nil buffer, StatusCannotOpen when the file cannot be opened or
// decoded, StatusOutOfBounds when the coordinates, the region size, or the
// level do not fit the image, StatusSizeMismatch when the buffer length
// disagrees with the requested region. On failure dst is untouched.
func ReadRegion(filename string, dst []byte, x, y, width, height, level int) int {
	if dst == nil {
		return StatusBadBuffer
	}
	f, err := os.Open(filename)
	if err != nil {
		return StatusCannotOpen
	}
	defer f.Close()
	src, err := tiff.Decode(f)
	if err != nil {
		return StatusCannotOpen
	}

	bounds := src.Bounds()
	w0, h0 := bounds.Dx(), bounds.Dy()
	if level < 0 || level >= LevelCount(w0, h0) {
		return StatusOutOfBounds
	}
	lw, lh := LevelDimensions(w0, h0, level)
	if x < 0 || y < 0 || width < 0 || height < 0 || x > w0 || y > h0 || width > lw || height > lh {
		return StatusOutOfBounds
	}
	if len(dst) != 4*width*height {
		return StatusSizeMismatch
	}
	if width == 0 || height == 0 {
		return StatusOK
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	srcRect := image.Rect(
		bounds.Min.X+x,
		bounds.Min.Y+y,
		bounds.Min.X+x+(width<<uint(level)),
		bounds.Min.Y+y+(height<<uint(level)),
	)
	if level == 0 {
		draw.Copy(out, image.Point{}, src, srcRect, draw.Src, nil)
	} else {
		draw.ApproxBiLinear.Scale(out, out.Bounds(), src, srcRect, draw.Src, nil)
	}
	copy(dst, out.Pix)
	return StatusOK
}
