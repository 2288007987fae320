package svgico

import (
	"errors"
	"fmt"
)

// MaxEdge is the largest image dimension an icon directory entry can describe.
const MaxEdge = 256

// ErrInvalidFrame is returned when a frame's geometry and its pixel buffer disagree.
var ErrInvalidFrame = errors.New("invalid icon frame")

// Frame holds a single rasterised icon image: straight alpha RGBA pixels
// in row-major order, top row first.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame wraps a raster buffer into a Frame after validating its geometry.
// Width and height must each be between 1 and 256 pixels and the buffer must
// hold exactly width*height*4 bytes.
func NewFrame(width, height int, pix []uint8) (*Frame, error) {
	f := &Frame{Width: width, Height: height, Pix: pix}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Frame) validate() error {
	if f.Width < 1 || f.Width > MaxEdge || f.Height < 1 || f.Height > MaxEdge {
		return fmt.Errorf("%w: %dx%d is outside the 1-256 pixel range", ErrInvalidFrame, f.Width, f.Height)
	}
	if len(f.Pix) != f.Width*f.Height*4 {
		return fmt.Errorf("%w: pixel buffer holds %d bytes, %dx%d needs %d",
			ErrInvalidFrame, len(f.Pix), f.Width, f.Height, f.Width*f.Height*4)
	}
	return nil
}
