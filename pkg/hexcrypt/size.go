package hexcrypt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dimensions is the pixel grid size of an image.
type Dimensions struct {
	Width  uint32
	Height uint32
}

// Capacity returns the number of 3-byte groups an image of these dimensions
// can hold.
func (d Dimensions) Capacity() int64 {
	return int64(d.Width) * int64(d.Height)
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// ParseSize parses a size specifier of the form "WxH", e.g. "16x32". Both
// values must be unsigned 32-bit integers separated by a single lowercase x.
func ParseSize(spec string) (Dimensions, error) {
	w, h, ok := strings.Cut(spec, "x")
	if !ok {
		return Dimensions{}, &InvalidImageSizeError{Spec: spec}
	}
	width, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return Dimensions{}, &InvalidImageSizeError{Spec: spec}
	}
	height, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return Dimensions{}, &InvalidImageSizeError{Spec: spec}
	}
	return Dimensions{Width: uint32(width), Height: uint32(height)}, nil
}

// DefaultSize computes square dimensions whose pixel capacity covers the
// whole 3-byte groups of a byteCount-sized buffer. The division truncates:
// a trailing partial group does not count towards the capacity requirement.
func DefaultSize(byteCount int) Dimensions {
	n := uint32(math.Ceil(math.Sqrt(float64(byteCount / 3))))
	return Dimensions{Width: n, Height: n}
}
