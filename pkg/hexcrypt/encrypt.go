// Package hexcrypt converts UTF-8 text into RGB raster images and back.
// Every 3 consecutive bytes of text become one pixel; unused pixels are
// zero-padded. Despite the name this is a plain reversible encoding, not
// cryptography.
package hexcrypt

import (
	"os"
	"path/filepath"
)

// Pack pads buf with zero pixels up to the pixel capacity of dim and returns
// a pixel buffer of exactly Width*Height*3 bytes. The padding decision counts
// whole 3-byte groups only, so a buffer whose length is not a multiple of 3
// can never reach the exact capacity and fails.
func Pack(buf []byte, dim Dimensions) ([]byte, error) {
	diff := dim.Capacity() - int64(len(buf)/3)
	switch {
	case diff > 0:
		buf = append(buf, make([]byte, diff*3)...)
	case diff < 0:
		return nil, &CannotCreateImageError{Width: dim.Width, Height: dim.Height}
	}
	if int64(len(buf)) != dim.Capacity()*3 {
		return nil, &CannotCreateImageError{Width: dim.Width, Height: dim.Height}
	}
	return buf, nil
}

// Encrypt reads the UTF-8 text file at path and writes it as an RGB image.
// A nil size selects square dimensions computed from the input length. An
// empty outPath derives the output from path with a .png extension; the
// output extension selects the image format. Returns the dimensions used.
func Encrypt(path, outPath string, size *Dimensions) (Dimensions, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return Dimensions{}, &IOError{Path: path, Err: err}
	}

	dim := DefaultSize(len(buf))
	if size != nil {
		dim = *size
	}

	pixels, err := Pack(buf, dim)
	if err != nil {
		return dim, err
	}

	if outPath == "" {
		outPath = ReplaceExt(path, ".png")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return dim, &IOError{Path: outPath, Err: err}
	}
	if err := encodeImage(f, newRGBImage(pixels, dim), filepath.Ext(outPath)); err != nil {
		f.Close()
		return dim, &ImageError{Path: outPath, Err: err}
	}
	if err := f.Close(); err != nil {
		return dim, &IOError{Path: outPath, Err: err}
	}
	return dim, nil
}
