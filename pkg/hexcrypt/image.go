package hexcrypt

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	_ "image/gif" // registered for decoding
)

// newRGBImage wraps a packed pixel buffer of exactly Width*Height*3 bytes
// into an opaque image. The png encoder emits 8-bit truecolor without an
// alpha channel for fully opaque images.
func newRGBImage(buf []byte, dim Dimensions) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(dim.Width), int(dim.Height)))
	for i := 0; i*3+2 < len(buf); i++ {
		img.Pix[i*4+0] = buf[i*3+0]
		img.Pix[i*4+1] = buf[i*3+1]
		img.Pix[i*4+2] = buf[i*3+2]
		img.Pix[i*4+3] = 0xff
	}
	return img
}

// rgbBytes flattens img into row-major RGB triplets, converting from the
// source color model if necessary.
func rgbBytes(img image.Image) []byte {
	b := img.Bounds()
	buf := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			buf = append(buf, c.R, c.G, c.B)
		}
	}
	return buf
}

// encodeImage writes img to w in the format matching the file extension ext.
func encodeImage(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png", "":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
}

// ReplaceExt returns path with its extension replaced by ext. The directory
// component is preserved.
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
