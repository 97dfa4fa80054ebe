package hexcrypt

import "fmt"

// IOError reports a failed file read or write.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("i/o error on %s: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// InvalidImageSizeError reports a size specifier that does not match the
// WxH integer-pair pattern. Spec is the original, unparsed string.
type InvalidImageSizeError struct {
	Spec string
}

func (e *InvalidImageSizeError) Error() string {
	return fmt.Sprintf("invalid image size %q", e.Spec)
}

// CannotCreateImageError reports dimensions whose pixel capacity does not
// match the source byte buffer.
type CannotCreateImageError struct {
	Width  uint32
	Height uint32
}

func (e *CannotCreateImageError) Error() string {
	return fmt.Sprintf("cannot create image with size %dx%d", e.Width, e.Height)
}

// ImageError reports a failure in the underlying image codec.
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string { return fmt.Sprintf("processing image %s: %v", e.Path, e.Err) }
func (e *ImageError) Unwrap() error { return e.Err }

// BytesToStringError reports pixel bytes that are not valid UTF-8.
type BytesToStringError struct{}

func (e *BytesToStringError) Error() string {
	return "cannot convert image bytes to string: invalid UTF-8"
}
