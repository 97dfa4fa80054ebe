package hexcrypt

import (
	"image"
	"os"
	"strings"
	"unicode/utf8"
)

// Decrypt reads the RGB image at path and writes the decoded UTF-8 text.
// Trailing NUL characters, which encode padding pixels, are stripped;
// interior NULs are preserved. An empty outPath derives the output from
// path with a .txt extension.
func Decrypt(path, outPath string) error {
	f, err := os.Open(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return &ImageError{Path: path, Err: err}
	}

	buf := rgbBytes(img)
	if !utf8.Valid(buf) {
		return &BytesToStringError{}
	}
	text := strings.TrimRight(string(buf), "\x00")

	if outPath == "" {
		outPath = ReplaceExt(path, ".txt")
	}
	if err := os.WriteFile(outPath, []byte(text), 0644); err != nil {
		return &IOError{Path: outPath, Err: err}
	}
	return nil
}
