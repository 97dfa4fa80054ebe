package hexcrypt

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTextFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func decodeImageFile(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, _, err := image.Decode(f)
	require.NoError(t, err)
	return img
}

func TestPack_ExactFit(t *testing.T) {
	buf := []byte("exactly12byt")
	packed, err := Pack(buf, Dimensions{Width: 2, Height: 2})
	require.NoError(t, err)
	require.Equal(t, buf, packed)
}

func TestPack_Pads(t *testing.T) {
	packed, err := Pack([]byte("Hi!"), Dimensions{Width: 2, Height: 2})
	require.NoError(t, err)
	require.Len(t, packed, 12)
	require.Equal(t, []byte("Hi!"), packed[:3])
	require.Equal(t, make([]byte, 9), packed[3:])
}

func TestPack_CapacityTooSmall(t *testing.T) {
	_, err := Pack([]byte("exactly12byt"), Dimensions{Width: 1, Height: 1})
	require.Error(t, err)

	var imgErr *CannotCreateImageError
	require.ErrorAs(t, err, &imgErr)
	require.Equal(t, uint32(1), imgErr.Width)
	require.Equal(t, uint32(1), imgErr.Height)
}

func TestPack_PartialGroup(t *testing.T) {
	// A buffer whose length is not a multiple of 3 never matches the exact
	// capacity: the padding decision only counts whole groups.
	_, err := Pack([]byte("ABCD"), Dimensions{Width: 2, Height: 2})
	require.Error(t, err)

	var imgErr *CannotCreateImageError
	require.ErrorAs(t, err, &imgErr)
	require.Equal(t, uint32(2), imgErr.Width)
}

func TestEncrypt_SinglePixel(t *testing.T) {
	in := writeTextFile(t, "hi.txt", "Hi!")
	out := filepath.Join(filepath.Dir(in), "hi.png")

	dim, err := Encrypt(in, out, nil)
	require.NoError(t, err)
	require.Equal(t, Dimensions{Width: 1, Height: 1}, dim)

	img := decodeImageFile(t, out)
	require.Equal(t, 1, img.Bounds().Dx())
	require.Equal(t, 1, img.Bounds().Dy())

	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, uint32('H'), r>>8)
	require.Equal(t, uint32('i'), g>>8)
	require.Equal(t, uint32('!'), b>>8)
}

func TestEncrypt_PartialGroupFails(t *testing.T) {
	// 2 bytes count as zero whole groups, so the default size is 0x0 and
	// construction fails.
	in := writeTextFile(t, "ab.txt", "AB")

	_, err := Encrypt(in, "", nil)
	require.Error(t, err)

	var imgErr *CannotCreateImageError
	require.ErrorAs(t, err, &imgErr)
	require.Equal(t, uint32(0), imgErr.Width)
	require.Equal(t, uint32(0), imgErr.Height)
}

func TestEncrypt_ExplicitSize(t *testing.T) {
	in := writeTextFile(t, "hi.txt", "Hi!")
	out := filepath.Join(filepath.Dir(in), "hi.png")

	dim, err := Encrypt(in, out, &Dimensions{Width: 2, Height: 2})
	require.NoError(t, err)
	require.Equal(t, Dimensions{Width: 2, Height: 2}, dim)

	img := decodeImageFile(t, out)
	require.Equal(t, 2, img.Bounds().Dx())
	require.Equal(t, 2, img.Bounds().Dy())

	// 1 real pixel, 3 zero-padded.
	r, g, b, _ := img.At(0, 0).RGBA()
	require.Equal(t, uint32('H'), r>>8)
	require.Equal(t, uint32('i'), g>>8)
	require.Equal(t, uint32('!'), b>>8)
	for _, pt := range []image.Point{{1, 0}, {0, 1}, {1, 1}} {
		r, g, b, _ := img.At(pt.X, pt.Y).RGBA()
		require.Zero(t, r)
		require.Zero(t, g)
		require.Zero(t, b)
	}
}

func TestEncrypt_CapacityTooSmall(t *testing.T) {
	in := writeTextFile(t, "long.txt", "this text does not fit in one pixel.")

	_, err := Encrypt(in, "", &Dimensions{Width: 2, Height: 2})
	require.Error(t, err)

	var imgErr *CannotCreateImageError
	require.ErrorAs(t, err, &imgErr)
	require.Equal(t, uint32(2), imgErr.Width)
	require.Equal(t, uint32(2), imgErr.Height)
}

func TestEncrypt_DefaultOutputPath(t *testing.T) {
	in := writeTextFile(t, "note.txt", "Hi!")

	_, err := Encrypt(in, "", nil)
	require.NoError(t, err)

	out := filepath.Join(filepath.Dir(in), "note.png")
	require.FileExists(t, out)
}

func TestEncrypt_MissingInput(t *testing.T) {
	_, err := Encrypt(filepath.Join(t.TempDir(), "nope.txt"), "", nil)
	require.Error(t, err)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
}

func TestEncrypt_UnsupportedOutputFormat(t *testing.T) {
	in := writeTextFile(t, "hi.txt", "Hi!")
	out := filepath.Join(filepath.Dir(in), "hi.tiff")

	_, err := Encrypt(in, out, nil)
	require.Error(t, err)

	var imgErr *ImageError
	require.ErrorAs(t, err, &imgErr)
}

func TestEncrypt_JPEGOutput(t *testing.T) {
	in := writeTextFile(t, "hi.txt", "Hi!")
	out := filepath.Join(filepath.Dir(in), "hi.jpg")

	_, err := Encrypt(in, out, nil)
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	_, format, err := image.Decode(f)
	require.NoError(t, err)
	require.Equal(t, "jpeg", format)
}

func TestReplaceExt(t *testing.T) {
	require.Equal(t, "note.png", ReplaceExt("note.txt", ".png"))
	require.Equal(t, filepath.Join("some", "dir", "note.png"), ReplaceExt(filepath.Join("some", "dir", "note.txt"), ".png"))
	require.Equal(t, "noext.png", ReplaceExt("noext", ".png"))
}
