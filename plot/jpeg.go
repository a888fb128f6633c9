package plot

import (
	"image"
	"image/jpeg"
	"io"
	"os"
	"strings"
)

// WriteJPEG encodes img to w as a JPEG at full quality.
func WriteJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
}

// SaveJPEG writes img to the named file, adding a .jpg extension if name
// lacks one. It returns the name of the file written.
func SaveJPEG(name string, img image.Image) (string, error) {
	if !strings.HasSuffix(name, ".jpg") {
		name += ".jpg"
	}
	f, err := os.Create(name)
	if err != nil {
		return "", err
	}
	if err := WriteJPEG(f, img); err != nil {
		f.Close()
		return "", err
	}
	return name, f.Close()
}
