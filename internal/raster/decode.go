// Package raster decodes image files into in-memory rasters.
package raster

import (
	"image"
	"os"

	// Register the decodable formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"viewd/internal/errors"
)

// Decoder reads files from the local filesystem and decodes them with
// the registered image formats. The zero value is ready to use.
type Decoder struct{}

// Decode decodes the file at path into a raster. Files that cannot be
// opened or are not decodable images return a DecodeFailed error; a
// failed decode is an expected outcome for arbitrary files, not a fault.
func (Decoder) Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileError("cannot open file", path, errors.DecodeFailed, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.NewFileError("not a decodable image", path, errors.DecodeFailed, err)
	}
	return img, nil
}
