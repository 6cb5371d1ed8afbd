package encoder

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used when the requested quality is out of range.
const DefaultJPEGQuality = 85

// JPEGEncoder encodes images to baseline JPEG.
type JPEGEncoder struct{}

func (e *JPEGEncoder) Format() string { return "jpeg" }

func (e *JPEGEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	var buf bytes.Buffer
	buf.Grow(256 * 1024) // pre-alloc 256KB, avoids repeated grow for typical photos

	err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
