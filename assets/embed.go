package assets

import (
	"bytes"
	_ "embed"
	"image"
	"image/png"

	"github.com/pkg/errors"
)

// NoSignalPNG is the colour-bar card shown while no video frame is available.
//
//go:embed no_signal.png
var NoSignalPNG []byte

// NoSignalImage decodes the embedded card.
func NoSignalImage() (image.Image, error) {
	if len(NoSignalPNG) == 0 {
		return nil, errors.New("embedded no_signal.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(NoSignalPNG))
	if err != nil {
		return nil, errors.Wrap(err, "decode no_signal.png")
	}
	return img, nil
}
