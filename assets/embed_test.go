package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoSignalImage(t *testing.T) {
	img, err := NoSignalImage()
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, 320, b.Dx())
	assert.Equal(t, 180, b.Dy())
	_, _, _, a := img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}
