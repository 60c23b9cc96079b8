package rgb_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbcon/rgb"
)

func TestParse(t *testing.T) {
	tests := map[string]rgb.Color{
		`#FF00FF`:  rgb.Magenta,
		`#ff00ff`:  rgb.Magenta,
		`#0f0`:     rgb.Green,
		`0x808080`: rgb.Gray,
		`yellow`:   rgb.Yellow,
		`Cyan`:     rgb.Cyan,
		` WHITE `:  rgb.White,
		`grey`:     rgb.Gray,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := rgb.Parse(in)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{``, `#GG0000`, `0xZZ`, `chartreuse`} {
		_, err := rgb.Parse(in)
		assert.Error(t, err, in)
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := rgb.Color(0x00123456).RGBA()
	assert.Equal(t, uint32(0x1212), r)
	assert.Equal(t, uint32(0x3434), g)
	assert.Equal(t, uint32(0x5656), b)
	assert.Equal(t, uint32(0xFFFF), a)
}

func TestModelConvert(t *testing.T) {
	c := rgb.Model.Convert(color.RGBA{R: 0xFF, G: 0x80, B: 0x01, A: 0xFF})
	assert.Equal(t, rgb.Color(0x00FF8001), c)
	assert.Equal(t, rgb.Red, rgb.Model.Convert(rgb.Red))
}

func TestString(t *testing.T) {
	assert.Equal(t, `#FF00FF`, rgb.Magenta.String())
	assert.Equal(t, `#000000`, rgb.Black.String())
}
