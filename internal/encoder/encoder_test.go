package encoder_test

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/encoder"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/rgb"
	"github.com/srlehn/fbcon/surface"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, `png`, encoder.Format(`png`))
	assert.Equal(t, `png`, encoder.Format(`.PNG`))
	assert.Equal(t, `bmp`, encoder.Format(`/tmp/shot.v2.bmp`))
	assert.Empty(t, encoder.Format(`noext.`))
}

func TestEncode(t *testing.T) {
	s := surface.NewMemory(4, 3)
	s.SetPixel(1, 2, rgb.Magenta)

	for _, f := range encoder.Formats {
		t.Run(f, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encoder.Encode(&buf, s, `shot.`+f))
			cfg, name, err := image.DecodeConfig(bytes.NewReader(buf.Bytes()))
			require.NoError(t, err)
			assert.Equal(t, 4, cfg.Width)
			assert.Equal(t, 3, cfg.Height)
			if f != `jpg` {
				assert.Equal(t, f, name)
			}
		})
	}

	var buf bytes.Buffer
	assert.Error(t, encoder.Encode(&buf, s, `shot.webp`))
	assert.Error(t, encoder.Encode(&buf, s, ``))
	assert.True(t, errors.Is(encoder.Encode(&buf, nil, `png`), consts.ErrNilImage))
	assert.True(t, errors.Is(encoder.Encode(nil, image.NewRGBA(image.Rect(0, 0, 1, 1)), `png`), consts.ErrNilParam))
}

func TestSaveFile(t *testing.T) {
	s := surface.NewMemory(5, 2)
	s.Fill(rgb.Cyan)
	p := filepath.Join(t.TempDir(), `screen.bmp`)
	require.NoError(t, encoder.SaveFile(p, s))

	f, err := os.Open(p)
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)
	r, g, b, _ := img.At(4, 1).RGBA()
	assert.Equal(t, []uint32{0, 0xFFFF, 0xFFFF}, []uint32{r, g, b})

	assert.Error(t, encoder.SaveFile(filepath.Join(t.TempDir(), `noext`), s))
}
