package font_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/srlehn/fbcon/font"
	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
)

func litPixels(rows []byte) int {
	var n int
	for _, r := range rows {
		for b := r; b != 0; b &= b - 1 {
			n++
		}
	}
	return n
}

func TestDefault(t *testing.T) {
	f := font.Default()
	require.NotNil(t, f)
	assert.Equal(t, 8, f.Width())
	assert.Equal(t, 16, f.Height())
	assert.Equal(t, consts.DefaultFontName, f.Name())
	assert.Same(t, f, font.Default())

	assert.Zero(t, litPixels(f.Glyph(' ')))
	assert.Zero(t, litPixels(f.Glyph(0)))
	assert.Zero(t, litPixels(f.Glyph('\n')))
	for _, c := range []byte(`AZaz09#@`) {
		assert.NotZero(t, litPixels(f.Glyph(c)), "glyph %q", c)
	}
	// the 7 pixel wide source face never reaches the last column
	for c := 0; c < font.Glyphs; c++ {
		for _, row := range f.Glyph(byte(c)) {
			assert.Zero(t, row&0x01, "glyph %#x", c)
		}
	}
	assert.Len(t, f.Glyph(0xFF), 16)
}

func TestNewValidates(t *testing.T) {
	_, err := font.New(`wide`, 9, 16, make([]byte, 256*16))
	assert.True(t, errors.Is(err, consts.ErrGlyphTooWide))

	_, err = font.New(`short`, 8, 16, make([]byte, 256*16-1))
	assert.True(t, errors.Is(err, consts.ErrFontData))

	_, err = font.New(`flat`, 8, 0, nil)
	assert.Error(t, err)
}

func TestNewCopies(t *testing.T) {
	data := make([]byte, 256*2)
	data['x'*2] = 0xF0
	f, err := font.New(`tiny`, 4, 2, data)
	require.NoError(t, err)
	data['x'*2] = 0
	assert.Equal(t, []byte{0xF0, 0x00}, f.Glyph('x'))
}

func TestLoadPSF1(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0x36, 0x04, 0x00, 8})
	glyphs := make([]byte, 256*8)
	for i := 0; i < 8; i++ {
		glyphs['A'*8+i] = byte(1 << i)
	}
	buf.Write(glyphs)

	f, err := font.LoadPSF(`psf1`, &buf)
	require.NoError(t, err)
	assert.Equal(t, 8, f.Width())
	assert.Equal(t, 8, f.Height())
	assert.Equal(t, []byte{1, 2, 4, 8, 16, 32, 64, 128}, f.Glyph('A'))
}

func TestLoadPSF2(t *testing.T) {
	const (
		width, height = 6, 10
		count         = 128
	)
	hdr := make([]byte, 32)
	copy(hdr, []byte{0x72, 0xB5, 0x4A, 0x86})
	for i, v := range []uint32{0, 32, 0, count, height, height, width} {
		binary.LittleEndian.PutUint32(hdr[4+4*i:], v)
	}
	glyphs := make([]byte, count*height)
	for i := 0; i < height; i++ {
		glyphs['#'*height+i] = 0xFC
	}
	f, err := font.LoadPSF(`psf2`, bytes.NewReader(append(hdr, glyphs...)))
	require.NoError(t, err)
	assert.Equal(t, width, f.Width())
	assert.Equal(t, height, f.Height())
	assert.Equal(t, bytes.Repeat([]byte{0xFC}, height), f.Glyph('#'))
	assert.Zero(t, litPixels(f.Glyph(0xC0)), `glyphs past the file count stay blank`)
}

func TestLoadPSFInvalid(t *testing.T) {
	_, err := font.LoadPSF(`junk`, bytes.NewReader([]byte(`not a font at all, really not`)))
	assert.True(t, errors.Is(err, consts.ErrNotPSF))

	_, err = font.LoadPSF(`truncated`, bytes.NewReader([]byte{0x36, 0x04, 0x00, 16, 0xFF}))
	assert.True(t, errors.Is(err, consts.ErrFontData))

	_, err = font.LoadPSF(`psf1 tall`, bytes.NewReader(append([]byte{0x36, 0x04, 0x00, 200}, make([]byte, 256*200)...)))
	assert.Error(t, err)

	psf2 := func(length, charSize, height, width uint32) []byte {
		hdr := make([]byte, 32)
		copy(hdr, []byte{0x72, 0xB5, 0x4A, 0x86})
		for i, v := range []uint32{0, 32, 0, length, charSize, height, width} {
			binary.LittleEndian.PutUint32(hdr[4+4*i:], v)
		}
		return hdr
	}
	for name, b := range map[string][]byte{
		`huge height`: psf2(0, 0x7FFFFFFF, 0x7FFFFFFF, 8),
		`no glyphs`:   psf2(0, 16, 16, 8),
		`too wide`:    psf2(1, 32, 16, 16),
		`tall`:        psf2(1, 65, 65, 8),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := font.LoadPSF(name, bytes.NewReader(b))
			assert.Error(t, err)
		})
	}
}

func TestLoadTrueType(t *testing.T) {
	f, err := font.LoadTrueType(`gomono`, gomono.TTF, 12, 8, 16)
	require.NoError(t, err)
	assert.Equal(t, 8, f.Width())
	assert.Equal(t, 16, f.Height())
	assert.NotZero(t, litPixels(f.Glyph('M')))
	assert.Zero(t, litPixels(f.Glyph(' ')))

	_, err = font.LoadTrueType(`broken`, []byte(`nope`), 12, 8, 16)
	assert.Error(t, err)
}
