package font

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
)

var (
	psf1Magic = [2]byte{0x36, 0x04}
	psf2Magic = [4]byte{0x72, 0xB5, 0x4A, 0x86}
)

const (
	psf1HeaderSize = 4
	psf2HeaderSize = 32
)

// LoadPSF reads a PC Screen Font (version 1 or 2). Only the first 256 glyphs
// are used, missing ones stay blank.
func LoadPSF(name string, r io.Reader) (*Font, error) {
	if r == nil {
		return nil, errors.NilParam(r)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New(err)
	}
	switch {
	case len(b) >= psf1HeaderSize && [2]byte(b[:2]) == psf1Magic:
		return parsePSF1(name, b)
	case len(b) >= psf2HeaderSize && [4]byte(b[:4]) == psf2Magic:
		return parsePSF2(name, b)
	}
	return nil, errors.New(consts.ErrNotPSF)
}

func parsePSF1(name string, b []byte) (*Font, error) {
	height := int(b[3])
	return glyphTable(name, MaxWidth, height, height, glyphCount(b[2]), b[psf1HeaderSize:])
}

func glyphCount(mode byte) int {
	if mode&0x01 != 0 {
		return 512
	}
	return 256
}

func parsePSF2(name string, b []byte) (*Font, error) {
	le := binary.LittleEndian
	var (
		headerSize = int(le.Uint32(b[8:]))
		length     = int(le.Uint32(b[16:]))
		charSize   = int(le.Uint32(b[20:]))
		height     = int(le.Uint32(b[24:]))
		width      = int(le.Uint32(b[28:]))
	)
	if width < 1 || width > MaxWidth {
		return nil, errors.New(fmt.Errorf(`%w: %d`, consts.ErrGlyphTooWide, width))
	}
	if headerSize < psf2HeaderSize || headerSize > len(b) {
		return nil, errors.Errorf(`invalid PSF2 header size %d`, headerSize)
	}
	if length < 1 {
		return nil, errors.Errorf(`PSF2 font without glyphs`)
	}
	return glyphTable(name, width, height, charSize, length, b[headerSize:])
}

func glyphTable(name string, width, height, charSize, count int, glyphs []byte) (*Font, error) {
	if height < 1 || height > MaxHeight || charSize < height {
		return nil, errors.Errorf(`invalid glyph size %d for height %d`, charSize, height)
	}
	count = min(count, Glyphs)
	if need := count * charSize; len(glyphs) < need {
		return nil, errors.New(fmt.Errorf(`%w: need %d bytes, have %d`, consts.ErrFontData, need, len(glyphs)))
	}
	data := make([]byte, Glyphs*height)
	for c := 0; c < count; c++ {
		copy(data[c*height:(c+1)*height], glyphs[c*charSize:])
	}
	return New(name, width, height, data)
}
