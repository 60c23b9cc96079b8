// Package font holds monospace bitmap glyph tables indexed by byte value.
//
// Every glyph row is one byte, the most significant bit is the leftmost
// pixel. Fonts are therefore at most 8 pixels wide.
package font

import (
	"fmt"

	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
)

const (
	// Glyphs is the number of entries in a table, one per byte value.
	Glyphs = 256
	// MaxWidth is the widest glyph a row byte can describe.
	MaxWidth = 8
	// MaxHeight bounds glyph tables read from font files.
	MaxHeight = 64
)

// Font is an immutable glyph table.
type Font struct {
	name   string
	width  int
	height int
	data   []byte
}

// New copies data, which holds height row bytes for each of the 256 glyphs.
func New(name string, width, height int, data []byte) (*Font, error) {
	if width < 1 || width > MaxWidth {
		return nil, errors.New(fmt.Errorf(`%w: %d`, consts.ErrGlyphTooWide, width))
	}
	if height < 1 || height > MaxHeight {
		return nil, errors.Errorf(`invalid glyph height %d`, height)
	}
	if need := Glyphs * height; len(data) < need {
		return nil, errors.New(fmt.Errorf(`%w: need %d bytes, have %d`, consts.ErrFontData, need, len(data)))
	}
	f := &Font{
		name:   name,
		width:  width,
		height: height,
		data:   make([]byte, Glyphs*height),
	}
	copy(f.data, data)
	return f, nil
}

func (f *Font) Name() string { return f.name }
func (f *Font) Width() int   { return f.width }
func (f *Font) Height() int  { return f.height }

// Glyph returns the rows of the glyph for c. The slice must not be modified.
func (f *Font) Glyph(c byte) []byte {
	off := int(c) * f.height
	return f.data[off : off+f.height : off+f.height]
}
