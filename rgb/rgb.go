// Package rgb provides the packed 32-bit pixel color used by framebuffer surfaces.
package rgb

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/srlehn/fbcon/internal/errors"
)

// Color is a XRGB8888 value (0x00RRGGBB). The top byte is unused.
type Color uint32

const (
	Black   Color = 0x00000000
	White   Color = 0x00FFFFFF
	Red     Color = 0x00FF0000
	Green   Color = 0x0000FF00
	Blue    Color = 0x000000FF
	Cyan    Color = 0x0000FFFF
	Magenta Color = 0x00FF00FF
	Yellow  Color = 0x00FFFF00
	Gray    Color = 0x00808080
)

var names = map[string]Color{
	`BLACK`:   Black,
	`WHITE`:   White,
	`RED`:     Red,
	`GREEN`:   Green,
	`BLUE`:    Blue,
	`CYAN`:    Cyan,
	`MAGENTA`: Magenta,
	`YELLOW`:  Yellow,
	`GRAY`:    Gray,
	`GREY`:    Gray,
}

// FromRGB packs 8-bit channels.
func FromRGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

var _ color.Color = Color(0)

// RGBA implements color.Color. The unused byte is ignored, pixels are opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xFFFF
}

// String returns the color as "#RRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
}

// Model converts arbitrary colors to Color, dropping alpha.
var Model color.Model = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	if col, ok := c.(Color); ok {
		return col
	}
	r, g, b, _ := c.RGBA()
	return FromRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Parse accepts "#RRGGBB", "#RGB", "0xRRGGBB" or a color name
// in any case style ("magenta", "Magenta", "MAGENTA").
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case len(s) == 0:
		return 0, errors.New(`empty color`)
	case strings.HasPrefix(s, `#`):
		c, err := colorful.Hex(s)
		if err != nil {
			return 0, errors.New(fmt.Errorf(`color %q: %w`, s, err))
		}
		r, g, b := c.RGB255()
		return FromRGB(r, g, b), nil
	case strings.HasPrefix(s, `0x`), strings.HasPrefix(s, `0X`):
		v, err := strconv.ParseUint(s[2:], 16, 32)
		if err != nil {
			return 0, errors.New(fmt.Errorf(`color %q: %w`, s, err))
		}
		return Color(v) & White, nil
	}
	if c, ok := names[strcase.ToScreamingSnake(s)]; ok {
		return c, nil
	}
	return 0, errors.Errorf(`unknown color %q`, s)
}
