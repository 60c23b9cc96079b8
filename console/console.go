// Package console renders a scrolling character terminal onto a pixel surface.
//
// The console never fails once constructed: without a bound surface every
// output call is a no-op, pixels outside the surface are dropped and empty
// strings print nothing.
//
// A Console is not safe for concurrent use.
package console

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/srlehn/fbcon/font"
	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/internal/logx"
	"github.com/srlehn/fbcon/rgb"
	"github.com/srlehn/fbcon/surface"
)

// TabCells is the tab stop distance in character cells.
const TabCells = 4

// Printer is the output side of a console as used by boot screens.
type Printer interface {
	PutString(s string)
	PutStringColored(s string, fg, bg rgb.Color)
}

var (
	_ Printer             = (*Console)(nil)
	_ io.Writer           = (*Console)(nil)
	_ io.StringWriter     = (*Console)(nil)
	_ logx.LoggerProvider = (*Console)(nil)
)

type Console struct {
	surf *surface.Surface
	font *font.Font

	// cursor in pixels
	x, y int

	fg, bg               rgb.Color
	defaultFg, defaultBg rgb.Color

	strict  bool
	logger  *slog.Logger
	scrolls uint64
}

// New returns an unbound console using the default font and
// white on black.
func New(opts ...Option) (*Console, error) {
	c := &Console{
		font:      font.Default(),
		defaultFg: rgb.White,
		defaultBg: rgb.Black,
	}
	if err := c.SetOptions(opts...); err != nil {
		return nil, err
	}
	c.fg, c.bg = c.defaultFg, c.defaultBg
	return c, nil
}

// Bind attaches s, moves the cursor to the origin and restores the default
// colors. Rebinding is allowed. A nil surface or one smaller than a single
// glyph leaves the console unbound; only a Strict console reports that.
func (c *Console) Bind(s *surface.Surface) error {
	if c == nil {
		return errors.NilParam(nil)
	}
	c.x, c.y = 0, 0
	c.fg, c.bg = c.defaultFg, c.defaultBg
	if err := c.check(s); err != nil {
		c.surf = nil
		logx.Warn(`surface rejected`, c, `error`, err)
		if c.strict {
			return err
		}
		return nil
	}
	c.surf = s
	logx.Debug(`surface bound`, c, `width`, s.Width(), `height`, s.Height(), `font`, c.font.Name())
	return nil
}

func (c *Console) check(s *surface.Surface) error {
	if s == nil {
		return errors.New(consts.ErrUnbound)
	}
	if s.Width() < c.font.Width() || s.Height() < c.font.Height() {
		return errors.New(fmt.Errorf(`%w: %dx%d for %dx%d glyphs`,
			consts.ErrSurfaceTooSmall, s.Width(), s.Height(), c.font.Width(), c.font.Height()))
	}
	return nil
}

// Unbind detaches the surface. Output becomes a no-op until the next Bind.
func (c *Console) Unbind() {
	if c == nil {
		return
	}
	c.surf = nil
}

func (c *Console) Bound() bool { return c != nil && c.surf != nil }

// Surface returns the bound surface, nil if unbound.
func (c *Console) Surface() *surface.Surface {
	if c == nil {
		return nil
	}
	return c.surf
}

func (c *Console) Font() *font.Font {
	if c == nil {
		return nil
	}
	return c.font
}

// Width of the bound surface in pixels, 0 if unbound.
func (c *Console) Width() int {
	if c == nil {
		return 0
	}
	return c.surf.Width()
}

// Height of the bound surface in pixels, 0 if unbound.
func (c *Console) Height() int {
	if c == nil {
		return 0
	}
	return c.surf.Height()
}

// Clear fills the surface with col and homes the cursor. Colors are kept.
func (c *Console) Clear(col rgb.Color) {
	if !c.Bound() {
		return
	}
	c.surf.Fill(col)
	c.x, c.y = 0, 0
	logx.Debug(`cleared`, c, `color`, col)
}

// Cursor returns the pixel position of the next glyph.
func (c *Console) Cursor() (x, y int) {
	if c == nil {
		return 0, 0
	}
	return c.x, c.y
}

// SetCursorCell moves the cursor to character cell (col, row).
// Negative values are treated as 0.
func (c *Console) SetCursorCell(col, row int) {
	if c == nil {
		return
	}
	c.x = max(col, 0) * c.font.Width()
	c.y = max(row, 0) * c.font.Height()
}

func (c *Console) Colors() (fg, bg rgb.Color) {
	if c == nil {
		return 0, 0
	}
	return c.fg, c.bg
}

func (c *Console) SetColors(fg, bg rgb.Color) {
	if c == nil {
		return
	}
	c.fg, c.bg = fg, bg
}

// Scrolls counts the scroll operations since construction.
func (c *Console) Scrolls() uint64 {
	if c == nil {
		return 0
	}
	return c.scrolls
}

func (c *Console) Logger() *slog.Logger {
	if c == nil {
		return nil
	}
	return c.logger
}

// PutChar prints one byte. '\n', '\r', '\t' and '\b' move the cursor
// without drawing, everything else draws its glyph and advances one cell.
// The cursor then wraps at the right edge and the screen scrolls once the
// cursor line no longer fits.
func (c *Console) PutChar(ch byte) {
	if !c.Bound() {
		return
	}
	gw, gh := c.font.Width(), c.font.Height()

	switch ch {
	case '\n':
		c.x = 0
		c.y += gh
	case '\r':
		c.x = 0
	case '\t':
		c.x = nextTabStop(c.x, gw*TabCells)
	case '\b':
		if c.x >= gw {
			c.x -= gw
		}
	default:
		c.drawGlyph(ch, c.x, c.y)
		c.x += gw
	}

	if c.x >= c.surf.Width() {
		c.x = 0
		c.y += gh
	}
	if c.y+gh > c.surf.Height() {
		c.scroll()
	}
}

// nextTabStop returns the first multiple of tab strictly greater than x.
func nextTabStop(x, tab int) int {
	if tab&(tab-1) == 0 {
		return (x + tab) &^ (tab - 1)
	}
	return (x/tab + 1) * tab
}

// drawGlyph rasterizes the glyph for ch with its top left corner at (x, y).
func (c *Console) drawGlyph(ch byte, x, y int) {
	gw := c.font.Width()
	for row, bits := range c.font.Glyph(ch) {
		for col := 0; col < gw; col++ {
			color := c.bg
			if bits&(0x80>>uint(col)) != 0 {
				color = c.fg
			}
			c.surf.SetPixel(x+col, y+row, color)
		}
	}
}

// scroll moves the surface up by one glyph height. Rows are copied in
// ascending order so every source row is read before it is overwritten.
func (c *Console) scroll() {
	gh := c.font.Height()
	h := c.surf.Height()
	for y := gh; y < h; y++ {
		c.surf.CopyRow(y-gh, y)
	}
	c.surf.FillRows(h-gh, h, c.bg)
	c.y -= gh
	c.scrolls++
	logx.Debug(`scrolled`, c, `count`, c.scrolls)
}

// PutString prints s up to its first NUL byte.
func (c *Console) PutString(s string) {
	if !c.Bound() {
		return
	}
	for i := 0; i < len(s); i++ {
		if s[i] == 0 {
			return
		}
		c.PutChar(s[i])
	}
}

// PutStringColored prints s in fg on bg and restores the previous colors.
func (c *Console) PutStringColored(s string, fg, bg rgb.Color) {
	if c == nil {
		return
	}
	oldFg, oldBg := c.fg, c.bg
	defer func() { c.fg, c.bg = oldFg, oldBg }()
	c.fg, c.bg = fg, bg
	c.PutString(s)
}

// Write prints every byte of p, NUL included. It never fails.
func (c *Console) Write(p []byte) (int, error) {
	for _, b := range p {
		c.PutChar(b)
	}
	return len(p), nil
}

func (c *Console) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		c.PutChar(s[i])
	}
	return len(s), nil
}
