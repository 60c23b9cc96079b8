// Package surface describes a linear 32 bits per pixel framebuffer region.
//
// A nil *Surface stands for "no surface bound": every method on it is a no-op
// and every query returns the zero value.
package surface

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/rgb"
)

// BytesPerPixel of the only supported format, XRGB8888.
const BytesPerPixel = 4

// Surface is a non-owning view of a pixel buffer. Pixels are stored
// little endian (B, G, R, unused), rows are pitch bytes apart.
type Surface struct {
	buf    []byte
	width  int
	height int
	pitch  int
}

// New wraps buf. A pitch of 0 means tightly packed rows.
func New(buf []byte, width, height, pitch int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.New(fmt.Errorf(`%w: %dx%d`, consts.ErrSurfaceDimensions, width, height))
	}
	rowLen := width * BytesPerPixel
	if pitch == 0 {
		pitch = rowLen
	}
	if pitch < rowLen {
		return nil, errors.New(fmt.Errorf(`%w: pitch %d shorter than row of %d bytes`, consts.ErrSurfaceDimensions, pitch, rowLen))
	}
	if need := pitch*(height-1) + rowLen; len(buf) < need {
		return nil, errors.New(fmt.Errorf(`%w: need %d bytes, have %d`, consts.ErrSurfaceTooSmall, need, len(buf)))
	}
	return &Surface{buf: buf, width: width, height: height, pitch: pitch}, nil
}

// NewMemory allocates a tightly packed surface. It returns nil for
// non-positive dimensions.
func NewMemory(width, height int) *Surface {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Surface{
		buf:    make([]byte, width*height*BytesPerPixel),
		width:  width,
		height: height,
		pitch:  width * BytesPerPixel,
	}
}

func (s *Surface) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

func (s *Surface) Height() int {
	if s == nil {
		return 0
	}
	return s.height
}

// Pitch is the distance between rows in bytes.
func (s *Surface) Pitch() int {
	if s == nil {
		return 0
	}
	return s.pitch
}

func (s *Surface) offset(x, y int) int { return y*s.pitch + x*BytesPerPixel }

func (s *Surface) in(x, y int) bool {
	return s != nil && x >= 0 && y >= 0 && x < s.width && y < s.height
}

// SetPixel writes c at (x, y). Coordinates outside the surface are dropped.
func (s *Surface) SetPixel(x, y int, c rgb.Color) {
	if !s.in(x, y) {
		return
	}
	binary.LittleEndian.PutUint32(s.buf[s.offset(x, y):], uint32(c))
}

// Pixel reads the value at (x, y), 0 outside the surface.
func (s *Surface) Pixel(x, y int) rgb.Color {
	if !s.in(x, y) {
		return 0
	}
	return rgb.Color(binary.LittleEndian.Uint32(s.buf[s.offset(x, y):]))
}

// Fill writes c to every pixel.
func (s *Surface) Fill(c rgb.Color) {
	if s == nil {
		return
	}
	s.FillRows(0, s.height, c)
}

// FillRows writes c to the rows [y0, y1), clamped to the surface.
func (s *Surface) FillRows(y0, y1 int, c rgb.Color) {
	if s == nil {
		return
	}
	y0 = max(y0, 0)
	y1 = min(y1, s.height)
	if y0 >= y1 {
		return
	}
	first := s.row(y0)
	for i := 0; i < len(first); i += BytesPerPixel {
		binary.LittleEndian.PutUint32(first[i:], uint32(c))
	}
	for y := y0 + 1; y < y1; y++ {
		copy(s.row(y), first)
	}
}

// CopyRow copies the pixels of row src over row dst.
// Rows outside the surface are ignored.
func (s *Surface) CopyRow(dst, src int) {
	if s == nil || dst == src || dst < 0 || src < 0 || dst >= s.height || src >= s.height {
		return
	}
	copy(s.row(dst), s.row(src))
}

func (s *Surface) row(y int) []byte {
	off := s.offset(0, y)
	return s.buf[off : off+s.width*BytesPerPixel]
}

var _ draw.Image = (*Surface)(nil)

func (s *Surface) ColorModel() color.Model { return rgb.Model }

func (s *Surface) Bounds() image.Rectangle {
	if s == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, s.width, s.height)
}

func (s *Surface) At(x, y int) color.Color { return s.Pixel(x, y) }

func (s *Surface) Set(x, y int, c color.Color) {
	if c == nil {
		return
	}
	s.SetPixel(x, y, rgb.Model.Convert(c).(rgb.Color))
}

// Snapshot copies the surface into a new RGBA image.
func (s *Surface) Snapshot() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	if s == nil {
		return img
	}
	for y := 0; y < s.height; y++ {
		src := s.row(y)
		dst := img.Pix[y*img.Stride:]
		for x := 0; x < s.width; x++ {
			i, j := x*BytesPerPixel, x*4
			dst[j] = src[i+2]
			dst[j+1] = src[i+1]
			dst[j+2] = src[i]
			dst[j+3] = 0xFF
		}
	}
	return img
}
