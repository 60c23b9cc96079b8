package testutil

import (
	"image"

	"github.com/srlehn/fbcon/font"
	"github.com/srlehn/fbcon/rgb"
	"github.com/srlehn/fbcon/surface"
)

// BlockFont returns a font whose printable glyphs are solid blocks.
// Control codes below 0x20 are blank.
func BlockFont(width, height int) *font.Font {
	row := byte(0xFF << uint(font.MaxWidth-width))
	data := make([]byte, font.Glyphs*height)
	for c := 0x20; c < font.Glyphs; c++ {
		for y := 0; y < height; y++ {
			data[c*height+y] = row
		}
	}
	f, err := font.New(`block`, width, height, data)
	if err != nil {
		panic(err)
	}
	return f
}

// StripeFont returns a font where every glyph row holds the glyph's own
// byte value, so the drawn bit pattern identifies the character.
func StripeFont(height int) *font.Font {
	data := make([]byte, font.Glyphs*height)
	for c := 0; c < font.Glyphs; c++ {
		for y := 0; y < height; y++ {
			data[c*height+y] = byte(c)
		}
	}
	f, err := font.New(`stripe`, font.MaxWidth, height, data)
	if err != nil {
		panic(err)
	}
	return f
}

// Uniform reports whether every pixel in r has the same color, and which.
func Uniform(s *surface.Surface, r image.Rectangle) (rgb.Color, bool) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return 0, false
	}
	c := s.Pixel(r.Min.X, r.Min.Y)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if s.Pixel(x, y) != c {
				return c, false
			}
		}
	}
	return c, true
}

// Row returns the colors of pixel row y.
func Row(s *surface.Surface, y int) []rgb.Color {
	row := make([]rgb.Color, s.Width())
	for x := range row {
		row[x] = s.Pixel(x, y)
	}
	return row
}

// Rows returns the pixel rows [y0, y1).
func Rows(s *surface.Surface, y0, y1 int) [][]rgb.Color {
	var rows [][]rgb.Color
	for y := y0; y < y1; y++ {
		rows = append(rows, Row(s, y))
	}
	return rows
}
