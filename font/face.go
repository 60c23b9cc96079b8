package font

import (
	"sync"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
)

var (
	defaultOnce sync.Once
	defaultFont *Font
)

// Default is the built in 8x16 table, rasterized from basicfont.Face7x13.
func Default() *Font {
	defaultOnce.Do(func() {
		f, err := FromFace(consts.DefaultFontName, basicfont.Face7x13, 8, 16)
		if err != nil {
			panic(err)
		}
		defaultFont = f
	})
	return defaultFont
}

// FromFace rasterizes the printable Latin-1 range of face into cells of
// width x height pixels, vertically centered by the face metrics.
// Control codes (0x00-0x1F, 0x7F-0x9F) stay blank.
// Anti-aliased pixels count as set from 50% coverage.
func FromFace(name string, face xfont.Face, width, height int) (*Font, error) {
	if face == nil {
		return nil, errors.NilParam(face)
	}
	if width < 1 || width > MaxWidth || height < 1 {
		return nil, errors.Errorf(`invalid cell size %dx%d`, width, height)
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	top := max((height-(ascent+metrics.Descent.Ceil()))/2, 0)
	dot := fixed.P(0, top+ascent)

	data := make([]byte, Glyphs*height)
	for c := 0; c < Glyphs; c++ {
		if c < 0x20 || (c >= 0x7F && c < 0xA0) {
			continue
		}
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(c))
		if !ok || mask == nil {
			continue
		}
		rows := data[c*height : (c+1)*height]
		for y := max(dr.Min.Y, 0); y < min(dr.Max.Y, height); y++ {
			for x := max(dr.Min.X, 0); x < min(dr.Max.X, width); x++ {
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					rows[y] |= 0x80 >> uint(x)
				}
			}
		}
	}
	return New(name, width, height, data)
}

// LoadTrueType rasterizes a TrueType font at size points (72 DPI).
func LoadTrueType(name string, ttf []byte, size float64, width, height int) (*Font, error) {
	tt, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.New(err)
	}
	face := truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	defer face.Close()
	return FromFace(name, face, width, height)
}
