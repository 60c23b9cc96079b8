package consts

import (
	"errors"
)

var (
	ErrNilParam             = errors.New(`nil parameter`)
	ErrNilImage             = errors.New(`nil image`)
	ErrUnbound              = errors.New(`no surface bound`)
	ErrSurfaceTooSmall      = errors.New(`surface too small`)
	ErrSurfaceDimensions    = errors.New(`invalid surface dimensions`)
	ErrUnsupportedFormat    = errors.New(`unsupported pixel format`)
	ErrGlyphTooWide         = errors.New(`glyph wider than 8 pixels`)
	ErrFontData             = errors.New(`font data too short`)
	ErrNotPSF               = errors.New(`not a PSF font`)
	ErrNoFramebuffer        = errors.New(`no framebuffer in hand-off`)
	ErrPlatformNotSupported = errors.New(`platform not supported`)
)

const (
	LibraryName = `fbcon`

	DefaultFontName = `basic-8x16`
	DefaultDevice   = `/dev/fb0`
)
