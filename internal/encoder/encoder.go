// Package encoder writes surface screenshots in the image format named by a
// file extension.
package encoder

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
)

// Formats lists the accepted extensions.
var Formats = []string{`png`, `bmp`, `gif`, `tiff`, `jpg`, `jpeg`}

// Format normalizes an extension or a whole file name to a lower case
// format name.
func Format(fileExt string) string {
	// allow passing whole filename
	if i := strings.LastIndexByte(fileExt, '.'); i >= 0 {
		fileExt = fileExt[i+1:]
	}
	return strings.ToLower(fileExt)
}

// Encode writes img to w in the format for fileExt.
func Encode(w io.Writer, img image.Image, fileExt string) error {
	if w == nil {
		return errors.NilParam(nil)
	}
	if img == nil {
		return errors.New(consts.ErrNilImage)
	}
	var err error
	switch f := Format(fileExt); f {
	case `png`:
		err = png.Encode(w, img)
	case `bmp`:
		err = bmp.Encode(w, img)
	case `gif`:
		err = gif.Encode(w, img, nil)
	case `tiff`:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.LZW, Predictor: true})
	case `jpg`, `jpeg`:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	case ``:
		err = errors.New(`no file format specified`)
	default:
		err = errors.Errorf(`unsupported file format: %q`, f)
	}
	return errors.New(err)
}

// SaveFile encodes img into the file name, choosing the format by its
// extension.
func SaveFile(name string, img image.Image) (err error) {
	if filepath.Ext(name) == `` {
		return errors.Errorf(`%s: no file extension`, name)
	}
	f, err := os.Create(name)
	if err != nil {
		return errors.New(err)
	}
	defer func() {
		if errClose := f.Close(); err == nil {
			err = errors.New(errClose)
		}
	}()
	return Encode(f, img, name)
}
