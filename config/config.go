// Package config reads the fbcon settings file, an XDG key file:
//
//	[Console]
//	Foreground=white
//	Background=#000000
//	Font=/usr/share/kbd/consolefonts/default8x16.psfu
//	FontSize=12
//	Width=1024
//	Height=768
//
//	[Boot]
//	Handoff=qemu.yaml
//	Device=/dev/fb0
//	Mirror=true
//	Version=0.1.0
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rkoesters/xdg/basedir"
	"github.com/rkoesters/xdg/keyfile"

	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/font"
	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/rgb"
)

const (
	groupConsole = `Console`
	groupBoot    = `Boot`

	FileName = consts.LibraryName + `.conf`
)

type Config struct {
	Foreground rgb.Color
	Background rgb.Color
	// Font is a PSF or TrueType file, empty for the built-in font.
	Font     string
	FontSize float64
	Width    int
	Height   int

	Handoff string
	Device  string
	Mirror  bool
	Version string
}

func Default() *Config {
	return &Config{
		Foreground: rgb.White,
		Background: rgb.Black,
		FontSize:   12,
		Width:      1024,
		Height:     768,
		Version:    `0.1.0`,
	}
}

// DefaultPath is $XDG_CONFIG_HOME/fbcon/fbcon.conf, ~/.config being the
// base directory when the variable is unset.
func DefaultPath() (string, error) {
	if len(basedir.ConfigHome) == 0 {
		return ``, errors.New(`no XDG config directory`)
	}
	return filepath.Join(basedir.ConfigHome, consts.LibraryName, FileName), nil
}

// Load overlays the keys present in r on the defaults.
func Load(r io.Reader) (*Config, error) {
	if r == nil {
		return nil, errors.NilParam(r)
	}
	kf, err := keyfile.New(r)
	if err != nil {
		return nil, errors.New(err)
	}
	c := Default()
	p := &parser{kf: kf}
	p.color(groupConsole, `Foreground`, &c.Foreground)
	p.color(groupConsole, `Background`, &c.Background)
	p.str(groupConsole, `Font`, &c.Font)
	p.float(groupConsole, `FontSize`, &c.FontSize)
	p.int(groupConsole, `Width`, &c.Width)
	p.int(groupConsole, `Height`, &c.Height)
	p.str(groupBoot, `Handoff`, &c.Handoff)
	p.str(groupBoot, `Device`, &c.Device)
	p.bool(groupBoot, `Mirror`, &c.Mirror)
	p.str(groupBoot, `Version`, &c.Version)
	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads name, or DefaultPath if name is empty. A missing default
// file yields the defaults, a missing named file is an error.
func LoadFile(name string) (*Config, error) {
	explicit := name != ``
	if !explicit {
		var err error
		if name, err = DefaultPath(); err != nil {
			return Default(), nil
		}
	}
	b, err := os.ReadFile(name)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, errors.New(err)
	}
	return Load(bytes.NewReader(b))
}

type parser struct {
	kf   *keyfile.KeyFile
	errs []error
}

func (p *parser) fail(g, k string, err error) {
	p.errs = append(p.errs, errors.Errorf(`[%s] %s: %v`, g, k, err))
}

func (p *parser) str(g, k string, dst *string) {
	if !p.kf.KeyExists(g, k) {
		return
	}
	v, err := p.kf.String(g, k)
	if err != nil {
		p.fail(g, k, err)
		return
	}
	*dst = v
}

func (p *parser) color(g, k string, dst *rgb.Color) {
	if !p.kf.KeyExists(g, k) {
		return
	}
	c, err := rgb.Parse(p.kf.Value(g, k))
	if err != nil {
		p.fail(g, k, err)
		return
	}
	*dst = c
}

func (p *parser) float(g, k string, dst *float64) {
	if !p.kf.KeyExists(g, k) {
		return
	}
	v, err := p.kf.Number(g, k)
	if err != nil || v <= 0 {
		p.fail(g, k, errors.Errorf(`invalid positive number %q`, p.kf.Value(g, k)))
		return
	}
	*dst = v
}

func (p *parser) int(g, k string, dst *int) {
	if !p.kf.KeyExists(g, k) {
		return
	}
	v, err := strconv.Atoi(p.kf.Value(g, k))
	if err != nil || v <= 0 {
		p.fail(g, k, errors.Errorf(`invalid positive integer %q`, p.kf.Value(g, k)))
		return
	}
	*dst = v
}

func (p *parser) bool(g, k string, dst *bool) {
	if !p.kf.KeyExists(g, k) {
		return
	}
	v, err := p.kf.Bool(g, k)
	if err != nil {
		p.fail(g, k, err)
		return
	}
	*dst = v
}

// LoadFont returns the configured font, the built-in one if none is set.
// Files ending in .ttf or .otf are rasterized into 8x16 cells.
func (c *Config) LoadFont() (*font.Font, error) {
	if c == nil || c.Font == `` {
		return font.Default(), nil
	}
	name := filepath.Base(c.Font)
	switch strings.ToLower(filepath.Ext(c.Font)) {
	case `.ttf`, `.otf`:
		b, err := os.ReadFile(c.Font)
		if err != nil {
			return nil, errors.New(err)
		}
		return font.LoadTrueType(name, b, c.FontSize, 8, 16)
	default:
		f, err := os.Open(c.Font)
		if err != nil {
			return nil, errors.New(err)
		}
		defer f.Close()
		return font.LoadPSF(name, f)
	}
}

// ConsoleOptions turns the [Console] group into console options.
func (c *Config) ConsoleOptions() ([]console.Option, error) {
	if c == nil {
		return nil, errors.NilParam(nil)
	}
	f, err := c.LoadFont()
	if err != nil {
		return nil, err
	}
	return []console.Option{
		console.SetFont(f),
		console.SetDefaultColors(c.Foreground, c.Background),
	}, nil
}
