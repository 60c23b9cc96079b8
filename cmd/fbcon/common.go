package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbcon/bootinfo"
	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/internal/encoder"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/internal/logx"
	"github.com/srlehn/fbcon/mirror"
	"github.com/srlehn/fbcon/rgb"
	"github.com/srlehn/fbcon/surface"
	"github.com/srlehn/fbcon/surface/fbdev"
)

// surfaceFlags select the drawing target shared by boot and print.
type surfaceFlags struct {
	device string
	width  int
	height int
	out    string
	mirror bool
	fg, bg string
}

func (f *surfaceFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.device, `device`, ``, `draw on this framebuffer device (e.g. /dev/fb0)`)
	fl.IntVar(&f.width, `width`, 0, `width of the in-memory surface`)
	fl.IntVar(&f.height, `height`, 0, `height of the in-memory surface`)
	fl.StringVarP(&f.out, `out`, `o`, ``, `write a screenshot (png, bmp, gif, tiff, jpg)`)
	fl.BoolVarP(&f.mirror, `mirror`, `m`, false, `echo output to stdout with ANSI colors`)
	fl.StringVar(&f.fg, `fg`, ``, `default foreground color`)
	fl.StringVar(&f.bg, `bg`, ``, `default background color`)
}

// apply lets flags that were set override the config file.
func (f *surfaceFlags) apply(cmd *cobra.Command, e *env) error {
	fl := cmd.Flags()
	c := e.conf
	if fl.Changed(`device`) {
		c.Device = f.device
	}
	if fl.Changed(`width`) {
		c.Width = f.width
	}
	if fl.Changed(`height`) {
		c.Height = f.height
	}
	if fl.Changed(`mirror`) {
		c.Mirror = f.mirror
	}
	var err error
	if fl.Changed(`fg`) {
		if c.Foreground, err = rgb.Parse(f.fg); err != nil {
			return err
		}
	}
	if fl.Changed(`bg`) {
		if c.Background, err = rgb.Parse(f.bg); err != nil {
			return err
		}
	}
	if len(f.out) > 0 {
		if len(encoder.Format(f.out)) == 0 {
			return errors.Errorf(`%s: no image format extension`, f.out)
		}
	}
	return nil
}

// target is an open drawing surface.
type target struct {
	surf  *surface.Surface
	close func() error
}

func openTarget(e *env) (*target, error) {
	if len(e.conf.Device) > 0 {
		dev, err := fbdev.Open(e.conf.Device)
		if err != nil {
			return nil, err
		}
		logx.Info(`framebuffer device opened`, logx.Prov(e.logger), `device`, dev.Name(),
			`width`, dev.Surface().Width(), `height`, dev.Surface().Height())
		return &target{surf: dev.Surface(), close: dev.Close}, nil
	}
	s := surface.NewMemory(e.conf.Width, e.conf.Height)
	if s == nil {
		return nil, errors.Errorf(`invalid surface size %dx%d`, e.conf.Width, e.conf.Height)
	}
	return &target{surf: s, close: func() error { return nil }}, nil
}

func (t *target) Close() error { return t.close() }

func newConsole(e *env) (*console.Console, error) {
	opts, err := e.conf.ConsoleOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, console.SetSLogger(e.logger.Handler(), debugFlag))
	return console.New(opts...)
}

func newMirror(e *env, w io.Writer) console.Printer {
	if !e.conf.Mirror {
		return nil
	}
	return mirror.New(w, e.conf.Background)
}

func screenshot(e *env, name string, s *surface.Surface) error {
	if len(name) == 0 {
		return nil
	}
	if err := encoder.SaveFile(name, s); err != nil {
		return err
	}
	logx.Info(`screenshot written`, logx.Prov(e.logger), `file`, name)
	return nil
}

// loadHandoff reads name, or synthesizes a hand-off around s.
func loadHandoff(name string, s *surface.Surface) (*bootinfo.Info, error) {
	if len(name) == 0 {
		return bootinfo.FromSurface(s), nil
	}
	if name == `-` {
		return bootinfo.Load(os.Stdin)
	}
	return bootinfo.LoadFile(name)
}
