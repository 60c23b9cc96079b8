package console

import (
	"log/slog"

	"github.com/srlehn/fbcon/font"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/internal/logx"
	"github.com/srlehn/fbcon/rgb"
)

type Option interface {
	ApplyOption(c *Console) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Console) error

func (o OptFunc) ApplyOption(c *Console) error { return o(c) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(c *Console) error { return c.SetOptions([]Option(o)...) }

func (c *Console) SetOptions(opts ...Option) error {
	if c == nil {
		return errors.NilParam(nil)
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(c); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

// SetFont selects the glyph table. It takes effect immediately, callers
// usually set it before Bind. A bound surface that cannot hold a glyph of
// the new font is unbound, like Bind would.
func SetFont(f *font.Font) Option {
	return OptFunc(func(c *Console) error {
		if f == nil {
			return errors.NilParam(nil)
		}
		c.font = f
		if c.surf == nil {
			return nil
		}
		if err := c.check(c.surf); err != nil {
			c.surf = nil
			logx.Warn(`surface rejected`, c, `error`, err)
			if c.strict {
				return err
			}
		}
		return nil
	})
}

// SetDefaultColors changes the colors Bind resets to.
func SetDefaultColors(fg, bg rgb.Color) Option {
	return OptFunc(func(c *Console) error {
		c.defaultFg, c.defaultBg = fg, bg
		return nil
	})
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(c *Console) error {
		if enable {
			if h == nil {
				c.logger = slog.Default()
			} else {
				c.logger = slog.New(h)
			}
		} else {
			c.logger = nil
		}
		return nil
	})
}

// Strict makes Bind report surfaces it cannot draw on instead of
// silently staying unbound.
var Strict Option = OptFunc(func(c *Console) error { c.strict = true; return nil })
