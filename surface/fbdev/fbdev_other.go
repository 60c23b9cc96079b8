//go:build !linux || android

package fbdev

import (
	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/surface"
)

type Device struct{}

func Open(dev string) (*Device, error) {
	return nil, errors.New(consts.ErrPlatformNotSupported)
}

func (d *Device) Surface() *surface.Surface { return nil }
func (d *Device) Name() string              { return `` }
func (d *Device) Close() error              { return nil }
