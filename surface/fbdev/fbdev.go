// Copyright 2013 Konstantin Kulikov. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && !android

// Package fbdev maps a Linux framebuffer device as a pixel surface.
package fbdev

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/surface"
)

// from <linux/fb.h>
const (
	ioctlGetVariableScreenInfo = 0x4600
	ioctlGetFixedScreenInfo    = 0x4602
)

type fixedScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

type bitfield struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

type variableScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32
	Red, Green, Blue, Transp bitfield
	NonStd                   uint32
	Activate                 uint32
	Height, Width            uint32
	AccelFlags               uint32
	PixClock                 uint32
	LeftMargin, RightMargin  uint32
	UpperMargin, LowerMargin uint32
	HSyncLen, VSyncLen       uint32
	Sync, VMode, Rotate      uint32
	Colorspace               uint32
	Reserved                 [4]uint32
}

// Device is an opened and memory mapped framebuffer device.
type Device struct {
	dev   *os.File
	finfo fixedScreenInfo
	vinfo variableScreenInfo
	data  []byte
	surf  *surface.Surface
}

// Open opens the framebuffer device (e.g. /dev/fb0) and maps it into memory.
// Only 32 bits per pixel modes are supported.
func Open(dev string) (*Device, error) {
	if len(dev) == 0 {
		dev = consts.DefaultDevice
	}
	var (
		d   = new(Device)
		err error
	)
	d.dev, err = os.OpenFile(dev, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, errors.New(err)
	}
	if err := ioctl(d.dev.Fd(), ioctlGetFixedScreenInfo, unsafe.Pointer(&d.finfo)); err != nil {
		d.dev.Close()
		return nil, err
	}
	if err := ioctl(d.dev.Fd(), ioctlGetVariableScreenInfo, unsafe.Pointer(&d.vinfo)); err != nil {
		d.dev.Close()
		return nil, err
	}
	if d.vinfo.BitsPerPixel != surface.BytesPerPixel*8 {
		d.dev.Close()
		return nil, errors.New(fmt.Errorf(`%w: %d bits per pixel`, consts.ErrUnsupportedFormat, d.vinfo.BitsPerPixel))
	}
	pageOffset := int(d.finfo.SmemStart & uintptr(unix.Getpagesize()-1))
	d.data, err = unix.Mmap(int(d.dev.Fd()), 0, int(d.finfo.SmemLen)+pageOffset, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		d.dev.Close()
		return nil, errors.New(err)
	}
	start := pageOffset + int(d.vinfo.YOffset)*int(d.finfo.LineLength) + int(d.vinfo.XOffset)*surface.BytesPerPixel
	if start > len(d.data) {
		_ = d.Close()
		return nil, errors.New(consts.ErrSurfaceTooSmall)
	}
	d.surf, err = surface.New(d.data[start:], int(d.vinfo.XRes), int(d.vinfo.YRes), int(d.finfo.LineLength))
	if err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

// Surface returns the mapped pixels. It becomes invalid after Close.
func (d *Device) Surface() *surface.Surface {
	if d == nil {
		return nil
	}
	return d.surf
}

// Name is the driver identification string of the device.
func (d *Device) Name() string {
	if d == nil {
		return ``
	}
	return unix.ByteSliceToString(d.finfo.ID[:])
}

// Close unmaps the memory and closes the device.
func (d *Device) Close() error {
	if d == nil || d.dev == nil {
		return nil
	}
	d.surf = nil
	var errUnmap error
	if d.data != nil {
		errUnmap = unix.Munmap(d.data)
		d.data = nil
	}
	err := errors.Join(errUnmap, d.dev.Close())
	d.dev = nil
	return err
}

func ioctl(fd uintptr, cmd uintptr, data unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, uintptr(data))
	if errno != 0 {
		return errors.New(os.NewSyscallError(`IOCTL`, errno))
	}
	return nil
}
