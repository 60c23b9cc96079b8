// Package bootinfo describes what the bootloader hands to the kernel: the
// framebuffers, the physical memory map and the higher half direct map
// offset. Hand-offs can be stored as YAML to replay a boot without firmware.
package bootinfo

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/surface"
)

// Limits on hand-off framebuffers. Larger values are rejected before any
// memory is sized from them.
const (
	MaxDimension = 1 << 16
	MaxPitch     = MaxDimension * surface.BytesPerPixel * 2
	MaxSize      = 1 << 30
)

type Framebuffer struct {
	Address     uint64      `yaml:"address"`
	Width       uint64      `yaml:"width"`
	Height      uint64      `yaml:"height"`
	Pitch       uint64      `yaml:"pitch"`
	BPP         uint16      `yaml:"bpp"`
	MemoryModel MemoryModel `yaml:"memory_model"`
}

// Size is the number of bytes the framebuffer spans.
func (fb Framebuffer) Size() uint64 {
	if fb.Height == 0 {
		return 0
	}
	return fb.Pitch*(fb.Height-1) + fb.Width*uint64(fb.BPP/8)
}

// Validate checks that the console can draw on fb.
func (fb Framebuffer) Validate() error {
	if fb.BPP != 8*surface.BytesPerPixel || fb.MemoryModel != MemoryModelRGB {
		return errors.New(fmt.Errorf(`%w: %d bpp, %s memory model`, consts.ErrUnsupportedFormat, fb.BPP, fb.MemoryModel))
	}
	if fb.Width == 0 || fb.Height == 0 || fb.Width > MaxDimension || fb.Height > MaxDimension ||
		fb.Pitch < fb.Width*surface.BytesPerPixel || fb.Pitch > MaxPitch {
		return errors.New(fmt.Errorf(`%w: %dx%d pitch %d`, consts.ErrSurfaceDimensions, fb.Width, fb.Height, fb.Pitch))
	}
	// the limits above keep Size from overflowing
	if size := fb.Size(); size > MaxSize {
		return errors.New(fmt.Errorf(`%w: %d bytes`, consts.ErrSurfaceDimensions, size))
	}
	return nil
}

// Surface wraps buf as the pixel memory of fb.
func (fb Framebuffer) Surface(buf []byte) (*surface.Surface, error) {
	if err := fb.Validate(); err != nil {
		return nil, err
	}
	return surface.New(buf, int(fb.Width), int(fb.Height), int(fb.Pitch))
}

type Entry struct {
	Base   uint64 `yaml:"base"`
	Length uint64 `yaml:"length"`
	Type   Type   `yaml:"type"`
}

// End is the first address past the region.
func (e Entry) End() uint64 { return e.Base + e.Length }

// Memmap is the memory map response. A nil *Memmap means the bootloader
// did not answer the request.
type Memmap struct {
	Entries []Entry `yaml:"entries"`
}

type HHDM struct {
	Offset uint64 `yaml:"offset"`
}

// Info is a complete hand-off. Absent responses are nil.
type Info struct {
	Framebuffers []Framebuffer `yaml:"framebuffers"`
	Memmap       *Memmap       `yaml:"memmap,omitempty"`
	HHDM         *HHDM         `yaml:"hhdm,omitempty"`
}

// Framebuffer returns the first framebuffer.
func (i *Info) Framebuffer() (*Framebuffer, error) {
	if i == nil || len(i.Framebuffers) == 0 {
		return nil, errors.New(consts.ErrNoFramebuffer)
	}
	return &i.Framebuffers[0], nil
}

// Load decodes a YAML hand-off. Unknown keys are rejected.
func Load(r io.Reader) (*Info, error) {
	if r == nil {
		return nil, errors.NilParam(r)
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	info := &Info{}
	if err := dec.Decode(info); err != nil {
		if err == io.EOF {
			return info, nil
		}
		return nil, errors.New(err)
	}
	return info, nil
}

func LoadFile(name string) (*Info, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.New(err)
	}
	defer f.Close()
	return Load(f)
}

// Save writes i as YAML in the format Load reads.
func (i *Info) Save(w io.Writer) error {
	if i == nil || w == nil {
		return errors.NilParam(nil)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(i); err != nil {
		return errors.New(err)
	}
	return errors.New(enc.Close())
}
