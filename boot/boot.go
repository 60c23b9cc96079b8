// Package boot runs the early boot screen: it takes the bootloader hand-off,
// brings up the framebuffer console, reports what the firmware provided and
// halts.
package boot

import (
	"log/slog"

	"github.com/srlehn/fbcon/bootinfo"
	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/internal/logx"
	"github.com/srlehn/fbcon/rgb"
	"github.com/srlehn/fbcon/surface"
)

// Mapper makes the pixel memory of a hand-off framebuffer accessible.
type Mapper interface {
	Map(fb bootinfo.Framebuffer) (*surface.Surface, error)
}

var _ Mapper = (MapperFunc)(nil)

type MapperFunc func(fb bootinfo.Framebuffer) (*surface.Surface, error)

func (f MapperFunc) Map(fb bootinfo.Framebuffer) (*surface.Surface, error) { return f(fb) }

// Memory backs every framebuffer with freshly allocated memory.
var Memory Mapper = MapperFunc(func(fb bootinfo.Framebuffer) (*surface.Surface, error) {
	if err := fb.Validate(); err != nil {
		return nil, err
	}
	return fb.Surface(make([]byte, fb.Size()))
})

// Kernel holds what the boot path needs. Console and Halter are required.
type Kernel struct {
	Console *console.Console
	Mapper  Mapper
	Halter  Halter
	Screen  *Screen
	// Mirrors receive a copy of all screen output.
	Mirrors []console.Printer
	Log     *slog.Logger
}

var _ logx.LoggerProvider = (*Kernel)(nil)

func (k *Kernel) Logger() *slog.Logger {
	if k == nil {
		return nil
	}
	return k.Log
}

// Main boots from info. Without a usable framebuffer it halts at once
// without printing anything and returns the reason. Otherwise it clears the
// screen, prints the boot screen and halts.
func (k *Kernel) Main(info *bootinfo.Info) error {
	if k == nil || k.Console == nil || k.Halter == nil {
		return errors.NilParam(nil)
	}
	surf, err := k.attach(info)
	if err != nil {
		logx.IsErr(err, k, slog.LevelError)
		k.Halter.Halt()
		return err
	}
	if err := k.Console.Bind(surf); err != nil {
		logx.IsErr(err, k, slog.LevelError)
		k.Halter.Halt()
		return err
	}
	_, bg := k.Console.Colors()
	k.Console.Clear(bg)

	fb, _ := info.Framebuffer()
	screen := k.Screen
	if screen == nil {
		screen = DefaultScreen()
	}
	logx.Info(`boot screen`, k, `width`, fb.Width, `height`, fb.Height, `memmap`, info.Memmap != nil, `hhdm`, info.HHDM != nil)
	screen.Print(k.Output(), info, fb)
	k.Halter.Halt()
	return nil
}

func (k *Kernel) attach(info *bootinfo.Info) (*surface.Surface, error) {
	fb, err := info.Framebuffer()
	if err != nil {
		return nil, err
	}
	mapper := k.Mapper
	if mapper == nil {
		mapper = Memory
	}
	surf, err := mapper.Map(*fb)
	if err != nil {
		return nil, err
	}
	return surf, nil
}

// Output is the console together with all mirrors.
func (k *Kernel) Output() console.Printer {
	if len(k.Mirrors) == 0 {
		return k.Console
	}
	return append(Tee{k.Console}, k.Mirrors...)
}

// Panic reports a fatal error on the kernel output and halts.
func (k *Kernel) Panic(msg string) {
	if k == nil {
		return
	}
	logx.Error(`kernel panic`, k, `message`, msg)
	scheme := rgb.DefaultScheme
	if k.Screen != nil {
		scheme = k.Screen.Scheme
	}
	Panic(k.Output(), k.Halter, scheme, msg)
}
