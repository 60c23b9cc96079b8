package boot_test

import (
	"image"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbcon/boot"
	"github.com/srlehn/fbcon/bootinfo"
	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/internal/consts"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/internal/testutil"
	"github.com/srlehn/fbcon/rgb"
	"github.com/srlehn/fbcon/surface"
)

type haltCounter int

func (h *haltCounter) Halt() { *h++ }

func newKernel(t *testing.T) (*boot.Kernel, *testutil.Recorder, *haltCounter) {
	t.Helper()
	c, err := console.New()
	require.NoError(t, err)
	rec := &testutil.Recorder{}
	halts := new(haltCounter)
	return &boot.Kernel{Console: c, Halter: halts, Mirrors: []console.Printer{rec}}, rec, halts
}

func testInfo() *bootinfo.Info {
	return &bootinfo.Info{
		Framebuffers: []bootinfo.Framebuffer{{
			Address: 0xFD000000, Width: 640, Height: 480, Pitch: 2560, BPP: 32,
			MemoryModel: bootinfo.MemoryModelRGB,
		}},
		Memmap: &bootinfo.Memmap{Entries: []bootinfo.Entry{
			{Base: 0x0, Length: 0x9F000, Type: bootinfo.TypeUsable},
			{Base: 0xFD000000, Length: 0x12C000, Type: bootinfo.TypeFramebuffer},
		}},
		HHDM: &bootinfo.HHDM{Offset: 0xFFFF800000000000},
	}
}

func TestScreenPrint(t *testing.T) {
	info := testInfo()
	fb, err := info.Framebuffer()
	require.NoError(t, err)
	var rec testutil.Recorder
	boot.DefaultScreen().Print(&rec, info, fb)

	want := "\n" + boot.Banner + "\n" +
		"Quin OS - Phase 1: Boot\n" +
		"Version 0.1.0\n" +
		"Architecture: x86_64\n" +
		"Bootloader: Limine\n\n" +
		"=== FRAMEBUFFER INFO ===\n" +
		"Resolution: 0280x01E0\n" +
		"BPP: 20\n" +
		"Pitch: 0A00\n" +
		"Model: RGB\n" +
		"========================\n" +
		"\n=== MEMORY MAP ===\n" +
		"Base: 0x0000000000000000 | Length: 0x000000000009F000 | Type: USABLE\n" +
		"Base: 0x00000000FD000000 | Length: 0x000000000012C000 | Type: FRAMEBUFFER\n" +
		"==================\n\n" +
		"=== HIGHER HALF DIRECT MAP ===\n" +
		"HHDM Offset: 0xFFFF800000000000\n" +
		"===============================\n\n" +
		"[OK] Kernel initialized successfully\n" +
		"[OK] Entered long mode (x86_64)\n" +
		"[OK] Framebuffer initialized\n" +
		"[OK] Memory map parsed\n\n" +
		"Phase 1 Complete!\n" +
		"System halted. Press Ctrl+C in QEMU to exit.\n"
	assert.Equal(t, want, rec.Text())

	banner := rec.Colored(`___`)
	require.Len(t, banner, 1)
	assert.Equal(t, rgb.Magenta, banner[0].Fg)
	title := rec.Colored(`Quin OS`)
	require.Len(t, title, 1)
	assert.Equal(t, rgb.Yellow, title[0].Fg)
	version := rec.Colored(`Version`)
	require.Len(t, version, 1)
	assert.Equal(t, rgb.Gray, version[0].Fg)
	ok := rec.Colored(`[OK]`)
	require.Len(t, ok, 4)
	for _, s := range ok {
		assert.Equal(t, rgb.Green, s.Fg)
	}
	model := rec.Colored(`RGB`)
	require.Len(t, model, 1)
	assert.Equal(t, rgb.Green, model[0].Fg)
}

func TestScreenPrintPartial(t *testing.T) {
	info := testInfo()
	info.Memmap, info.HHDM = nil, nil
	info.Framebuffers[0].MemoryModel = 7
	fb, _ := info.Framebuffer()
	var rec testutil.Recorder
	boot.DefaultScreen().Print(&rec, info, fb)
	text := rec.Text()
	assert.Contains(t, text, "Model: Unknown\n")
	assert.Contains(t, text, "========================\nNo memory map available\n[OK] ")
	assert.NotContains(t, text, `HHDM`)
	assert.NotContains(t, text, `=== MEMORY MAP ===`)
}

func TestKernelMain(t *testing.T) {
	k, rec, halts := newKernel(t)
	require.NoError(t, k.Main(testInfo()))
	assert.Equal(t, haltCounter(1), *halts)

	s := k.Console.Surface()
	require.NotNil(t, s)
	assert.Equal(t, 640, s.Width())
	assert.Equal(t, 480, s.Height())
	_, blank := testutil.Uniform(s, s.Bounds())
	assert.False(t, blank)
	// the boot screen is taller than 30 text rows
	assert.NotZero(t, k.Console.Scrolls())
	assert.True(t, strings.HasSuffix(rec.Text(), "System halted. Press Ctrl+C in QEMU to exit.\n"))
}

func TestKernelMainTallScreen(t *testing.T) {
	k, _, _ := newKernel(t)
	info := testInfo()
	info.Framebuffers[0].Height = 1024
	require.NoError(t, k.Main(info))
	assert.Zero(t, k.Console.Scrolls())
	s := k.Console.Surface()
	// last line printed is the halt message, the rest below stays clear
	_, y := k.Console.Cursor()
	col, ok := testutil.Uniform(s, image.Rect(0, y, s.Width(), s.Height()))
	assert.True(t, ok)
	assert.Equal(t, rgb.Black, col)
}

func TestKernelMainNoFramebuffer(t *testing.T) {
	k, rec, halts := newKernel(t)
	info := testInfo()
	info.Framebuffers = nil
	err := k.Main(info)
	assert.True(t, errors.Is(err, consts.ErrNoFramebuffer))
	assert.Equal(t, haltCounter(1), *halts)
	assert.Empty(t, rec.Spans, `nothing is printed`)
	assert.False(t, k.Console.Bound())

	k, _, halts = newKernel(t)
	assert.Error(t, k.Main(nil))
	assert.Equal(t, haltCounter(1), *halts)
}

func TestKernelMainUnsupportedFormat(t *testing.T) {
	k, rec, halts := newKernel(t)
	info := testInfo()
	info.Framebuffers[0].BPP = 16
	err := k.Main(info)
	assert.True(t, errors.Is(err, consts.ErrUnsupportedFormat))
	assert.Equal(t, haltCounter(1), *halts)
	assert.Empty(t, rec.Spans)
}

func TestKernelMainOversizedHandoff(t *testing.T) {
	k, rec, halts := newKernel(t)
	info, err := bootinfo.Load(strings.NewReader(`
framebuffers:
  - {width: 1099511627776, height: 1048576, pitch: 4398046511104, bpp: 32, memory_model: rgb}
`))
	require.NoError(t, err)
	err = k.Main(info)
	assert.True(t, errors.Is(err, consts.ErrSurfaceDimensions))
	assert.Equal(t, haltCounter(1), *halts)
	assert.Empty(t, rec.Spans)
	assert.False(t, k.Console.Bound())
}

func TestKernelMainMapper(t *testing.T) {
	k, _, _ := newKernel(t)
	dev := surface.NewMemory(320, 200)
	k.Mapper = boot.MapperFunc(func(bootinfo.Framebuffer) (*surface.Surface, error) { return dev, nil })
	require.NoError(t, k.Main(bootinfo.FromSurface(dev)))
	assert.Same(t, dev, k.Console.Surface())
}

func TestPanic(t *testing.T) {
	var rec testutil.Recorder
	var halted bool
	boot.Panic(&rec, boot.HaltFunc(func() { halted = true }), rgb.DefaultScheme, `out of memory`)
	assert.True(t, halted)
	assert.Equal(t, "\n\n=== KERNEL PANIC ===\nout of memory\n===================\n", rec.Text())
	require.Len(t, rec.Spans, 3)
	assert.Equal(t, rgb.Red, rec.Spans[0].Fg)
	assert.Equal(t, rgb.White, rec.Spans[1].Fg)
	assert.Equal(t, rgb.Red, rec.Spans[2].Fg)
	for _, s := range rec.Spans {
		assert.Equal(t, rgb.Black, s.Bg)
	}

	assert.NotPanics(t, func() { boot.Panic(nil, nil, rgb.DefaultScheme, `x`) })
}

func TestKernelPanic(t *testing.T) {
	k, rec, halts := newKernel(t)
	require.NoError(t, k.Main(testInfo()))
	k.Panic(`double fault`)
	assert.Equal(t, haltCounter(2), *halts)
	assert.True(t, strings.HasSuffix(rec.Text(), "double fault\n===================\n"))
}

func TestTee(t *testing.T) {
	var a, b testutil.Recorder
	tee := boot.Tee{&a, nil, &b}
	tee.PutString("x")
	tee.PutStringColored("y", rgb.Red, rgb.Black)
	assert.Equal(t, a.Spans, b.Spans)
	assert.Equal(t, "xy", a.Text())
}
