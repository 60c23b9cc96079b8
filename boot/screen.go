package boot

import (
	"github.com/srlehn/fbcon/bootinfo"
	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/memmap"
	"github.com/srlehn/fbcon/rgb"
)

// Banner is the logo shown at the top of the boot screen.
const Banner = "  ___        _         ___  ____  \n" +
	" / _ \\ _   _(_)_ __   / _ \\/ ___| \n" +
	"| | | | | | | | '_ \\ | | | \\___ \\ \n" +
	"| |_| | |_| | | | | || |_| |___) |\n" +
	" \\__\\_\\\\__,_|_|_| |_| \\___/|____/ \n"

// Screen is the text of the boot status screen.
type Screen struct {
	Banner       string
	Title        string
	Version      string
	Architecture string
	Bootloader   string
	// Steps are reported with an "[OK] " marker once the hand-off is shown.
	Steps       []string
	Done        string
	HaltMessage string
	Scheme      rgb.Scheme
}

func DefaultScreen() *Screen {
	return &Screen{
		Banner:       Banner,
		Title:        `Quin OS - Phase 1: Boot`,
		Version:      `0.1.0`,
		Architecture: `x86_64`,
		Bootloader:   `Limine`,
		Steps: []string{
			`Kernel initialized successfully`,
			`Entered long mode (x86_64)`,
			`Framebuffer initialized`,
			`Memory map parsed`,
		},
		Done:        `Phase 1 Complete!`,
		HaltMessage: `System halted. Press Ctrl+C in QEMU to exit.`,
		Scheme:      rgb.DefaultScheme,
	}
}

// Print writes the whole screen for info and fb to out.
func (s *Screen) Print(out console.Printer, info *bootinfo.Info, fb *bootinfo.Framebuffer) {
	if s == nil || out == nil {
		return
	}
	sc := s.Scheme
	bg := sc.Background

	out.PutStringColored("\n", sc.Text, bg)
	out.PutStringColored(s.Banner, sc.Banner, bg)
	out.PutStringColored("\n", sc.Text, bg)

	out.PutStringColored(s.Title+"\n", sc.Title, bg)
	out.PutStringColored("Version "+s.Version+"\n", sc.Dim, bg)
	out.PutStringColored("Architecture: "+s.Architecture+"\n", sc.Dim, bg)
	out.PutStringColored("Bootloader: "+s.Bootloader+"\n\n", sc.Dim, bg)

	if fb != nil {
		s.printFramebuffer(out, fb)
	}
	var mm *bootinfo.Memmap
	if info != nil {
		mm = info.Memmap
	}
	memmap.Dump(out, sc, mm)
	if info != nil && info.HHDM != nil {
		out.PutStringColored("=== HIGHER HALF DIRECT MAP ===\n", sc.Heading, bg)
		out.PutString("HHDM Offset: 0x" + memmap.Hex(info.HHDM.Offset, 16) + "\n")
		out.PutStringColored("===============================\n\n", sc.Heading, bg)
	}

	for i, step := range s.Steps {
		out.PutStringColored("[OK] ", sc.OK, bg)
		if i == len(s.Steps)-1 {
			out.PutString(step + "\n\n")
		} else {
			out.PutString(step + "\n")
		}
	}

	out.PutStringColored(s.Done+"\n", sc.Title, bg)
	out.PutString(s.HaltMessage + "\n")
}

func (s *Screen) printFramebuffer(out console.Printer, fb *bootinfo.Framebuffer) {
	sc := s.Scheme
	out.PutStringColored("=== FRAMEBUFFER INFO ===\n", sc.Heading, sc.Background)
	out.PutString("Resolution: " + memmap.Hex(fb.Width, 4) + "x" + memmap.Hex(fb.Height, 4) + "\n")
	out.PutString("BPP: " + memmap.Hex(fb.BPP, 2) + "\n")
	out.PutString("Pitch: " + memmap.Hex(fb.Pitch, 4) + "\n")
	out.PutString("Model: ")
	if fb.MemoryModel == bootinfo.MemoryModelRGB {
		out.PutStringColored("RGB\n", sc.OK, sc.Background)
	} else {
		out.PutString("Unknown\n")
	}
	out.PutStringColored("========================\n", sc.Heading, sc.Background)
}
