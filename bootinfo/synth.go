package bootinfo

import (
	"github.com/srlehn/fbcon/surface"
)

const (
	// DefaultFramebufferAddress is where QEMU's standard VGA places its
	// linear framebuffer.
	DefaultFramebufferAddress = 0xFD000000
	// DefaultHHDMOffset is the higher half direct map base with 4-level paging.
	DefaultHHDMOffset = 0xFFFF800000000000

	pageSize = 0x1000
)

// FromSurface synthesizes the hand-off a 128 MiB QEMU guest would receive
// with s as its framebuffer.
func FromSurface(s *surface.Surface) *Info {
	info := &Info{
		Memmap: &Memmap{Entries: []Entry{
			{Base: 0x0000000, Length: 0x009F000, Type: TypeUsable},
			{Base: 0x009F000, Length: 0x0001000, Type: TypeReserved},
			{Base: 0x00F0000, Length: 0x0010000, Type: TypeReserved},
			{Base: 0x0100000, Length: 0x7C00000, Type: TypeUsable},
			{Base: 0x7D00000, Length: 0x0100000, Type: TypeBootloaderReclaimable},
			{Base: 0x7E00000, Length: 0x0080000, Type: TypeKernelAndModules},
			{Base: 0x7E80000, Length: 0x0020000, Type: TypeACPIReclaimable},
			{Base: 0x7EA0000, Length: 0x0010000, Type: TypeACPINVS},
			{Base: 0x7EB0000, Length: 0x0130000, Type: TypeReserved},
		}},
		HHDM: &HHDM{Offset: DefaultHHDMOffset},
	}
	if s == nil {
		info.Memmap.Entries = append(info.Memmap.Entries, Entry{Base: 0xFFFC0000, Length: 0x40000, Type: TypeReserved})
		return info
	}
	fb := Framebuffer{
		Address:     DefaultFramebufferAddress,
		Width:       uint64(s.Width()),
		Height:      uint64(s.Height()),
		Pitch:       uint64(s.Pitch()),
		BPP:         8 * surface.BytesPerPixel,
		MemoryModel: MemoryModelRGB,
	}
	info.Framebuffers = []Framebuffer{fb}
	info.Memmap.Entries = append(info.Memmap.Entries,
		Entry{Base: fb.Address, Length: alignUp(fb.Pitch*fb.Height, pageSize), Type: TypeFramebuffer},
		Entry{Base: 0xFFFC0000, Length: 0x40000, Type: TypeReserved},
	)
	return info
}

func alignUp(v, a uint64) uint64 { return (v + a - 1) &^ (a - 1) }
