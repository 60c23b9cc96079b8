// Package memmap orders, queries and prints the physical memory map handed
// over by the bootloader.
package memmap

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/btree"

	"github.com/srlehn/fbcon/bootinfo"
	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/rgb"
)

// Map is a memory map ordered by base address.
type Map struct {
	tree *btree.BTreeG[bootinfo.Entry]
}

func less(a, b bootinfo.Entry) bool {
	if a.Base != b.Base {
		return a.Base < b.Base
	}
	if a.Length != b.Length {
		return a.Length < b.Length
	}
	return a.Type < b.Type
}

// New builds a Map from entries in any order. Exact duplicates collapse.
func New(entries []bootinfo.Entry) *Map {
	m := &Map{tree: btree.NewG(8, less)}
	for _, e := range entries {
		m.tree.ReplaceOrInsert(e)
	}
	return m
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return m.tree.Len()
}

// Entries returns all entries ascending by base.
func (m *Map) Entries() []bootinfo.Entry {
	if m == nil {
		return nil
	}
	entries := make([]bootinfo.Entry, 0, m.tree.Len())
	m.tree.Ascend(func(e bootinfo.Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

// Lookup returns the region containing addr. Among overlapping regions the
// one starting last wins.
func (m *Map) Lookup(addr uint64) (bootinfo.Entry, bool) {
	if m == nil {
		return bootinfo.Entry{}, false
	}
	var (
		found bootinfo.Entry
		ok    bool
	)
	pivot := bootinfo.Entry{Base: addr, Length: ^uint64(0), Type: ^bootinfo.Type(0)}
	m.tree.DescendLessOrEqual(pivot, func(e bootinfo.Entry) bool {
		if addr-e.Base < e.Length {
			found, ok = e, true
			return false
		}
		return true
	})
	return found, ok
}

// Total sums the length of all regions of type t.
func (m *Map) Total(t bootinfo.Type) uint64 {
	if m == nil {
		return 0
	}
	var total uint64
	m.tree.Ascend(func(e bootinfo.Entry) bool {
		if e.Type == t {
			total += e.Length
		}
		return true
	})
	return total
}

// Summary lists, per region type present, the entry count and total size.
func (m *Map) Summary() string {
	if m.Len() == 0 {
		return ``
	}
	counts := make(map[bootinfo.Type]int)
	var order []bootinfo.Type
	m.tree.Ascend(func(e bootinfo.Entry) bool {
		if counts[e.Type] == 0 {
			order = append(order, e.Type)
		}
		counts[e.Type]++
		return true
	})
	var b strings.Builder
	for _, t := range order {
		fmt.Fprintf(&b, "%-22s %3d %10s\n", t, counts[t], humanize.IBytes(m.Total(t)))
	}
	return b.String()
}

const (
	heading = "\n=== MEMORY MAP ===\n"
	footer  = "==================\n\n"
)

// Dump prints mm in the order the bootloader reported it. Usable regions are
// highlighted, bad memory is flagged with the error color.
func Dump(out console.Printer, s rgb.Scheme, mm *bootinfo.Memmap) {
	if out == nil {
		return
	}
	if mm == nil {
		out.PutString("No memory map available\n")
		return
	}
	out.PutStringColored(heading, s.Heading, s.Background)
	for _, e := range mm.Entries {
		out.PutString("Base: 0x")
		out.PutString(Hex(e.Base, 16))
		out.PutString(" | Length: 0x")
		out.PutString(Hex(e.Length, 16))
		out.PutString(" | Type: ")
		switch e.Type {
		case bootinfo.TypeUsable:
			out.PutStringColored(e.Type.String(), s.OK, s.Background)
		case bootinfo.TypeBadMemory:
			out.PutStringColored(e.Type.String(), s.Error, s.Background)
		default:
			out.PutString(e.Type.String())
		}
		out.PutString("\n")
	}
	out.PutStringColored(footer, s.Heading, s.Background)
}
