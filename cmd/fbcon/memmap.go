package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbcon/bootinfo"
	"github.com/srlehn/fbcon/memmap"
	"github.com/srlehn/fbcon/mirror"
	"github.com/srlehn/fbcon/rgb"
)

func init() {
	fl := memmapCmd.Flags()
	fl.StringVar(&memmapFlags.handoff, `handoff`, ``, "bootloader hand-off YAML file (\"-\" for stdin), synthesized if empty")
	fl.StringSliceVar(&memmapFlags.lookup, `lookup`, nil, `report the region containing these addresses`)
	rootCmd.AddCommand(memmapCmd)
}

var memmapCmd = &cobra.Command{
	Use:   memmapCmdStr,
	Short: "print the physical memory map",
	Long:  `print the memory map of a bootloader hand-off the way the boot screen shows it, followed by a summary`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(e *env) error { return memmapFunc(cmd, e) })
	},
}

var memmapCmdStr = "memmap"

var memmapFlags struct {
	handoff string
	lookup  []string
}

func memmapFunc(cmd *cobra.Command, e *env) error {
	name := e.conf.Handoff
	if cmd.Flags().Changed(`handoff`) {
		name = memmapFlags.handoff
	}
	info, err := loadHandoff(name, nil)
	if err != nil {
		return err
	}
	scheme := rgb.DefaultScheme
	scheme.Text, scheme.Background = e.conf.Foreground, e.conf.Background
	memmap.Dump(mirror.New(os.Stdout, scheme.Background), scheme, info.Memmap)
	if info.Memmap == nil {
		return nil
	}

	m := memmap.New(info.Memmap.Entries)
	fmt.Print(m.Summary())
	for _, a := range memmapFlags.lookup {
		addr, err := bootinfo.ParseAddress(a)
		if err != nil {
			return err
		}
		if r, ok := m.Lookup(addr); ok {
			fmt.Printf("0x%s: %s [0x%s-0x%s)\n", memmap.Hex(addr, 16), r.Type,
				memmap.Hex(r.Base, 16), memmap.Hex(r.End(), 16))
		} else {
			fmt.Printf("0x%s: not mapped\n", memmap.Hex(addr, 16))
		}
	}
	return nil
}
