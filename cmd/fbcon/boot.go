package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbcon/boot"
	"github.com/srlehn/fbcon/bootinfo"
	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/internal/logx"
	"github.com/srlehn/fbcon/surface"
)

func init() {
	bootFlags.register(bootCmd)
	fl := bootCmd.Flags()
	fl.StringVar(&bootFlags.handoff, `handoff`, ``, "bootloader hand-off YAML file (\"-\" for stdin), synthesized if empty")
	fl.StringVar(&bootFlags.saveHandoff, `save-handoff`, ``, `write the hand-off that was used as YAML`)
	fl.StringVar(&bootFlags.panicMsg, `panic`, ``, `end with a kernel panic with this message`)
	fl.BoolVar(&bootFlags.hold, `hold`, false, `keep the screen until interrupted`)
	rootCmd.AddCommand(bootCmd)
}

var bootCmd = &cobra.Command{
	Use:   bootCmdStr,
	Short: "run the boot screen",
	Long:  `run the boot screen on a framebuffer device or an in-memory surface`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(e *env) error { return bootFunc(cmd, e) })
	},
}

var bootCmdStr = "boot"

var bootFlags struct {
	surfaceFlags
	handoff     string
	saveHandoff string
	panicMsg    string
	hold        bool
}

func bootFunc(cmd *cobra.Command, e *env) error {
	if err := bootFlags.apply(cmd, e); err != nil {
		return err
	}
	if cmd.Flags().Changed(`handoff`) {
		e.conf.Handoff = bootFlags.handoff
	}

	con, err := newConsole(e)
	if err != nil {
		return err
	}

	var (
		info   *bootinfo.Info
		mapper boot.Mapper
	)
	if len(e.conf.Handoff) > 0 && len(e.conf.Device) == 0 {
		// the hand-off decides the surface size
		if info, err = loadHandoff(e.conf.Handoff, nil); err != nil {
			return err
		}
		mapper = boot.Memory
	} else {
		tgt, err := openTarget(e)
		if err != nil {
			return err
		}
		defer tgt.Close()
		if info, err = loadHandoff(e.conf.Handoff, tgt.surf); err != nil {
			return err
		}
		mapper = boot.MapperFunc(func(fb bootinfo.Framebuffer) (*surface.Surface, error) {
			if fb.Width != uint64(tgt.surf.Width()) || fb.Height != uint64(tgt.surf.Height()) {
				logx.Warn(`hand-off framebuffer differs from target`, logx.Prov(e.logger),
					`handoff`, [2]uint64{fb.Width, fb.Height},
					`target`, [2]int{tgt.surf.Width(), tgt.surf.Height()})
			}
			return tgt.surf, nil
		})
	}
	if err := saveHandoff(bootFlags.saveHandoff, info); err != nil {
		return err
	}

	screen := boot.DefaultScreen()
	screen.Version = e.conf.Version
	screen.Scheme.Text, screen.Scheme.Background = e.conf.Foreground, e.conf.Background

	var mirrors []console.Printer
	if m := newMirror(e, os.Stdout); m != nil {
		mirrors = append(mirrors, m)
	}
	var halts int
	k := &boot.Kernel{
		Console: con,
		Mapper:  mapper,
		Screen:  screen,
		Mirrors: mirrors,
		Log:     e.logger,
	}
	k.Halter = boot.HaltFunc(func() {
		halts++
		logx.Info(`halted`, k)
		if bootFlags.hold && (len(bootFlags.panicMsg) == 0 || halts > 1) {
			waitInterrupt()
		}
	})

	if err := k.Main(info); err != nil {
		return err
	}
	if len(bootFlags.panicMsg) > 0 {
		k.Panic(bootFlags.panicMsg)
	}
	return screenshot(e, bootFlags.out, con.Surface())
}

func saveHandoff(name string, info *bootinfo.Info) error {
	if len(name) == 0 {
		return nil
	}
	f, err := os.Create(name)
	if err != nil {
		return errors.New(err)
	}
	if err := info.Save(f); err != nil {
		_ = f.Close()
		return err
	}
	return errors.New(f.Close())
}

func waitInterrupt() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
}
