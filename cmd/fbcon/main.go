package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbcon/config"
	"github.com/srlehn/fbcon/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:          filepath.Base(os.Args[0]),
	Short:        "fbcon framebuffer text console",
	Long:         "fbcon renders an early boot text console on a framebuffer or into a screenshot",
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	cobra.EnablePrefixMatching = true
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&debugFlag, `debug`, `d`, false, `debug errors and log at debug level`)
	pf.BoolVarP(&silentFlag, `silent`, `s`, false, `silence errors`)
	pf.StringVarP(&logFileFlag, `log-file`, `l`, ``, `log file (JSON)`)
	pf.StringVarP(&configFlag, `config`, `c`, ``, `config file (default $XDG_CONFIG_HOME/fbcon/fbcon.conf)`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var (
	debugFlag   bool
	silentFlag  bool
	logFileFlag string
	configFlag  string
)

// env is what every subcommand starts from.
type env struct {
	conf   *config.Config
	logger *slog.Logger
}

func run(fn func(e *env) error) {
	var exitCode int
	defer func() { os.Exit(exitCode) }()

	var err error
	if fn == nil {
		err = errors.NilParam()
	}
	var closeLog func() error
	e := &env{}
	if err == nil {
		e.logger, closeLog, err = newLogger()
	}
	if err == nil {
		e.conf, err = config.LoadFile(configFlag)
	}
	if err == nil {
		err = fn(e)
	}
	if err != nil {
		if e.logger != nil {
			e.logger.Error(err.Error())
		}
		exitCode = 1
		if !silentFlag {
			if stackFramer, ok := err.(interface{ ErrorStack() string }); debugFlag && ok {
				fmt.Fprintln(os.Stderr, "\n"+stackFramer.ErrorStack())
			} else {
				fmt.Fprintln(os.Stderr, err.Error())
			}
		}
	}
	if closeLog != nil {
		_ = closeLog()
	}
}

func newLogger() (*slog.Logger, func() error, error) {
	lvl := slog.LevelInfo
	if debugFlag {
		lvl = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: lvl, AddSource: debugFlag}
	if len(logFileFlag) == 0 {
		var w io.Writer = os.Stderr
		if silentFlag {
			w = io.Discard
		}
		return slog.New(slog.NewTextHandler(w, opts)), nil, nil
	}
	f, err := os.OpenFile(logFileFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.New(err)
	}
	return slog.New(slog.NewJSONHandler(f, opts)), f.Close, nil
}
