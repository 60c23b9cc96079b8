package main

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbcon/boot"
	"github.com/srlehn/fbcon/internal/errors"
	"github.com/srlehn/fbcon/internal/logx"
)

func init() {
	printFlags.register(printCmd)
	printCmd.Flags().IntVar(&printFlags.col, `col`, 0, `start column`)
	printCmd.Flags().IntVar(&printFlags.row, `row`, 0, `start row`)
	rootCmd.AddCommand(printCmd)
}

var printCmd = &cobra.Command{
	Use:   printCmdStr + ` [text...]`,
	Short: "print text on the console",
	Long:  `print the arguments, or stdin if there are none, on a cleared console`,
	Run: func(cmd *cobra.Command, args []string) {
		run(func(e *env) error { return printFunc(cmd, e, args) })
	},
}

var printCmdStr = "print"

var printFlags struct {
	surfaceFlags
	col, row int
}

func printFunc(cmd *cobra.Command, e *env, args []string) error {
	if err := printFlags.apply(cmd, e); err != nil {
		return err
	}
	var text string
	if len(args) > 0 {
		text = strings.Join(args, ` `) + "\n"
	} else {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return errors.New(err)
		}
		text = string(b)
	}

	tgt, err := openTarget(e)
	if err != nil {
		return err
	}
	defer tgt.Close()
	con, err := newConsole(e)
	if err != nil {
		return err
	}
	if err := con.Bind(tgt.surf); err != nil {
		return err
	}
	_, bg := con.Colors()
	con.Clear(bg)
	con.SetCursorCell(printFlags.col, printFlags.row)

	out := boot.Tee{con}
	if m := newMirror(e, os.Stdout); m != nil {
		out = append(out, m)
	}
	out.PutString(text)
	logx.Debug(`printed`, con, `bytes`, len(text), `scrolls`, con.Scrolls())
	return screenshot(e, printFlags.out, con.Surface())
}
