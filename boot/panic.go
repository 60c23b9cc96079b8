package boot

import (
	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/rgb"
)

const (
	panicHeader = "\n\n=== KERNEL PANIC ===\n"
	panicFooter = "\n===================\n"
)

// Panic prints msg framed by a panic banner in the error color and halts.
// Any output may be nil, Halt is still called.
func Panic(out console.Printer, h Halter, s rgb.Scheme, msg string) {
	if out != nil {
		out.PutStringColored(panicHeader, s.Error, s.Background)
		out.PutStringColored(msg, s.Text, s.Background)
		out.PutStringColored(panicFooter, s.Error, s.Background)
	}
	if h != nil {
		h.Halt()
	}
}
