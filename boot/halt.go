package boot

import (
	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/rgb"
)

// Halter stops the machine. On hardware Halt never returns, hosted
// implementations may block until told to exit.
type Halter interface {
	Halt()
}

var _ Halter = (HaltFunc)(nil)

type HaltFunc func()

func (f HaltFunc) Halt() {
	if f != nil {
		f()
	}
}

var _ console.Printer = (Tee)(nil)

// Tee repeats every print on each of its outputs in order.
type Tee []console.Printer

func (t Tee) PutString(s string) {
	for _, p := range t {
		if p != nil {
			p.PutString(s)
		}
	}
}

func (t Tee) PutStringColored(s string, fg, bg rgb.Color) {
	for _, p := range t {
		if p != nil {
			p.PutStringColored(s, fg, bg)
		}
	}
}
