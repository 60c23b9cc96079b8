// Package mirror echoes console output to a terminal with ANSI colors, the
// way a kernel copies its framebuffer console to a serial line.
package mirror

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/srlehn/fbcon/console"
	"github.com/srlehn/fbcon/rgb"
)

var _ console.Printer = (*Mirror)(nil)

type Mirror struct {
	out *termenv.Output
	bg  rgb.Color
}

// New writes to w. Without options the color profile is taken from the
// environment. Colored text whose background equals bg keeps the
// terminal's own background.
func New(w io.Writer, bg rgb.Color, opts ...termenv.OutputOption) *Mirror {
	if len(opts) == 0 {
		opts = []termenv.OutputOption{
			termenv.WithProfile(termenv.EnvColorProfile()),
			termenv.WithColorCache(true),
		}
	}
	return &Mirror{out: termenv.NewOutput(w, opts...), bg: bg}
}

func (m *Mirror) PutString(s string) {
	if m == nil {
		return
	}
	_, _ = m.out.WriteString(cut(s))
}

func (m *Mirror) PutStringColored(s string, fg, bg rgb.Color) {
	if m == nil {
		return
	}
	s = cut(s)
	if s == `` {
		return
	}
	// style each line on its own so escape sequences never span a newline
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, line := range lines {
		text := strings.TrimSuffix(line, "\n")
		if text != `` {
			st := m.out.String(text).Foreground(m.out.Color(fg.String()))
			if bg != m.bg {
				st = st.Background(m.out.Color(bg.String()))
			}
			b.WriteString(st.String())
		}
		if len(text) < len(line) {
			b.WriteByte('\n')
		}
	}
	_, _ = m.out.WriteString(b.String())
}

// cut drops everything from the first NUL byte on.
func cut(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}
