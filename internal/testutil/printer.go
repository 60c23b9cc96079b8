package testutil

import (
	"strings"

	"github.com/srlehn/fbcon/rgb"
)

// Span is one recorded print call.
type Span struct {
	Text    string
	Colored bool
	Fg, Bg  rgb.Color
}

// Recorder is a console.Printer that remembers every call.
type Recorder struct {
	Spans []Span
}

func (r *Recorder) PutString(s string) {
	r.Spans = append(r.Spans, Span{Text: s})
}

func (r *Recorder) PutStringColored(s string, fg, bg rgb.Color) {
	r.Spans = append(r.Spans, Span{Text: s, Colored: true, Fg: fg, Bg: bg})
}

// Text concatenates all printed strings.
func (r *Recorder) Text() string {
	var b strings.Builder
	for _, s := range r.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Colored returns the colored spans whose text contains substr.
func (r *Recorder) Colored(substr string) []Span {
	var spans []Span
	for _, s := range r.Spans {
		if s.Colored && strings.Contains(s.Text, substr) {
			spans = append(spans, s)
		}
	}
	return spans
}
