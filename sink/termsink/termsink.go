// Package termsink previews styled text on a terminal screen.  It
// implements apply.Target over a tcell screen region, mapping packed
// colours and boolean attributes onto tcell styles.  Useful for inspecting
// what a markup string will look like without a live document host; tests
// drive it through tcell's simulation screen.
package termsink

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/deckmark/deckmark/apply"
)

// Sink draws styled text into a rectangular region of a tcell screen,
// wrapping at the region width and breaking on newlines.
type Sink struct {
	screen tcell.Screen
	x, y   int
	width  int

	text   []rune
	styles []tcell.Style
}

// New returns a sink drawing at origin (x, y) with the given wrap width.
func New(screen tcell.Screen, x, y, width int) *Sink {
	if width < 1 {
		width = 1
	}
	return &Sink{screen: screen, x: x, y: y, width: width}
}

// SetText replaces the preview content and redraws.
func (s *Sink) SetText(text string) error {
	s.text = []rune(text)
	s.styles = make([]tcell.Style, len(s.text))
	for i := range s.styles {
		s.styles[i] = tcell.StyleDefault
	}
	s.draw()
	return nil
}

// Text returns the current plain text.
func (s *Sink) Text() string { return string(s.text) }

// Range returns a styleable handle over [start, start+length-1], 1-based.
func (s *Sink) Range(start, length int) (apply.Range, error) {
	if start < 1 || length < 1 || start+length-1 > len(s.text) {
		return nil, fmt.Errorf("termsink: range [%d,%d) out of bounds (len %d)", start, start+length, len(s.text))
	}
	return termRange{sink: s, lo: start - 1, hi: start - 1 + length}, nil
}

// draw repaints the whole region and flushes the screen.
func (s *Sink) draw() {
	col, row := 0, 0
	for i, ch := range s.text {
		if ch == '\n' {
			col, row = 0, row+1
			continue
		}
		if col >= s.width {
			col, row = 0, row+1
		}
		s.screen.SetContent(s.x+col, s.y+row, ch, nil, s.styles[i])
		col++
	}
	s.screen.Show()
}

// termRange styles the half-open rune interval [lo, hi) of its sink.
type termRange struct {
	sink   *Sink
	lo, hi int
}

func (r termRange) each(f func(st tcell.Style) tcell.Style) {
	for i := r.lo; i < r.hi; i++ {
		r.sink.styles[i] = f(r.sink.styles[i])
	}
	r.sink.draw()
}

func (r termRange) SetBold(on bool) error {
	r.each(func(st tcell.Style) tcell.Style { return st.Bold(on) })
	return nil
}

func (r termRange) SetItalic(on bool) error {
	r.each(func(st tcell.Style) tcell.Style { return st.Italic(on) })
	return nil
}

func (r termRange) SetUnderline(on bool) error {
	r.each(func(st tcell.Style) tcell.Style { return st.Underline(on) })
	return nil
}

func (r termRange) SetStrikethrough(on bool) error {
	r.each(func(st tcell.Style) tcell.Style { return st.StrikeThrough(on) })
	return nil
}

// SetColor accepts the packed blue-low foreground form.
func (r termRange) SetColor(packed int) error {
	c := tcell.NewRGBColor(int32((packed>>16)&0xff), int32((packed>>8)&0xff), int32(packed&0xff))
	r.each(func(st tcell.Style) tcell.Style { return st.Foreground(c) })
	return nil
}

// SetBackground accepts the packed red-low background form.
func (r termRange) SetBackground(packed int) error {
	c := tcell.NewRGBColor(int32(packed&0xff), int32((packed>>8)&0xff), int32((packed>>16)&0xff))
	r.each(func(st tcell.Style) tcell.Style { return st.Background(c) })
	return nil
}
