// Package memsink provides an in-memory rich-text target that also
// implements the read-back source contract.  It is the reference
// implementation of the apply.Target semantics and the canonical fixture
// for round-trip tests: what the applier writes, the reverse codec can
// read.
package memsink

import (
	"errors"
	"fmt"

	"github.com/deckmark/deckmark/apply"
	"github.com/deckmark/deckmark/style"
)

// ErrUnsupported is returned by property setters the sink has been
// configured not to support, for exercising the applier's capability
// fallbacks.
var ErrUnsupported = errors.New("memsink: property unsupported")

// Sink is an in-memory rich-text buffer with per-character attributes.
// The zero value supports every capability; the No* fields switch
// individual properties off.
type Sink struct {
	// NoStrikethrough makes SetStrikethrough fail, forcing the applier
	// onto the SetStrike fallback.  NoStrikeAlt fails that too.
	NoStrikethrough bool
	NoStrikeAlt     bool

	text      []rune
	attrs     []style.Attributes
	fontSize  []float64
	alignment apply.Alignment
	spacing   float64
	margins   [4]float64
}

// New returns an empty sink.
func New() *Sink { return &Sink{} }

// SetText replaces the buffer content and resets all styling.
func (s *Sink) SetText(text string) error {
	s.text = []rune(text)
	s.attrs = make([]style.Attributes, len(s.text))
	s.fontSize = make([]float64, len(s.text))
	return nil
}

// Text returns the current plain text.
func (s *Sink) Text() string { return string(s.text) }

// StyleAt returns the attributes in effect at the 1-based position pos.
// Out-of-range positions report zero attributes.
func (s *Sink) StyleAt(pos int) style.Attributes {
	if pos < 1 || pos > len(s.attrs) {
		return style.Attributes{}
	}
	return s.attrs[pos-1]
}

// FontSizeAt returns the font size at the 1-based position pos, or 0 when
// unset.
func (s *Sink) FontSizeAt(pos int) float64 {
	if pos < 1 || pos > len(s.fontSize) {
		return 0
	}
	return s.fontSize[pos-1]
}

// Alignment returns the last alignment applied to the sink.
func (s *Sink) Alignment() apply.Alignment { return s.alignment }

// LineSpacing returns the last line spacing applied to the sink.
func (s *Sink) LineSpacing() float64 { return s.spacing }

// Margins returns the last margins applied to the sink.
func (s *Sink) Margins() (left, right, top, bottom float64) {
	return s.margins[0], s.margins[1], s.margins[2], s.margins[3]
}

// Range returns a styleable handle over [start, start+length-1], 1-based.
func (s *Sink) Range(start, length int) (apply.Range, error) {
	if start < 1 || length < 1 || start+length-1 > len(s.text) {
		return nil, fmt.Errorf("memsink: range [%d,%d) out of bounds (len %d)", start, start+length, len(s.text))
	}
	return &memRange{sink: s, lo: start - 1, hi: start - 1 + length}, nil
}

// SetAlignment implements apply.Paragraph.
func (s *Sink) SetAlignment(a apply.Alignment) error {
	s.alignment = a
	return nil
}

// SetLineSpacing implements apply.Paragraph.
func (s *Sink) SetLineSpacing(lines float64) error {
	s.spacing = lines
	return nil
}

// SetMargins implements apply.Box.
func (s *Sink) SetMargins(left, right, top, bottom float64) error {
	s.margins = [4]float64{left, right, top, bottom}
	return nil
}

// memRange styles the half-open rune interval [lo, hi) of its sink.
type memRange struct {
	sink   *Sink
	lo, hi int
}

func (r *memRange) each(f func(a *style.Attributes)) {
	for i := r.lo; i < r.hi; i++ {
		f(&r.sink.attrs[i])
	}
}

func (r *memRange) SetBold(on bool) error {
	r.each(func(a *style.Attributes) { a.Bold = on })
	return nil
}

func (r *memRange) SetItalic(on bool) error {
	r.each(func(a *style.Attributes) { a.Italic = on })
	return nil
}

func (r *memRange) SetUnderline(on bool) error {
	r.each(func(a *style.Attributes) { a.Underline = on })
	return nil
}

func (r *memRange) SetStrikethrough(on bool) error {
	if r.sink.NoStrikethrough {
		return ErrUnsupported
	}
	r.each(func(a *style.Attributes) { a.Strikethrough = on })
	return nil
}

// SetStrike is the alternate-name strikethrough property (apply.StrikeAlt).
func (r *memRange) SetStrike(on bool) error {
	if r.sink.NoStrikeAlt {
		return ErrUnsupported
	}
	r.each(func(a *style.Attributes) { a.Strikethrough = on })
	return nil
}

// SetColor stores a foreground colour from its packed blue-low form,
// recovering the hex literal so StyleAt round-trips through the codec.
func (r *memRange) SetColor(packed int) error {
	c := unpackForeground(packed)
	r.each(func(a *style.Attributes) { a.Color = c })
	return nil
}

// SetBackground stores a background colour from its packed red-low form.
func (r *memRange) SetBackground(packed int) error {
	c := unpackBackground(packed)
	r.each(func(a *style.Attributes) { a.Background = c })
	return nil
}

// SetFontSize implements apply.FontSizer.
func (r *memRange) SetFontSize(points float64) error {
	for i := r.lo; i < r.hi; i++ {
		r.sink.fontSize[i] = points
	}
	return nil
}

// unpackForeground inverts style.Color.PackForeground.
func unpackForeground(packed int) style.Color {
	r := (packed >> 16) & 0xff
	g := (packed >> 8) & 0xff
	b := packed & 0xff
	return style.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// unpackBackground inverts style.Color.PackBackground.
func unpackBackground(packed int) style.Color {
	r := packed & 0xff
	g := (packed >> 8) & 0xff
	b := (packed >> 16) & 0xff
	return style.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
