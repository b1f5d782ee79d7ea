// Package acmesink drives an acme editor window as a rich-text target.
//
// Text replacement goes through acme's data file; styling goes through the
// styles compositor's layer protocol, which wants a flat list of
// non-overlapping named runs.  Range setters therefore only record
// operations; Flush composes them and writes the result in one shot.
package acmesink

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"9fans.net/go/acme"
	"go.uber.org/multierr"

	"github.com/deckmark/deckmark/apply"
	"github.com/deckmark/deckmark/style"
)

// ErrNoStrikethrough is returned by SetStrikethrough: the styles wire
// format has no strikethrough property under any name, so the applier
// swallows the attribute for this target.
var ErrNoStrikethrough = errors.New("acmesink: strikethrough not supported")

// layerName is the compositor layer deckmark owns in each window.
const layerName = "deckmark"

// Sink is an apply.Target over one acme window.
type Sink struct {
	win   *acme.Win
	layer *styleLayer

	n     int // rune length of the current body
	spans []attrSpan
}

// Dial attaches to the acme window with the given ID and claims the
// deckmark style layer on it.
func Dial(winID int) (*Sink, error) {
	win, err := acme.Open(winID, nil)
	if err != nil {
		return nil, fmt.Errorf("open window %d: %w", winID, err)
	}
	layer, err := openLayer(winID, layerName)
	if err != nil {
		win.CloseFiles()
		return nil, err
	}
	return &Sink{win: win, layer: layer}, nil
}

// SetText replaces the window body and drops any recorded styling.
func (s *Sink) SetText(text string) error {
	if err := s.win.Addr(","); err != nil {
		return fmt.Errorf("address body: %w", err)
	}
	if _, err := s.win.Write("data", []byte(text)); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	s.n = utf8.RuneCountInString(text)
	s.spans = nil
	return s.layer.clear()
}

// Range returns a styleable handle over [start, start+length-1], 1-based.
func (s *Sink) Range(start, length int) (apply.Range, error) {
	if start < 1 || length < 1 || start+length-1 > s.n {
		return nil, fmt.Errorf("acmesink: range [%d,%d) out of bounds (len %d)", start, start+length, s.n)
	}
	return &acmeRange{sink: s, lo: start - 1, hi: start - 1 + length}, nil
}

// Flush composes the recorded styling operations into non-overlapping runs
// and writes them to the compositor, then marks the window clean.  Both
// steps are attempted regardless of each other's outcome.
func (s *Sink) Flush() error {
	var errs error
	runs := composeSpans(s.spans)
	if err := s.layer.write(formatWire(runs)); err != nil {
		errs = multierr.Append(errs, err)
	}
	if err := s.win.Ctl("clean"); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("mark clean: %w", err))
	}
	return errs
}

// Close releases the layer and the window files.  The layer is deleted so
// styling does not outlive the process.
func (s *Sink) Close() error {
	err := s.layer.remove()
	s.win.CloseFiles()
	return err
}

// acmeRange records styling operations for the sink's next Flush.
type acmeRange struct {
	sink   *Sink
	lo, hi int
}

func (r *acmeRange) record(a style.Attributes) {
	r.sink.spans = append(r.sink.spans, attrSpan{lo: r.lo, hi: r.hi, attrs: a})
}

func (r *acmeRange) SetBold(on bool) error {
	if on {
		r.record(style.Attributes{Bold: true})
	}
	return nil
}

func (r *acmeRange) SetItalic(on bool) error {
	if on {
		r.record(style.Attributes{Italic: true})
	}
	return nil
}

func (r *acmeRange) SetUnderline(on bool) error {
	if on {
		r.record(style.Attributes{Underline: true})
	}
	return nil
}

func (r *acmeRange) SetStrikethrough(on bool) error {
	return ErrNoStrikethrough
}

// SetColor accepts the packed blue-low foreground form.
func (r *acmeRange) SetColor(packed int) error {
	r.record(style.Attributes{Color: unpackForeground(packed)})
	return nil
}

// SetBackground accepts the packed red-low background form.
func (r *acmeRange) SetBackground(packed int) error {
	r.record(style.Attributes{Background: unpackBackground(packed)})
	return nil
}

func unpackForeground(packed int) style.Color {
	return style.Color(fmt.Sprintf("#%02x%02x%02x", (packed>>16)&0xff, (packed>>8)&0xff, packed&0xff))
}

func unpackBackground(packed int) style.Color {
	return style.Color(fmt.Sprintf("#%02x%02x%02x", packed&0xff, (packed>>8)&0xff, (packed>>16)&0xff))
}
