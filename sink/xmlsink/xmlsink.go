// Package xmlsink renders applied text and styling as a DrawingML-flavoured
// XML document — the native storage shape of the presentation domain.  It
// implements apply.Target over an in-memory attribute grid and serialises
// on demand, so it doubles as an offline/file sink and a test vehicle for
// the applier.
package xmlsink

import (
	"fmt"
	"io"

	"github.com/beevik/etree"

	"github.com/deckmark/deckmark/apply"
)

// span is the resolved per-character state the document is built from.
type span struct {
	bold, italic, underline, strike bool
	color, background               string // "RRGGBB" or ""
	fontSize                        float64
}

// Sink accumulates text and styling and serialises them with Document.
type Sink struct {
	text  []rune
	spans []span

	alignment apply.Alignment
	spacing   float64

	hasMargins bool
	margins    [4]float64
}

// New returns an empty sink.
func New() *Sink { return &Sink{} }

// SetText replaces the content and resets styling.
func (s *Sink) SetText(text string) error {
	s.text = []rune(text)
	s.spans = make([]span, len(s.text))
	return nil
}

// Text returns the current plain text.
func (s *Sink) Text() string { return string(s.text) }

// Range returns a styleable handle over [start, start+length-1], 1-based.
func (s *Sink) Range(start, length int) (apply.Range, error) {
	if start < 1 || length < 1 || start+length-1 > len(s.text) {
		return nil, fmt.Errorf("xmlsink: range [%d,%d) out of bounds (len %d)", start, start+length, len(s.text))
	}
	return &xmlRange{sink: s, lo: start - 1, hi: start - 1 + length}, nil
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
	s.hasMargins = true
	s.margins = [4]float64{left, right, top, bottom}
	return nil
}

// Document builds the XML document: one a:p element per text line, split
// into a:r runs at styling boundaries, each with its run properties
// element.  Font sizes are emitted in hundredths of a point, colours as
// srgbClr values, matching the host format's conventions.
func (s *Sink) Document() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	body := doc.CreateElement("p:txBody")

	if s.hasMargins {
		bodyPr := body.CreateElement("a:bodyPr")
		bodyPr.CreateAttr("lIns", emu(s.margins[0]))
		bodyPr.CreateAttr("rIns", emu(s.margins[1]))
		bodyPr.CreateAttr("tIns", emu(s.margins[2]))
		bodyPr.CreateAttr("bIns", emu(s.margins[3]))
	}

	for _, line := range splitLines(s.text, s.spans) {
		p := body.CreateElement("a:p")
		if s.alignment != apply.AlignNone || s.spacing > 0 {
			pPr := p.CreateElement("a:pPr")
			if algn := alignCode(s.alignment); algn != "" {
				pPr.CreateAttr("algn", algn)
			}
			if s.spacing > 0 {
				spc := pPr.CreateElement("a:lnSpc")
				spc.CreateElement("a:spcPct").CreateAttr("val", fmt.Sprintf("%d", int(s.spacing*100000)))
			}
		}
		for _, seg := range segment(line.text, line.spans) {
			r := p.CreateElement("a:r")
			rPr := r.CreateElement("a:rPr")
			writeRunProps(rPr, seg.span)
			r.CreateElement("a:t").SetText(string(seg.text))
		}
	}
	return doc
}

// WriteTo serialises the document, indented, to w.
func (s *Sink) WriteTo(w io.Writer) (int64, error) {
	doc := s.Document()
	doc.Indent(2)
	return doc.WriteTo(w)
}

func writeRunProps(rPr *etree.Element, sp span) {
	if sp.fontSize > 0 {
		rPr.CreateAttr("sz", fmt.Sprintf("%d", int(sp.fontSize*100)))
	}
	if sp.bold {
		rPr.CreateAttr("b", "1")
	}
	if sp.italic {
		rPr.CreateAttr("i", "1")
	}
	if sp.underline {
		rPr.CreateAttr("u", "sng")
	}
	if sp.strike {
		rPr.CreateAttr("strike", "sngStrike")
	}
	if sp.color != "" {
		fill := rPr.CreateElement("a:solidFill")
		fill.CreateElement("a:srgbClr").CreateAttr("val", sp.color)
	}
	if sp.background != "" {
		hl := rPr.CreateElement("a:highlight")
		hl.CreateElement("a:srgbClr").CreateAttr("val", sp.background)
	}
}

// line pairs one text line with its span slice.
type lineSpans struct {
	text  []rune
	spans []span
}

func splitLines(text []rune, spans []span) []lineSpans {
	var out []lineSpans
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			out = append(out, lineSpans{text: text[start:i], spans: spans[start:i]})
			start = i + 1
		}
	}
	return out
}

// seg is a maximal stretch of identically-styled characters within a line.
type seg struct {
	text []rune
	span span
}

func segment(text []rune, spans []span) []seg {
	var out []seg
	for i := 0; i < len(text); {
		j := i + 1
		for j < len(text) && spans[j] == spans[i] {
			j++
		}
		out = append(out, seg{text: text[i:j], span: spans[i]})
		i = j
	}
	return out
}

func alignCode(a apply.Alignment) string {
	switch a {
	case apply.AlignLeft:
		return "l"
	case apply.AlignCenter:
		return "ctr"
	case apply.AlignRight:
		return "r"
	case apply.AlignJustify:
		return "just"
	}
	return ""
}

// emu converts points to the format's EMU length unit (12700 per point).
func emu(points float64) string {
	return fmt.Sprintf("%d", int(points*12700))
}

// xmlRange styles the half-open rune interval [lo, hi) of its sink.
type xmlRange struct {
	sink   *Sink
	lo, hi int
}

func (r *xmlRange) each(f func(sp *span)) {
	for i := r.lo; i < r.hi; i++ {
		f(&r.sink.spans[i])
	}
}

func (r *xmlRange) SetBold(on bool) error {
	r.each(func(sp *span) { sp.bold = on })
	return nil
}

func (r *xmlRange) SetItalic(on bool) error {
	r.each(func(sp *span) { sp.italic = on })
	return nil
}

func (r *xmlRange) SetUnderline(on bool) error {
	r.each(func(sp *span) { sp.underline = on })
	return nil
}

func (r *xmlRange) SetStrikethrough(on bool) error {
	r.each(func(sp *span) { sp.strike = on })
	return nil
}

// SetColor accepts the packed blue-low foreground form.
func (r *xmlRange) SetColor(packed int) error {
	v := fmt.Sprintf("%02X%02X%02X", (packed>>16)&0xff, (packed>>8)&0xff, packed&0xff)
	r.each(func(sp *span) { sp.color = v })
	return nil
}

// SetBackground accepts the packed red-low background form.
func (r *xmlRange) SetBackground(packed int) error {
	v := fmt.Sprintf("%02X%02X%02X", packed&0xff, (packed>>8)&0xff, (packed>>16)&0xff)
	r.each(func(sp *span) { sp.background = v })
	return nil
}

// SetFontSize implements apply.FontSizer.
func (r *xmlRange) SetFontSize(points float64) error {
	r.each(func(sp *span) { sp.fontSize = points })
	return nil
}
