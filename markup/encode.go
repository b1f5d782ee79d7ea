package markup

import (
	"fmt"
	"strings"

	"github.com/deckmark/deckmark/style"
)

// Encode reconstructs HTML-dialect markup from a styled source: styleAt
// reports the attributes in effect at a single 1-based character position
// of text.
//
// The scan is greedy: a span extends while consecutive positions report
// identical attributes, so text in the baseline style comes out as one
// unwrapped literal.  Colours equal to the baseline default (black) are
// deliberately not emitted — wrapping default-coloured text in an explicit
// span would be pure noise on the round trip.
//
// The tag vocabulary is exactly the one the HTML parser accepts, so
// re-parsing the output reproduces the same plain text and an equivalent
// run structure.
func Encode(styleAt func(pos int) style.Attributes, text string) string {
	runes := []rune(text)
	var sb strings.Builder

	for i := 0; i < len(runes); {
		attrs := normalizeDefaults(styleAt(i + 1))
		j := i + 1
		for j < len(runes) && normalizeDefaults(styleAt(j+1)) == attrs {
			j++
		}
		writeSpan(&sb, attrs, string(runes[i:j]))
		i = j
	}
	return sb.String()
}

// EncodeTarget reads back existing styled content through the target source
// contract.
func EncodeTarget(src Source) string {
	return Encode(src.StyleAt, src.Text())
}

// normalizeDefaults maps baseline values to their unset form so that runs
// of default-styled text coalesce: the default foreground (black, named or
// hex) is equivalent to no colour at all.
func normalizeDefaults(a style.Attributes) style.Attributes {
	if a.Color == "black" || a.Color == "#000000" {
		a.Color = ""
	}
	if a.Background == "#000000" {
		a.Background = ""
	}
	return a
}

// writeSpan emits one coalesced span wrapped in the tags its attributes
// imply, with markup-significant characters escaped and newlines emitted
// as <br>.
func writeSpan(sb *strings.Builder, a style.Attributes, text string) {
	var open, close []string
	wrap := func(o, c string) {
		open = append(open, o)
		close = append([]string{c}, close...)
	}

	if a.Bold {
		wrap("<b>", "</b>")
	}
	if a.Italic {
		wrap("<i>", "</i>")
	}
	if a.Underline {
		wrap("<u>", "</u>")
	}
	if a.Strikethrough {
		wrap("<s>", "</s>")
	}
	if decls := styleDecls(a); decls != "" {
		wrap(fmt.Sprintf(`<span style="%s">`, decls), "</span>")
	}

	for _, o := range open {
		sb.WriteString(o)
	}
	sb.WriteString(escape(text))
	for _, c := range close {
		sb.WriteString(c)
	}
}

// styleDecls renders the colour declarations of a span's style attribute,
// or "" when no colour is set.
func styleDecls(a style.Attributes) string {
	var decls []string
	if !a.Color.IsZero() {
		decls = append(decls, "color: "+string(a.Color))
	}
	if !a.Background.IsZero() {
		decls = append(decls, "background-color: "+string(a.Background))
	}
	return strings.Join(decls, "; ")
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\r\n", "<br>",
	"\r", "<br>",
	"\n", "<br>",
)

// escape makes literal text safe to embed in markup.  Line breaks become
// <br> so the markup stays single-line.  The replacer works in a single
// pass over the input, so the angle brackets of the generated <br> tags are
// not themselves escaped.
func escape(s string) string {
	return escaper.Replace(s)
}
