package markup

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"

	"github.com/deckmark/deckmark/style"
)

// HTMLParser is the tag-stack strategy: it streams tokens, counting
// positions over emitted plain characters only, and turns each matched
// open/close tag pair into a formatting run.
type HTMLParser struct{}

// NewHTMLParser returns the HTML-dialect inline parser.
func NewHTMLParser() *HTMLParser { return &HTMLParser{} }

// openTag is one entry on the scanner's tag stack.
type openTag struct {
	name  string
	start int // plain-text rune position when the tag opened
	attrs style.Attributes
}

// Parse scans text and returns the plain text plus the runs derived from
// its tags.  Closing tags match the nearest open tag of the same name, not
// strictly the most recently opened one, so improperly nested markup still
// produces sensible spans.  Tags left open at end of input, and tags that
// enclose no characters, produce no run.
func (p *HTMLParser) Parse(text string) (string, []style.Run) {
	z := html.NewTokenizer(strings.NewReader(text))

	var (
		plain strings.Builder
		pos   int
		stack []openTag
		runs  []style.Run
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() != io.EOF {
				// Tokenizer failure: degrade to literal text.
				return text, nil
			}
			sortRuns(runs)
			return plain.String(), runs

		case html.TextToken:
			t := string(z.Text())
			plain.WriteString(t)
			pos += utf8.RuneCountInString(t)

		case html.StartTagToken:
			tok := z.Token()
			stack = append(stack, openTag{
				name:  tok.Data,
				start: pos,
				attrs: tagAttributes(tok),
			})

		case html.EndTagToken:
			tok := z.Token()
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i].name != tok.Data {
					continue
				}
				open := stack[i]
				stack = append(stack[:i], stack[i+1:]...)
				if pos > open.start {
					runs = append(runs, style.Run{
						Start:      open.start + 1,
						Length:     pos - open.start,
						Attributes: open.attrs,
					})
				}
				break
			}
		}
	}
}

// tagAttributes derives the style attributes implied by an opening tag.
// Unrecognised tags yield zero attributes; their spans are still tracked so
// that nesting stays balanced, and the applier skips the empty runs.
func tagAttributes(tok html.Token) style.Attributes {
	var a style.Attributes
	switch tok.Data {
	case "b", "strong":
		a.Bold = true
	case "i", "em":
		a.Italic = true
	case "u":
		a.Underline = true
	case "s", "strike", "del":
		a.Strikethrough = true
	case "span":
		for _, attr := range tok.Attr {
			switch attr.Key {
			case "style":
				mergeInlineStyle(&a, attr.Val)
			case "color":
				if c, ok := style.ParseColor(attr.Val); ok {
					a.Color = c
				}
			}
		}
	}
	return a
}

// mergeInlineStyle parses a CSS-like style attribute value — semicolon
// separated key:value declarations — into a.  Only the fixed vocabulary is
// recognised; anything else is ignored.
func mergeInlineStyle(a *style.Attributes, styleAttr string) {
	for _, decl := range strings.Split(styleAttr, ";") {
		key, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		val = strings.TrimSpace(val)

		switch key {
		case "color":
			if c, ok := style.ParseColor(val); ok {
				a.Color = c
			}
		case "background-color", "background":
			if c, ok := style.ParseColor(val); ok {
				a.Background = c
			}
		case "font-weight":
			if strings.EqualFold(val, "bold") {
				a.Bold = true
			}
		case "font-style":
			if strings.EqualFold(val, "italic") {
				a.Italic = true
			}
		case "text-decoration":
			if strings.Contains(val, "underline") {
				a.Underline = true
			}
			if strings.Contains(val, "line-through") {
				a.Strikethrough = true
			}
		}
	}
}
