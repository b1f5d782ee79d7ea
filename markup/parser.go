// Package markup implements the bidirectional transform between marked-up
// text and position-indexed formatting runs over plain text.
//
// Two inline dialects are supported behind one contract: an HTML-like
// dialect parsed by a tag-stack scanner, and a Markdown-like dialect parsed
// by a multi-pass pattern scanner.  Block constructs (headers, lists) are
// resolved by the block transformer before inline parsing.  The reverse
// direction — reconstructing markup from a styled source — is provided by
// Encode.
package markup

import "github.com/deckmark/deckmark/style"

// Dialect selects one of the supported markup vocabularies.
type Dialect int

const (
	HTML Dialect = iota
	Markdown
)

func (d Dialect) String() string {
	if d == Markdown {
		return "markdown"
	}
	return "html"
}

// Parser converts a markup string into plain text plus an ordered list of
// formatting runs.  Parse never fails: malformed constructs degrade to
// literal text, and a catastrophic internal failure yields the input
// unchanged with no runs.  Returned runs are sorted by Start.
type Parser interface {
	Parse(text string) (plain string, runs []style.Run)
}

// NewParser returns the inline parser for the given dialect.
func NewParser(d Dialect) Parser {
	if d == Markdown {
		return NewMarkdownParser()
	}
	return NewHTMLParser()
}

// Transform runs the dialect's block-structure pass: line-oriented
// constructs (headers, bullet and numbered lists, block wrappers) are
// rewritten to plain lines and reported as per-line block annotations for
// the applier's header pass.
func Transform(d Dialect, text string) (string, []style.Block) {
	if d == Markdown {
		return TransformMarkdown(text)
	}
	return TransformHTML(text)
}

// Source is the read contract a styled target must satisfy for the reverse
// codec: the full plain text plus the attributes in effect at any single
// 1-based character position.
type Source interface {
	Text() string
	StyleAt(pos int) style.Attributes
}
