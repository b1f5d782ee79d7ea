// Package style defines the shared data model for the deckmark codec.
//
// Attributes, Run, and Block are used by both the markup parsers (which
// produce them) and the run applier (which consumes them against a rich-text
// target).  All values are plain data: created per call, never cached.
package style

// Attributes is the set of stylistic properties a run can carry.
//
// Boolean fields follow the source system's convention: they are only ever
// set to true by the parsers, so the zero value means "unspecified" and an
// unspecified field must never overwrite existing state on a target.
// Color and Background are zero-valued when unspecified or unrecognised.
type Attributes struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Color         Color
	Background    Color
}

// IsZero reports whether a carries no properties at all.  The applier skips
// runs with zero Attributes.
func (a Attributes) IsZero() bool {
	return a == Attributes{}
}

// Run is a contiguous character span paired with the attributes to apply
// to it.  Start is a 1-based rune offset into the plain text; Length is a
// rune count and must be at least 1.  Runs may overlap when they originate
// from nested markup; they are applied in the order produced.
type Run struct {
	Start      int
	Length     int
	Attributes Attributes
}

// BlockKind identifies a line-oriented construct recognised by the block
// transformer.
type BlockKind int

const (
	Header BlockKind = iota
	Bullet
	Numbered
)

func (k BlockKind) String() string {
	switch k {
	case Header:
		return "header"
	case Bullet:
		return "bullet"
	case Numbered:
		return "numbered"
	}
	return "unknown"
}

// Block annotates one line of the post-transform plain text.
//
// Line is a zero-based index into the line array of the transformed text.
// Level is set for headers (1..6).  Number is set for numbered list items.
// Indent is the indentation level of a markdown list item (two spaces per
// level in the source).
type Block struct {
	Line   int
	Kind   BlockKind
	Level  int
	Number int
	Indent int
}
