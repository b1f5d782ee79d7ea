package apply

// Target is the write contract a rich-text destination must satisfy: whole
// text replacement plus styleable handles over contiguous character ranges.
// Implementations are assumed to be blocking, stateful, single-writer
// resources; callers serialise access externally.
type Target interface {
	// SetText replaces the target's entire text content.
	SetText(text string) error

	// Range returns a styleable handle over the 1-based, length-counted
	// character span [start, start+length-1].
	Range(start, length int) (Range, error)
}

// Range is a styleable handle over a contiguous character span.  Colour
// setters take packed integers in the target's native channel order; see
// style.Color.PackForeground and PackBackground.
type Range interface {
	SetBold(on bool) error
	SetItalic(on bool) error
	SetUnderline(on bool) error

	// SetStrikethrough is the primary strikethrough property.  Targets
	// that only support the alternate property name should return an error
	// here and implement StrikeAlt.
	SetStrikethrough(on bool) error

	SetColor(packed int) error
	SetBackground(packed int) error
}

// StrikeAlt is the fallback strikethrough capability: some targets expose
// the property under an alternate name.  The applier tries
// SetStrikethrough first and falls back to SetStrike, swallowing failure
// when neither exists.
type StrikeAlt interface {
	SetStrike(on bool) error
}

// FontSizer is an optional Range capability used by the header sizing pass.
// Ranges without it keep their base size; headers still get bold.
type FontSizer interface {
	SetFontSize(points float64) error
}

// Alignment is a paragraph alignment supported by Paragraph targets.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

// Paragraph is an optional Target capability for paragraph-level layout.
type Paragraph interface {
	SetAlignment(a Alignment) error
	SetLineSpacing(lines float64) error
}

// Box is an optional Target capability for box-level margins, in the
// target's point units.
type Box interface {
	SetMargins(left, right, top, bottom float64) error
}

// TextSource is the read side some targets also implement; it satisfies
// markup.Source for the reverse codec and is what text-level operations
// like edit.Replace require.
type TextSource interface {
	Text() string
}
