package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deckmark/deckmark/style"
)

func TestTransformMarkdown(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		text   string
		blocks []style.Block
	}{
		{
			name:  "plain_lines_pass_through",
			input: "one\ntwo",
			text:  "one\ntwo",
		},
		{
			name:   "header",
			input:  "# Title\nBody",
			text:   "Title\nBody",
			blocks: []style.Block{{Line: 0, Kind: style.Header, Level: 1}},
		},
		{
			name:   "header_levels",
			input:  "### Deep",
			text:   "Deep",
			blocks: []style.Block{{Line: 0, Kind: style.Header, Level: 3}},
		},
		{
			name:   "bullet_dash",
			input:  "- item",
			text:   "• item",
			blocks: []style.Block{{Line: 0, Kind: style.Bullet}},
		},
		{
			name:   "bullet_star",
			input:  "* item",
			text:   "• item",
			blocks: []style.Block{{Line: 0, Kind: style.Bullet}},
		},
		{
			name:   "bullet_indented",
			input:  "  - nested",
			text:   "• nested",
			blocks: []style.Block{{Line: 0, Kind: style.Bullet, Indent: 1}},
		},
		{
			name:   "numbered_keeps_source_number",
			input:  "3. third",
			text:   "3. third",
			blocks: []style.Block{{Line: 0, Kind: style.Numbered, Number: 3}},
		},
		{
			name:  "mixed_document",
			input: "# Agenda\n- first\n- second\n1. ranked\nclosing",
			text:  "Agenda\n• first\n• second\n1. ranked\nclosing",
			blocks: []style.Block{
				{Line: 0, Kind: style.Header, Level: 1},
				{Line: 1, Kind: style.Bullet},
				{Line: 2, Kind: style.Bullet},
				{Line: 3, Kind: style.Numbered, Number: 1},
			},
		},
		{
			name:   "inline_markup_preserved",
			input:  "- **bold** item",
			text:   "• **bold** item",
			blocks: []style.Block{{Line: 0, Kind: style.Bullet}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, blocks := TransformMarkdown(tt.input)
			assert.Equal(t, tt.text, text)
			assert.Equal(t, tt.blocks, blocks)
		})
	}
}

func TestTransformHTMLLists(t *testing.T) {
	t.Run("unordered", func(t *testing.T) {
		text, blocks := TransformHTML("<ul><li>a</li><li>b</li></ul>")
		assert.Equal(t, "• a\n• b", text)
		assert.Nil(t, blocks)
	})

	t.Run("ordered_renumbers_from_one", func(t *testing.T) {
		text, _ := TransformHTML("<ol><li>x</li><li>y</li><li>z</li></ol>")
		assert.Equal(t, "1. x\n2. y\n3. z", text)
	})

	t.Run("two_ordered_lists_restart", func(t *testing.T) {
		text, _ := TransformHTML("<ol><li>a</li></ol>\n<ol><li>b</li></ol>")
		assert.Equal(t, "1. a\n1. b", text)
	})

	t.Run("inline_markup_inside_items", func(t *testing.T) {
		text, _ := TransformHTML("<ul><li><b>bold</b> item</li></ul>")
		assert.Equal(t, "• <b>bold</b> item", text)
	})
}

func TestTransformHTMLHeaders(t *testing.T) {
	t.Run("header_with_body", func(t *testing.T) {
		text, blocks := TransformHTML("<h1>Title</h1>\n<p>Body</p>")
		assert.Equal(t, "Title\nBody", text)
		assert.Equal(t, []style.Block{{Line: 0, Kind: style.Header, Level: 1}}, blocks)
	})

	t.Run("multiple_levels", func(t *testing.T) {
		text, blocks := TransformHTML("<h2>First</h2>\n<h4>Second</h4>")
		assert.Equal(t, "First\nSecond", text)
		assert.Equal(t, []style.Block{
			{Line: 0, Kind: style.Header, Level: 2},
			{Line: 1, Kind: style.Header, Level: 4},
		}, blocks)
	})

	t.Run("containment_matches_first_line", func(t *testing.T) {
		// Attribution is by content containment, so a preceding line that
		// happens to contain the header text wins the annotation.
		text, blocks := TransformHTML("cat\n<h2>a</h2>")
		assert.Equal(t, "cat\na", text)
		assert.Equal(t, []style.Block{{Line: 0, Kind: style.Header, Level: 2}}, blocks)
	})
}

func TestTransformHTMLWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "space_runs_collapse", input: "a   b\t\tc", want: "a b c"},
		{name: "blank_lines_removed", input: "a\n\n\nb", want: "a\nb"},
		{name: "trimmed", input: "  hello  ", want: "hello"},
		{name: "wrappers_stripped", input: "<div><p>inner</p></div>", want: "inner"},
		{name: "section_stripped", input: "<section>a</section><article>b</article>", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, _ := TransformHTML(tt.input)
			assert.Equal(t, tt.want, text)
		})
	}
}
