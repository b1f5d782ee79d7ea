package acmesink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckmark/deckmark/style"
)

func TestComposeSpansDisjoint(t *testing.T) {
	runs := composeSpans([]attrSpan{
		{lo: 0, hi: 3, attrs: style.Attributes{Bold: true}},
		{lo: 5, hi: 8, attrs: style.Attributes{Italic: true}},
	})
	assert.Equal(t, []styledRun{
		{lo: 0, hi: 3, attrs: style.Attributes{Bold: true}},
		{lo: 5, hi: 8, attrs: style.Attributes{Italic: true}},
	}, runs)
}

func TestComposeSpansOverlap(t *testing.T) {
	runs := composeSpans([]attrSpan{
		{lo: 0, hi: 10, attrs: style.Attributes{Bold: true}},
		{lo: 5, hi: 15, attrs: style.Attributes{Color: "#0000ff"}},
	})
	assert.Equal(t, []styledRun{
		{lo: 0, hi: 5, attrs: style.Attributes{Bold: true}},
		{lo: 5, hi: 10, attrs: style.Attributes{Bold: true, Color: "#0000ff"}},
		{lo: 10, hi: 15, attrs: style.Attributes{Color: "#0000ff"}},
	}, runs)
}

func TestComposeSpansLaterColorWins(t *testing.T) {
	runs := composeSpans([]attrSpan{
		{lo: 0, hi: 4, attrs: style.Attributes{Color: "#ff0000"}},
		{lo: 0, hi: 4, attrs: style.Attributes{Color: "#00ff00"}},
	})
	require.Len(t, runs, 1)
	assert.Equal(t, style.Color("#00ff00"), runs[0].attrs.Color)
}

func TestComposeSpansCoalescesAdjacent(t *testing.T) {
	runs := composeSpans([]attrSpan{
		{lo: 0, hi: 5, attrs: style.Attributes{Bold: true}},
		{lo: 5, hi: 10, attrs: style.Attributes{Bold: true}},
	})
	assert.Equal(t, []styledRun{{lo: 0, hi: 10, attrs: style.Attributes{Bold: true}}}, runs)
}

func TestComposeSpansSkipsDegenerate(t *testing.T) {
	runs := composeSpans([]attrSpan{
		{lo: 3, hi: 3, attrs: style.Attributes{Bold: true}},
		{lo: 0, hi: 5},
	})
	assert.Nil(t, runs)
}

func TestPaletteName(t *testing.T) {
	tests := []struct {
		name  string
		attrs style.Attributes
		want  string
	}{
		{name: "plain", want: "plain"},
		{name: "bold", attrs: style.Attributes{Bold: true}, want: "b"},
		{name: "bold_italic", attrs: style.Attributes{Bold: true, Italic: true}, want: "bi"},
		{name: "underline", attrs: style.Attributes{Underline: true}, want: "u"},
		{name: "color_only", attrs: style.Attributes{Color: "#0000ff"}, want: "fg0000ff"},
		{
			name:  "bold_italic_color",
			attrs: style.Attributes{Bold: true, Italic: true, Color: "#0000ff"},
			want:  "bi-fg0000ff",
		},
		{
			name:  "foreground_and_background",
			attrs: style.Attributes{Color: "#ff0000", Background: "#ffff00"},
			want:  "fgff0000-bgffff00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paletteName(tt.attrs))
		})
	}
}

func TestFormatWire(t *testing.T) {
	wire := formatWire([]styledRun{
		{lo: 0, hi: 5, attrs: style.Attributes{Bold: true}},
		{lo: 7, hi: 9, attrs: style.Attributes{Bold: true}},
		{lo: 9, hi: 12, attrs: style.Attributes{Color: "#ff0000", Underline: true}},
	})

	assert.Equal(t,
		":b bold\n"+
			":u-fgff0000 fg=#ff0000 underline\n"+
			"0 5 b\n"+
			"7 2 b\n"+
			"9 3 u-fgff0000\n",
		wire)
}

func TestHexLiteral(t *testing.T) {
	got, ok := hexLiteral("#12ab56")
	require.True(t, ok)
	assert.Equal(t, "#12ab56", got)

	// Named colours resolve through their packed foreground value, which
	// keeps the host palette's channel conventions.
	got, ok = hexLiteral("red")
	require.True(t, ok)
	assert.Equal(t, "#0000ff", got)

	_, ok = hexLiteral("")
	assert.False(t, ok)
	_, ok = hexLiteral("chartreuse")
	assert.False(t, ok)
}
