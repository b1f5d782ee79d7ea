package acmesink

import (
	"fmt"
	"sort"
	"strings"

	"github.com/deckmark/deckmark/style"
)

// attrSpan is one styling operation recorded by a range setter: the
// attributes to fold into the half-open rune interval [lo, hi).
type attrSpan struct {
	lo, hi int
	attrs  style.Attributes
}

// styledRun is a composed, non-overlapping output span.
type styledRun struct {
	lo, hi int
	attrs  style.Attributes
}

// composeSpans flattens possibly-overlapping styling operations into a
// sorted list of non-overlapping runs, which is what the styles layer
// protocol requires.  Operations are folded in recording order: boolean
// attributes accumulate, and a later colour replaces an earlier one at the
// positions where both apply.
func composeSpans(spans []attrSpan) []styledRun {
	type event struct {
		pos   int
		idx   int
		isEnd bool
	}
	var events []event
	for i, sp := range spans {
		if sp.hi <= sp.lo || sp.attrs.IsZero() {
			continue
		}
		events = append(events, event{sp.lo, i, false})
		events = append(events, event{sp.hi, i, true})
	}
	if len(events) == 0 {
		return nil
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].pos != events[j].pos {
			return events[i].pos < events[j].pos
		}
		if events[i].isEnd != events[j].isEnd {
			return events[i].isEnd
		}
		return events[i].idx < events[j].idx
	})

	active := make(map[int]bool)
	merged := func() style.Attributes {
		idxs := make([]int, 0, len(active))
		for i := range active {
			idxs = append(idxs, i)
		}
		sort.Ints(idxs)
		var a style.Attributes
		for _, i := range idxs {
			a = fold(a, spans[i].attrs)
		}
		return a
	}

	var out []styledRun
	var cur style.Attributes
	curPos := 0

	for i := 0; i < len(events); {
		pos := events[i].pos
		if pos > curPos && !cur.IsZero() {
			out = append(out, styledRun{lo: curPos, hi: pos, attrs: cur})
		}
		for i < len(events) && events[i].pos == pos {
			if events[i].isEnd {
				delete(active, events[i].idx)
			} else {
				active[events[i].idx] = true
			}
			i++
		}
		curPos = pos
		cur = merged()
	}

	// Coalesce adjacent runs that composed to identical attributes.
	coalesced := out[:0]
	for _, r := range out {
		if n := len(coalesced); n > 0 && coalesced[n-1].hi == r.lo && coalesced[n-1].attrs == r.attrs {
			coalesced[n-1].hi = r.hi
			continue
		}
		coalesced = append(coalesced, r)
	}
	return coalesced
}

// fold layers b over a: booleans accumulate, later colours win.
func fold(a, b style.Attributes) style.Attributes {
	a.Bold = a.Bold || b.Bold
	a.Italic = a.Italic || b.Italic
	a.Underline = a.Underline || b.Underline
	a.Strikethrough = a.Strikethrough || b.Strikethrough
	if !b.Color.IsZero() {
		a.Color = b.Color
	}
	if !b.Background.IsZero() {
		a.Background = b.Background
	}
	return a
}

// paletteName derives a stable layer-palette entry name from an attribute
// set, e.g. "bi-fg0000ff" for bold italic blue.
func paletteName(a style.Attributes) string {
	var sb strings.Builder
	if a.Bold {
		sb.WriteByte('b')
	}
	if a.Italic {
		sb.WriteByte('i')
	}
	if a.Underline {
		sb.WriteByte('u')
	}
	if !a.Color.IsZero() {
		fmt.Fprintf(&sb, "-fg%s", strings.TrimPrefix(string(a.Color), "#"))
	}
	if !a.Background.IsZero() {
		fmt.Fprintf(&sb, "-bg%s", strings.TrimPrefix(string(a.Background), "#"))
	}
	name := strings.TrimPrefix(sb.String(), "-")
	if name == "" {
		name = "plain"
	}
	return name
}

// formatWire serialises composed runs into the styles compositor wire
// format: palette definition lines (":name fg=#rrggbb bold ...") followed
// by "start length name" run lines with 0-based rune offsets.
func formatWire(runs []styledRun) string {
	var sb strings.Builder
	seen := make(map[string]bool)
	for _, r := range runs {
		name := paletteName(r.attrs)
		if seen[name] {
			continue
		}
		seen[name] = true
		fmt.Fprintf(&sb, ":%s", name)
		if c, ok := hexLiteral(r.attrs.Color); ok {
			fmt.Fprintf(&sb, " fg=%s", c)
		}
		if c, ok := hexLiteral(r.attrs.Background); ok {
			fmt.Fprintf(&sb, " bg=%s", c)
		}
		if r.attrs.Bold {
			sb.WriteString(" bold")
		}
		if r.attrs.Italic {
			sb.WriteString(" italic")
		}
		if r.attrs.Underline {
			sb.WriteString(" underline")
		}
		sb.WriteByte('\n')
	}
	for _, r := range runs {
		fmt.Fprintf(&sb, "%d %d %s\n", r.lo, r.hi-r.lo, paletteName(r.attrs))
	}
	return sb.String()
}

// hexLiteral returns the #rrggbb form of c, resolving palette names through
// their packed foreground value.
func hexLiteral(c style.Color) (string, bool) {
	if c.IsZero() {
		return "", false
	}
	if c.Hex() {
		return string(c), true
	}
	packed, ok := c.PackForeground()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("#%02x%02x%02x", (packed>>16)&0xff, (packed>>8)&0xff, packed&0xff), true
}
