package style

import "strings"

// Color is a validated colour specification: either a "#rrggbb" hex literal
// (exactly six hex digits, lower-cased on parse) or one of the fixed palette
// names.  The zero value means "no colour specified".
type Color string

// Palette is the closed set of recognised colour names and their pre-packed
// integer values in the target's native foreground channel order.  The
// values come from the presentation host's colour table and are not derived
// from the hex packing formula.
var palette = map[Color]int{
	"red":    255,
	"blue":   16711680,
	"green":  65280,
	"yellow": 65535,
	"orange": 33023,
	"purple": 8388736,
	"black":  0,
	"white":  16777215,
}

// ParseColor validates s as a Color.  Malformed values — a hex literal that
// is not exactly six hex digits, or a name outside the palette — return the
// zero Color and ok=false rather than an error: a bad colour never fails
// the surrounding parse.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 || !isHex(hex) {
			return "", false
		}
		return Color(s), true
	}
	if _, ok := palette[Color(s)]; ok {
		return Color(s), true
	}
	return "", false
}

// IsZero reports whether c specifies no colour.
func (c Color) IsZero() bool { return c == "" }

// Hex reports whether c is a hex literal.
func (c Color) Hex() bool { return strings.HasPrefix(string(c), "#") }

// RGB returns the 8-bit channels of a hex Color.  Named colours report
// ok=false; their packed values come straight from the palette table.
func (c Color) RGB() (r, g, b int, ok bool) {
	if !c.Hex() || len(c) != 7 {
		return 0, 0, 0, false
	}
	h := string(c[1:])
	return hexByte(h[0:2]), hexByte(h[2:4]), hexByte(h[4:6]), true
}

// PackForeground converts c into the target's foreground channel order:
// blue in the low byte (b + g<<8 + r<<16).  Named colours use the palette
// table.  Unrecognised values return ok=false and must be skipped.
func (c Color) PackForeground() (int, bool) {
	if r, g, b, ok := c.RGB(); ok {
		return b + g<<8 + r<<16, true
	}
	if v, ok := palette[c]; ok {
		return v, true
	}
	return 0, false
}

// PackBackground converts c into the target's background channel order,
// which differs from the foreground order: red stays in the low byte
// (r + g<<8 + b<<16).  This is a contract of this particular target, not a
// universal rule.  Only hex literals are packable for backgrounds.
func (c Color) PackBackground() (int, bool) {
	if r, g, b, ok := c.RGB(); ok {
		return r + g<<8 + b<<16, true
	}
	return 0, false
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' || c >= 'a' && c <= 'f' {
			continue
		}
		return false
	}
	return true
}

func hexByte(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		v <<= 4
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v |= int(c - '0')
		case c >= 'a' && c <= 'f':
			v |= int(c-'a') + 10
		}
	}
	return v
}
