package markup

import (
	"fmt"
	"strings"
)

// Convenience constructors for common HTML-dialect fragments.  Callers
// assembling markup programmatically (rather than receiving it from an
// upstream generator) can compose these instead of concatenating tags by
// hand.

// Bold wraps text in bold tags.
func Bold(text string) string { return "<b>" + text + "</b>" }

// Italic wraps text in italic tags.
func Italic(text string) string { return "<i>" + text + "</i>" }

// Underline wraps text in underline tags.
func Underline(text string) string { return "<u>" + text + "</u>" }

// Strikethrough wraps text in strikethrough tags.
func Strikethrough(text string) string { return "<s>" + text + "</s>" }

// Color wraps text in a span carrying a foreground colour declaration.
func Color(text, color string) string {
	return fmt.Sprintf(`<span style="color: %s">%s</span>`, color, text)
}

// Background wraps text in a span carrying a background colour declaration.
func Background(text, color string) string {
	return fmt.Sprintf(`<span style="background-color: %s">%s</span>`, color, text)
}

// Header wraps text in a header tag of the given level (clamped to 1..6).
func Header(text string, level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return fmt.Sprintf("<h%d>%s</h%d>", level, text, level)
}

// BulletList builds an unordered list from items.
func BulletList(items ...string) string {
	var sb strings.Builder
	sb.WriteString("<ul>")
	for _, item := range items {
		sb.WriteString("<li>" + item + "</li>")
	}
	sb.WriteString("</ul>")
	return sb.String()
}

// NumberedList builds an ordered list from items.
func NumberedList(items ...string) string {
	var sb strings.Builder
	sb.WriteString("<ol>")
	for _, item := range items {
		sb.WriteString("<li>" + item + "</li>")
	}
	sb.WriteString("</ol>")
	return sb.String()
}
