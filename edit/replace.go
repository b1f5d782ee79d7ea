// Package edit provides text-level operations over rich-text targets.
package edit

import (
	"context"
	"fmt"
	"regexp"

	"go.uber.org/zap"

	"github.com/deckmark/deckmark/apply"
	"github.com/deckmark/deckmark/logger"
)

// TextTarget is a target whose current text can be read back, which
// replacement requires.
type TextTarget interface {
	apply.Target
	apply.TextSource
}

// Replace applies a regular-expression substitution to the target's text
// and returns the number of replacements made.
//
// Unlike markup content, the pattern is caller input, so a compilation
// failure is surfaced as an error instead of degrading silently.
// Replacement rewrites the whole text through SetText; any styling on the
// target is reset, matching the host's behaviour for whole-text writes.
func Replace(ctx context.Context, t TextTarget, pattern, replacement string) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}

	text := t.Text()
	n := len(re.FindAllStringIndex(text, -1))
	if n == 0 {
		return 0, nil
	}

	if err := t.SetText(re.ReplaceAllString(text, replacement)); err != nil {
		return 0, fmt.Errorf("set replaced text: %w", err)
	}
	logger.L(ctx).Debug("replaced", zap.String("pattern", pattern), zap.Int("count", n))
	return n, nil
}
