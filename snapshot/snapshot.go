// Package snapshot caches a read-only textual description of document
// state.
//
// Reading a live document host is expensive, so callers keep one Cache per
// document and invalidate it explicitly after every mutating operation.
// The cache is an owned object, not a process-global: each caller decides
// its lifetime.  Like the rest of the codec it assumes a single writer;
// concurrent use must be serialised externally.
package snapshot

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/deckmark/deckmark/logger"
)

// Source produces the current textual description of a document.
type Source interface {
	Describe(ctx context.Context) (string, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (string, error)

func (f SourceFunc) Describe(ctx context.Context) (string, error) { return f(ctx) }

// Cache lazily reads a Source and serves the result until invalidated.
type Cache struct {
	src   Source
	valid bool
	text  string
}

// New returns an empty, invalid cache over src.
func New(src Source) *Cache { return &Cache{src: src} }

// Text returns the cached description, reading through to the source when
// the cache is invalid.  A source failure leaves the cache invalid so the
// next call retries.
func (c *Cache) Text(ctx context.Context) (string, error) {
	if c.valid {
		return c.text, nil
	}
	text, err := c.src.Describe(ctx)
	if err != nil {
		return "", fmt.Errorf("refresh snapshot: %w", err)
	}
	logger.L(ctx).Debug("snapshot refreshed", zap.Int("bytes", len(text)))
	c.text = text
	c.valid = true
	return c.text, nil
}

// Invalidate drops the cached text.  Call after any mutating operation on
// the underlying document.
func (c *Cache) Invalidate() {
	c.valid = false
	c.text = ""
}

// Valid reports whether the cache currently holds a snapshot.
func (c *Cache) Valid() bool { return c.valid }

// Multi combines several sources into one: sections are concatenated with
// blank lines in between.  A failing section is skipped and its error
// collected; the combined description still covers every section that
// succeeded, and the aggregate error reports the rest.
func Multi(sources ...Source) Source {
	return SourceFunc(func(ctx context.Context) (string, error) {
		var (
			parts []string
			errs  error
		)
		for i, src := range sources {
			text, err := src.Describe(ctx)
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("section %d: %w", i, err))
				continue
			}
			parts = append(parts, text)
		}
		return strings.Join(parts, "\n\n"), errs
	})
}
