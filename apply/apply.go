// Package apply drives formatting runs and block annotations onto a
// rich-text target.
//
// The applier never fails an operation because of one malformed fragment:
// invalid runs are skipped, unsupported target capabilities degrade
// per-property, and unrecognised colours are dropped.  Worst case the
// requested styling silently does not appear; the text content is always
// set.
package apply

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/deckmark/deckmark/logger"
	"github.com/deckmark/deckmark/style"
)

// Header sizing defaults, used when the Applier's fields are zero.
const (
	DefaultBaseFontSize   = 18
	DefaultHeaderSizeStep = 4
)

// Applier applies runs and block annotations to targets.  The zero value
// is ready to use with default header sizing.
type Applier struct {
	// BaseFontSize is the body text size headers are scaled from.
	BaseFontSize float64

	// HeaderSizeStep is the per-level size increment: an h1 line gets
	// BaseFontSize + 6×step, an h6 line BaseFontSize + 1×step.
	HeaderSizeStep float64
}

// Apply sets the target's whole text and then styles each run.  The text is
// set even when runs is empty.  A run is skipped when its attributes are
// empty or its span exceeds the text bounds; a failure applying one
// property never aborts the others.
func (ap *Applier) Apply(ctx context.Context, t Target, plain string, runs []style.Run) {
	log := logger.L(ctx)

	if err := t.SetText(plain); err != nil {
		log.Warn("set text", zap.Error(err))
	}

	n := utf8.RuneCountInString(plain)
	for _, r := range runs {
		if r.Attributes.IsZero() {
			continue
		}
		if r.Start < 1 || r.Length < 1 || r.Start > n || r.Start+r.Length-1 > n {
			log.Debug("run out of bounds; skipped",
				zap.Int("start", r.Start), zap.Int("length", r.Length), zap.Int("textLen", n))
			continue
		}
		rng, err := t.Range(r.Start, r.Length)
		if err != nil {
			log.Warn("acquire range", zap.Int("start", r.Start), zap.Int("length", r.Length), zap.Error(err))
			continue
		}
		applyAttributes(log, rng, r.Attributes)
	}
}

// applyAttributes sets each present attribute on rng, isolating failures
// per property.
func applyAttributes(log *zap.Logger, rng Range, a style.Attributes) {
	if a.Bold {
		if err := rng.SetBold(true); err != nil {
			log.Debug("set bold", zap.Error(err))
		}
	}
	if a.Italic {
		if err := rng.SetItalic(true); err != nil {
			log.Debug("set italic", zap.Error(err))
		}
	}
	if a.Underline {
		if err := rng.SetUnderline(true); err != nil {
			log.Debug("set underline", zap.Error(err))
		}
	}
	if a.Strikethrough {
		if err := rng.SetStrikethrough(true); err != nil {
			// Capability variance: some targets expose the property under
			// an alternate name.  Swallow failure when neither exists.
			if alt, ok := rng.(StrikeAlt); ok {
				if err := alt.SetStrike(true); err != nil {
					log.Debug("set strike fallback", zap.Error(err))
				}
			} else {
				log.Debug("strikethrough unsupported", zap.Error(err))
			}
		}
	}
	if !a.Color.IsZero() {
		if packed, ok := a.Color.PackForeground(); ok {
			if err := rng.SetColor(packed); err != nil {
				log.Debug("set color", zap.String("color", string(a.Color)), zap.Error(err))
			}
		}
	}
	if !a.Background.IsZero() {
		if packed, ok := a.Background.PackBackground(); ok {
			if err := rng.SetBackground(packed); err != nil {
				log.Debug("set background", zap.String("color", string(a.Background)), zap.Error(err))
			}
		}
	}
}

// ApplyBlocks runs the header pass: for each header annotation the
// annotated line's character range gets a size derived from the header
// level and is forced bold.  Bullet and numbered annotations need no
// styling — their prefixes were substituted textually by the block
// transformer.
//
// Call after Apply so header styling refines the inline runs.
func (ap *Applier) ApplyBlocks(ctx context.Context, t Target, plain string, blocks []style.Block) {
	log := logger.L(ctx)
	lines := strings.Split(plain, "\n")

	for _, b := range blocks {
		if b.Kind != style.Header {
			continue
		}
		if b.Line < 0 || b.Line >= len(lines) {
			log.Debug("header line out of range; skipped", zap.Int("line", b.Line))
			continue
		}
		length := utf8.RuneCountInString(lines[b.Line])
		if length == 0 {
			continue
		}
		start := 1
		for _, prev := range lines[:b.Line] {
			start += utf8.RuneCountInString(prev) + 1
		}

		rng, err := t.Range(start, length)
		if err != nil {
			log.Warn("acquire header range", zap.Int("line", b.Line), zap.Error(err))
			continue
		}
		if fs, ok := rng.(FontSizer); ok {
			if err := fs.SetFontSize(ap.headerSize(b.Level)); err != nil {
				log.Debug("set header size", zap.Int("level", b.Level), zap.Error(err))
			}
		}
		if err := rng.SetBold(true); err != nil {
			log.Debug("set header bold", zap.Error(err))
		}
	}
}

// headerSize returns the font size for a header level: level 1 largest,
// level 6 one step above base.  Out-of-range levels clamp.
func (ap *Applier) headerSize(level int) float64 {
	base, step := ap.BaseFontSize, ap.HeaderSizeStep
	if base == 0 {
		base = DefaultBaseFontSize
	}
	if step == 0 {
		step = DefaultHeaderSizeStep
	}
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return base + step*float64(7-level)
}

// Layout is box- and paragraph-level presentation for a whole target.
// Zero-valued fields are left untouched.
type Layout struct {
	Alignment   Alignment
	LineSpacing float64

	// Margins in points.  Applied only when HasMargins is set, since zero
	// is a legitimate margin.
	HasMargins               bool
	MarginLeft, MarginRight  float64
	MarginTop, MarginBottom  float64
}

// ApplyLayout sets paragraph- and box-level properties on targets that
// support them; targets without the capability are left unchanged.
func (ap *Applier) ApplyLayout(ctx context.Context, t Target, l Layout) {
	log := logger.L(ctx)

	if p, ok := t.(Paragraph); ok {
		if l.Alignment != AlignNone {
			if err := p.SetAlignment(l.Alignment); err != nil {
				log.Debug("set alignment", zap.Error(err))
			}
		}
		if l.LineSpacing > 0 {
			if err := p.SetLineSpacing(l.LineSpacing); err != nil {
				log.Debug("set line spacing", zap.Error(err))
			}
		}
	}
	if b, ok := t.(Box); ok && l.HasMargins {
		if err := b.SetMargins(l.MarginLeft, l.MarginRight, l.MarginTop, l.MarginBottom); err != nil {
			log.Debug("set margins", zap.Error(err))
		}
	}
}
