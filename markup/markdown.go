package markup

import (
	"sort"

	"github.com/dlclark/regexp2"

	"github.com/deckmark/deckmark/style"
)

// mdPattern is one pass of the markdown scanner.  Patterns are applied in
// declaration order: colour and background blocks first so their inner
// delimiters survive for the recursive pass, bold before italic so single
// asterisks are not consumed out of double ones, then strikethrough and the
// custom underline token.
type mdPattern struct {
	re         *regexp2.Regexp
	color      bool // {color:V} block: group 1 value, group 2 content
	background bool // {bg:V} block: group 1 value, group 2 content
	attrs      style.Attributes
}

// The italic patterns need negative lookaround (to avoid re-matching the
// bold delimiters), which the stdlib RE2 engine cannot express; regexp2
// also reports match offsets in runes, which is what run positions count.
var mdPatterns = []mdPattern{
	{re: regexp2.MustCompile(`\{color:([^}]+)\}(.*?)\{/color\}`, regexp2.Singleline), color: true},
	{re: regexp2.MustCompile(`\{bg:([^}]+)\}(.*?)\{/bg\}`, regexp2.Singleline), background: true},
	{re: regexp2.MustCompile(`\*\*(.*?)\*\*`, regexp2.Singleline), attrs: style.Attributes{Bold: true}},
	{re: regexp2.MustCompile(`__(.*?)__`, regexp2.Singleline), attrs: style.Attributes{Bold: true}},
	{re: regexp2.MustCompile(`(?<!\*)\*([^*]+?)\*(?!\*)`, regexp2.None), attrs: style.Attributes{Italic: true}},
	{re: regexp2.MustCompile(`(?<!_)_([^_]+?)_(?!_)`, regexp2.None), attrs: style.Attributes{Italic: true}},
	{re: regexp2.MustCompile(`~~(.*?)~~`, regexp2.Singleline), attrs: style.Attributes{Strikethrough: true}},
	{re: regexp2.MustCompile(`\[u\](.*?)\[/u\]`, regexp2.Singleline), attrs: style.Attributes{Underline: true}},
}

// MarkdownParser is the multi-pass pattern strategy.  Each pass strips one
// delimiter family from the working text, recording a run at the match's
// final offset; colour and background blocks re-parse their inner content
// recursively so nested formatting survives.
type MarkdownParser struct{}

// NewMarkdownParser returns the Markdown-dialect inline parser.
func NewMarkdownParser() *MarkdownParser { return &MarkdownParser{} }

// Parse converts markdown-flavoured text into plain text plus runs.
func (p *MarkdownParser) Parse(text string) (string, []style.Run) {
	plain, runs := parseMarkdown(text)
	sortRuns(runs)
	return plain, runs
}

func parseMarkdown(text string) (string, []style.Run) {
	plain := []rune(text)
	var runs []style.Run

	for _, pat := range mdPatterns {
		matches := findAll(pat.re, string(plain))

		// Replace in reverse source order so earlier match offsets stay
		// valid for the remaining replacements of this pass.
		for i := len(matches) - 1; i >= 0; i-- {
			m := matches[i]
			start, length := m.Index, m.Length

			if pat.color || pat.background {
				value := m.GroupByNumber(1).String()
				inner := m.GroupByNumber(2).String()

				// Nested formatting inside the block is parsed by the same
				// algorithm, then re-based onto this match's offset.
				nestedPlain, nested := parseMarkdown(inner)
				content := []rune(nestedPlain)
				plain = splice(plain, start, length, content)

				var a style.Attributes
				if c, ok := style.ParseColor(value); ok {
					if pat.color {
						a.Color = c
					} else {
						a.Background = c
					}
				}
				runs = append(runs, style.Run{Start: start + 1, Length: len(content), Attributes: a})
				for _, r := range nested {
					runs = append(runs, style.Run{Start: start + r.Start, Length: r.Length, Attributes: r.Attributes})
				}
				continue
			}

			content := []rune(m.GroupByNumber(1).String())
			plain = splice(plain, start, length, content)
			if len(content) > 0 {
				runs = append(runs, style.Run{Start: start + 1, Length: len(content), Attributes: pat.attrs})
			}
		}
	}
	return string(plain), runs
}

// findAll collects every match of re in s.  A matching error ends the pass
// with whatever was found so far; the parser contract is to degrade, never
// to fail.
func findAll(re *regexp2.Regexp, s string) []*regexp2.Match {
	var ms []*regexp2.Match
	m, err := re.FindStringMatch(s)
	for err == nil && m != nil {
		ms = append(ms, m)
		m, err = re.FindNextMatch(m)
	}
	return ms
}

// splice replaces s[start:start+length] with content.
func splice(s []rune, start, length int, content []rune) []rune {
	out := make([]rune, 0, len(s)-length+len(content))
	out = append(out, s[:start]...)
	out = append(out, content...)
	out = append(out, s[start+length:]...)
	return out
}

// sortRuns orders runs by start position; equal starts keep production order.
func sortRuns(runs []style.Run) {
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].Start < runs[j].Start })
}
