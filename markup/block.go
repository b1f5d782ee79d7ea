package markup

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/deckmark/deckmark/style"
)

// bulletGlyph is the textual prefix substituted for list-item markers.
const bulletGlyph = "•"

var (
	ulRe     = regexp.MustCompile(`(?is)<ul[^>]*>(.*?)</ul>`)
	olRe     = regexp.MustCompile(`(?is)<ol[^>]*>(.*?)</ol>`)
	liRe     = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	headerRe = regexp.MustCompile(`(?is)<h([1-6])[^>]*>(.*?)</h[1-6]>`)

	spaceRunRe  = regexp.MustCompile(`[ \t]+`)
	blankLineRe = regexp.MustCompile(`\n\s*\n`)

	mdNumberedRe = regexp.MustCompile(`^(\d+)\.\s(.+)`)
)

// blockWrapperRes strips generic container tags, keeping their inner
// content (inline markup included) for the next stage.
var blockWrapperRes = func() []*regexp.Regexp {
	tags := []string{"p", "div", "section", "article", "main", "aside", "nav", "header", "footer"}
	res := make([]*regexp.Regexp, len(tags))
	for i, tag := range tags {
		res[i] = regexp.MustCompile(fmt.Sprintf(`(?is)<%s[^>]*>(.*?)</%s>`, tag, tag))
	}
	return res
}()

// TransformHTML rewrites the HTML dialect's line-oriented constructs into
// plain lines plus per-line block annotations.
//
// List containers become one line per item with a bullet glyph or a number
// (ordered numbering restarts at 1 per list block); headers are replaced by
// their inner content and reported as annotations; generic block wrappers
// are stripped.  Whitespace is normalised after substitution so the
// injected newlines survive: runs of spaces and tabs collapse to one space,
// blank lines are removed, and the whole text is trimmed.
//
// Header annotations are resolved by content containment against the final
// line array — the first line containing the header's captured content
// wins.  Duplicate or overlapping line content can therefore mis-attribute
// an annotation; see the package tests for the documented behaviour.
func TransformHTML(text string) (string, []style.Block) {
	text = ulRe.ReplaceAllStringFunc(text, func(block string) string {
		inner := ulRe.FindStringSubmatch(block)[1]
		var sb strings.Builder
		for _, li := range liRe.FindAllStringSubmatch(inner, -1) {
			fmt.Fprintf(&sb, "%s %s\n", bulletGlyph, strings.TrimSpace(li[1]))
		}
		return strings.TrimRight(sb.String(), "\n")
	})

	text = olRe.ReplaceAllStringFunc(text, func(block string) string {
		inner := olRe.FindStringSubmatch(block)[1]
		var sb strings.Builder
		for i, li := range liRe.FindAllStringSubmatch(inner, -1) {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, strings.TrimSpace(li[1]))
		}
		return strings.TrimRight(sb.String(), "\n")
	})

	// Record header content before substitution; line attribution happens
	// after whitespace normalisation, by containment matching.
	type header struct {
		level   int
		content string
	}
	var headers []header
	for _, m := range headerRe.FindAllStringSubmatch(text, -1) {
		level, _ := strconv.Atoi(m[1])
		headers = append(headers, header{level: level, content: strings.TrimSpace(m[2])})
	}
	text = headerRe.ReplaceAllString(text, "$2")

	for _, re := range blockWrapperRes {
		text = re.ReplaceAllString(text, "$1")
	}

	text = spaceRunRe.ReplaceAllString(text, " ")
	text = blankLineRe.ReplaceAllString(text, "\n")
	text = strings.TrimSpace(text)

	var blocks []style.Block
	lines := strings.Split(text, "\n")
	for _, h := range headers {
		for i, line := range lines {
			if strings.Contains(strings.TrimSpace(line), h.content) {
				blocks = append(blocks, style.Block{Line: i, Kind: style.Header, Level: h.level})
				break
			}
		}
	}
	return text, blocks
}

// TransformMarkdown rewrites the Markdown dialect's line-oriented
// constructs.  Bullet items get the bullet glyph, numbered items keep their
// source number, and headers are replaced by their content; each qualifying
// line is reported as a block annotation.  Lines are otherwise preserved
// as-is.
func TransformMarkdown(text string) (string, []style.Block) {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	var blocks []style.Block

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		indent := (len(line) - len(strings.TrimLeft(line, " "))) / 2

		switch {
		case strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* "):
			content := strings.TrimSpace(stripped[2:])
			out = append(out, bulletGlyph+" "+content)
			blocks = append(blocks, style.Block{Line: i, Kind: style.Bullet, Indent: indent})

		case mdNumberedRe.MatchString(stripped):
			m := mdNumberedRe.FindStringSubmatch(stripped)
			number, _ := strconv.Atoi(m[1])
			out = append(out, m[1]+". "+m[2])
			blocks = append(blocks, style.Block{Line: i, Kind: style.Numbered, Number: number, Indent: indent})

		case strings.HasPrefix(stripped, "#"):
			level := len(stripped) - len(strings.TrimLeft(stripped, "#"))
			content := strings.TrimSpace(strings.TrimLeft(stripped, "# "))
			out = append(out, content)
			blocks = append(blocks, style.Block{Line: i, Kind: style.Header, Level: level})

		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n"), blocks
}
