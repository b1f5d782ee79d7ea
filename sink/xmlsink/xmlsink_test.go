package xmlsink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckmark/deckmark/apply"
)

func TestDocumentStructure(t *testing.T) {
	s := New()
	require.NoError(t, s.SetText("Hello\nWorld"))

	rng, err := s.Range(1, 5)
	require.NoError(t, err)
	require.NoError(t, rng.SetBold(true))
	require.NoError(t, rng.SetColor(0xff0000))

	doc := s.Document()
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "p:txBody", root.FullTag())

	paras := root.SelectElements("a:p")
	require.Len(t, paras, 2)

	runs := paras[0].SelectElements("a:r")
	require.Len(t, runs, 1)
	rPr := runs[0].SelectElement("a:rPr")
	require.NotNil(t, rPr)
	assert.Equal(t, "1", rPr.SelectAttrValue("b", ""))
	clr := rPr.FindElement("a:solidFill/a:srgbClr")
	require.NotNil(t, clr)
	assert.Equal(t, "FF0000", clr.SelectAttrValue("val", ""))
	assert.Equal(t, "Hello", runs[0].SelectElement("a:t").Text())

	plain := paras[1].SelectElements("a:r")
	require.Len(t, plain, 1)
	assert.Equal(t, "World", plain[0].SelectElement("a:t").Text())
}

func TestDocumentSegmentsAtStyleBoundaries(t *testing.T) {
	s := New()
	require.NoError(t, s.SetText("abcdef"))

	rng, err := s.Range(3, 2)
	require.NoError(t, err)
	require.NoError(t, rng.SetItalic(true))

	doc := s.Document()
	runs := doc.Root().SelectElements("a:p")[0].SelectElements("a:r")
	require.Len(t, runs, 3)
	assert.Equal(t, "ab", runs[0].SelectElement("a:t").Text())
	assert.Equal(t, "cd", runs[1].SelectElement("a:t").Text())
	assert.Equal(t, "ef", runs[2].SelectElement("a:t").Text())
	assert.Equal(t, "1", runs[1].SelectElement("a:rPr").SelectAttrValue("i", ""))
	assert.Equal(t, "", runs[0].SelectElement("a:rPr").SelectAttrValue("i", ""))
}

func TestDocumentRunProperties(t *testing.T) {
	s := New()
	require.NoError(t, s.SetText("x"))

	rng, err := s.Range(1, 1)
	require.NoError(t, err)
	require.NoError(t, rng.SetUnderline(true))
	require.NoError(t, rng.SetStrikethrough(true))
	require.NoError(t, rng.SetBackground(0x12|0x34<<8|0x56<<16))
	fs, ok := rng.(apply.FontSizer)
	require.True(t, ok)
	require.NoError(t, fs.SetFontSize(42))

	rPr := s.Document().FindElement("//a:rPr")
	require.NotNil(t, rPr)
	assert.Equal(t, "sng", rPr.SelectAttrValue("u", ""))
	assert.Equal(t, "sngStrike", rPr.SelectAttrValue("strike", ""))
	assert.Equal(t, "4200", rPr.SelectAttrValue("sz", ""))
	hl := rPr.FindElement("a:highlight/a:srgbClr")
	require.NotNil(t, hl)
	assert.Equal(t, "123456", hl.SelectAttrValue("val", ""))
}

func TestDocumentParagraphAndBox(t *testing.T) {
	s := New()
	require.NoError(t, s.SetText("line"))
	require.NoError(t, s.SetAlignment(apply.AlignCenter))
	require.NoError(t, s.SetLineSpacing(1.5))
	require.NoError(t, s.SetMargins(10, 10, 5, 5))

	doc := s.Document()
	bodyPr := doc.FindElement("//a:bodyPr")
	require.NotNil(t, bodyPr)
	assert.Equal(t, "127000", bodyPr.SelectAttrValue("lIns", ""))
	assert.Equal(t, "63500", bodyPr.SelectAttrValue("tIns", ""))

	pPr := doc.FindElement("//a:p/a:pPr")
	require.NotNil(t, pPr)
	assert.Equal(t, "ctr", pPr.SelectAttrValue("algn", ""))
	spc := pPr.FindElement("a:lnSpc/a:spcPct")
	require.NotNil(t, spc)
	assert.Equal(t, "150000", spc.SelectAttrValue("val", ""))
}

func TestRangeBounds(t *testing.T) {
	s := New()
	require.NoError(t, s.SetText("short"))

	_, err := s.Range(0, 1)
	assert.Error(t, err)
	_, err = s.Range(1, 0)
	assert.Error(t, err)
	_, err = s.Range(2, 5)
	assert.Error(t, err)
	_, err = s.Range(1, 5)
	assert.NoError(t, err)
}

func TestWriteTo(t *testing.T) {
	s := New()
	require.NoError(t, s.SetText("hi"))

	var sb strings.Builder
	_, err := s.WriteTo(&sb)
	require.NoError(t, err)
	out := sb.String()
	assert.Contains(t, out, "<p:txBody>")
	assert.Contains(t, out, "<a:t>hi</a:t>")
}
