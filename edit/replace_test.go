package edit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deckmark/deckmark/sink/memsink"
)

func TestReplace(t *testing.T) {
	sink := memsink.New()
	require.NoError(t, sink.SetText("the cat sat on the mat"))

	n, err := Replace(context.Background(), sink, `\bthe\b`, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "a cat sat on a mat", sink.Text())
}

func TestReplaceCaptureGroups(t *testing.T) {
	sink := memsink.New()
	require.NoError(t, sink.SetText("2026-08-23"))

	n, err := Replace(context.Background(), sink, `(\d+)-(\d+)-(\d+)`, "$3/$2/$1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "23/08/2026", sink.Text())
}

func TestReplaceNoMatchLeavesTextAlone(t *testing.T) {
	sink := memsink.New()
	require.NoError(t, sink.SetText("unchanged"))

	n, err := Replace(context.Background(), sink, "zzz", "x")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, "unchanged", sink.Text())
}

func TestReplaceBadPattern(t *testing.T) {
	sink := memsink.New()
	require.NoError(t, sink.SetText("text"))

	_, err := Replace(context.Background(), sink, "(", "x")
	assert.Error(t, err)
	assert.Equal(t, "text", sink.Text())
}

func TestReplaceResetsStyling(t *testing.T) {
	sink := memsink.New()
	require.NoError(t, sink.SetText("styled"))
	rng, err := sink.Range(1, 6)
	require.NoError(t, err)
	require.NoError(t, rng.SetBold(true))

	_, err = Replace(context.Background(), sink, "styled", "rewritten")
	require.NoError(t, err)
	assert.True(t, sink.StyleAt(1).IsZero())
}
