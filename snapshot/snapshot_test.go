package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func countingSource(text string, calls *int) Source {
	return SourceFunc(func(ctx context.Context) (string, error) {
		*calls++
		return text, nil
	})
}

func TestTextReadsThroughOnce(t *testing.T) {
	var calls int
	c := New(countingSource("state", &calls))
	assert.False(t, c.Valid())

	got, err := c.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "state", got)
	assert.True(t, c.Valid())

	got, err = c.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "state", got)
	assert.Equal(t, 1, calls)
}

func TestInvalidateForcesRefresh(t *testing.T) {
	var calls int
	c := New(countingSource("state", &calls))

	_, err := c.Text(context.Background())
	require.NoError(t, err)
	c.Invalidate()
	assert.False(t, c.Valid())

	_, err = c.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSourceFailureLeavesInvalid(t *testing.T) {
	boom := errors.New("host gone")
	fail := true
	c := New(SourceFunc(func(ctx context.Context) (string, error) {
		if fail {
			return "", boom
		}
		return "recovered", nil
	}))

	_, err := c.Text(context.Background())
	require.ErrorIs(t, err, boom)
	assert.False(t, c.Valid())

	fail = false
	got, err := c.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "recovered", got)
}

func TestMulti(t *testing.T) {
	boom := errors.New("section down")
	src := Multi(
		SourceFunc(func(ctx context.Context) (string, error) { return "one", nil }),
		SourceFunc(func(ctx context.Context) (string, error) { return "", boom }),
		SourceFunc(func(ctx context.Context) (string, error) { return "three", nil }),
	)

	got, err := src.Describe(context.Background())
	assert.Equal(t, "one\n\nthree", got)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, multierr.Errors(err), 1)
}
