package poster

import (
	"context"
	"sync/atomic"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inceptionURL = "https://m.media-amazon.com/images/M/MV5BMjAxMzY3NjcxNF5BMl5BanBnXkFtZTcwNTI5OTM0Mw@@._V1_FMjpg_UX1000_.jpg"

func TestOfflineLoader_ValidURL(t *testing.T) {
	l := NewOfflineLoader()
	res := l.Load(context.Background(), inceptionURL)

	require.NoError(t, res.Err)
	assert.False(t, res.Placeholder)
	require.Len(t, res.Lines, DefaultHeight)
	for _, line := range res.Lines {
		assert.Equal(t, DefaultWidth, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, res.Lines[DefaultHeight-1], "m.media-amazon")
}

func TestOfflineLoader_Deterministic(t *testing.T) {
	l := OfflineLoader{Width: 10, Height: 5}
	a := l.Load(context.Background(), inceptionURL)
	b := l.Load(context.Background(), inceptionURL)
	assert.Equal(t, a.Lines, b.Lines)

	c := l.Load(context.Background(), "https://example.com/other.jpg")
	assert.NotEqual(t, a.Lines[:4], c.Lines[:4])
}

func TestOfflineLoader_Mirrored(t *testing.T) {
	res := OfflineLoader{Width: 9, Height: 4}.Load(context.Background(), inceptionURL)
	for _, line := range res.Lines[:3] {
		r := []rune(line)
		for i := range r {
			assert.Equal(t, r[i], r[len(r)-1-i])
		}
	}
}

func TestOfflineLoader_InvalidURLs(t *testing.T) {
	for _, raw := range []string{"", "tipa bolvanka", "ftp://example.com/x.jpg", "https://", "/relative.jpg", "http://%zz"} {
		res := NewOfflineLoader().Load(context.Background(), raw)
		assert.ErrorIs(t, res.Err, ErrInvalidURL, raw)
		assert.True(t, res.Placeholder, raw)
		assert.Contains(t, res.Art(), "no image", raw)
	}
}

func TestOfflineLoader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := NewOfflineLoader().Load(ctx, inceptionURL)
	assert.ErrorIs(t, res.Err, context.Canceled)
	assert.True(t, res.Placeholder)
}

func TestPlaceholder(t *testing.T) {
	lines := Placeholder(12, 5, "poster")
	require.Len(t, lines, 5)
	assert.Equal(t, "┌──────────┐", lines[0])
	assert.Equal(t, "│  poster  │", lines[2])
	assert.Equal(t, "└──────────┘", lines[4])

	tiny := Placeholder(0, 0, "long label")
	assert.Len(t, tiny, 2)
}

func TestPlaceholder_WideLabel(t *testing.T) {
	lines := Placeholder(8, 3, "映画")
	assert.Equal(t, "│ 映画 │", lines[1])

	for _, line := range Placeholder(8, 3, "ポスター画像") {
		assert.Equal(t, 8, cells.StringWidth(line), line)
	}
}

func TestOfflineLoader_WideHostCaption(t *testing.T) {
	res := NewOfflineLoader().Load(context.Background(), "https://映画館.example/poster.jpg")
	require.NoError(t, res.Err)
	require.False(t, res.Placeholder)
	for _, line := range res.Lines {
		assert.Equal(t, DefaultWidth, cells.StringWidth(line), line)
	}
}

type countingLoader struct {
	calls atomic.Int32
}

func (c *countingLoader) Load(ctx context.Context, rawURL string) Result {
	c.calls.Add(1)
	return NewOfflineLoader().Load(ctx, rawURL)
}

func TestCachingLoader(t *testing.T) {
	inner := &countingLoader{}
	c := NewCachingLoader(inner)

	first := c.Load(context.Background(), inceptionURL)
	second := c.Load(context.Background(), inceptionURL)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, inner.calls.Load())

	c.Load(context.Background(), "tipa bolvanka")
	assert.Equal(t, 2, c.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c.Load(ctx, "https://example.com/late.jpg")
	assert.Equal(t, 2, c.Len(), "cancelled loads are not cached")
}
