// Package poster stands in for an image loader. It never fetches anything:
// a poster URL that parses as an absolute http(s) URL is drawn as block art
// derived from the URL, anything else gets the error placeholder.
package poster

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/mattn/go-runewidth"
)

// ErrInvalidURL is reported for poster URLs that cannot name an image.
var ErrInvalidURL = errors.New("invalid poster url")

// Default art size in cells.
const (
	DefaultWidth  = 16
	DefaultHeight = 8
)

// Result is the outcome of a load: either art or a placeholder.
type Result struct {
	URL         string
	Lines       []string
	Placeholder bool
	Err         error
}

// Art joins the rendered lines.
func (r Result) Art() string {
	return strings.Join(r.Lines, "\n")
}

// Loader turns a poster URL into something drawable.
type Loader interface {
	Load(ctx context.Context, rawURL string) Result
}

// OfflineLoader renders posters without touching the network.
type OfflineLoader struct {
	Width  int
	Height int
}

// Ensure OfflineLoader implements Loader.
var _ Loader = OfflineLoader{}

// NewOfflineLoader returns a loader drawing DefaultWidth x DefaultHeight art.
func NewOfflineLoader() OfflineLoader {
	return OfflineLoader{Width: DefaultWidth, Height: DefaultHeight}
}

func (l OfflineLoader) size() (int, int) {
	w, h := l.Width, l.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// Load implements Loader.
func (l OfflineLoader) Load(ctx context.Context, rawURL string) Result {
	w, h := l.size()
	if err := ctx.Err(); err != nil {
		return Result{URL: rawURL, Lines: Placeholder(w, h, "cancelled"), Placeholder: true, Err: err}
	}
	u, err := Validate(rawURL)
	if err != nil {
		return Result{URL: rawURL, Lines: Placeholder(w, h, "no image"), Placeholder: true, Err: err}
	}
	return Result{URL: rawURL, Lines: render(u, w, h)}
}

// Validate accepts absolute http and https URLs with a host.
func Validate(rawURL string) (*url.URL, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q has no http(s) scheme", ErrInvalidURL, rawURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
	}
	return u, nil
}

var shades = []rune(" ░▒▓█")

// render draws a w x h block pattern seeded from the URL, mirrored left to
// right, with the host on the bottom row.
func render(u *url.URL, w, h int) []string {
	state := xxhash.Sum64String(u.String())
	if state == 0 {
		state = 1
	}
	next := func() uint64 {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		return state
	}

	lines := make([]string, 0, h)
	half := (w + 1) / 2
	for y := 0; y < h-1; y++ {
		row := make([]rune, w)
		for x := 0; x < half; x++ {
			c := shades[next()%uint64(len(shades))]
			row[x] = c
			row[w-1-x] = c
		}
		lines = append(lines, string(row))
	}
	lines = append(lines, caption(u.Hostname(), w))
	return lines
}

// Placeholder draws a framed box with a centred label.
func Placeholder(w, h int, label string) []string {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	lines := make([]string, 0, h)
	lines = append(lines, "┌"+strings.Repeat("─", w-2)+"┐")
	mid := (h - 1) / 2
	for y := 1; y < h-1; y++ {
		inner := strings.Repeat(" ", w-2)
		if y == mid {
			inner = caption(label, w-2)
		}
		lines = append(lines, "│"+inner+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", w-2)+"┘")
	return lines
}

// cells measures text in terminal cells. Frame and shade runes are
// East Asian ambiguous, so the width must not follow the locale.
var cells = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// caption centres s in w cells, truncating what does not fit.
func caption(s string, w int) string {
	s = cells.Truncate(s, w, "")
	pad := w - cells.StringWidth(s)
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// CachingLoader remembers results per URL. Safe for concurrent use, since
// loads run inside tea.Cmd goroutines.
type CachingLoader struct {
	next Loader

	mu    sync.Mutex
	cache map[string]Result
}

// Ensure CachingLoader implements Loader.
var _ Loader = (*CachingLoader)(nil)

// NewCachingLoader wraps next.
func NewCachingLoader(next Loader) *CachingLoader {
	return &CachingLoader{next: next, cache: make(map[string]Result)}
}

// Load implements Loader. Cancelled loads are not cached.
func (c *CachingLoader) Load(ctx context.Context, rawURL string) Result {
	c.mu.Lock()
	res, ok := c.cache[rawURL]
	c.mu.Unlock()
	if ok {
		return res
	}

	res = c.next.Load(ctx, rawURL)
	if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
		return res
	}

	c.mu.Lock()
	c.cache[rawURL] = res
	c.mu.Unlock()
	return res
}

// Len reports how many URLs are cached.
func (c *CachingLoader) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.cache)
}
