package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"couchpotato/internal/catalog"
	"couchpotato/internal/poster"
)

var inception = catalog.Item{
	Section:     catalog.Movies,
	Name:        "Inception",
	Description: "A skilled thief is given a chance to erase his past crimes.",
	PosterURL:   "https://m.media-amazon.com/images/inception.jpg",
	Rating:      4,
}

func TestDetailView_RatingStartsFromItem(t *testing.T) {
	d := NewDetailView(inception, nil)
	if d.Rating.Value() != 4 || d.Rating.Changed() {
		t.Errorf("rating = %d changed=%v, want 4 unchanged", d.Rating.Value(), d.Rating.Changed())
	}
}

func TestDetailView_RatingKeys(t *testing.T) {
	d := NewDetailView(inception, nil)

	d.Update(keyMsg("2"))
	if d.Rating.Value() != 2 {
		t.Errorf("2: rating = %d", d.Rating.Value())
	}
	d.Update(keyMsg("l"))
	if d.Rating.Value() != 3 {
		t.Errorf("l: rating = %d", d.Rating.Value())
	}
	for range 5 {
		d.Update(keyMsg("h"))
	}
	if d.Rating.Value() != 1 {
		t.Errorf("h should clamp at 1, got %d", d.Rating.Value())
	}
	d.Update(keyMsg("9"))
	d.Update(keyMsg("0"))
	if d.Rating.Value() != 1 {
		t.Errorf("out-of-range digits must not change the rating, got %d", d.Rating.Value())
	}
	for range 6 {
		d.Update(keyMsg("right"))
	}
	if d.Rating.Value() != 5 {
		t.Errorf("right should clamp at 5, got %d", d.Rating.Value())
	}
	if inception.Rating != 4 {
		t.Error("the stored rating must not change")
	}
	if !strings.Contains(d.View(), "(was 4)") {
		t.Error("changed rating should show the stored value")
	}
}

func TestDetailView_DecreaseOnUnratedItem(t *testing.T) {
	unrated := inception
	unrated.Rating = 0
	d := NewDetailView(unrated, nil)

	for _, k := range []string{"h", "left", "-"} {
		d.Update(keyMsg(k))
		if d.Rating.Value() != 0 {
			t.Errorf("%s raised an unrated item to %d", k, d.Rating.Value())
		}
	}
	if strings.Contains(d.View(), "(was") {
		t.Error("rating should be unchanged")
	}
}

func TestDetailView_RemountResetsRating(t *testing.T) {
	d := NewDetailView(inception, nil)
	d.Update(keyMsg("1"))

	again := NewDetailView(inception, nil)
	if again.Rating.Value() != 4 {
		t.Errorf("remounted rating = %d, want 4", again.Rating.Value())
	}
}

func TestDetailView_Back(t *testing.T) {
	for _, k := range []string{"esc", "backspace"} {
		d := NewDetailView(inception, nil)
		_, cmd := d.Update(keyMsg(k))
		if _, ok := runCmd(cmd).(BackMsg); !ok {
			t.Errorf("%s should emit BackMsg, got %#v", k, runCmd(cmd))
		}
	}
}

func TestDetailView_PosterLoad(t *testing.T) {
	d := NewDetailView(inception, poster.NewOfflineLoader())
	if !d.Loading() {
		t.Fatal("expected loading before the poster arrives")
	}
	if d.Init() == nil {
		t.Fatal("Init should start the poster load")
	}

	// A late result for another item is ignored.
	d.Update(PosterLoadedMsg{Result: poster.Result{URL: "https://example.com/other.jpg"}})
	if !d.Loading() {
		t.Error("stale poster result should be ignored")
	}

	msg := loadPoster(poster.NewOfflineLoader(), inception.PosterURL)()
	d.Update(msg)
	if d.Loading() {
		t.Error("poster result should end loading")
	}
	if d.Poster().Placeholder || d.Poster().Err != nil {
		t.Errorf("valid url should render art, got %+v", d.Poster())
	}
	if !strings.Contains(d.View(), "m.media-amazon") {
		t.Error("poster art caption missing from view")
	}
}

func TestDetailView_InvalidPosterURL(t *testing.T) {
	it := catalog.Item{Section: catalog.Movies, Name: "Some movie", PosterURL: "tipa bolvanka", Rating: 5}
	d := NewDetailView(it, poster.NewOfflineLoader())
	d.Update(loadPoster(poster.NewOfflineLoader(), it.PosterURL)())

	if !d.Poster().Placeholder {
		t.Error("invalid url should give the placeholder")
	}
	if !strings.Contains(d.View(), "no image") {
		t.Error("placeholder label missing")
	}
}

func TestDetailView_View(t *testing.T) {
	d := NewDetailView(inception, nil)
	d.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	out := d.View()
	for _, want := range []string{"Back", "Inception", "★★★★☆", "skilled thief", "esc back"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail view missing %q", want)
		}
	}
}

func TestDetailView_DescriptionFallback(t *testing.T) {
	d := NewDetailView(catalog.Item{Section: catalog.Shows, Name: "Untitled", Rating: 0}, nil)
	if !strings.Contains(d.View(), "Detailed description about Untitled.") {
		t.Error("empty description should fall back to the generic text")
	}
	if !strings.Contains(d.View(), "☆☆☆☆☆") {
		t.Error("rating 0 should draw five empty stars")
	}
}
