package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"couchpotato/internal/catalog"
	"couchpotato/internal/nav"
	"couchpotato/internal/poster"
)

// DetailView shows one item. Its Rating lives only as long as the view: a
// new DetailView starts again from the item's stored rating.
type DetailView struct {
	Item   catalog.Item
	Rating nav.Rating

	loader  poster.Loader
	poster  poster.Result
	loading bool
	spinner spinner.Model
	width   int
	height  int
}

// Ensure DetailView implements View.
var _ View = (*DetailView)(nil)

// NewDetailView mounts the detail screen for it. A nil loader leaves the
// poster as a placeholder.
func NewDetailView(it catalog.Item, loader poster.Loader) *DetailView {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	v := &DetailView{
		Item:    it,
		Rating:  nav.NewRating(it),
		loader:  loader,
		spinner: s,
	}
	if loader != nil {
		v.loading = true
	} else {
		v.poster = poster.Result{URL: it.PosterURL, Lines: poster.Placeholder(poster.DefaultWidth, poster.DefaultHeight, "no image"), Placeholder: true}
	}
	return v
}

// Loading reports whether the poster is still being fetched.
func (d *DetailView) Loading() bool {
	return d.loading
}

// Poster returns the last poster result.
func (d *DetailView) Poster() poster.Result {
	return d.poster
}

// Init implements View.
func (d *DetailView) Init() tea.Cmd {
	if !d.loading {
		return nil
	}
	return tea.Batch(d.spinner.Tick, loadPoster(d.loader, d.Item.PosterURL))
}

func loadPoster(l poster.Loader, url string) tea.Cmd {
	return func() tea.Msg {
		return PosterLoadedMsg{Result: l.Load(context.Background(), url)}
	}
}

// Update implements View.
func (d *DetailView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		return d, nil
	case PosterLoadedMsg:
		// A result for another item arrives when the user left and came back.
		if msg.Result.URL != d.Item.PosterURL {
			return d, nil
		}
		d.poster = msg.Result
		d.loading = false
		return d, nil
	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	case tea.KeyMsg:
		switch s := msg.String(); s {
		case "1", "2", "3", "4", "5":
			// Keys 1-5 are always in range.
			d.Rating.Set(int(s[0] - '0'))
		case "h", "left", "-":
			d.Rating.Step(-1)
		case "l", "right", "+":
			d.Rating.Step(1)
		case "esc", "backspace":
			return d, func() tea.Msg { return BackMsg{} }
		}
	}
	return d, nil
}

// View implements View.
func (d *DetailView) View() string {
	width := d.width
	if width == 0 {
		width = 80
	}

	top := Styles.TopBar.Width(width).Render("← Back")

	var art string
	switch {
	case d.loading:
		lines := poster.Placeholder(poster.DefaultWidth, poster.DefaultHeight, "")
		mid := len(lines) / 2
		lines[mid] = "│" + lipgloss.PlaceHorizontal(poster.DefaultWidth-2, lipgloss.Center, d.spinner.View()) + "│"
		art = Styles.Placeholder.Render(strings.Join(lines, "\n"))
	case d.poster.Placeholder:
		art = Styles.Placeholder.Render(d.poster.Art())
	default:
		art = Styles.Poster.Render(d.poster.Art())
	}

	stars := renderStars(d.Rating.Value())
	if d.Rating.Changed() {
		stars += Styles.Muted.Render("  (was " + strconv.Itoa(d.Rating.Initial()) + ")")
	}

	desc := d.Item.Description
	if strings.TrimSpace(desc) == "" {
		desc = "Detailed description about " + d.Item.Name + "."
	}
	descWidth := min(width-4, 72)

	body := lipgloss.JoinVertical(lipgloss.Center,
		art,
		"",
		Styles.Name.Render(d.Item.Name),
		"",
		stars,
		"",
		Styles.Description.Width(descWidth).Render(desc),
	)
	hint := Styles.Hint.Render("1-5 rate · h/l adjust · esc back · ? keys")
	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, body),
		"",
		hint,
	)
}
