package ui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"couchpotato/internal/catalog"
	"couchpotato/internal/nav"
	"couchpotato/internal/poster"
)

// AppModel is the root model. The navigator is the single source of truth;
// the model switches between HomeView and DetailView as the route changes.
type AppModel struct {
	Nav        *nav.Navigator
	Home       *HomeView
	Detail     *DetailView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Loader     poster.Loader
	Logger     *slog.Logger
	// Status holds the last navigation failure until the next key press.
	Status string

	startRoute string
	width      int
	height     int
}

// Option configures NewAppModel.
type Option func(*AppModel)

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(a *AppModel) {
		if l != nil {
			a.Logger = l
		}
	}
}

// WithLoader sets the poster loader. The default is a caching offline loader.
func WithLoader(l poster.Loader) Option {
	return func(a *AppModel) {
		a.Loader = l
	}
}

// WithStartRoute follows route (e.g. "details/shows/The%20Office") before
// the first frame. A route that does not resolve leaves the app on Home
// with a status message.
func WithStartRoute(route string) Option {
	return func(a *AppModel) {
		a.startRoute = route
	}
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model around n.
func NewAppModel(n *nav.Navigator, opts ...Option) *AppModel {
	a := &AppModel{
		Nav:        n,
		Home:       NewHomeView(),
		KeyHandler: NewKeyHandler(DefaultKeybinds()),
		Loader:     poster.NewCachingLoader(poster.NewOfflineLoader()),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.sync()
	if a.startRoute != "" {
		a.follow(a.startRoute)
	}
	return a
}

// DefaultKeybinds binds the app's keys. Keys the registry does not claim
// reach the current view.
func DefaultKeybinds() *KeybindRegistry {
	home := []AppMode{ModeHome}
	bar := []AppMode{ModeHome, ModeTab}
	detail := []AppMode{ModeDetail}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("?", func() tea.Msg { return ShowHelpMsg{} }, "Keys")

	for _, s := range catalog.Sections() {
		cmd := func() tea.Msg { return SelectSectionMsg{Section: s} }
		k := s.Slug()[:1]
		reg.BindWithDescForMode(k, cmd, s.String(), home)
		reg.BindWithDescForMode("SPC "+k, cmd, s.String(), home)
	}
	for i, t := range nav.Tabs() {
		cmd := func() tea.Msg { return SelectTabMsg{Tab: t} }
		k := fmt.Sprint(i + 1)
		reg.BindWithDescForMode(k, cmd, t.String(), bar)
		reg.BindWithDescForMode("SPC t "+k, cmd, t.String(), bar)
	}
	reg.BindWithDescForMode("SPC b", func() tea.Msg { return BackMsg{} }, "Back", detail)
	return reg
}

// Mode derives the app mode from the navigator.
func (a *AppModel) Mode() AppMode {
	return modeFor(a.Nav.State())
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.Home.Update(msg)
		if a.Detail != nil {
			a.Detail.Update(msg)
		}
		a.Overlays.UpdateTop(msg)
		return a, nil
	case SelectSectionMsg:
		a.Nav.SelectSection(msg.Section)
		a.sync()
		return a, nil
	case SelectTabMsg:
		a.Nav.SelectTab(msg.Tab)
		a.sync()
		return a, nil
	case OpenDetailMsg:
		return a, a.openDetail(msg.Section, msg.Name)
	case BackMsg:
		a.Nav.NavigateBack()
		a.Detail = nil
		a.sync()
		return a, nil
	case ShowHelpMsg:
		if a.Overlays.Len() == 0 {
			a.Overlays.Push(Overlay{
				View:    a.newHelpView(),
				Dismiss: []string{"esc", "?", "q"},
			})
		}
		return a, nil
	case PosterLoadedMsg:
		if msg.Result.Err != nil {
			a.Logger.Debug("poster placeholder", "url", msg.Result.URL, "error", msg.Result.Err)
		}
	case tea.KeyMsg:
		a.Status = ""
		if cmd, ok := a.Overlays.HandleKey(msg); ok {
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode()); consumed {
				return a, cmd
			}
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
		}
		return top.View.View()
	}
	base := a.currentView().View()
	if a.Status != "" {
		base += "\n" + Styles.Status.Render(a.Status)
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode())
	}
	return base
}

func (a *AppModel) currentView() View {
	if a.Detail != nil && !a.Nav.Route().IsHome() {
		return a.Detail
	}
	return a.Home
}

func (a *AppModel) setCurrentView(v View) {
	switch v := v.(type) {
	case *DetailView:
		a.Detail = v
	case *HomeView:
		a.Home = v
	}
}

func (a *AppModel) newHelpView() *HelpView {
	h := NewHelpView(a.KeyHandler.Registry, a.Mode())
	if a.width > 0 {
		h.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	return h
}

// sync pushes navigator state into the home view.
func (a *AppModel) sync() {
	a.Home.Sync(a.Nav.State(), a.Nav.Items())
}

// openDetail routes to a detail screen, mounting a fresh DetailView.
func (a *AppModel) openDetail(s catalog.Section, name string) tea.Cmd {
	it, err := a.Nav.NavigateToDetail(s, name)
	if err != nil {
		a.setMissStatus(name, s, err)
		return nil
	}
	return a.mountDetail(it)
}

func (a *AppModel) mountDetail(it catalog.Item) tea.Cmd {
	a.Detail = NewDetailView(it, a.Loader)
	if a.width > 0 {
		a.Detail.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	}
	a.sync()
	return a.Detail.Init()
}

// follow applies a route string; its Init runs with the program's.
func (a *AppModel) follow(route string) {
	r, err := nav.ParseRoute(route)
	if err != nil {
		a.Status = err.Error()
		a.Logger.Warn("start route rejected", "route", route, "error", err)
		return
	}
	s := r.Section
	if r.Legacy {
		s = a.Nav.Section()
	}
	it, err := a.Nav.Go(r)
	if err != nil {
		a.setMissStatus(r.Name, s, err)
		return
	}
	if r.IsHome() {
		a.Detail = nil
		a.sync()
		return
	}
	a.Detail = NewDetailView(it, a.Loader)
	a.sync()
}

func (a *AppModel) setMissStatus(name string, s catalog.Section, err error) {
	if errors.Is(err, catalog.ErrNotFound) {
		a.Status = fmt.Sprintf("%q is not in %s", name, s)
	} else {
		a.Status = err.Error()
	}
}
