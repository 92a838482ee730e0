package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"couchpotato/internal/catalog"
	"couchpotato/internal/nav"
	"couchpotato/internal/ui/textutil"
)

// catalogItem implements list.Item for catalog.Item.
type catalogItem struct {
	catalog.Item
}

func (c catalogItem) FilterValue() string { return c.Name }

// itemDelegate renders a card: name and stars, then the first description line.
type itemDelegate struct{}

func (itemDelegate) Height() int                             { return 2 }
func (itemDelegate) Spacing() int                            { return 1 }
func (itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	it, ok := li.(catalogItem)
	if !ok {
		return
	}
	titleStyle, descStyle := Styles.ItemTitle, Styles.ItemDesc
	if index == m.Index() {
		titleStyle, descStyle = Styles.ItemTitleSelected, Styles.ItemDescSelected
	}
	desc := it.Description
	if width := m.Width() - 3; width > 0 {
		desc = textutil.Summary(desc, width)
	} else {
		desc = textutil.FirstLine(desc)
	}
	title := titleStyle.Render(it.Name) + "  " + renderStars(it.Rating)
	fmt.Fprintf(w, "%s\n%s", title, descStyle.Render(desc))
}

// header rows above the list and rows below it.
const (
	homeHeaderHeight = 3
	homeFooterHeight = 3
)

// HomeView is the Home route: section selector, catalog list and bottom
// bar. State comes from the navigator through Sync; the view only emits
// messages.
type HomeView struct {
	section catalog.Section
	tab     nav.Tab
	list    list.Model
	focus   *FocusManager
	synced  bool
	width   int
	height  int
}

// Ensure HomeView implements View.
var _ View = (*HomeView)(nil)

// NewHomeView creates an empty home screen; call Sync before rendering.
func NewHomeView() *HomeView {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = Styles.Empty.Padding(0, 2)

	return &HomeView{
		list:  l,
		focus: NewFocusManager(FocusList, FocusTabs, FocusSections),
	}
}

// Sync copies navigation state into the view. The list is rebuilt and
// scrolled to the top only when the section changes.
func (h *HomeView) Sync(state nav.State, items []catalog.Item) {
	if !h.synced || state.Section != h.section {
		li := make([]list.Item, len(items))
		for i, it := range items {
			li[i] = catalogItem{Item: it}
		}
		h.list.SetItems(li)
		h.list.ResetSelected()
		singular, plural := itemNames(state.Section)
		h.list.SetStatusBarItemName(singular, plural)
	}
	h.section = state.Section
	h.tab = state.Tab
	h.synced = true

	if h.tab == nav.TabHome {
		h.focus.SetOrder([]FocusID{FocusSections, FocusList, FocusTabs}, FocusList)
	} else {
		h.focus.SetOrder([]FocusID{FocusTabs}, FocusTabs)
	}
}

// Focus returns the focused region.
func (h *HomeView) Focus() FocusID {
	return h.focus.Current
}

// SelectedItem is the highlighted catalog entry.
func (h *HomeView) SelectedItem() (catalog.Item, bool) {
	if h.tab != nav.TabHome {
		return catalog.Item{}, false
	}
	it, ok := h.list.SelectedItem().(catalogItem)
	if !ok {
		return catalog.Item{}, false
	}
	return it.Item, true
}

// Index returns the list cursor.
func (h *HomeView) Index() int {
	return h.list.Index()
}

// Init implements View.
func (h *HomeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		h.list.SetSize(msg.Width, max(msg.Height-homeHeaderHeight-homeFooterHeight, 1))
		return h, nil
	case tea.KeyMsg:
		return h, h.handleKey(msg)
	}
	return h, nil
}

func (h *HomeView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		h.focus.Next()
		return nil
	case "shift+tab":
		h.focus.Prev()
		return nil
	case "h", "left":
		return h.move(-1, msg)
	case "l", "right":
		return h.move(1, msg)
	case "enter":
		switch h.focus.Current {
		case FocusSections:
			h.focus.SetFocus(FocusList)
			return nil
		case FocusList:
			if it, ok := h.SelectedItem(); ok {
				return openDetail(h.section, it.Name)
			}
		}
		return nil
	case "j", "k", "up", "down", "g", "G", "home", "end", "pgup", "pgdown":
		if h.tab != nav.TabHome {
			return nil
		}
		h.focus.SetFocus(FocusList)
	}

	if h.focus.Is(FocusList) && h.tab == nav.TabHome {
		var cmd tea.Cmd
		h.list, cmd = h.list.Update(msg)
		return cmd
	}
	return nil
}

// move acts on the focused bar; in the list it pages.
func (h *HomeView) move(delta int, msg tea.KeyMsg) tea.Cmd {
	switch h.focus.Current {
	case FocusSections:
		return selectSection(cycle(catalog.Sections(), h.section, delta))
	case FocusTabs:
		return selectTab(cycle(nav.Tabs(), h.tab, delta))
	case FocusList:
		var cmd tea.Cmd
		h.list, cmd = h.list.Update(msg)
		return cmd
	}
	return nil
}

func cycle[T comparable](all []T, cur T, delta int) T {
	idx := 0
	for i, v := range all {
		if v == cur {
			idx = i
			break
		}
	}
	n := len(all)
	return all[((idx+delta)%n+n)%n]
}

// View implements View.
func (h *HomeView) View() string {
	if h.list.Width() == 0 {
		h.list.SetSize(80, 20)
	}
	width := max(h.width, h.list.Width())

	var b strings.Builder
	b.WriteString(Styles.Title.Render("CouchPotato") + "\n")
	b.WriteString(h.renderSections(width) + "\n\n")

	if h.tab == nav.TabHome {
		b.WriteString(h.list.View())
	} else {
		b.WriteString(renderPlaceholder(h.tab, width, h.list.Height()))
	}
	b.WriteString("\n" + renderBottomBar(h.tab, h.focus.Is(FocusTabs), width))
	return b.String()
}

func (h *HomeView) renderSections(width int) string {
	marker := "  "
	if h.focus.Is(FocusSections) {
		marker = Styles.FocusMarker.Render("▸ ")
	}
	pills := make([]string, 0, 2)
	for _, s := range catalog.Sections() {
		style := Styles.SectionInactive
		if s == h.section {
			style = Styles.SectionActive
		}
		pills = append(pills, style.Render(s.String()))
	}
	row := marker + lipgloss.JoinHorizontal(lipgloss.Top, pills...)
	return Styles.Header.Width(width).Render(row)
}

// itemNames feeds the list's "No movies." empty text.
func itemNames(s catalog.Section) (string, string) {
	plural := s.Slug()
	return strings.TrimSuffix(plural, "s"), plural
}

func openDetail(s catalog.Section, name string) tea.Cmd {
	return func() tea.Msg { return OpenDetailMsg{Section: s, Name: name} }
}

func selectSection(s catalog.Section) tea.Cmd {
	return func() tea.Msg { return SelectSectionMsg{Section: s} }
}

func selectTab(t nav.Tab) tea.Cmd {
	return func() tea.Msg { return SelectTabMsg{Tab: t} }
}
