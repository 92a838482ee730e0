// Package nav implements the catalog navigator: which section is shown, which
// bottom tab is active and whether the home list or an item's detail screen
// is presented.
//
// All transitions are synchronous and are meant to be driven from the UI's
// update loop. Each one records an OpenTelemetry span through the configured
// tracer (the global provider by default, a no-op unless telemetry is set up).
package nav

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"couchpotato/internal/catalog"
)

const tracerName = "couchpotato/nav"

// State is a snapshot of the navigator.
type State struct {
	Section catalog.Section
	Tab     Tab
	Route   Route
}

// DefaultState is what a fresh session starts from.
func DefaultState() State {
	return State{Section: catalog.Movies, Tab: TabHome, Route: Home()}
}

// Navigator owns the navigation state over a catalog source.
type Navigator struct {
	source  catalog.Source
	section catalog.Section
	tab     Tab
	routes  RouteStack
	current catalog.Item // valid while the top route is a detail route

	tracer trace.Tracer
	logger *slog.Logger
}

// Option configures a Navigator.
type Option func(*Navigator)

// WithLogger sets the logger transitions are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(n *Navigator) {
		if l != nil {
			n.logger = l
		}
	}
}

// WithTracer overrides the tracer used for transition spans.
func WithTracer(t trace.Tracer) Option {
	return func(n *Navigator) {
		if t != nil {
			n.tracer = t
		}
	}
}

// WithSection sets the starting section.
func WithSection(s catalog.Section) Option {
	return func(n *Navigator) {
		if s.Valid() {
			n.section = s
		}
	}
}

// New creates a navigator in the default state.
func New(src catalog.Source, opts ...Option) *Navigator {
	def := DefaultState()
	n := &Navigator{
		source:  src,
		section: def.Section,
		tab:     def.Tab,
		routes:  NewRouteStack(),
		tracer:  otel.Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// State returns the current section, tab and route.
func (n *Navigator) State() State {
	return State{Section: n.section, Tab: n.tab, Route: n.routes.Peek()}
}

// Section is the active section.
func (n *Navigator) Section() catalog.Section { return n.section }

// Tab is the active bottom tab.
func (n *Navigator) Tab() Tab { return n.tab }

// Route is the route on top of the back stack.
func (n *Navigator) Route() Route { return n.routes.Peek() }

// Items returns the list bound to the active section.
func (n *Navigator) Items() []catalog.Item {
	return n.source.Items(n.section)
}

// Current returns the item shown on the detail screen, if any.
func (n *Navigator) Current() (catalog.Item, bool) {
	if n.routes.Peek().IsHome() {
		return catalog.Item{}, false
	}
	return n.current, true
}

// SelectSection switches the active section. Passing a value outside the
// enum is a programming error and panics.
func (n *Navigator) SelectSection(s catalog.Section) {
	if !s.Valid() {
		panic(fmt.Sprintf("nav: invalid section %d", int(s)))
	}
	_, span := n.tracer.Start(context.Background(), "nav.SelectSection",
		trace.WithAttributes(
			attribute.String("nav.section.from", n.section.String()),
			attribute.String("nav.section.to", s.String()),
		))
	defer span.End()

	n.section = s
	n.logger.Debug("section selected", "section", s)
}

// SelectTab switches the bottom tab. The index must come from Tabs; anything
// else panics.
func (n *Navigator) SelectTab(t Tab) {
	if !t.Valid() {
		panic(fmt.Sprintf("nav: tab index %d out of range [0,%d]", int(t), len(Tabs())-1))
	}
	_, span := n.tracer.Start(context.Background(), "nav.SelectTab",
		trace.WithAttributes(
			attribute.Int("nav.tab.from", int(n.tab)),
			attribute.Int("nav.tab.to", int(t)),
		))
	defer span.End()

	n.tab = t
	n.logger.Debug("tab selected", "tab", t)
}

// NavigateToDetail resolves name in the section's list and, on a match, makes
// it the current detail route and the section the active one. On a miss the
// route is left alone and the returned error wraps catalog.ErrNotFound.
func (n *Navigator) NavigateToDetail(s catalog.Section, name string) (catalog.Item, error) {
	_, span := n.tracer.Start(context.Background(), "nav.NavigateToDetail",
		trace.WithAttributes(
			attribute.String("nav.section", s.String()),
			attribute.String("nav.item.name", name),
		))
	defer span.End()

	if !s.Valid() {
		err := fmt.Errorf("navigate to %q: invalid section %d: %w", name, int(s), catalog.ErrNotFound)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid section")
		return catalog.Item{}, err
	}

	it, err := n.source.Lookup(s, name)
	if err != nil {
		err = fmt.Errorf("navigate to detail: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "lookup miss")
		n.logger.Warn("detail route did not resolve", "section", s, "name", name, "error", err)
		return catalog.Item{}, err
	}

	// Only one detail screen deep: entering from a detail replaces it.
	n.routes.PopToRoot()
	n.routes.Push(Detail(s, it.Name))
	n.section = s
	n.current = it
	span.SetAttributes(attribute.Int("nav.item.rating", it.Rating))
	n.logger.Debug("detail opened", "route", n.routes.Peek().String())
	return it, nil
}

// NavigateBack returns to Home. It is a no-op on Home.
func (n *Navigator) NavigateBack() {
	_, span := n.tracer.Start(context.Background(), "nav.NavigateBack")
	defer span.End()

	from, popped := n.routes.Pop()
	n.routes.PopToRoot()
	n.current = catalog.Item{}
	span.SetAttributes(attribute.Bool("nav.popped", popped))
	if popped {
		n.logger.Debug("back to home", "from", from.String())
	}
}

// Go navigates to a decoded route. Legacy detail routes, which carry no
// section, resolve against the active section.
func (n *Navigator) Go(r Route) (catalog.Item, error) {
	if r.IsHome() {
		n.NavigateBack()
		return catalog.Item{}, nil
	}
	s := r.Section
	if r.Legacy {
		s = n.section
	}
	return n.NavigateToDetail(s, r.Name)
}

// GoString parses and follows a route string.
func (n *Navigator) GoString(route string) (catalog.Item, error) {
	r, err := ParseRoute(route)
	if err != nil {
		return catalog.Item{}, err
	}
	return n.Go(r)
}
