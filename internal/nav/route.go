package nav

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"couchpotato/internal/catalog"
)

// ErrBadRoute is returned by ParseRoute for strings that are not routes.
var ErrBadRoute = errors.New("malformed route")

const (
	homePath    = "home"
	detailsPath = "details"
)

// RouteKind distinguishes the two screens.
type RouteKind int

const (
	RouteHome RouteKind = iota
	RouteDetail
)

func (k RouteKind) String() string {
	switch k {
	case RouteHome:
		return "Home"
	case RouteDetail:
		return "Detail"
	default:
		return "Unknown"
	}
}

// Route names the screen being presented. Detail routes carry the item's
// section and name; the item itself is resolved through the catalog.
type Route struct {
	Kind    RouteKind
	Section catalog.Section
	Name    string
	// Legacy is set by ParseRoute for "details/{name}" strings, which do not
	// say which section the name belongs to. Section is meaningless then.
	Legacy bool
}

// Home is the start route.
func Home() Route {
	return Route{Kind: RouteHome}
}

// Detail returns the route for an item.
func Detail(s catalog.Section, name string) Route {
	return Route{Kind: RouteDetail, Section: s, Name: name}
}

// IsHome reports whether r is the home route.
func (r Route) IsHome() bool {
	return r.Kind == RouteHome
}

// String encodes the route: "home" or "details/{movies|shows}/{escaped name}".
// Names are path-escaped so "/" and "?" survive a round trip.
func (r Route) String() string {
	if r.Kind != RouteDetail {
		return homePath
	}
	if r.Legacy {
		return detailsPath + "/" + url.PathEscape(r.Name)
	}
	return detailsPath + "/" + r.Section.Slug() + "/" + url.PathEscape(r.Name)
}

// ParseRoute decodes a route string produced by Route.String. It also accepts
// the older "details/{name}" and "details/{name}?posterUrl={url}" forms; the
// poster parameter is dropped because the item is resolved by name.
func ParseRoute(s string) (Route, error) {
	if s == "" || s == homePath {
		return Home(), nil
	}

	path, _, _ := strings.Cut(s, "?")
	rest, ok := strings.CutPrefix(path, detailsPath+"/")
	if !ok || rest == "" {
		return Route{}, fmt.Errorf("%w: %q", ErrBadRoute, s)
	}

	first, name, nested := strings.Cut(rest, "/")
	if nested {
		sec, err := catalog.ParseSection(first)
		if err != nil {
			return Route{}, fmt.Errorf("%w: %q: %v", ErrBadRoute, s, err)
		}
		decoded, err := url.PathUnescape(name)
		if err != nil || decoded == "" {
			return Route{}, fmt.Errorf("%w: %q: bad name", ErrBadRoute, s)
		}
		return Detail(sec, decoded), nil
	}

	decoded, err := url.PathUnescape(first)
	if err != nil {
		return Route{}, fmt.Errorf("%w: %q: %v", ErrBadRoute, s, err)
	}
	return Route{Kind: RouteDetail, Name: decoded, Legacy: true}, nil
}
