package nav

// RouteStack is the back stack of routes (push/pop). Home sits at the bottom
// and is never popped.
type RouteStack struct {
	Stack []Route
}

// NewRouteStack returns a stack holding only Home.
func NewRouteStack() RouteStack {
	return RouteStack{Stack: []Route{Home()}}
}

// Push adds a route to the top of the stack.
func (s *RouteStack) Push(r Route) {
	s.Stack = append(s.Stack, r)
}

// Pop removes and returns the top route. The root is kept; popping it returns
// false.
func (s *RouteStack) Pop() (Route, bool) {
	if len(s.Stack) <= 1 {
		return Route{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// PopToRoot drops everything above the root.
func (s *RouteStack) PopToRoot() {
	if len(s.Stack) > 1 {
		s.Stack = s.Stack[:1]
	}
}

// Peek returns the top route without removing it.
func (s *RouteStack) Peek() Route {
	if len(s.Stack) == 0 {
		return Home()
	}
	return s.Stack[len(s.Stack)-1]
}

// Len returns the number of routes in the stack.
func (s *RouteStack) Len() int {
	return len(s.Stack)
}
