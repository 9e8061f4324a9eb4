package navigation

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// Route names a screen of the client.
type Route string

const (
	RouteHome        Route = "home"
	RouteSignIn      Route = "signin"
	RouteSignUp      Route = "signup"
	RouteDashboard   Route = "dashboard"
	RouteProjects    Route = "projects"
	RouteSuggestions Route = "suggestions"
)

// ErrEmptyRoute is returned when navigating to an empty route.
var ErrEmptyRoute = errors.New("navigation: empty route")

// Navigator moves the UI to another screen. Implementations are provided by
// the shell hosting the client.
type Navigator interface {
	Navigate(ctx context.Context, route Route) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, route Route) error

func (f NavigatorFunc) Navigate(ctx context.Context, route Route) error {
	return f(ctx, route)
}

// Recorder is a Navigator that remembers every route it was sent to.
// Headless runs and tests use it in place of a real shell.
type Recorder struct {
	mu     sync.Mutex
	routes []Route
}

func (r *Recorder) Navigate(_ context.Context, route Route) error {
	if route == "" {
		return ErrEmptyRoute
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, route)
	return nil
}

// Routes returns the visited routes in order.
func (r *Recorder) Routes() []Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.routes)
}

// Last returns the most recent route, or "" if none.
func (r *Recorder) Last() Route {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.routes) == 0 {
		return ""
	}
	return r.routes[len(r.routes)-1]
}
