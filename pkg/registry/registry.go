package registry

import (
	"fmt"
	"net/http"
	"sort"

	"wakeproxy/pkg/api"
)

// An Action is the single operation bound to a route: it returns the response body or fails.
type Action struct {
	Handle func(r *http.Request) (string, error)
	// NoContent marks actions answered with 204 and an empty body instead of their result.
	NoContent bool
}

// A Route binds a method and path to an Action.
type Route struct {
	Method string
	Path   string
	Name   api.RouteName
	Action Action
}

type routeKey struct {
	method string
	path   string
}

// Table is an immutable mapping from (method, path) to Route.
type Table struct {
	routes  map[routeKey]Route
	methods map[string][]string
}

// Lookup resolves a request to exactly one route.
func (t *Table) Lookup(method, path string) (Route, bool) {
	route, ok := t.routes[routeKey{method: method, path: path}]
	return route, ok
}

// Allowed returns the methods registered for path, sorted.
func (t *Table) Allowed(path string) []string {
	return t.methods[path]
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.routes)
}

// RouteRegistry builds the route table once at startup.
type RouteRegistry interface {
	Register(routes ...Route) (*Table, error)
}

func NewRouteRegistry() RouteRegistry {
	return &MapRegistry{}
}

type MapRegistry struct{}

// An implementation of RouteRegistry backed by a map.
func (r *MapRegistry) Register(routes ...Route) (*Table, error) {
	res := &Table{
		routes:  make(map[routeKey]Route, len(routes)),
		methods: make(map[string][]string),
	}
	for _, route := range routes {
		if err := r.validate(route); err != nil {
			return nil, err
		}
		key := routeKey{method: route.Method, path: route.Path}
		if _, exists := res.routes[key]; exists {
			return nil, fmt.Errorf("duplicate route %s %s", route.Method, route.Path)
		}
		res.routes[key] = route
		res.methods[route.Path] = append(res.methods[route.Path], route.Method)
	}
	for _, methods := range res.methods {
		sort.Strings(methods)
	}
	return res, nil
}

func (r *MapRegistry) validate(route Route) error {
	if route.Method == "" {
		return fmt.Errorf("route %s: missing method", route.Path)
	}
	if route.Path == "" || route.Path[0] != '/' {
		return fmt.Errorf("route %s: path must start with '/'", route.Path)
	}
	if route.Action.Handle == nil {
		return fmt.Errorf("route %s %s: missing action", route.Method, route.Path)
	}
	return nil
}
