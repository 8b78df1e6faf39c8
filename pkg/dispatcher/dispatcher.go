// Package dispatcher binds the proxy routes to their handlers and renders handler
// outcomes as HTTP responses.
package dispatcher

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"wakeproxy/pkg/api"
	"wakeproxy/pkg/lifecycle"
	"wakeproxy/pkg/models"
	"wakeproxy/pkg/registry"
	"wakeproxy/pkg/upstream"
	"wakeproxy/pkg/wol"

	"github.com/google/uuid"
)

// Upstream performs single calls to the upstream service.
type Upstream interface {
	URL(path string) string
	Get(ctx context.Context, path string, timeout time.Duration) upstream.Result
}

// Deps are the collaborators performing the handlers' side effects.
type Deps struct {
	Upstream Upstream
	Waker    wol.Waker
	// Stopper is nil when the listener cannot be stopped from a request.
	Stopper lifecycle.Stopper
	Logger  *log.Logger
}

// Dispatcher runs exactly one handler per request. It holds no state besides the
// route table and the configuration, both fixed at construction.
type Dispatcher struct {
	config models.Config
	deps   Deps
	logger *log.Logger
	table  *registry.Table
}

func New(config models.Config, deps Deps) (*Dispatcher, error) {
	d := &Dispatcher{
		config: config,
		deps:   deps,
		logger: deps.Logger,
	}
	if d.logger == nil {
		d.logger = log.Default()
	}

	actions := map[api.RouteName]registry.Action{
		api.VersionRoute:  {Handle: d.version},
		api.SuspendRoute:  {Handle: d.suspend},
		api.WakeupRoute:   {Handle: d.wakeup},
		api.ShutdownRoute: {Handle: d.shutdown},
	}

	endpoints := config.Endpoints()
	routes := make([]registry.Route, len(endpoints))
	for i, endpoint := range endpoints {
		routes[i] = registry.Route{
			Method: http.MethodGet,
			Path:   endpoint.Path,
			Name:   endpoint.Name,
			Action: actions[endpoint.Name],
		}
	}

	table, err := registry.NewRouteRegistry().Register(routes...)
	if err != nil {
		return nil, err
	}
	d.table = table
	d.logger.Printf("Registered %d routes under %s", table.Len(), api.BasePath(config.Root, config.APIVersion))
	return d, nil
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set("X-Request-ID", requestID)

	route, ok := d.table.Lookup(r.Method, r.URL.Path)
	if !ok {
		if allowed := d.table.Allowed(r.URL.Path); len(allowed) > 0 {
			d.logger.Printf("[%s] Method %s not allowed on %s from %s", requestID, r.Method, r.URL.Path, r.RemoteAddr)
			w.Header().Set("Allow", strings.Join(allowed, ", "))
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		d.logger.Printf("[%s] No route for %s from %s", requestID, r.URL.Path, r.RemoteAddr)
		http.NotFound(w, r)
		return
	}

	d.logger.Printf("[%s] Request %s on %s from %s", requestID, route.Name, r.URL.Path, r.RemoteAddr)
	d.respond(w, r, requestID, route)
}

// respond applies the response wrapping rule: a body becomes a 200 (or a 204 for
// NoContent actions), an error becomes a 500 with the error text.
func (d *Dispatcher) respond(w http.ResponseWriter, r *http.Request, requestID string, route registry.Route) {
	body, err := route.Action.Handle(r)
	if err != nil {
		d.logger.Printf("[%s] Request %s failed: %v", requestID, route.Name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if route.Action.NoContent {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, body); err != nil {
		d.logger.Printf("[%s] Error writing response: %v", requestID, err)
	}
}
