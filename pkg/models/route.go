package models

import "wakeproxy/pkg/api"

// An Endpoint represents one route served by the proxy.
type Endpoint struct {
	Name api.RouteName
	Path string
}

// Endpoints lists the routes served under the configured root and version,
// in the order they are registered.
func (c Config) Endpoints() []Endpoint {
	names := []api.RouteName{api.VersionRoute, api.SuspendRoute, api.WakeupRoute, api.ShutdownRoute}
	res := make([]Endpoint, len(names))
	for i, name := range names {
		res[i] = Endpoint{
			Name: name,
			Path: api.Path(c.Root, c.APIVersion, name),
		}
	}
	return res
}
