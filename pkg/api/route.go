package api

// RouteName identifies one of the endpoints served by the proxy.
type RouteName string

var (
	VersionRoute  RouteName = "version"
	SuspendRoute  RouteName = "suspend"
	WakeupRoute   RouteName = "wakeup"
	ShutdownRoute RouteName = "shutdown_proxy"
)

// Paths served by the upstream service, relative to its base URL.
const (
	UpstreamVersionPath  = "/version"
	UpstreamPoweroffPath = "/poweroff"
)

// BasePath returns the prefix shared by every route, "/{root}/api/{version}".
func BasePath(root, version string) string {
	return "/" + root + "/api/" + version
}

// Path returns the full path of a route.
func Path(root, version string, name RouteName) string {
	return BasePath(root, version) + "/" + string(name)
}
