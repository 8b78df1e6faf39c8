package mappers

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"wakeproxy/pkg/api"
	"wakeproxy/pkg/models"
)

// Defaults applied to every field the configuration leaves unset.
const (
	DefaultPort            = 33000
	DefaultRoot            = "ifttt_proxy"
	DefaultAPIVersion      = "1.0"
	DefaultUpstreamHost    = "catshc.catsnet.home"
	DefaultUpstreamPort    = 33000
	DefaultUpstreamRoot    = "catspaw"
	DefaultUpstreamVersion = "1.0"
	DefaultVersionTimeout  = 5 * time.Second
	DefaultSuspendTimeout  = 3 * time.Second
	DefaultBroadcast       = "255.255.255.255"
	DefaultWakePort        = 9
	DefaultLogFile         = "/var/log/wakeproxy.log"
)

var (
	ErrMissingTarget       = errors.New("target hardware address is required")
	ErrInvalidPort         = errors.New("port must be between 1 and 65535")
	ErrInvalidShutdownMode = errors.New("shutdown mode must be one of signal, inprocess, disabled")
)

// BroadcastResolver returns the broadcast address of a named interface.
type BroadcastResolver func(ifaceName string) (net.IP, error)

// MapConfig maps the outward facing configuration into the internal one, applying defaults.
// The target hardware address is only checked for presence; it is parsed when a packet is sent.
func MapConfig(config *api.Config, resolve BroadcastResolver) (*models.Config, error) {
	if config.Target == "" {
		return nil, ErrMissingTarget
	}

	port, err := portOrDefault(config.Port, DefaultPort)
	if err != nil {
		return nil, fmt.Errorf("listen %w", err)
	}

	res := &models.Config{
		Target:     config.Target,
		ListenAddr: net.JoinHostPort(config.Host, strconv.Itoa(port)),
		Root:       stringOrDefault(config.Root, DefaultRoot),
		APIVersion: stringOrDefault(config.Version, DefaultAPIVersion),
		LogFile:    stringOrDefault(config.LogFile, DefaultLogFile),
	}

	res.Shutdown, err = mapShutdownMode(config.ShutdownMode)
	if err != nil {
		return nil, err
	}

	upstream, err := mapUpstream(config.Upstream)
	if err != nil {
		return nil, err
	}
	res.Upstream = *upstream

	wake, err := mapWake(config.Wake, resolve)
	if err != nil {
		return nil, err
	}
	res.Wake = *wake

	return res, nil
}

func mapUpstream(upstream api.Upstream) (*models.Upstream, error) {
	port, err := portOrDefault(upstream.Port, DefaultUpstreamPort)
	if err != nil {
		return nil, fmt.Errorf("upstream %w", err)
	}
	res := &models.Upstream{
		BaseURL: BaseURL(
			stringOrDefault(upstream.Host, DefaultUpstreamHost),
			port,
			stringOrDefault(upstream.Root, DefaultUpstreamRoot),
			stringOrDefault(upstream.Version, DefaultUpstreamVersion),
		),
	}

	res.VersionTimeout, err = durationOrDefault(upstream.VersionTimeout, DefaultVersionTimeout)
	if err != nil {
		return nil, fmt.Errorf("upstream version timeout: %w", err)
	}
	res.SuspendTimeout, err = durationOrDefault(upstream.SuspendTimeout, DefaultSuspendTimeout)
	if err != nil {
		return nil, fmt.Errorf("upstream suspend timeout: %w", err)
	}
	return res, nil
}

func mapWake(wake api.Wake, resolve BroadcastResolver) (*models.Wake, error) {
	res := &models.Wake{
		Interface: wake.Interface,
		Broadcast: &net.UDPAddr{
			IP:   net.ParseIP(DefaultBroadcast),
			Port: DefaultWakePort,
		},
	}

	switch {
	case wake.Broadcast != "":
		addr, err := parseBroadcast(wake.Broadcast)
		if err != nil {
			return nil, err
		}
		res.Broadcast = addr
	case wake.Interface != "":
		// Use the directed broadcast of the interface so the packet stays on its segment.
		ip, err := resolve(wake.Interface)
		if err != nil {
			return nil, err
		}
		res.Broadcast.IP = ip
	}
	return res, nil
}

// parseBroadcast accepts "ip" or "ip:port".
func parseBroadcast(s string) (*net.UDPAddr, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		host, portStr = s, strconv.Itoa(DefaultWakePort)
	}
	ip := net.ParseIP(host)
	if ip == nil || ip.To4() == nil {
		return nil, fmt.Errorf("invalid broadcast address '%s'", s)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid broadcast port '%s': %w", portStr, err)
	}
	if port, err = portOrDefault(port, DefaultWakePort); err != nil {
		return nil, fmt.Errorf("broadcast %w", err)
	}
	return &net.UDPAddr{IP: ip.To4(), Port: port}, nil
}

func mapShutdownMode(mode string) (models.ShutdownMode, error) {
	switch models.ShutdownMode(mode) {
	case "":
		return models.ShutdownSignal, nil
	case models.ShutdownSignal, models.ShutdownInProcess, models.ShutdownDisabled:
		return models.ShutdownMode(mode), nil
	default:
		return "", fmt.Errorf("%w: got '%s'", ErrInvalidShutdownMode, mode)
	}
}

// BaseURL composes the base URL of the upstream service, "http://host:port/root/api/version".
func BaseURL(host string, port int, root, version string) string {
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port)) + api.BasePath(root, version)
}

func stringOrDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func portOrDefault(port, def int) (int, error) {
	if port == 0 {
		return def, nil
	}
	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPort, port)
	}
	return port, nil
}

func durationOrDefault(value string, def time.Duration) (time.Duration, error) {
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", value)
	}
	return d, nil
}
