package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"wakeproxy/pkg/api"
	"wakeproxy/pkg/upstream"
	"wakeproxy/pkg/version"
)

var ErrShutdownUnsupported = errors.New("shutdown is not supported by the running listener")

const (
	WakeupMessage   = "Waking up target..."
	ShutdownMessage = "Proxy server shutting down..."
)

// version reports this proxy's version and, on the second line, the upstream's
// raw answer or the reason it could not be reached.
func (d *Dispatcher) version(r *http.Request) (string, error) {
	d.logger.Printf("Call upstream version api: %s", d.deps.Upstream.URL(api.UpstreamVersionPath))
	res := d.deps.Upstream.Get(detach(r), api.UpstreamVersionPath, d.config.Upstream.VersionTimeout)
	d.logUpstreamFailure(res)
	return version.Line() + "\n" + res.Text(), nil
}

// suspend relays a power off to the upstream. Upstream failures are answered as text.
func (d *Dispatcher) suspend(r *http.Request) (string, error) {
	d.logger.Printf("Call upstream suspend api: %s", d.deps.Upstream.URL(api.UpstreamPoweroffPath))
	res := d.deps.Upstream.Get(detach(r), api.UpstreamPoweroffPath, d.config.Upstream.SuspendTimeout)
	d.logUpstreamFailure(res)
	return res.Text(), nil
}

func (d *Dispatcher) wakeup(r *http.Request) (string, error) {
	d.logger.Printf("Send magic packet to target with mac address: %s", d.config.Target)
	if err := d.deps.Waker.Wake(detach(r), d.config.Target); err != nil {
		return "", fmt.Errorf("waking up %s: %w", d.config.Target, err)
	}
	return WakeupMessage, nil
}

func (d *Dispatcher) shutdown(r *http.Request) (string, error) {
	if d.deps.Stopper == nil {
		return "", ErrShutdownUnsupported
	}
	d.logger.Println("Gracefully shutting down the proxy server...")
	if err := d.deps.Stopper.Stop(); err != nil {
		return "", fmt.Errorf("stopping listener: %w", err)
	}
	return ShutdownMessage, nil
}

func (d *Dispatcher) logUpstreamFailure(res upstream.Result) {
	if !res.OK() {
		d.logger.Printf("Upstream call failed: %v", res.Err)
	}
}

// detach keeps request values but ignores client disconnects; side effects
// are not cancelled mid-flight.
func detach(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}
