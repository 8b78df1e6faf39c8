// Package notify reports state changes to the service supervisor.
package notify

import "github.com/coreos/go-systemd/v22/daemon"

// Ready tells the supervisor the listener is about to serve. It reports false
// without error when the process is not supervised.
func Ready() (bool, error) {
	return daemon.SdNotify(false, daemon.SdNotifyReady)
}

// Stopping tells the supervisor the listener is shutting down.
func Stopping() (bool, error) {
	return daemon.SdNotify(false, daemon.SdNotifyStopping)
}
