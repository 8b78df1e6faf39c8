// Package lifecycle lets a request stop the process serving it.
package lifecycle

import (
	"context"
	"os"

	"wakeproxy/pkg/models"

	"golang.org/x/sys/unix"
)

// A Stopper requests a graceful stop of the listener. Stop returns once the request
// is delivered; connections in flight are completed by the server.
type Stopper interface {
	Stop() error
}

// SignalStopper delivers a signal to a process, SIGTERM to itself by default.
// The serving loop handles it exactly like a signal sent by the supervisor.
type SignalStopper struct {
	Pid    int
	Signal unix.Signal
}

func NewSignalStopper() *SignalStopper {
	return &SignalStopper{
		Pid:    os.Getpid(),
		Signal: unix.SIGTERM,
	}
}

func (s *SignalStopper) Stop() error {
	return unix.Kill(s.Pid, s.Signal)
}

// CancelStopper stops the listener by cancelling the context it is served with.
type CancelStopper struct {
	Cancel context.CancelFunc
}

func (s CancelStopper) Stop() error {
	s.Cancel()
	return nil
}

// ForMode returns the stopper for a shutdown mode, or nil when stopping is disabled.
func ForMode(mode models.ShutdownMode, cancel context.CancelFunc) Stopper {
	switch mode {
	case models.ShutdownSignal:
		return NewSignalStopper()
	case models.ShutdownInProcess:
		return CancelStopper{Cancel: cancel}
	default:
		return nil
	}
}
