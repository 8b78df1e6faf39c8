// A General note:
// Types in this package represent an intermediate, fully defaulted configuration that is passed
// throughout the codebase and is detached from the outward facing YAML file and command line flags.
// This makes it possible to change either representation without having to change the entire codebase.
package models

import (
	"net"
	"time"
)

// Config represents the process-wide configuration, fixed for the process lifetime.
type Config struct {
	// Target is the hardware address of the machine to wake. It is kept verbatim and only
	// parsed when a magic packet is built.
	Target string
	// ListenAddr is the host:port the proxy listens on.
	ListenAddr string
	// Root and APIVersion compose the route prefix "/{Root}/api/{APIVersion}".
	Root       string
	APIVersion string
	Upstream   Upstream
	Wake       Wake
	LogFile    string
	Shutdown   ShutdownMode
}

// Upstream represents the service version and suspend requests are relayed to.
type Upstream struct {
	BaseURL        string
	VersionTimeout time.Duration
	SuspendTimeout time.Duration
}

// Wake represents where magic packets are broadcast.
type Wake struct {
	Broadcast *net.UDPAddr
	// Interface is empty when packets may leave through any interface.
	Interface string
}

// A ShutdownMode is an enum for the ways the shutdown route may stop the proxy.
type ShutdownMode string

const (
	// ShutdownSignal delivers SIGTERM to the proxy's own process.
	ShutdownSignal ShutdownMode = "signal"
	// ShutdownInProcess cancels the serving context directly.
	ShutdownInProcess ShutdownMode = "inprocess"
	// ShutdownDisabled makes the shutdown route report that stopping is unsupported.
	ShutdownDisabled ShutdownMode = "disabled"
)
