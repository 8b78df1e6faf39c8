package api

// Config is the YAML configuration file accepted by `wakeproxy run --config`.
// Every field is optional in the file; unset fields fall back to defaults.
type Config struct {
	// The hardware address of the machine to wake (e.g "00:11:22:33:44:55").
	Target string `yaml:"target"`
	// The port the proxy listens on.
	Port int `yaml:"port,omitempty"`
	// The address the proxy binds to, empty means all interfaces.
	Host string `yaml:"host,omitempty"`
	// The first path segment of every route (e.g "ifttt_proxy").
	Root string `yaml:"root,omitempty"`
	// The api version segment of every route (e.g "1.0").
	Version string `yaml:"version,omitempty"`
	// Where request lines are appended. "-" means stdout.
	LogFile string `yaml:"log_file,omitempty"`
	// How the shutdown route stops the proxy: "signal", "inprocess" or "disabled".
	ShutdownMode string `yaml:"shutdown_mode,omitempty"`

	Upstream Upstream `yaml:"upstream,omitempty"`
	Wake     Wake     `yaml:"wake,omitempty"`
}

// Upstream describes the service version and suspend requests are relayed to.
type Upstream struct {
	Host    string `yaml:"host,omitempty"`
	Port    int    `yaml:"port,omitempty"`
	Root    string `yaml:"root,omitempty"`
	Version string `yaml:"version,omitempty"`
	// Timeouts are Go duration strings (e.g "5s").
	VersionTimeout string `yaml:"version_timeout,omitempty"`
	SuspendTimeout string `yaml:"suspend_timeout,omitempty"`
}

// Wake describes where magic packets are sent.
type Wake struct {
	// The name of the interface to broadcast on. Its broadcast address is used
	// unless Broadcast is set.
	Interface string `yaml:"interface,omitempty"`
	// An explicit broadcast address, with or without port (e.g "192.168.1.255:9").
	Broadcast string `yaml:"broadcast,omitempty"`
}
