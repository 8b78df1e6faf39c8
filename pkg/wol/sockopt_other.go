//go:build !linux

package wol

import (
	"fmt"
	"syscall"
)

// Go enables SO_BROADCAST on datagram sockets already; binding to a device is Linux only.
func broadcastControl(ifaceName string) func(network, address string, c syscall.RawConn) error {
	return func(network, address string, c syscall.RawConn) error {
		if ifaceName != "" {
			return fmt.Errorf("binding to interface '%s' is not supported on this platform", ifaceName)
		}
		return nil
	}
}
