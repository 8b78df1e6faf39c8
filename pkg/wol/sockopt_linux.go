package wol

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func broadcastControl(ifaceName string) func(network, address string, c syscall.RawConn) error {
	return func(network, address string, c syscall.RawConn) error {
		var opErr error
		err := c.Control(func(fd uintptr) {
			if opErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1); opErr != nil {
				return
			}
			if ifaceName != "" {
				opErr = unix.SetsockoptString(int(fd), unix.SOL_SOCKET, unix.SO_BINDTODEVICE, ifaceName)
			}
		})
		if err != nil {
			return err
		}
		return opErr
	}
}
