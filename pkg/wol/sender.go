package wol

import (
	"context"
	"fmt"
	"net"

	"wakeproxy/pkg/models"
)

// Waker sends a wake request to a hardware address. There is no acknowledgement:
// a nil error only means the packet left this host.
type Waker interface {
	Wake(ctx context.Context, target string) error
}

// UDPSender broadcasts magic packets over UDP.
type UDPSender struct {
	Broadcast *net.UDPAddr
	// Interface binds the socket to a device when set. Requires CAP_NET_RAW on Linux.
	Interface string
}

func NewUDPSender(cfg models.Wake) *UDPSender {
	return &UDPSender{
		Broadcast: cfg.Broadcast,
		Interface: cfg.Interface,
	}
}

// Wake parses target and writes exactly one magic packet to the broadcast address.
func (s *UDPSender) Wake(ctx context.Context, target string) error {
	mac, err := ParseHardwareAddr(target)
	if err != nil {
		return err
	}

	lc := net.ListenConfig{Control: broadcastControl(s.Interface)}
	conn, err := lc.ListenPacket(ctx, "udp4", ":0")
	if err != nil {
		return fmt.Errorf("opening broadcast socket: %w", err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetWriteDeadline(deadline); err != nil {
			return err
		}
	}

	packet, err := MagicPacket(mac)
	if err != nil {
		return err
	}
	n, err := conn.WriteTo(packet, s.Broadcast)
	if err != nil {
		return fmt.Errorf("sending magic packet to %s: %w", s.Broadcast, err)
	}
	if n != len(packet) {
		return fmt.Errorf("short write of magic packet: %d of %d bytes", n, len(packet))
	}
	return nil
}
