package wol

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

func listenUDP(t *testing.T) *net.UDPConn {
	t.Helper()
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1)})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestUDPSenderWake(t *testing.T) {
	conn := listenUDP(t)
	sender := &UDPSender{Broadcast: conn.LocalAddr().(*net.UDPAddr)}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := sender.Wake(ctx, "0a:0b:0c:0d:0e:0f"); err != nil {
		t.Fatalf("wake failed: %v", err)
	}

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatalf("deadline: %v", err)
	}
	buf := make([]byte, 512)
	n, _, err := conn.ReadFromUDP(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	mac := net.HardwareAddr{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f}
	want, err := MagicPacket(mac)
	if err != nil {
		t.Fatalf("magic packet: %v", err)
	}
	if !bytes.Equal(buf[:n], want) {
		t.Fatalf("unexpected packet %x", buf[:n])
	}
}

func TestUDPSenderRejectsMalformedTarget(t *testing.T) {
	conn := listenUDP(t)
	sender := &UDPSender{Broadcast: conn.LocalAddr().(*net.UDPAddr)}

	err := sender.Wake(context.Background(), "00:11:22")
	if !errors.Is(err, ErrInvalidHardwareAddr) {
		t.Fatalf("expected ErrInvalidHardwareAddr, got %v", err)
	}
}
