package notify

import (
	"net"
	"path/filepath"
	"testing"
	"time"
)

func TestReadyUnsupervised(t *testing.T) {
	t.Setenv("NOTIFY_SOCKET", "")
	sent, err := Ready()
	if err != nil || sent {
		t.Fatalf("expected no notification, got sent=%v err=%v", sent, err)
	}
}

func TestReadyAndStopping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notify.sock")
	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer conn.Close()
	t.Setenv("NOTIFY_SOCKET", path)

	for _, tc := range []struct {
		send func() (bool, error)
		want string
	}{
		{Ready, "READY=1"},
		{Stopping, "STOPPING=1"},
	} {
		sent, err := tc.send()
		if err != nil || !sent {
			t.Fatalf("%s: expected notification, got sent=%v err=%v", tc.want, sent, err)
		}
		if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
			t.Fatalf("deadline: %v", err)
		}
		buf := make([]byte, 64)
		n, err := conn.Read(buf)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if string(buf[:n]) != tc.want {
			t.Fatalf("expected %s, got %q", tc.want, buf[:n])
		}
	}
}
