package wol

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseHardwareAddr(t *testing.T) {
	want := []byte{0x00, 0x11, 0x22, 0xaa, 0xbb, 0xcc}
	for _, in := range []string{
		"00:11:22:aa:bb:cc",
		"00:11:22:AA:BB:CC",
		"00-11-22-aa-bb-cc",
		"0011.22aa.bbcc",
		"001122aabbcc",
		" 00:11:22:aa:bb:cc\n",
	} {
		mac, err := ParseHardwareAddr(in)
		if err != nil {
			t.Errorf("%q: unexpected error %v", in, err)
			continue
		}
		if !bytes.Equal(mac, want) {
			t.Errorf("%q: expected %x, got %x", in, want, []byte(mac))
		}
	}
}

func TestParseHardwareAddrInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"00:11:22:33:44",
		"00:11:22:33:44:gg",
		"00112233445g",
		"00:00:5e:00:53:01:00:01",
		"not a mac",
	} {
		if _, err := ParseHardwareAddr(in); !errors.Is(err, ErrInvalidHardwareAddr) {
			t.Errorf("%q: expected ErrInvalidHardwareAddr, got %v", in, err)
		}
	}
}

func TestMagicPacket(t *testing.T) {
	mac, err := ParseHardwareAddr("01:02:03:04:05:06")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	packet, err := MagicPacket(mac)
	if err != nil {
		t.Fatalf("magic packet: %v", err)
	}
	if len(packet) != PacketLen || PacketLen != 102 {
		t.Fatalf("expected 102 bytes, got %d", len(packet))
	}
	if !bytes.Equal(packet[:6], []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("unexpected sync stream %x", packet[:6])
	}
	for i := 0; i < 16; i++ {
		chunk := packet[6+i*6 : 12+i*6]
		if !bytes.Equal(chunk, mac) {
			t.Fatalf("repetition %d: expected %x, got %x", i, []byte(mac), chunk)
		}
	}
}

func TestMagicPacketRejectsShortAddress(t *testing.T) {
	_, err := MagicPacket([]byte{0x01, 0x02, 0x03})
	if !errors.Is(err, ErrInvalidHardwareAddr) {
		t.Fatalf("expected ErrInvalidHardwareAddr, got %v", err)
	}
}
