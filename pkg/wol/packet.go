// Package wol sends Wake-on-LAN magic packets.
package wol

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strings"

	magic "github.com/mdlayher/wol"
)

// PacketLen is the size of a magic packet without password: the sync stream followed
// by 16 copies of the address.
const PacketLen = 6 + 16*6

var ErrInvalidHardwareAddr = errors.New("invalid hardware address")

// ParseHardwareAddr parses a 6 octet hardware address. Octets may be separated by
// ':' or '-', grouped by '.', or written as 12 bare hex digits.
func ParseHardwareAddr(s string) (net.HardwareAddr, error) {
	s = strings.TrimSpace(s)
	if len(s) == 12 {
		raw, err := hex.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("%w '%s': %v", ErrInvalidHardwareAddr, s, err)
		}
		return net.HardwareAddr(raw), nil
	}

	mac, err := net.ParseMAC(s)
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %v", ErrInvalidHardwareAddr, s, err)
	}
	if len(mac) != 6 {
		return nil, fmt.Errorf("%w '%s': expected 6 octets, got %d", ErrInvalidHardwareAddr, s, len(mac))
	}
	return mac, nil
}

// MagicPacket returns the payload waking the device owning mac.
func MagicPacket(mac net.HardwareAddr) ([]byte, error) {
	p := &magic.MagicPacket{Target: mac}
	b, err := p.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("%w '%s': %v", ErrInvalidHardwareAddr, mac, err)
	}
	return b, nil
}
