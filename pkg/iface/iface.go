package iface

import (
	"fmt"
	"net"

	"github.com/vishvananda/netlink"
)

// VerifyExists verifies an interface named 'ifaceName' exists and returns its link.
func VerifyExists(ifaceName string) (netlink.Link, error) {
	link, err := netlink.LinkByName(ifaceName)
	if err != nil {
		return nil, fmt.Errorf("interface '%s' not found: %w", ifaceName, err)
	}
	return link, nil
}

// ResolveBroadcast returns the IPv4 broadcast address of the interface named 'ifaceName'.
func ResolveBroadcast(ifaceName string) (net.IP, error) {
	link, err := VerifyExists(ifaceName)
	if err != nil {
		return nil, err
	}
	return BroadcastAddress(link)
}

// BroadcastAddress returns the broadcast address of the first IPv4 address attached to iface.
// The kernel reported broadcast is preferred, otherwise it is derived from the prefix.
func BroadcastAddress(iface netlink.Link) (net.IP, error) {
	addr, err := firstIPv4(iface)
	if err != nil {
		return nil, err
	}
	if addr.Broadcast != nil && !addr.Broadcast.IsUnspecified() {
		return addr.Broadcast.To4(), nil
	}
	return DirectedBroadcast(addr.IPNet), nil
}

// DirectedBroadcast computes the broadcast address of an IPv4 network,
// e.g 192.168.1.0/24 -> 192.168.1.255.
func DirectedBroadcast(ipnet *net.IPNet) net.IP {
	ip := ipnet.IP.To4()
	mask := ipnet.Mask
	if len(mask) == net.IPv6len {
		mask = mask[12:]
	}
	res := make(net.IP, net.IPv4len)
	for i := range res {
		res[i] = ip[i] | ^mask[i]
	}
	return res
}

// GetIPAddress returns the first non loopback IPv4 address attached to iface.
func GetIPAddress(iface netlink.Link) (net.IP, error) {
	addr, err := firstIPv4(iface)
	if err != nil {
		return nil, err
	}
	return addr.IP, nil
}

// Describe names an interface with its address for logging, e.g "eth0 (192.168.1.2)".
// The bare name is returned when the interface or its address cannot be found.
func Describe(ifaceName string) string {
	link, err := VerifyExists(ifaceName)
	if err != nil {
		return ifaceName
	}
	ip, err := GetIPAddress(link)
	if err != nil {
		return ifaceName
	}
	return fmt.Sprintf("%s (%s)", ifaceName, ip)
}

func firstIPv4(iface netlink.Link) (netlink.Addr, error) {
	addrs, err := netlink.AddrList(iface, netlink.FAMILY_V4)
	if err != nil {
		return netlink.Addr{}, err
	}
	for _, addr := range addrs {
		if addr.IPNet == nil || addr.IP.To4() == nil || addr.IP.IsLoopback() {
			continue
		}
		return addr, nil
	}
	return netlink.Addr{}, fmt.Errorf("failed to find address attached to interface '%s'",
		iface.Attrs().Name)
}
