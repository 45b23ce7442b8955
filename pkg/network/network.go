// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"net"
)

// UserNetwork data structure for implementing Network interface
type UserNetwork struct {
	hostname string
	gateway  net.IP
	userIP   net.IP
	iface    *net.Interface
}

// NewDefaultNetwork returns a UserNetwork for the interface carrying the
// default route
func NewDefaultNetwork() (*UserNetwork, error) {
	info, err := getDefaultNetworkInfo()

	if err != nil {
		return nil, err
	}

	return &UserNetwork{
		hostname: info.hostname,
		gateway:  info.gateway,
		userIP:   info.userIP,
		iface:    info.iface,
	}, nil
}

// NewDefaultWirelessNetwork returns a UserNetwork for the first wireless
// interface on the host, falling back to the default-route interface when
// wireless discovery yields nothing
func NewDefaultWirelessNetwork() (*UserNetwork, error) {
	names, err := WirelessInterfaceNames()

	if err == nil && len(names) > 0 {
		return NewNetworkFromInterfaceName(names[0])
	}

	return NewDefaultNetwork()
}

// NewNetworkFromInterfaceName returns a UserNetwork instance from the
// provided interface name. An interface without an assigned address is
// still valid here since wireless scanning does not require one.
func NewNetworkFromInterfaceName(interfaceName string) (*UserNetwork, error) {
	info, err := getNetworkInfoFromInterfaceName(interfaceName)

	if err != nil {
		return nil, err
	}

	return &UserNetwork{
		hostname: info.hostname,
		gateway:  info.gateway,
		userIP:   info.userIP,
		iface:    info.iface,
	}, nil
}

// Hostname returns the hostname for this host
func (n *UserNetwork) Hostname() string {
	return n.hostname
}

// Gateway returns the default network gateway for this host, nil when no
// default route was discoverable
func (n *UserNetwork) Gateway() net.IP {
	return n.gateway
}

// UserIP returns the IP address assigned to this network's interface, nil
// for an unconfigured interface
func (n *UserNetwork) UserIP() net.IP {
	return n.userIP
}

// Interface returns this network's interface
func (n *UserNetwork) Interface() *net.Interface {
	return n.iface
}
