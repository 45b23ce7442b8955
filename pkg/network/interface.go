// SPDX-License-Identifier: GPL-3.0-or-later

package network

import "net"

//go:generate mockgen -destination=../../mock/network/network.go -package=mock_network . Network

type Network interface {
	Hostname() string
	Interface() *net.Interface
	Gateway() net.IP
	UserIP() net.IP
}

type networkInfo struct {
	hostname string
	gateway  net.IP
	userIP   net.IP
	iface    *net.Interface
}
