// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"errors"
	"net"
	"os"

	"github.com/jackpal/gateway"
)

// private helpers
func getIfaceByIP(ip net.IP) (*net.Interface, error) {
	interfaces, err := net.Interfaces()

	if err != nil {
		return nil, err
	}

	for _, iface := range interfaces {
		addrs, err := iface.Addrs()

		if err != nil {
			continue
		}

		for _, addr := range addrs {
			_, ipnet, err := net.ParseCIDR(addr.String())

			if err != nil {
				continue
			}

			if ipnet.Contains(ip) {
				return &iface, nil
			}
		}
	}

	return nil, errors.New("failed to find interface for IP")
}

func getDefaultNetworkInfo() (*networkInfo, error) {
	hostname, err := os.Hostname()

	if err != nil {
		return nil, err
	}

	gw, err := gateway.DiscoverGateway()

	if err != nil {
		return nil, err
	}

	// udp doesn't make a full connection and will find the default ip
	// that traffic will use if say 2 are configured (wired and wireless)
	conn, err := net.Dial("udp", gw.String()+":80")

	if err != nil {
		return nil, err
	}

	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	foundIP := net.ParseIP(localAddr.IP.String())

	iface, err := getIfaceByIP(foundIP)

	if err != nil {
		return nil, err
	}

	return &networkInfo{
		hostname: hostname,
		gateway:  gw,
		userIP:   foundIP,
		iface:    iface,
	}, nil
}

func getNetworkInfoFromInterfaceName(interfaceName string) (*networkInfo, error) {
	hostname, err := os.Hostname()

	if err != nil {
		return nil, err
	}

	iface, err := net.InterfaceByName(interfaceName)

	if err != nil {
		return nil, err
	}

	// gateway and address are best-effort here - a wireless interface
	// that isn't associated yet has neither
	gw, err := gateway.DiscoverGateway()

	if err != nil {
		gw = nil
	}

	var userIP net.IP

	addrs, err := iface.Addrs()

	if err == nil {
		for _, addr := range addrs {
			if ip, ok := addr.(*net.IPNet); ok && !ip.IP.IsLoopback() {
				userIP = ip.IP
				break
			}
		}
	}

	return &networkInfo{
		hostname: hostname,
		gateway:  gw,
		userIP:   userIP,
		iface:    iface,
	}, nil
}
