// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"github.com/mdlayher/wifi"
)

// WirelessInterfaceNames returns the names of all interfaces on this host
// that support nl80211 wireless operations
func WirelessInterfaceNames() ([]string, error) {
	client, err := wifi.New()

	if err != nil {
		return nil, err
	}

	defer client.Close()

	interfaces, err := client.Interfaces()

	if err != nil {
		return nil, err
	}

	names := []string{}

	for _, iface := range interfaces {
		// p2p devices report an empty name
		if iface.Name == "" {
			continue
		}

		names = append(names, iface.Name)
	}

	return names, nil
}
