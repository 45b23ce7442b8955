// SPDX-License-Identifier: GPL-3.0-or-later

package network_test

import (
	"os"
	"testing"

	"github.com/jackpal/gateway"
	"github.com/robgonnella/go-wifiscan/pkg/network"
	"github.com/stretchr/testify/assert"
)

func TestDefaultUserNetwork(t *testing.T) {
	userNet, err := network.NewDefaultNetwork()

	assert.NoError(t, err)

	t.Run("gets hostname", func(st *testing.T) {
		expectedHostname, err := os.Hostname()

		assert.NoError(st, err)

		assert.Equal(st, expectedHostname, userNet.Hostname())
	})

	t.Run("gets gateway", func(st *testing.T) {
		expectedGw, err := gateway.DiscoverGateway()

		assert.NoError(st, err)

		assert.Equal(st, expectedGw, userNet.Gateway())
	})

	t.Run("gets user ip", func(st *testing.T) {
		assert.NotNil(st, userNet.UserIP())
	})

	t.Run("gets interface", func(st *testing.T) {
		assert.NotNil(st, userNet.Interface())
	})
}

func TestNetworkFromInterfaceName(t *testing.T) {
	t.Run("returns network for known interface", func(st *testing.T) {
		defaultNet, err := network.NewDefaultNetwork()

		assert.NoError(st, err)

		ifaceName := defaultNet.Interface().Name

		userNet, err := network.NewNetworkFromInterfaceName(ifaceName)

		assert.NoError(st, err)
		assert.Equal(st, ifaceName, userNet.Interface().Name)
	})

	t.Run("returns error for unknown interface", func(st *testing.T) {
		userNet, err := network.NewNetworkFromInterfaceName("noop-interface-0")

		assert.Error(st, err)
		assert.Nil(st, userNet)
	})

	t.Run("tolerates address-less loopback-only lookups", func(st *testing.T) {
		// loopback has no non-loopback address so userIP stays nil
		userNet, err := network.NewNetworkFromInterfaceName("lo")

		if err != nil {
			st.Skip("no loopback interface on this host")
		}

		assert.Nil(st, userNet.UserIP())
	})
}
