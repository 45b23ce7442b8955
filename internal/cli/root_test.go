// SPDX-License-Identifier: GPL-3.0-or-later

package cli_test

import (
	"net"
	"testing"

	"github.com/robgonnella/go-wifiscan/internal/cli"
	mock_core "github.com/robgonnella/go-wifiscan/internal/mock/core"
	mock_network "github.com/robgonnella/go-wifiscan/mock/network"
	mock_oui "github.com/robgonnella/go-wifiscan/mock/oui"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRootCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	mockMAC, _ := net.ParseMAC("00:00:00:00:00:00")

	mockIface := &net.Interface{
		Name:         "test-interface",
		HardwareAddr: mockMAC,
	}

	t.Run("initializes and runs scan with default interface", func(st *testing.T) {
		mockNetwork := mock_network.NewMockNetwork(ctrl)
		mockRunner := mock_core.NewMockRunner(ctrl)
		mockVendor := mock_oui.NewMockVendorRepo(ctrl)

		mockNetwork.EXPECT().Interface().AnyTimes().Return(mockIface)

		mockRunner.EXPECT().Initialize(
			gomock.Any(),
			mockVendor,
			"test-interface",
			30,
			false,
			false,
			false,
			false,
			"",
		)

		mockRunner.EXPECT().Run().Return(nil)

		cmd, err := cli.Root(mockRunner, mockNetwork, mockVendor)

		assert.NoError(st, err)

		cmd.SetArgs([]string{})
		err = cmd.Execute()

		assert.NoError(st, err)
	})

	t.Run("passes flags through to runner", func(st *testing.T) {
		mockNetwork := mock_network.NewMockNetwork(ctrl)
		mockRunner := mock_core.NewMockRunner(ctrl)
		mockVendor := mock_oui.NewMockVendorRepo(ctrl)

		mockNetwork.EXPECT().Interface().AnyTimes().Return(mockIface)

		mockRunner.EXPECT().Initialize(
			gomock.Any(),
			mockVendor,
			"wlan1",
			10,
			true,
			true,
			true,
			true,
			"report.json",
		)

		mockRunner.EXPECT().Run().Return(nil)

		cmd, err := cli.Root(mockRunner, mockNetwork, mockVendor)

		assert.NoError(st, err)

		cmd.SetArgs([]string{
			"--interface", "wlan1",
			"--timeout", "10",
			"--no-progress",
			"--json",
			"--no-hidden",
			"--vendor",
			"--out-file", "report.json",
		})

		err = cmd.Execute()

		assert.NoError(st, err)
	})
}
