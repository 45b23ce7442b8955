// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/robgonnella/go-wifiscan/internal/core"
	"github.com/robgonnella/go-wifiscan/pkg/network"
	"github.com/robgonnella/go-wifiscan/pkg/oui"
	"github.com/robgonnella/go-wifiscan/pkg/scanner"
)

// Root returns the root command for the cli
func Root(
	runner core.Runner,
	netInfo network.Network,
	vendorRepo oui.VendorRepo,
) (*cobra.Command, error) {
	var printJson bool
	var noProgress bool
	var noHidden bool
	var vendorInfo bool
	var outFile string
	var ifaceName string
	var timeoutSeconds int

	cmd := &cobra.Command{
		Use:   "go-wifiscan",
		Short: "Scan for wireless networks!",
		Long:  `CLI to scan for nearby wireless networks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			wifiScanner := scanner.NewIWListScanner()

			runner.Initialize(
				wifiScanner,
				vendorRepo,
				ifaceName,
				timeoutSeconds,
				noProgress,
				printJson,
				noHidden,
				vendorInfo,
				outFile,
			)

			return runner.Run()
		},
	}

	cmd.Flags().BoolVar(&printJson, "json", false, "output json instead of table text")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable all output except for final results")
	cmd.Flags().BoolVar(&noHidden, "no-hidden", false, "exclude hidden networks from results")
	cmd.Flags().BoolVar(&vendorInfo, "vendor", false, "include access point vendor info (requires static oui database)")
	cmd.Flags().StringVarP(&ifaceName, "interface", "i", netInfo.Interface().Name, "set the interface for scanning")
	cmd.Flags().StringVar(&outFile, "out-file", "", "write final results to file")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 30, "timeout for the whole scan in seconds, 0 disables")

	cmd.AddCommand(newVersion())
	cmd.AddCommand(newUpdateVendors(vendorRepo))

	return cmd, nil
}
