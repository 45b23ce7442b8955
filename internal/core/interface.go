// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"github.com/robgonnella/go-wifiscan/pkg/oui"
	"github.com/robgonnella/go-wifiscan/pkg/scanner"
)

//go:generate mockgen -destination=../mock/core/core.go -package=mock_core . Runner

type Runner interface {
	Initialize(
		coreScanner scanner.Scanner,
		vendorRepo oui.VendorRepo,
		ifaceName string,
		timeoutSeconds int,
		noProgress bool,
		printJson bool,
		noHidden bool,
		vendorInfo bool,
		outFile string,
	)
	Run() error
}
