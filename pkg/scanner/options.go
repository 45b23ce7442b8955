// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

// Option represents an option when creating an IWListScanner
type Option = func(s *IWListScanner)

// WithCommandRunner replaces the default os/exec based command runner
func WithCommandRunner(runner CommandRunner) Option {
	return func(s *IWListScanner) {
		s.runner = runner
	}
}

// WithBinPath sets the path used to invoke the external scan tool
func WithBinPath(binPath string) Option {
	return func(s *IWListScanner) {
		s.binPath = binPath
	}
}
