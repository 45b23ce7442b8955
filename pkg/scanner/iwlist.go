// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/robgonnella/go-wifiscan/internal/logger"
)

const defaultBinPath = "iwlist"

// IWListScanner implements the Scanner interface by shelling out to the
// iwlist utility and parsing its cell-block output
type IWListScanner struct {
	binPath string
	runner  CommandRunner
	debug   logger.DebugLogger
}

// NewIWListScanner returns a new instance of IWListScanner
func NewIWListScanner(options ...Option) *IWListScanner {
	s := &IWListScanner{
		binPath: defaultBinPath,
		runner:  &defaultCommandRunner{},
		debug:   logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(s)
	}

	return s
}

// Scan runs one scan for the named interface and returns the fully
// materialized result. No retries and no timeout are applied here; a
// caller-supplied deadline on ctx is honored by the command runner.
func (s *IWListScanner) Scan(
	ctx context.Context,
	ifaceName string,
) (*ScanResult, error) {
	if ifaceName == "" {
		return nil, fmt.Errorf("%w: interface name is required", ErrInterfaceNotFound)
	}

	s.debug.Info().
		Str("interface", ifaceName).
		Str("bin", s.binPath).
		Msg("starting wireless scan")

	stdout, stderr, err := s.runner.Run(ctx, s.binPath, ifaceName, "scan")

	if err != nil {
		return nil, classifyRunError(ifaceName, stderr, err)
	}

	s.debug.Debug().
		Int("bytes", len(stdout)).
		Msg("captured scan tool output")

	return Parse(string(stdout))
}

// classifyRunError maps process-level failures onto the scanner error
// taxonomy. Interface and permission failures are pattern-matched from the
// tool's own stderr text.
func classifyRunError(ifaceName string, stderr []byte, err error) error {
	var execErr *exec.Error

	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrToolNotFound, execErr.Name)
	}

	if errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %s", ErrPermissionDenied, err)
	}

	var exitErr *exec.ExitError

	if errors.As(err, &exitErr) {
		errText := strings.TrimSpace(string(stderr))

		if strings.Contains(errText, "No such device") {
			return fmt.Errorf("%w: %s", ErrInterfaceNotFound, ifaceName)
		}

		if strings.Contains(errText, "Operation not permitted") ||
			strings.Contains(errText, "Permission denied") {
			return fmt.Errorf("%w: %s", ErrPermissionDenied, errText)
		}

		return &ProcessError{
			ExitCode: exitErr.ExitCode(),
			Stderr:   errText,
		}
	}

	return err
}
