// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"errors"
	"fmt"
)

var (
	// ErrToolNotFound returned when the external scan binary is not
	// installed on the host
	ErrToolNotFound = errors.New("wireless scan tool not found")
	// ErrPermissionDenied returned when the process lacks privilege to
	// trigger a scan
	ErrPermissionDenied = errors.New("permission denied performing wireless scan")
	// ErrInterfaceNotFound returned when the named interface does not exist
	ErrInterfaceNotFound = errors.New("wireless interface not found")
	// ErrMalformedOutput returned when tool output cannot be segmented
	// into any network cells
	ErrMalformedOutput = errors.New("malformed scan output")
)

// ProcessError represents any other non-zero exit of the scan tool
type ProcessError struct {
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf(
		"wireless scan tool exited with code %d: %s",
		e.ExitCode,
		e.Stderr,
	)
}
