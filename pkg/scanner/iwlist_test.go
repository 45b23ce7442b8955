// SPDX-License-Identifier: GPL-3.0-or-later

package scanner_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"testing"

	mock_scanner "github.com/robgonnella/go-wifiscan/mock/scanner"
	"github.com/robgonnella/go-wifiscan/pkg/scanner"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// exitError produces a real *exec.ExitError so classification sees the
// same error type a failing iwlist run would produce
func exitError(t *testing.T) *exec.ExitError {
	t.Helper()

	err := exec.Command("sh", "-c", "exit 45").Run()

	var exitErr *exec.ExitError

	if !errors.As(err, &exitErr) {
		t.Fatal("expected exit error from sh")
	}

	return exitErr
}

func TestIWListScanner(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("scans and parses tool output", func(st *testing.T) {
		runner := mock_scanner.NewMockCommandRunner(ctrl)

		wifiScanner := scanner.NewIWListScanner(
			scanner.WithCommandRunner(runner),
		)

		runner.EXPECT().
			Run(gomock.Any(), "iwlist", "wlan0", "scan").
			Return([]byte(twoCellOutput), []byte{}, nil)

		result, err := wifiScanner.Scan(ctx, "wlan0")

		assert.NoError(st, err)
		assert.Len(st, result.Networks, 2)
	})

	t.Run("returns ToolNotFound when binary is missing", func(st *testing.T) {
		runner := mock_scanner.NewMockCommandRunner(ctrl)

		wifiScanner := scanner.NewIWListScanner(
			scanner.WithCommandRunner(runner),
		)

		notFound := &exec.Error{Name: "iwlist", Err: exec.ErrNotFound}

		// same classification regardless of interface name
		for _, ifaceName := range []string{"wlan0", "nonsense0"} {
			runner.EXPECT().
				Run(gomock.Any(), "iwlist", ifaceName, "scan").
				Return(nil, nil, notFound)

			result, err := wifiScanner.Scan(ctx, ifaceName)

			assert.Nil(st, result)
			assert.ErrorIs(st, err, scanner.ErrToolNotFound)
		}
	})

	t.Run("returns InterfaceNotFound for unknown interface", func(st *testing.T) {
		runner := mock_scanner.NewMockCommandRunner(ctrl)

		wifiScanner := scanner.NewIWListScanner(
			scanner.WithCommandRunner(runner),
		)

		stderr := []byte("wlan9     Interface doesn't support scanning : No such device\n")

		runner.EXPECT().
			Run(gomock.Any(), "iwlist", "wlan9", "scan").
			Return(nil, stderr, exitError(st))

		result, err := wifiScanner.Scan(ctx, "wlan9")

		assert.Nil(st, result)
		assert.ErrorIs(st, err, scanner.ErrInterfaceNotFound)

		var processErr *scanner.ProcessError

		assert.False(st, errors.As(err, &processErr))
	})

	t.Run("returns PermissionDenied from tool stderr", func(st *testing.T) {
		runner := mock_scanner.NewMockCommandRunner(ctrl)

		wifiScanner := scanner.NewIWListScanner(
			scanner.WithCommandRunner(runner),
		)

		stderr := []byte("wlan0     Interface doesn't support scanning : Operation not permitted\n")

		runner.EXPECT().
			Run(gomock.Any(), "iwlist", "wlan0", "scan").
			Return(nil, stderr, exitError(st))

		result, err := wifiScanner.Scan(ctx, "wlan0")

		assert.Nil(st, result)
		assert.ErrorIs(st, err, scanner.ErrPermissionDenied)
	})

	t.Run("returns PermissionDenied when exec is not permitted", func(st *testing.T) {
		runner := mock_scanner.NewMockCommandRunner(ctrl)

		wifiScanner := scanner.NewIWListScanner(
			scanner.WithCommandRunner(runner),
		)

		runner.EXPECT().
			Run(gomock.Any(), "iwlist", "wlan0", "scan").
			Return(nil, nil, os.ErrPermission)

		result, err := wifiScanner.Scan(ctx, "wlan0")

		assert.Nil(st, result)
		assert.ErrorIs(st, err, scanner.ErrPermissionDenied)
	})

	t.Run("returns ProcessError for any other non-zero exit", func(st *testing.T) {
		runner := mock_scanner.NewMockCommandRunner(ctrl)

		wifiScanner := scanner.NewIWListScanner(
			scanner.WithCommandRunner(runner),
		)

		stderr := []byte("something unexpected happened\n")

		runner.EXPECT().
			Run(gomock.Any(), "iwlist", "wlan0", "scan").
			Return(nil, stderr, exitError(st))

		result, err := wifiScanner.Scan(ctx, "wlan0")

		assert.Nil(st, result)

		var processErr *scanner.ProcessError

		assert.True(st, errors.As(err, &processErr))
		assert.Equal(st, 45, processErr.ExitCode)
		assert.Equal(st, "something unexpected happened", processErr.Stderr)
	})

	t.Run("rejects empty interface name", func(st *testing.T) {
		runner := mock_scanner.NewMockCommandRunner(ctrl)

		wifiScanner := scanner.NewIWListScanner(
			scanner.WithCommandRunner(runner),
		)

		result, err := wifiScanner.Scan(ctx, "")

		assert.Nil(st, result)
		assert.ErrorIs(st, err, scanner.ErrInterfaceNotFound)
	})
}
