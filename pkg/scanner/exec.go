// SPDX-License-Identifier: GPL-3.0-or-later

package scanner

import (
	"bytes"
	"context"
	"os/exec"
)

// defaultCommandRunner implements CommandRunner using os/exec
type defaultCommandRunner struct{}

func (r *defaultCommandRunner) Run(
	ctx context.Context,
	name string,
	args ...string,
) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	return stdout.Bytes(), stderr.Bytes(), err
}
