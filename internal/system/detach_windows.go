//go:build windows

package system

import (
	"os/exec"
)

// StartDetached launches name as a background process with no inherited
// stdio, then releases the handle. The child is never awaited.
func (s *osSystem) StartDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}

	return cmd.Process.Release()
}
