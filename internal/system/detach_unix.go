//go:build !windows

package system

import (
	"os/exec"
	"syscall"
)

// StartDetached launches name as a background process with no inherited
// stdio and its own process group, then releases the handle. The child is
// never awaited.
func (s *osSystem) StartDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	// Detach from our process group so the daemon survives the exec handoff
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		return err
	}

	return cmd.Process.Release()
}
