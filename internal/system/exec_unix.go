//go:build !windows

package system

import (
	"golang.org/x/sys/unix"
)

// Exec replaces the current process image with path. The new process
// inherits our PID and open file descriptors, which keeps signal delivery
// and exit-code propagation intact from the container runtime's point of
// view. It only returns on failure.
func (s *osSystem) Exec(path string, argv []string, env []string) error {
	return unix.Exec(path, argv, env)
}
