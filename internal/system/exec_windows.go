//go:build windows

package system

import (
	"errors"
	"os"
	"os/exec"

	"entrypoint/internal/signals"
)

// Exec approximates process-image replacement, which Windows does not
// have: the target runs as a child with inherited stdio, termination
// signals are relayed to it, and this process exits with the child's exit
// code. Only a failure to start is reported to the caller.
func (s *osSystem) Exec(path string, argv []string, env []string) error {
	cmd := exec.Command(path, argv[1:]...)
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return err
	}

	stop := signals.Forward(cmd.Process)
	defer stop()

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.ExitCode())
	}
	if err != nil {
		return err
	}
	os.Exit(0)
	return nil
}
