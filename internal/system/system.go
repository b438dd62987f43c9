package system

import (
	"os"
	"os/exec"
)

// System abstracts the process and filesystem primitives the bootstrap
// sequence relies on, so tests can substitute fakes.
type System interface {
	Geteuid() int
	LookPath(file string) (string, error)
	Run(name string, args ...string) error
	StartDetached(name string, args ...string) error
	Exec(path string, argv []string, env []string) error
	MkdirAll(path string, perm os.FileMode) error
	Chmod(path string, mode os.FileMode) error
	Chown(path string, uid, gid int) error
}

type osSystem struct{}

// New returns the real operating-system implementation of System.
func New() System {
	return &osSystem{}
}

func (s *osSystem) Geteuid() int {
	return os.Geteuid()
}

func (s *osSystem) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes name synchronously with stdio attached to ours, so any
// diagnostics from the collaborator end up in the container log.
func (s *osSystem) Run(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (s *osSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (s *osSystem) Chmod(path string, mode os.FileMode) error {
	return os.Chmod(path, mode)
}

func (s *osSystem) Chown(path string, uid, gid int) error {
	return os.Chown(path, uid, gid)
}
