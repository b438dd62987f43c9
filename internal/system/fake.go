package system

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Fake is a System implementation for tests. It records every call in
// order and returns the error injected for each operation.
type Fake struct {
	Euid  int
	Path  map[string]string // LookPath results, keyed by binary name
	Errs  map[string]error  // injected errors, keyed by operation
	Calls []string

	ExecPath string
	ExecArgv []string
	ExecEnv  []string
}

func NewFake() *Fake {
	return &Fake{
		Path: make(map[string]string),
		Errs: make(map[string]error),
	}
}

func (f *Fake) record(call string) {
	f.Calls = append(f.Calls, call)
}

func (f *Fake) Geteuid() int {
	return f.Euid
}

func (f *Fake) LookPath(file string) (string, error) {
	f.record("lookpath " + file)
	if p, ok := f.Path[file]; ok {
		return p, nil
	}
	return "", &exec.Error{Name: file, Err: exec.ErrNotFound}
}

func (f *Fake) Run(name string, args ...string) error {
	f.record("run " + strings.Join(append([]string{name}, args...), " "))
	return f.Errs["run"]
}

func (f *Fake) StartDetached(name string, args ...string) error {
	f.record("detach " + strings.Join(append([]string{name}, args...), " "))
	return f.Errs["detach"]
}

func (f *Fake) Exec(path string, argv []string, env []string) error {
	f.record("exec " + path)
	f.ExecPath = path
	f.ExecArgv = argv
	f.ExecEnv = env
	return f.Errs["exec"]
}

func (f *Fake) MkdirAll(path string, perm os.FileMode) error {
	f.record(fmt.Sprintf("mkdir %s %o", path, perm))
	return f.Errs["mkdir"]
}

func (f *Fake) Chmod(path string, mode os.FileMode) error {
	f.record(fmt.Sprintf("chmod %s %o", path, mode))
	return f.Errs["chmod"]
}

func (f *Fake) Chown(path string, uid, gid int) error {
	f.record(fmt.Sprintf("chown %s %d:%d", path, uid, gid))
	return f.Errs["chown"]
}
