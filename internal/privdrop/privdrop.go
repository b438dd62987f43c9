package privdrop

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"entrypoint/internal/system"
	"entrypoint/internal/types"
	"entrypoint/pkg/logger"
)

// Dropper decides the identity of the final process and replaces this
// process with it. There is no way back: on success the call never
// returns, on failure the whole container start has failed.
type Dropper struct {
	config *types.ExecConfig
	sys    system.System
	logger logger.Logger
}

func New(cfg *types.ExecConfig, sys system.System, logger logger.Logger) *Dropper {
	return &Dropper{
		config: cfg,
		sys:    sys,
		logger: logger,
	}
}

// Exec replaces the current process image with argv. When running as root
// and the de-escalation helper is available, the command is re-executed
// through the helper under the configured unprivileged user; otherwise
// argv runs unchanged under the current identity.
func (d *Dropper) Exec(argv []string) error {
	if len(argv) == 0 {
		return errors.New("no command to execute")
	}

	if d.sys.Geteuid() == 0 {
		if helper, err := d.sys.LookPath(d.config.Helper); err == nil {
			d.logger.Info("exec | running as %s: %s", d.config.User, strings.Join(argv, " "))
			helperArgv := append([]string{helper, d.config.User}, argv...)
			return d.replace(helper, helperArgv)
		}
		d.logger.Warn("exec | %s not available, keeping root identity", d.config.Helper)
	}

	path, err := d.sys.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("command not found: %s: %w", argv[0], err)
	}
	d.logger.Info("exec | running: %s", strings.Join(argv, " "))
	return d.replace(path, argv)
}

func (d *Dropper) replace(path string, argv []string) error {
	if err := d.sys.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}
	return nil
}
