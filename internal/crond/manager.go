package crond

import (
	"os"

	"entrypoint/internal/system"
	"entrypoint/internal/types"
	"entrypoint/pkg/logger"
)

// Manager performs the best-effort cron subsystem setup that runs before
// the application process takes over. Every step logs failures and moves
// on: a broken cron setup must never keep the application from starting.
type Manager struct {
	config *types.CronConfig
	sys    system.System
	logger logger.Logger
}

func NewManager(cfg *types.CronConfig, sys system.System, logger logger.Logger) *Manager {
	return &Manager{
		config: cfg,
		sys:    sys,
		logger: logger,
	}
}

// InstallCrontab installs the scheduled-task definition file into the
// cron daemon's active table. A missing file is a no-op; any failure is
// logged and ignored.
func (m *Manager) InstallCrontab() {
	path := m.config.CrontabPath
	if _, err := os.Stat(path); err != nil {
		m.logger.Debug("cron | no crontab at %s, skipping install", path)
		return
	}

	m.lintCrontab(path)

	// Cron daemons refuse group/world-writable tables
	if err := m.sys.Chmod(path, 0644); err != nil {
		m.logger.Warn("cron | failed to set crontab mode: %s", err)
	}

	if err := m.sys.Run(m.config.Installer, path); err != nil {
		m.logger.Warn("cron | crontab install failed: %s", err)
		return
	}

	m.logger.Info("cron | installed crontab from %s", path)
}

// StartDaemon starts the cron daemon as a detached background process.
// The daemon is fire-and-forget: never joined, never monitored.
func (m *Manager) StartDaemon() {
	if _, err := m.sys.LookPath(m.config.Daemon); err != nil {
		m.logger.Warn("cron | %s not found, scheduled tasks disabled", m.config.Daemon)
		return
	}

	if err := m.sys.StartDetached(m.config.Daemon, m.config.DaemonArgs...); err != nil {
		m.logger.Warn("cron | failed to start %s: %s", m.config.Daemon, err)
		return
	}

	m.logger.Info("cron | started %s", m.config.Daemon)
}

// PrepareRuntimeDir converges the daemon's lock/pid directory to the
// desired state: present, root-owned, traversable by everyone. Each
// sub-step independently tolerates already-correct or externally managed
// state, so repeated runs are safe.
func (m *Manager) PrepareRuntimeDir() {
	dir := m.config.RuntimeDir

	if err := m.sys.MkdirAll(dir, 0755); err != nil {
		m.logger.Warn("cron | failed to create %s: %s", dir, err)
	}
	if err := m.sys.Chown(dir, 0, 0); err != nil {
		m.logger.Warn("cron | failed to chown %s: %s", dir, err)
	}
	if err := m.sys.Chmod(dir, 0755); err != nil {
		m.logger.Warn("cron | failed to chmod %s: %s", dir, err)
	}
}
