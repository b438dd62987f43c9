package crond

import (
	"errors"
	"os"
	"strings"

	"github.com/robfig/cron/v3"
)

// lintCrontab parses the schedule field of every entry and logs a warning
// per line the cron parser rejects. Advisory only: the file is installed
// as-is either way, and the daemon remains the authority on its format.
func (m *Manager) lintCrontab(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	for i, line := range strings.Split(string(data), "\n") {
		if err := lintLine(line); err != nil {
			m.logger.Warn("cron | %s:%d: suspect entry: %s", path, i+1, err)
		}
	}
}

// lintLine validates one crontab line. Blank lines, comments and
// environment assignments pass through untouched.
func lintLine(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	fields := strings.Fields(trimmed)

	// NAME=value environment lines
	if strings.Contains(fields[0], "=") {
		return nil
	}

	if strings.HasPrefix(fields[0], "@") {
		if len(fields) < 2 {
			return errors.New("missing command")
		}
		// @reboot is daemon-specific and unknown to the parser
		if fields[0] == "@reboot" {
			return nil
		}
		_, err := cron.ParseStandard(fields[0])
		return err
	}

	// Five schedule fields followed by a command
	if len(fields) < 6 {
		return errors.New("missing command")
	}
	_, err := cron.ParseStandard(strings.Join(fields[:5], " "))
	return err
}
