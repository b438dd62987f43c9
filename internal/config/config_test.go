package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. It mirrors testing.T.Chdir,
// which is unavailable before Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Cron.CrontabPath != "/app/crontab" {
		t.Errorf("CrontabPath = %q, want /app/crontab", cfg.Cron.CrontabPath)
	}
	if cfg.Cron.Daemon != "crond" {
		t.Errorf("Daemon = %q, want crond", cfg.Cron.Daemon)
	}
	if cfg.Cron.RuntimeDir != "/var/run/crond" {
		t.Errorf("RuntimeDir = %q, want /var/run/crond", cfg.Cron.RuntimeDir)
	}
	if cfg.Exec.User != "appuser" {
		t.Errorf("User = %q, want appuser", cfg.Exec.User)
	}
	if cfg.Exec.Helper != "su-exec" {
		t.Errorf("Helper = %q, want su-exec", cfg.Exec.Helper)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("ENTRYPOINT_EXEC_USER", "svc")
	t.Setenv("ENTRYPOINT_CRON_DAEMON", "cron")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Exec.User != "svc" {
		t.Errorf("User = %q, want svc", cfg.Exec.User)
	}
	if cfg.Cron.Daemon != "cron" {
		t.Errorf("Daemon = %q, want cron", cfg.Cron.Daemon)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "exec:\n  helper: \"gosu\"\n  user: \"webapp\"\n"
	if err := os.WriteFile(filepath.Join(dir, "entrypoint.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	if cfg.Exec.Helper != "gosu" {
		t.Errorf("Helper = %q, want gosu", cfg.Exec.Helper)
	}
	if cfg.Exec.User != "webapp" {
		t.Errorf("User = %q, want webapp", cfg.Exec.User)
	}
	// Keys absent from the file keep their defaults
	if cfg.Cron.Installer != "crontab" {
		t.Errorf("Installer = %q, want crontab", cfg.Cron.Installer)
	}
}
