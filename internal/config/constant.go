package config

var DEFAULT_CONFIG_YAML = `
# entrypoint Configuration File
# Environment: development, staging, production
# entrypoint.yaml
app_name: "entrypoint"
environment: "production"
log_level: "info"

cron:
  crontab_path: "/app/crontab"
  installer: "crontab"
  daemon: "crond"
  daemon_args: []
  runtime_dir: "/var/run/crond"

exec:
  user: "appuser"
  helper: "su-exec"   # use "gosu" on Debian-based images

logger:
  level: "info"
  format: "console"  # or "json"
  output: "stdout"   # stdout, stderr
  timestamp_format: "2006-01-02 15:04:05.000"
  show_caller: false
`
