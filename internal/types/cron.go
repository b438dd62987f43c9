package types

// CronConfig describes the auxiliary cron subsystem set up before the
// application starts
type CronConfig struct {
	CrontabPath string   `mapstructure:"crontab_path"` // scheduled-task definition file
	Installer   string   `mapstructure:"installer"`    // crontab installer binary
	Daemon      string   `mapstructure:"daemon"`       // cron daemon binary
	DaemonArgs  []string `mapstructure:"daemon_args"`  // extra daemon arguments
	RuntimeDir  string   `mapstructure:"runtime_dir"`  // daemon lock/pid directory
}
