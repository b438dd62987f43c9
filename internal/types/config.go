package types

type Config struct {
	AppName     string       `mapstructure:"app_name"`
	Environment string       `mapstructure:"environment"`
	LogLevel    string       `mapstructure:"log_level"`
	Cron        CronConfig   `mapstructure:"cron"`
	Exec        ExecConfig   `mapstructure:"exec"`
	Logger      LoggerConfig `mapstructure:"logger"`
}
