package types

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level           string `mapstructure:"level"`            // Log level: debug, info, warn, error, fatal
	Format          string `mapstructure:"format"`           // Output format: console, json
	Output          string `mapstructure:"output"`           // Output: stdout, stderr
	TimestampFormat string `mapstructure:"timestamp_format"` // Time format
	ShowCaller      bool   `mapstructure:"show_caller"`      // Show caller information
}
