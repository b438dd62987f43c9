// config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"entrypoint/internal/types"
)

// Default configuration values
var defaultConfig = types.Config{
	AppName:     "entrypoint",
	Environment: "production",
	LogLevel:    "info",
	Cron: types.CronConfig{
		CrontabPath: "/app/crontab",
		Installer:   "crontab",
		Daemon:      "crond",
		DaemonArgs:  nil,
		RuntimeDir:  "/var/run/crond",
	},
	Exec: types.ExecConfig{
		User:   "appuser",
		Helper: "su-exec",
	},
	Logger: types.LoggerConfig{
		Level:           "info",
		Format:          "console",
		Output:          "stdout",
		TimestampFormat: "2006-01-02 15:04:05.000",
		ShowCaller:      false,
	},
}

// getSystemConfigPath returns the OS-specific configuration directory
func getSystemConfigPath() (string, error) {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %PROGRAMDATA%\entrypoint
		programData := os.Getenv("PROGRAMDATA")
		if programData == "" {
			programData = "C:\\ProgramData"
		}
		configDir = filepath.Join(programData, "entrypoint")

	case "darwin":
		// macOS: /Library/Application Support/entrypoint
		configDir = "/Library/Application Support/entrypoint"

	case "linux", "freebsd", "openbsd", "netbsd":
		// Unix-like: /etc/entrypoint
		configDir = "/etc/entrypoint"

	default:
		return "", fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}

	return configDir, nil
}

// getConfigPaths returns all possible configuration file paths in order of precedence
func getConfigPaths() ([]string, error) {
	systemConfigDir, err := getSystemConfigPath()
	if err != nil {
		return nil, err
	}

	// Configuration search paths in order of precedence (first found wins):
	paths := []string{}

	// 1. Current directory (for development and testing)
	paths = append(paths, "entrypoint.yaml")

	// 2. User's home directory (~/.config/entrypoint/)
	if home, err := os.UserHomeDir(); err == nil {
		userConfigDir := filepath.Join(home, ".config", "entrypoint")
		paths = append(paths, filepath.Join(userConfigDir, "entrypoint.yaml"))
	}

	// 3. System-wide configuration directory
	paths = append(paths, filepath.Join(systemConfigDir, "entrypoint.yaml"))

	return paths, nil
}

// Load loads configuration from file, environment variables, or defaults
func Load() (*types.Config, error) {
	viper.SetConfigName("entrypoint") // Name of config file (without extension)
	viper.SetConfigType("yaml")       // REQUIRED if the config file does not have the extension in the name

	// Set default values
	viper.SetDefault("app_name", defaultConfig.AppName)
	viper.SetDefault("environment", defaultConfig.Environment)
	viper.SetDefault("log_level", defaultConfig.LogLevel)
	viper.SetDefault("cron.crontab_path", defaultConfig.Cron.CrontabPath)
	viper.SetDefault("cron.installer", defaultConfig.Cron.Installer)
	viper.SetDefault("cron.daemon", defaultConfig.Cron.Daemon)
	viper.SetDefault("cron.daemon_args", defaultConfig.Cron.DaemonArgs)
	viper.SetDefault("cron.runtime_dir", defaultConfig.Cron.RuntimeDir)
	viper.SetDefault("exec.user", defaultConfig.Exec.User)
	viper.SetDefault("exec.helper", defaultConfig.Exec.Helper)
	viper.SetDefault("logger.level", defaultConfig.Logger.Level)
	viper.SetDefault("logger.format", defaultConfig.Logger.Format)
	viper.SetDefault("logger.output", defaultConfig.Logger.Output)
	viper.SetDefault("logger.timestamp_format", defaultConfig.Logger.TimestampFormat)
	viper.SetDefault("logger.show_caller", defaultConfig.Logger.ShowCaller)

	// Add configuration paths
	configPaths, err := getConfigPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	for _, path := range configPaths {
		viper.AddConfigPath(filepath.Dir(path))
	}

	// Try to read configuration file
	if err := viper.ReadInConfig(); err != nil {
		// If file doesn't exist, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Bind environment variables
	viper.SetEnvPrefix("ENTRYPOINT") // Environment variables will be prefixed with ENTRYPOINT_
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // Automatically override config with environment variables

	// Unmarshal configuration into struct
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetConfigFileLocation returns the location of the currently loaded config file
func GetConfigFileLocation() string {
	return viper.ConfigFileUsed()
}

// GetSystemConfigDir returns the system-wide configuration directory
func GetSystemConfigDir() (string, error) {
	return getSystemConfigPath()
}

// CreateDefaultConfig creates a default configuration file in the system config directory
func CreateDefaultConfig() error {
	systemConfigDir, err := getSystemConfigPath()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(systemConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(systemConfigDir, "entrypoint.yaml")

	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return errors.New("config file already exists")
	}

	if err := os.WriteFile(configPath, []byte(DEFAULT_CONFIG_YAML), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
