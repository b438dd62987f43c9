package types

// ExecConfig controls the identity the target process runs under
type ExecConfig struct {
	User   string `mapstructure:"user"`   // unprivileged user for the target process
	Helper string `mapstructure:"helper"` // de-escalation helper binary (su-exec, gosu)
}
