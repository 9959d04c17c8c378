package config

// LoggingConfig configures logging.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`                                                    // Master toggle - false = no logging
	Level      string          `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"` // debug, info, warn, error
	Format     string          `yaml:"format" validate:"omitempty,oneof=text json"`                    // json, text
	Dir        string          `yaml:"dir,omitempty"`                                                  // default <workspace>/.converso/logs
	Categories map[string]bool `yaml:"categories,omitempty"`                                           // Per-category toggles
}
