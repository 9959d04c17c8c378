package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"converso/internal/conversation"
	"converso/internal/logging"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all Converso configuration from .converso/config.yaml.
type Config struct {
	// UI controls how the screen looks
	UI UIConfig `yaml:"ui"`

	// Chat controls the conversation the screen opens with and the send behaviour
	Chat ChatConfig `yaml:"chat"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Watch reloads this file while the screen is open
	Watch bool `yaml:"watch"`
}

// ChatConfig configures the message store and the send action.
type ChatConfig struct {
	// Seed opens the screen with the seed conversation
	Seed bool `yaml:"seed"`

	// SeedMessages replaces the built-in seed when non-empty
	SeedMessages []SeedMessage `yaml:"seed_messages,omitempty" validate:"dive"`

	// ClearDraftOnSend empties the input after a send (off: the draft stays)
	ClearDraftOnSend bool `yaml:"clear_draft_on_send"`

	// RejectEmptySend ignores blank drafts (off: empty messages are appended)
	RejectEmptySend bool `yaml:"reject_empty_send"`
}

// SeedMessage is one configured seed record.
type SeedMessage struct {
	Sender string `yaml:"sender" validate:"required,sender"`
	Body   string `yaml:"body"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: *DefaultUIConfig(),
		Chat: ChatConfig{
			Seed: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// DefaultConfigPath returns the default path to .converso/config.yaml.
func DefaultConfigPath() string {
	root, err := FindWorkspaceRoot()
	if err != nil {
		return filepath.Join(".converso", "config.yaml")
	}
	return filepath.Join(root, ".converso", "config.yaml")
}

// FindWorkspaceRoot walks up from the working directory looking for .converso or go.mod.
// If neither is found, returns the current working directory.
func FindWorkspaceRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	originalDir := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, ".converso")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return originalDir, nil
}

// Load loads configuration from a YAML file.
// A missing file yields the defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("CONVERSO_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if os.Getenv("CONVERSO_DARK_MODE") == "1" {
		c.UI.Theme = ThemeDark
	}
	if v, ok := envBool("CONVERSO_DEBUG"); ok {
		c.Logging.DebugMode = v
	}
	if level := os.Getenv("CONVERSO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v, ok := envBool("CONVERSO_CLEAR_DRAFT"); ok {
		c.Chat.ClearDraftOnSend = v
	}
	if v, ok := envBool("CONVERSO_REJECT_EMPTY"); ok {
		c.Chat.RejectEmptySend = v
	}
}

func envBool(key string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		logging.ConfigWarn("ignoring %s=%q: %v", key, raw, err)
		return false, false
	}
	return v, true
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("sender", func(fl validator.FieldLevel) bool {
		_, err := conversation.ParseSender(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// SendPolicy returns the view-model send policy for this config.
func (c *Config) SendPolicy() conversation.SendPolicy {
	return conversation.SendPolicy{
		ClearDraft:  c.Chat.ClearDraftOnSend,
		RejectEmpty: c.Chat.RejectEmptySend,
	}
}

// Seed returns the messages the store starts with.
func (c *Config) Seed() ([]conversation.Message, error) {
	if !c.Chat.Seed {
		return nil, nil
	}
	if len(c.Chat.SeedMessages) == 0 {
		return conversation.SeedMessages(), nil
	}

	seed := make([]conversation.Message, 0, len(c.Chat.SeedMessages))
	for i, sm := range c.Chat.SeedMessages {
		sender, err := conversation.ParseSender(sm.Sender)
		if err != nil {
			return nil, fmt.Errorf("seed_messages[%d]: %w", i, err)
		}
		seed = append(seed, conversation.NewMessage(sender, sm.Body))
	}
	return seed, nil
}

// LoggingOptions converts the logging section for logging.Initialize.
// An empty dir resolves to <workspace>/.converso/logs.
func (c *Config) LoggingOptions(workspace string) logging.Options {
	dir := c.Logging.Dir
	if dir == "" {
		dir = filepath.Join(workspace, ".converso", "logs")
	}
	return logging.Options{
		DebugMode:  c.Logging.DebugMode,
		Level:      c.Logging.Level,
		JSONFormat: c.Logging.Format == "json",
		Dir:        dir,
		Categories: c.Logging.Categories,
	}
}
