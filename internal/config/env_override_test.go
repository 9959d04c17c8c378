package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONVERSO_THEME", "CONVERSO_DARK_MODE", "CONVERSO_DEBUG",
		"CONVERSO_LOG_LEVEL", "CONVERSO_CLEAR_DRAFT", "CONVERSO_REJECT_EMPTY",
	} {
		t.Setenv(k, "")
	}
}

func TestEnvOverrides_UI(t *testing.T) {
	t.Run("CONVERSO_THEME sets theme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONVERSO_THEME", "light")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, ThemeLight, cfg.UI.Theme)
	})

	t.Run("CONVERSO_DARK_MODE wins over CONVERSO_THEME", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONVERSO_THEME", "light")
		t.Setenv("CONVERSO_DARK_MODE", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, ThemeDark, cfg.UI.Theme)
	})
}

func TestEnvOverrides_Chat(t *testing.T) {
	t.Run("booleans parse", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONVERSO_CLEAR_DRAFT", "true")
		t.Setenv("CONVERSO_REJECT_EMPTY", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Chat.ClearDraftOnSend)
		assert.True(t, cfg.Chat.RejectEmptySend)
	})

	t.Run("false turns a file setting off", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONVERSO_CLEAR_DRAFT", "false")

		cfg := DefaultConfig()
		cfg.Chat.ClearDraftOnSend = true
		cfg.applyEnvOverrides()
		assert.False(t, cfg.Chat.ClearDraftOnSend)
	})

	t.Run("garbage is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CONVERSO_REJECT_EMPTY", "maybe")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.False(t, cfg.Chat.RejectEmptySend)
	})
}

func TestEnvOverrides_Logging(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONVERSO_DEBUG", "1")
	t.Setenv("CONVERSO_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	assert.True(t, cfg.Logging.DebugMode)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestEnvOverrides_AppliedWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONVERSO_THEME", "dark")

	cfg, err := Load(t.TempDir() + "/missing.yaml")
	assert.NoError(t, err)
	assert.Equal(t, ThemeDark, cfg.UI.Theme)
}
