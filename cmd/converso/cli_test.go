package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"converso/internal/config"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"COLORFGBG", "CONVERSO_THEME", "CONVERSO_DARK_MODE", "CONVERSO_DEBUG",
		"CONVERSO_LOG_LEVEL", "CONVERSO_CLEAR_DRAFT", "CONVERSO_REJECT_EMPTY",
	} {
		t.Setenv(key, "")
	}
}

// execute runs the CLI against a temporary workspace and returns stdout.
func execute(t *testing.T, workspace string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"-w", workspace}, args...))
	err := cmd.Execute()
	return ansi.Strip(out.String()), err
}

func writeConfig(t *testing.T, workspace, body string) string {
	t.Helper()
	path := filepath.Join(workspace, ".converso", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestRenderSeedConversation(t *testing.T) {
	clearEnv(t)
	out, err := execute(t, t.TempDir(), "render", "--width", "60")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 12, "four seed bubbles of three lines each")
	assert.Contains(t, out, "Hello! How can I help you?")
	assert.Contains(t, out, "Thanks!")
}

func TestRenderWithSends(t *testing.T) {
	clearEnv(t)
	out, err := execute(t, t.TempDir(), "render", "--width", "60", "--send", "one, two", "--send", "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 18, "both sends are appended, the empty one included")
	assert.Contains(t, lines[13], "one, two", "commas are not split")
	for _, line := range lines[12:] {
		assert.True(t, strings.HasPrefix(line, " "), "sent messages render on the right: %q", line)
	}
}

func TestRenderHonorsConfig(t *testing.T) {
	clearEnv(t)
	ws := t.TempDir()
	writeConfig(t, ws, `
chat:
  seed: true
  seed_messages:
    - sender: chatbot
      body: Welcome back
  reject_empty_send: true
`)

	out, err := execute(t, ws, "render", "--width", "50", "--send", "", "--send", "hi")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6, "custom seed plus one non-empty send")
	assert.Contains(t, out, "Welcome back")
	assert.NotContains(t, out, "How can I help")
}

func TestRenderRejectsBadInput(t *testing.T) {
	clearEnv(t)
	_, err := execute(t, t.TempDir(), "render", "--width", "0")
	assert.ErrorContains(t, err, "--width")

	ws := t.TempDir()
	writeConfig(t, ws, "ui:\n  theme: neon\n")
	_, err = execute(t, ws, "render")
	assert.ErrorContains(t, err, "invalid config")
}

func TestConfigInit(t *testing.T) {
	clearEnv(t)
	ws := t.TempDir()

	out, err := execute(t, ws, "config", "init")
	require.NoError(t, err)
	path := filepath.Join(ws, ".converso", "config.yaml")
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	_, err = execute(t, ws, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, ws, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigShowAppliesEnv(t *testing.T) {
	clearEnv(t)
	ws := t.TempDir()
	writeConfig(t, ws, "ui:\n  markdown: true\n")
	t.Setenv("CONVERSO_THEME", "dark")

	out, err := execute(t, ws, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "theme: dark")
	assert.Contains(t, out, "markdown: true")
	assert.Contains(t, out, "bubble_width_ratio: 0.7")
}

func TestExplicitConfigFlag(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chat:\n  seed: false\n"), 0644))

	out, err := execute(t, t.TempDir(), "-c", path, "render", "--send", "solo")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, out, "solo")
}
