package ui

import (
	"strings"
	"testing"

	"converso/internal/conversation"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(opts BubbleOptions) *BubbleRenderer {
	return NewBubbleRenderer(NewStyles(LightTheme()), opts)
}

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestAlignment(t *testing.T) {
	assert.Equal(t, lipgloss.Left, Alignment(conversation.SenderChatbot))
	assert.Equal(t, lipgloss.Right, Alignment(conversation.SenderUser))
}

func TestRowAlignsBySender(t *testing.T) {
	r := newTestRenderer(BubbleOptions{WidthRatio: 0.7})
	const width = 60

	bot := plainLines(r.Row(conversation.NewMessage(conversation.SenderChatbot, "Hello, how are you?"), width))
	require.Len(t, bot, 3)
	for _, line := range bot {
		assert.Equal(t, width, ansi.StringWidth(line))
		assert.Regexp(t, `^[╭│╰]`, line, "chatbot bubbles hug the left edge")
	}

	user := plainLines(r.Row(conversation.NewMessage(conversation.SenderUser, "Good thanks"), width))
	require.Len(t, user, 3)
	for _, line := range user {
		assert.Equal(t, width, ansi.StringWidth(line))
		assert.True(t, strings.HasPrefix(line, " "), "user bubbles are pushed right: %q", line)
		assert.Regexp(t, `[╮│╯]$`, line, "user bubbles hug the right edge")
	}
	assert.Contains(t, user[1], "Good thanks")
}

func TestRowEmptyBody(t *testing.T) {
	r := newTestRenderer(BubbleOptions{})
	lines := plainLines(r.Row(conversation.NewMessage(conversation.SenderUser, ""), 40))
	require.Len(t, lines, 3, "an empty message still draws a bubble")
	assert.Regexp(t, `╯$`, lines[2])
}

func TestRowWrapsLongBodies(t *testing.T) {
	r := newTestRenderer(BubbleOptions{WidthRatio: 0.5})
	const width = 60
	body := strings.Repeat("lorem ipsum ", 20)

	lines := plainLines(r.Row(conversation.NewMessage(conversation.SenderChatbot, body), width))
	assert.Greater(t, len(lines), 3, "long bodies wrap onto several lines")
	for _, line := range lines {
		bubble := strings.TrimRight(line, " ")
		assert.LessOrEqual(t, ansi.StringWidth(bubble), width/2)
	}
}

func TestRowTinyWidth(t *testing.T) {
	r := newTestRenderer(BubbleOptions{})
	assert.NotPanics(t, func() {
		r.Row(conversation.NewMessage(conversation.SenderChatbot, "hi"), 0)
		r.Row(conversation.NewMessage(conversation.SenderUser, "hi"), 3)
	})
}

func TestRowCachedByID(t *testing.T) {
	r := newTestRenderer(BubbleOptions{})
	a := conversation.NewMessage(conversation.SenderUser, "same")
	b := conversation.NewMessage(conversation.SenderUser, "same")

	first := r.Row(a, 50)
	assert.Equal(t, first, r.Row(a, 50))
	r.Row(b, 50)

	hits, misses := r.Cache().Stats()
	assert.Equal(t, 1, hits)
	assert.Equal(t, 2, misses, "equal bodies are separate records")
	assert.Equal(t, 2, r.Cache().Len())

	r.Row(a, 70)
	assert.Equal(t, 3, r.Cache().Len(), "width is part of the key")
}

func TestRowMarkdownOnlyForChatbot(t *testing.T) {
	r := newTestRenderer(BubbleOptions{Markdown: true})

	bot := ansi.Strip(r.Row(conversation.NewMessage(conversation.SenderChatbot, "**bold** reply"), 60))
	assert.Contains(t, bot, "bold")
	assert.NotContains(t, bot, "**")

	user := ansi.Strip(r.Row(conversation.NewMessage(conversation.SenderUser, "**as typed**"), 60))
	assert.Contains(t, user, "**as typed**")
}

func TestTranscript(t *testing.T) {
	r := newTestRenderer(BubbleOptions{})

	assert.Contains(t, ansi.Strip(r.Transcript(nil, 60)), "No messages yet.")

	seed := conversation.SeedMessages()
	out := ansi.Strip(r.Transcript(seed, 60))
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3*len(seed))

	// rows keep store order
	last := -1
	for _, msg := range seed {
		idx := strings.Index(out, msg.Body)
		require.GreaterOrEqual(t, idx, 0, "missing %q", msg.Body)
		assert.Greater(t, idx, last)
		last = idx
	}
}
