// Package chat implements the interactive Converso screen as a bubbletea model.
//
// The screen is a thin view over a conversation.ViewModel: key presses edit
// the draft and trigger sends, while redraws are driven by store
// notifications delivered through waitForChange.
package chat

import (
	"sync"

	"converso/cmd/converso/ui"
	"converso/internal/config"
	"converso/internal/conversation"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

// Title is shown in the header.
const Title = "Converso"

// changeBuffer bounds queued store notifications. Overflow is dropped; the next
// redraw reads the whole store anyway.
const changeBuffer = 64

// storeChangedMsg carries one store notification into the event loop.
// closed is set once the model has shut down.
type storeChangedMsg struct {
	message conversation.Message
	closed  bool
}

// ConfigReloadedMsg delivers a validated config from the file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// Model is the main model for the chat screen.
type Model struct {
	cfg *config.Config
	vm  *conversation.ViewModel

	styles  ui.Styles
	bubbles *ui.BubbleRenderer

	textarea textarea.Model
	viewport viewport.Model

	width  int
	height int
	ready  bool

	// status is a one-line notice in the footer, cleared on the next send
	status string

	// Sent drafts, oldest first. historyIdx == len(history) means "not browsing".
	history    []string
	historyIdx int
	stash      string

	// Store notification bridge
	changes     chan conversation.Message
	done        chan struct{}
	unsubscribe func()

	shutdownOnce *sync.Once
}
