package chat

import (
	"context"
	"errors"

	"converso/internal/config"
	"converso/internal/conversation"
	"converso/internal/logging"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// Init starts the cursor blink and the store listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.waitForChange(),
	)
}

// waitForChange blocks until the store reports an append or the model shuts down.
func (m Model) waitForChange() tea.Cmd {
	changes, done := m.changes, m.done
	return func() tea.Msg {
		select {
		case msg := <-changes:
			return storeChangedMsg{message: msg}
		case <-done:
			return storeChangedMsg{closed: true}
		}
	}
}

// Shutdown drops the store subscription and releases any pending waitForChange.
// Safe to call multiple times.
func (m *Model) Shutdown() {
	if m.shutdownOnce == nil {
		return
	}
	m.shutdownOnce.Do(func() {
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		if m.done != nil {
			close(m.done)
		}
		logging.UIDebug("chat model shut down")
	})
}

// performShutdown is a value-receiver wrapper for Shutdown used from Update.
func (m Model) performShutdown() {
	modelPtr := &m
	modelPtr.Shutdown()
}

// RunOptions configures RunInteractiveChat.
type RunOptions struct {
	Config     *config.Config
	ConfigPath string
	ViewModel  *conversation.ViewModel
}

// RunInteractiveChat runs the screen until the user quits or ctx is cancelled.
// With watch enabled, config edits are applied live.
func RunInteractiveChat(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	model := New(cfg, opts.ViewModel)
	defer model.Shutdown()

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, programOpts...)

	g, gctx := errgroup.WithContext(ctx)
	watchCtx, stopWatch := context.WithCancel(gctx)
	defer stopWatch()

	if cfg.Watch && opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, func(c *config.Config) {
			p.Send(ConfigReloadedMsg{Config: c})
		})
		if err != nil {
			logging.ConfigWarn("config watch disabled: %v", err)
		} else {
			g.Go(func() error { return w.Run(watchCtx) })
		}
	}

	g.Go(func() error {
		defer stopWatch()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	})

	return g.Wait()
}
