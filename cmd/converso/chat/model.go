package chat

import (
	"sync"

	"converso/cmd/converso/ui"
	"converso/internal/config"
	"converso/internal/conversation"
	"converso/internal/logging"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
)

// New builds the chat screen over vm and subscribes to its store.
// Call Shutdown when the program exits to release the subscription.
func New(cfg *config.Config, vm *conversation.ViewModel) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if vm == nil {
		vm = conversation.NewViewModel(nil, cfg.SendPolicy())
	}

	styles := ui.NewStyles(ui.ThemeFor(cfg.UI.Theme))

	ta := textarea.New()
	ta.Placeholder = cfg.UI.Placeholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")
	ta.SetValue(vm.Draft())
	ta.Focus()

	vp := viewport.New(0, 0)

	changes := make(chan conversation.Message, changeBuffer)
	unsubscribe := vm.Store().Subscribe(func(msg conversation.Message) {
		select {
		case changes <- msg:
		default:
			// Full: the pending redraw will pick this record up.
		}
	})

	logging.UIDebug("chat model created with %d messages", vm.Store().Len())

	return Model{
		cfg:          cfg,
		vm:           vm,
		styles:       styles,
		bubbles:      newBubbles(styles, cfg),
		textarea:     ta,
		viewport:     vp,
		changes:      changes,
		done:         make(chan struct{}),
		unsubscribe:  unsubscribe,
		shutdownOnce: &sync.Once{},
	}
}

func newBubbles(styles ui.Styles, cfg *config.Config) *ui.BubbleRenderer {
	return ui.NewBubbleRenderer(styles, ui.BubbleOptions{
		WidthRatio: cfg.UI.BubbleWidthRatio,
		Markdown:   cfg.UI.Markdown,
	})
}

// ViewModel returns the view-model the screen drives.
func (m Model) ViewModel() *conversation.ViewModel { return m.vm }

// Status returns the current footer notice.
func (m Model) Status() string { return m.status }
