package ui

import (
	"fmt"
	"strings"

	"converso/internal/conversation"
	"converso/internal/logging"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// BubbleOptions configures a BubbleRenderer.
type BubbleOptions struct {
	// WidthRatio caps a bubble at this fraction of the row width.
	WidthRatio float64
	// Markdown renders Chatbot bodies through glamour.
	Markdown bool
	// CacheSize bounds the row cache; zero picks a default.
	CacheSize int
}

// BubbleRenderer turns messages into aligned, colored rows.
// It is not safe for concurrent use; the chat model owns one.
type BubbleRenderer struct {
	styles   Styles
	opts     BubbleOptions
	cache    *RenderCache
	renderer *glamour.TermRenderer
	wrapAt   int
}

// NewBubbleRenderer creates a renderer for the given styles.
func NewBubbleRenderer(styles Styles, opts BubbleOptions) *BubbleRenderer {
	if opts.WidthRatio <= 0 || opts.WidthRatio > 1 {
		opts.WidthRatio = 0.7
	}
	return &BubbleRenderer{
		styles: styles,
		opts:   opts,
		cache:  NewRenderCache(opts.CacheSize),
	}
}

// Styles returns the styles rows are drawn with.
func (r *BubbleRenderer) Styles() Styles { return r.styles }

// Cache exposes the row cache.
func (r *BubbleRenderer) Cache() *RenderCache { return r.cache }

// Alignment maps a sender to the side its bubble sits on.
func Alignment(sender conversation.Sender) lipgloss.Position {
	if sender == conversation.SenderChatbot {
		return lipgloss.Left
	}
	return lipgloss.Right
}

// BubbleStyle returns the bubble style for a sender.
func (s Styles) BubbleStyle(sender conversation.Sender) lipgloss.Style {
	if sender == conversation.SenderChatbot {
		return s.ChatbotBubble
	}
	return s.UserBubble
}

// maxInner is the widest a bubble body may be for a row of the given width.
func (r *BubbleRenderer) maxInner(width int) int {
	w := int(float64(width)*r.opts.WidthRatio) - bubbleChrome
	if w < 1 {
		return 1
	}
	return w
}

// Row renders one message as a full-width row. Rows are cached by message ID,
// so two records with the same body never share an entry.
func (r *BubbleRenderer) Row(msg conversation.Message, width int) string {
	if width < 1 {
		width = 1
	}
	key := ComputeKey(msg.ID.String(), width, r.styles.Theme.IsDark, r.opts.Markdown, r.opts.WidthRatio)
	return r.cache.GetOrCompute(key, func() string {
		return r.renderRow(msg, width)
	})
}

func (r *BubbleRenderer) renderRow(msg conversation.Message, width int) string {
	inner := r.maxInner(width)

	body := msg.Body
	if r.opts.Markdown && msg.Sender == conversation.SenderChatbot && body != "" {
		body = r.safeRenderMarkdown(body, inner)
	}

	textWidth := lipgloss.Width(body)
	if textWidth > inner {
		textWidth = inner
	}

	// Width counts padding but not the border.
	bubble := r.styles.BubbleStyle(msg.Sender).Width(textWidth + 2).Render(body)
	return lipgloss.PlaceHorizontal(width, Alignment(msg.Sender), bubble)
}

// safeRenderMarkdown falls back to the raw body if glamour fails or panics.
func (r *BubbleRenderer) safeRenderMarkdown(body string, wrapAt int) (out string) {
	out = body
	defer func() {
		if rec := recover(); rec != nil {
			logging.Get(logging.CategoryUI).Error("markdown render panic: %v", rec)
			out = body
		}
	}()

	if r.renderer == nil || r.wrapAt != wrapAt {
		style := "light"
		if r.styles.Theme.IsDark {
			style = "dark"
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(wrapAt),
		)
		if err != nil {
			logging.UIDebug("markdown renderer unavailable: %v", err)
			return body
		}
		r.renderer = renderer
		r.wrapAt = wrapAt
	}

	rendered, err := r.renderer.Render(body)
	if err != nil {
		logging.UIDebug("markdown render failed: %v", err)
		return body
	}
	return trimRendered(rendered)
}

// trimRendered drops glamour's blank margin lines and trailing spaces.
func trimRendered(s string) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// Transcript renders messages in order, one row each.
func (r *BubbleRenderer) Transcript(messages []conversation.Message, width int) string {
	if len(messages) == 0 {
		return r.styles.Muted.Render("No messages yet.")
	}
	rows := lo.Map(messages, func(msg conversation.Message, _ int) string {
		return r.Row(msg, width)
	})
	return strings.Join(rows, "\n")
}

// RenderHeader renders the title line with the message count on the right.
func (s Styles) RenderHeader(title string, count, width int) string {
	noun := "messages"
	if count == 1 {
		noun = "message"
	}
	badge := s.Badge.Render(fmt.Sprintf("%d %s", count, noun))
	left := s.Title.Render(title)
	gap := width - lipgloss.Width(left) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + badge
}
