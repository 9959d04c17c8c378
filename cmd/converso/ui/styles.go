// Package ui provides the visual styling for the Converso chat screen.
// Chatbot bubbles are gray and user bubbles orange; the input row uses blue.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#ffffff")
	LightForeground = lipgloss.Color("#1c1c1e")
	LightMuted      = lipgloss.Color("#8e8e93")
	LightBorder     = lipgloss.Color("#d1d1d6")
	LightChatbot    = lipgloss.Color("#e5e5ea") // system gray 5
	LightChatbotFg  = lipgloss.Color("#1c1c1e")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#000000")
	DarkForeground = lipgloss.Color("#f2f2f7")
	DarkMuted      = lipgloss.Color("#636366")
	DarkBorder     = lipgloss.Color("#38383a")
	DarkChatbot    = lipgloss.Color("#3a3a3c")
	DarkChatbotFg  = lipgloss.Color("#f2f2f7")

	// Same in both modes
	Blue    = lipgloss.Color("#007aff")
	Orange  = lipgloss.Color("#ff9500")
	White   = lipgloss.Color("#ffffff")
	Warning = lipgloss.Color("#ffcc00")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Chatbot    lipgloss.Color
	ChatbotFg  lipgloss.Color
	User       lipgloss.Color
	UserFg     lipgloss.Color
	Accent     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Muted:      LightMuted,
		Border:     LightBorder,
		Chatbot:    LightChatbot,
		ChatbotFg:  LightChatbotFg,
		User:       Orange,
		UserFg:     White,
		Accent:     Blue,
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Chatbot:    DarkChatbot,
		ChatbotFg:  DarkChatbotFg,
		User:       Orange,
		UserFg:     White,
		Accent:     Blue,
		IsDark:     true,
	}
}

// DetectTheme auto-detects based on terminal or returns light mode
func DetectTheme() Theme {
	// COLORFGBG is "foreground;background"; 0-6 and 8 are dark backgrounds.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}

	if os.Getenv("CONVERSO_DARK_MODE") == "1" {
		return DarkTheme()
	}

	return LightTheme()
}

// ThemeFor resolves a configured theme name; anything but light/dark auto-detects.
func ThemeFor(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style

	// Text
	Title lipgloss.Style
	Muted lipgloss.Style
	Badge lipgloss.Style

	// Bubbles
	ChatbotBubble lipgloss.Style
	UserBubble    lipgloss.Style

	// Input row
	InputCapsule lipgloss.Style
	SendButton   lipgloss.Style

	// Status
	Warning lipgloss.Style
	Divider lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	bubble := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(White).
			Padding(0, 1).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Content: lipgloss.NewStyle().
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Badge: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		ChatbotBubble: bubble.
			Background(theme.Chatbot).
			Foreground(theme.ChatbotFg).
			BorderForeground(theme.Chatbot),

		UserBubble: bubble.
			Background(theme.User).
			Foreground(theme.UserFg).
			BorderForeground(theme.User),

		InputCapsule: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),

		SendButton: lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(White).
			Bold(true).
			Width(SendButtonWidth).
			Height(InputRowHeight).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center),

		Warning: lipgloss.NewStyle().
			Foreground(Warning),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles with the detected theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
