package config

// Theme names accepted by ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is "auto" (detect from the terminal), "light" or "dark"
	Theme string `yaml:"theme" validate:"omitempty,oneof=auto light dark"`

	// Markdown renders Chatbot bodies through glamour
	Markdown bool `yaml:"markdown"`

	// BubbleWidthRatio caps bubble width as a fraction of the list width
	BubbleWidthRatio float64 `yaml:"bubble_width_ratio" validate:"gt=0,lte=1"`

	// Mouse enables wheel scrolling and clicking the send button
	Mouse bool `yaml:"mouse"`

	// Placeholder is shown in the empty input
	Placeholder string `yaml:"placeholder"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:            ThemeAuto,
		Markdown:         false,
		BubbleWidthRatio: 0.7,
		Mouse:            true,
		Placeholder:      "Enter a message here",
	}
}
