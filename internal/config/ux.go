package config

import "krishisakha/internal/sample"

// Theme names accepted by ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ValidThemes lists the accepted ui.theme values.
var ValidThemes = []string{ThemeAuto, ThemeLight, ThemeDark}

// ValidTabs lists the accepted ui.start_tab values, in tab-bar order.
var ValidTabs = sample.TabKeys()

// UIConfig holds user interface configuration.
type UIConfig struct {
	// Theme is auto, light or dark. auto inspects COLORFGBG.
	Theme string `yaml:"theme" json:"theme"`

	// Language is the farmer screen's initial language key (english, hindi)
	Language string `yaml:"language" json:"language"`

	// StartTab is the shell tab shown at launch
	StartTab string `yaml:"start_tab" json:"start_tab"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Theme:    ThemeAuto,
		Language: "english",
		StartTab: "dashboard",
	}
}
