package models

// Theme values accepted by the settings store.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// Font size values accepted by the settings store.
const (
	FontSmall  = "small"
	FontMedium = "medium"
	FontLarge  = "large"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-1.5-flash"

// Settings is the persisted user configuration. Defaults are written
// once on first install; the options surface mutates them and the store
// broadcasts the new value to every subscriber.
type Settings struct {
	APIKey   string `json:"api_key" yaml:"api_key"`
	AutoShow bool   `json:"auto_show" yaml:"auto_show"`
	Theme    string `json:"theme" yaml:"theme"`
	FontSize string `json:"font_size" yaml:"font_size"`
	Model    string `json:"model" yaml:"model"`
}

// DefaultSettings returns the first-install defaults.
func DefaultSettings() Settings {
	return Settings{
		APIKey:   "",
		AutoShow: true,
		Theme:    ThemeLight,
		FontSize: FontMedium,
		Model:    DefaultModel,
	}
}

// ModelOrDefault returns the configured model identifier, falling back
// to DefaultModel when unset.
func (s Settings) ModelOrDefault() string {
	if s.Model == "" {
		return DefaultModel
	}
	return s.Model
}
