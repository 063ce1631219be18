package entity

// The closed set of recognized theme values. ThemeSystem defers the
// light/dark decision to the client's OS preference.
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// DefaultTheme is what a session gets when nothing valid is stored.
const DefaultTheme = ThemeSystem

func IsKnownTheme(theme string) bool {
	switch theme {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}
