package domain

// InteractionRecord holds per-item user flags. Zero value means neither liked nor saved.
type InteractionRecord struct {
	Liked bool `json:"liked"`
	Saved bool `json:"saved"`
}

// Theme is the global UI theme flag
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether the theme is light or dark
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
