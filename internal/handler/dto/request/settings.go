package request

// PreferencesRequest updates any subset of the preference flags. SystemDark reports the
// till's current colour scheme and is used when following the system theme.
type PreferencesRequest struct {
	SidebarCollapsed *bool `json:"isSidebarCollapsed"`
	DarkMode         *bool `json:"isDarkMode"`
	SystemTheme      *bool `json:"isSystemTheme"`
	SystemDark       bool  `json:"systemDark"`
}
