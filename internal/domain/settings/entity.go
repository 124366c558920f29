package settings

// StorageKey is the key preferences are persisted under.
const StorageKey = "globalSettings"

// Preferences are the till UI's display settings.
type Preferences struct {
	SidebarCollapsed bool `json:"isSidebarCollapsed"`
	DarkMode         bool `json:"isDarkMode"`
	SystemTheme      bool `json:"isSystemTheme"`
}

// Defaults follow the system theme with a collapsed sidebar.
func Defaults(systemDark bool) Preferences {
	return Preferences{
		SidebarCollapsed: true,
		DarkMode:         systemDark,
		SystemTheme:      true,
	}
}

func (p Preferences) WithSidebarCollapsed(collapsed bool) Preferences {
	p.SidebarCollapsed = collapsed
	return p
}

// WithDarkMode is an explicit choice, so the system theme stops being followed.
func (p Preferences) WithDarkMode(dark bool) Preferences {
	p.DarkMode = dark
	p.SystemTheme = false
	return p
}

func (p Preferences) WithSystemTheme(systemDark bool) Preferences {
	p.DarkMode = systemDark
	p.SystemTheme = true
	return p
}
