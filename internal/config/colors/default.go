package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Success: "#5FD75F",
		Notice:  "#FFD700",
		Error:   "#FF5F5F",

		Title:  "#D75FD7",
		Subtle: "#8A8A8A",
		Normal: "#D0D0D0",
	}
}
