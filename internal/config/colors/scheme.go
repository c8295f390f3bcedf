package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset" env:"THEME"`

	// Primary accent color (used for table headers, prompt selectors)
	Accent string `yaml:"accent"`

	// Semantic colors
	Success string `yaml:"success"` // Green - write confirmations
	Notice  string `yaml:"notice"`  // Yellow - selection echo, placeholder actions
	Error   string `yaml:"error"`   // Red - recovered errors

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted text, listing captions
	Normal string `yaml:"normal"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	c.Accent = orDefault(c.Accent, preset.Accent)
	c.Success = orDefault(c.Success, preset.Success)
	c.Notice = orDefault(c.Notice, preset.Notice)
	c.Error = orDefault(c.Error, preset.Error)
	c.Title = orDefault(c.Title, preset.Title)
	c.Subtle = orDefault(c.Subtle, preset.Subtle)
	c.Normal = orDefault(c.Normal, preset.Normal)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
