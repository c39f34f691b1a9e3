package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the live view by role: the sea surface itself, the mean
// water line under it, and the panel readouts beside it.
type Theme struct {
	Name      string
	Surface   lipgloss.Color // η(x) profile
	Waterline lipgloss.Color // mean water level and panel border
	Heading   lipgloss.Color
	Highlight lipgloss.Color // selected parameter
	Readout   lipgloss.Color
	Dim       lipgloss.Color
	Calm      lipgloss.Color // running
	Caution   lipgloss.Color // paused, validity warnings
	Alarm     lipgloss.Color // rejected updates
}

// Themes lists the palettes in the order the t key cycles them; the first
// is the default.
var Themes = []Theme{
	{
		Name:      "ocean",
		Surface:   "#00a8cc",
		Waterline: "#2f6f8f",
		Heading:   "#7fd4ff",
		Highlight: "#ffd700",
		Readout:   "#e0f0ff",
		Dim:       "#4488aa",
		Calm:      "#00ff88",
		Caution:   "#ffcc00",
		Alarm:     "#ff4444",
	},
	{
		// Deep water at night: low contrast, bioluminescent surface.
		Name:      "abyss",
		Surface:   "#3ce6c8",
		Waterline: "#123a4a",
		Heading:   "#5fa8d3",
		Highlight: "#c6ff7f",
		Readout:   "#b8d8e8",
		Dim:       "#2b5870",
		Calm:      "#3ce6c8",
		Caution:   "#e6b84c",
		Alarm:     "#ff5a6e",
	},
	{
		Name:      "storm",
		Surface:   "#c9d6df",
		Waterline: "#52616b",
		Heading:   "#f0f5f9",
		Highlight: "#ffb347",
		Readout:   "#dfe6eb",
		Dim:       "#6c7a86",
		Calm:      "#9ad0a0",
		Caution:   "#ffb347",
		Alarm:     "#ff6f61",
	},
	{
		Name:      "lagoon",
		Surface:   "#40e0d0",
		Waterline: "#1a9e96",
		Heading:   "#f4d35e",
		Highlight: "#ff8c61",
		Readout:   "#fdfcdc",
		Dim:       "#83a8a6",
		Calm:      "#7bd389",
		Caution:   "#f4d35e",
		Alarm:     "#ee6055",
	},
	{
		// Plain greys for terminals without true colour.
		Name:      "chart",
		Surface:   "#ffffff",
		Waterline: "#808080",
		Heading:   "#ffffff",
		Highlight: "#ffffff",
		Readout:   "#d0d0d0",
		Dim:       "#808080",
		Calm:      "#d0d0d0",
		Caution:   "#ffffff",
		Alarm:     "#ffffff",
	},
}

// GetTheme returns the named palette, or the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// NextTheme returns the palette after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
