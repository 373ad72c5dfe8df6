package icons

import "image/color"

// Config holds icon generation parameters
type Config struct {
	// Sizes are the icon side lengths to generate, in pixels
	Sizes []int

	// OutDir is the directory the PNG files are written to
	OutDir string

	// Label is the short text drawn in the center of each icon
	Label string

	// Top is the gradient color of the first row
	Top color.NRGBA

	// Bottom is the gradient color the last row approaches
	Bottom color.NRGBA

	// FontPath is the preferred bold font for the label. If the file is
	// missing or unreadable an embedded face is used instead.
	FontPath string

	// LogoPath is an optional SVG drawn in place of the label. If the
	// file is missing the text label is used.
	LogoPath string
}

// DefaultConfig returns the configuration for the extension's icon set
func DefaultConfig() Config {
	return Config{
		Sizes:    []int{16, 32, 48, 128},
		OutDir:   "public/icons",
		Label:    "CA",
		Top:      color.NRGBA{R: 102, G: 126, B: 234, A: 255}, // #667eea
		Bottom:   color.NRGBA{R: 118, G: 75, B: 162, A: 255},  // #764ba2
		FontPath: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf",
		LogoPath: "assets/logo.svg",
	}
}
