package layout

import "fmt"

// MinFontSize is the smallest body font size a file is ever shrunk to.
const MinFontSize = 6

// MinLeading is the smallest line advance used for body text.
const MinLeading = 7

// Font identifies a font face and size. Style follows the gofpdf convention:
// "" for regular, "B" for bold.
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Geometry is the fixed page geometry of a document, in points. Vertical
// positions grow upwards from the bottom edge.
type Geometry struct {
	Width  float64
	Height float64
	Margin float64
}

// A3Landscape is an ISO A3 sheet turned sideways, with a half-inch margin.
var A3Landscape = Geometry{Width: 1190.55, Height: 841.89, Margin: 36}

// AvailableWidth is the horizontal space between the left and right margins.
func (g Geometry) AvailableWidth() float64 {
	return g.Width - 2*g.Margin
}

// Top is the baseline of the first row on a page.
func (g Geometry) Top() float64 {
	return g.Height - g.Margin
}

// Config holds layout settings.
type Config struct {
	Geometry Geometry

	BodyFamily   string // Fixed-width family for file content.
	TitleFamily  string // Family for file titles and the document title.
	HeaderFamily string // Family for the header text.

	BaseSize     int     // Default body size; files are only ever shrunk from it.
	TitleSize    float64 // "FILE: ..." title size.
	TitleLeading float64 // Advance after a file title.

	DocumentTitle     string
	DocumentTitleSize float64
	DocumentTitleGap  float64 // Advance after the document title.
	HeaderSize        float64
	HeaderLeading     float64
}

// DefaultConfig returns the settings used by the CLI.
func DefaultConfig() Config {
	return Config{
		Geometry:          A3Landscape,
		BodyFamily:        "Courier",
		TitleFamily:       "Helvetica",
		HeaderFamily:      "Helvetica",
		BaseSize:          9,
		TitleSize:         12,
		TitleLeading:      14,
		DocumentTitle:     "Final Project Submission",
		DocumentTitleSize: 18,
		DocumentTitleGap:  28,
		HeaderSize:        11,
		HeaderLeading:     14,
	}
}

// Validate reports settings that would make pagination impossible.
func (c Config) Validate() error {
	g := c.Geometry
	if g.Width <= 0 || g.Height <= 0 || g.Margin < 0 {
		return fmt.Errorf("layout: invalid page geometry %+v", g)
	}
	if g.AvailableWidth() <= 0 || g.Top() <= g.Margin {
		return fmt.Errorf("layout: margin %.2f leaves no room on a %.2fx%.2f page", g.Margin, g.Width, g.Height)
	}
	if c.BaseSize < MinFontSize {
		return fmt.Errorf("layout: base size %d is below the minimum %d", c.BaseSize, MinFontSize)
	}
	if c.BodyFamily == "" || c.TitleFamily == "" || c.HeaderFamily == "" {
		return fmt.Errorf("layout: font families must be set")
	}
	if c.TitleLeading <= 0 || c.HeaderLeading <= 0 || c.DocumentTitleGap <= 0 {
		return fmt.Errorf("layout: leading must be positive")
	}
	return nil
}

// BodyFont is the content font at the given size.
func (c Config) BodyFont(size int) Font {
	return Font{Family: c.BodyFamily, Size: float64(size)}
}

// TitleFont is the bold font for "FILE: ..." titles.
func (c Config) TitleFont() Font {
	return Font{Family: c.TitleFamily, Style: "B", Size: c.TitleSize}
}
