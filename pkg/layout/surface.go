package layout

// Surface receives drawing instructions. Coordinates are in points with the
// origin at the bottom-left corner of the page; y is the text baseline.
type Surface interface {
	SetFont(f Font)
	DrawString(x, y float64, text string)
	// ShowPage finalizes the current page; later drawing goes to a new page.
	ShowPage()
}

// Metrics measures rendered text.
type Metrics interface {
	StringWidth(text string, f Font) float64
}

// Canvas is a Surface that can also measure text.
type Canvas interface {
	Surface
	Metrics
}
