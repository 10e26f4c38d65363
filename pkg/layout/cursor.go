package layout

import "errors"

// ErrNoSurface is returned when a Cursor is created without a canvas.
var ErrNoSurface = errors.New("layout: no surface to draw on")

// Cursor is the render pass's only mutable state: the canvas being drawn on,
// the baseline of the next row and the number of finished pages. It starts
// at the top of an empty page.
type Cursor struct {
	canvas Canvas
	geo    Geometry
	y      float64
	font   Font
	pages  int
}

// NewCursor returns a Cursor at the top of the first page of c.
func NewCursor(c Canvas, g Geometry) (*Cursor, error) {
	if c == nil {
		return nil, ErrNoSurface
	}
	return &Cursor{canvas: c, geo: g, y: g.Top()}, nil
}

// Y is the baseline of the next row.
func (c *Cursor) Y() float64 { return c.y }

// Pages is the number of pages finished so far.
func (c *Cursor) Pages() int { return c.pages }

// Geometry returns the page geometry.
func (c *Cursor) Geometry() Geometry { return c.geo }

// Exhausted reports whether the next row would sit at or below the bottom margin.
func (c *Cursor) Exhausted() bool {
	return c.y <= c.geo.Margin
}

// Line draws text at the left margin in font f and moves down by leading.
func (c *Cursor) Line(text string, f Font, leading float64) {
	c.setFont(f)
	c.canvas.DrawString(c.geo.Margin, c.y, text)
	c.y -= leading
}

// Skip moves down by leading without drawing.
func (c *Cursor) Skip(leading float64) {
	c.y -= leading
}

// EndPage finishes the current page and moves to the top of the next one.
func (c *Cursor) EndPage() {
	c.canvas.ShowPage()
	c.pages++
	c.y = c.geo.Top()
	c.font = Font{}
}

// DrawWrapped word-wraps text to maxWidth and draws it row by row from the
// current position, returning the baseline below the last row. Blank lines
// only advance. When the page runs out a new page is started.
func (c *Cursor) DrawWrapped(text string, maxWidth float64, f Font, leading float64) float64 {
	for _, row := range WrapText(text, maxWidth, c.canvas, f) {
		if c.Exhausted() {
			c.EndPage()
		}
		if row == "" {
			c.Skip(leading)
			continue
		}
		c.Line(row, f, leading)
	}
	return c.y
}

func (c *Cursor) setFont(f Font) {
	if f == c.font {
		return
	}
	c.canvas.SetFont(f)
	c.font = f
}
