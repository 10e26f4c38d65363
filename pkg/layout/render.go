// Package layout decides font sizes and page breaks for the rendered
// document. It draws through the Canvas interface and does no I/O.
package layout

import (
	"fmt"

	"codepdf/pkg/source"
)

// FileStats describes how one file was laid out.
type FileStats struct {
	Path     string
	FontSize int
	Leading  float64
	Lines    int
	Pages    int
}

// Header is the content of the section printed before any file.
type Header struct {
	Text   string   // Free text, word-wrapped to the page width.
	Notice string   // Single diagnostic row drawn instead of Text, e.g. a missing file.
	Tree   []string // Optional listing of the included files, one row each.
}

// RenderHeader draws the document title, then the header notice or text,
// then the file listing, and finishes the page.
func RenderHeader(cur *Cursor, cfg Config, h Header) {
	title := Font{Family: cfg.TitleFamily, Style: "B", Size: cfg.DocumentTitleSize}
	body := Font{Family: cfg.HeaderFamily, Size: cfg.HeaderSize}

	cur.Line(cfg.DocumentTitle, title, cfg.DocumentTitleGap)
	switch {
	case h.Notice != "":
		cur.Line(h.Notice, body, cfg.HeaderLeading)
	case h.Text != "":
		cur.DrawWrapped(h.Text, cur.Geometry().AvailableWidth(), body, cfg.HeaderLeading)
	}

	if len(h.Tree) > 0 {
		listing := cfg.BodyFont(cfg.BaseSize)
		leading := Leading(cfg.BaseSize)
		if cur.Exhausted() {
			cur.EndPage()
		}
		cur.Skip(cfg.HeaderLeading)
		for _, row := range append([]string{"Included files:"}, h.Tree...) {
			if cur.Exhausted() {
				cur.EndPage()
			}
			cur.Line(row, listing, leading)
		}
	}
	cur.EndPage()
}

// RenderFile draws one file starting at the top of a fresh page. The body
// size comes from FitFontSize so no line is wrapped. Before any row that
// would land at or below the bottom margin the page is finished and the
// title is repeated with a "(continued)" marker. The file's last page is
// always finished, so the next file starts on a new page.
func RenderFile(cur *Cursor, cfg Config, f source.File) FileStats {
	geo := cur.Geometry()
	size := FitFontSize(f.Lines, cur.canvas, cfg.BodyFont(cfg.BaseSize), cfg.BaseSize, geo.AvailableWidth())
	stats := FileStats{
		Path:     f.Path,
		FontSize: size,
		Leading:  Leading(size),
		Lines:    len(f.Lines),
	}
	body := cfg.BodyFont(size)
	title := cfg.TitleFont()
	firstPage := cur.Pages()

	cur.Line(fmt.Sprintf("FILE: %s", f.Path), title, cfg.TitleLeading)
	for _, line := range f.Lines {
		if cur.Exhausted() {
			cur.EndPage()
			cur.Line(fmt.Sprintf("FILE: %s (continued)", f.Path), title, cfg.TitleLeading)
		}
		cur.Line(line, body, stats.Leading)
	}
	cur.EndPage()

	stats.Pages = cur.Pages() - firstPage
	return stats
}
