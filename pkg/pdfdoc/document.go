// Package pdfdoc is the PDF backend of the layout engine: a layout.Canvas
// that draws with the gofpdf core fonts and writes the finished document in
// one step.
package pdfdoc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"codepdf/pkg/layout"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// Document implements layout.Canvas on top of a gofpdf document. Pages are
// opened lazily by the first drawing call after a ShowPage.
type Document struct {
	pdf      *gofpdf.Fpdf
	geo      layout.Geometry
	tr       func(string) string
	font     layout.Font
	pageOpen bool
	pages    int
	logger   *zap.Logger
}

// New returns an empty document with the given page geometry.
func New(geo layout.Geometry, logger *zap.Logger) *Document {
	if logger == nil {
		logger = zap.NewNop()
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: geo.Width, Ht: geo.Height},
	})
	pdf.SetMargins(geo.Margin, geo.Margin, geo.Margin)
	pdf.SetAutoPageBreak(false, geo.Margin)
	pdf.SetCompression(true)

	return &Document{
		pdf:    pdf,
		geo:    geo,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		logger: logger,
	}
}

// SetTitle records the document title and creator in the PDF metadata.
func (d *Document) SetTitle(title, creator string) {
	d.pdf.SetTitle(title, true)
	d.pdf.SetCreator(creator, true)
}

// SetFont implements layout.Surface.
func (d *Document) SetFont(f layout.Font) {
	d.ensurePage()
	d.apply(f)
}

// DrawString implements layout.Surface. y is measured from the bottom edge.
func (d *Document) DrawString(x, y float64, text string) {
	d.ensurePage()
	if text == "" {
		return
	}
	d.pdf.Text(x, d.geo.Height-y, d.tr(text))
}

// ShowPage implements layout.Surface. Closing a page nothing was drawn on
// still emits it, blank.
func (d *Document) ShowPage() {
	d.ensurePage()
	d.pageOpen = false
	d.pages++
}

// StringWidth implements layout.Metrics using the core font widths.
func (d *Document) StringWidth(text string, f layout.Font) float64 {
	prev := d.font
	d.apply(f)
	w := d.pdf.GetStringWidth(d.tr(text))
	if prev.Family != "" {
		d.apply(prev)
	}
	return w
}

// Pages is the number of pages finished with ShowPage.
func (d *Document) Pages() int {
	return d.pages
}

// Err returns the first error gofpdf recorded, if any.
func (d *Document) Err() error {
	return d.pdf.Error()
}

// Write closes the document and writes it to w.
func (d *Document) Write(w io.Writer) error {
	if err := d.pdf.Error(); err != nil {
		return fmt.Errorf("pdf document: %w", err)
	}
	if err := d.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}

// WriteFile closes the document and writes it to path. The bytes go to a
// temporary file in the same directory which is renamed over path, so path
// never holds a partial document.
func (d *Document) WriteFile(path string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		d.logger.Error("Failed to create output directory", zap.String("path", dir), zap.Error(err))
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".codepdf-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create temporary output: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = d.Write(tmp); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to set output permissions: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	d.logger.Debug("Wrote PDF document", zap.String("path", path), zap.Int("pages", d.pages))
	return nil
}

func (d *Document) ensurePage() {
	if d.pageOpen {
		return
	}
	d.pdf.AddPage()
	d.pageOpen = true
	if d.font.Family != "" {
		d.pdf.SetFont(d.font.Family, d.font.Style, d.font.Size)
	}
	d.logger.Debug("Started page", zap.Int("page", d.pages+1))
}

func (d *Document) apply(f layout.Font) {
	if f == d.font {
		return
	}
	d.pdf.SetFont(f.Family, f.Style, f.Size)
	d.font = f
}
