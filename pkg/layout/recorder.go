package layout

import "unicode/utf8"

// FixedPitch measures every character as the same fraction of the font size,
// regardless of family. 0.6 matches Courier.
type FixedPitch float64

// StringWidth implements Metrics.
func (p FixedPitch) StringWidth(text string, f Font) float64 {
	return float64(utf8.RuneCountInString(text)) * f.Size * float64(p)
}

// OpKind tells the recorded operations apart.
type OpKind int

// Recorded operation kinds.
const (
	OpSetFont OpKind = iota
	OpDraw
	OpShowPage
)

// Op is one recorded drawing instruction. Draw ops carry the font in effect.
type Op struct {
	Kind OpKind
	X, Y float64
	Text string
	Font Font
}

// Recorder is a Canvas that keeps every instruction instead of rendering it.
type Recorder struct {
	Metrics
	Ops  []Op
	font Font
}

// NewRecorder returns a Recorder that measures text with m.
func NewRecorder(m Metrics) *Recorder {
	return &Recorder{Metrics: m}
}

// SetFont implements Surface.
func (r *Recorder) SetFont(f Font) {
	r.font = f
	r.Ops = append(r.Ops, Op{Kind: OpSetFont, Font: f})
}

// DrawString implements Surface.
func (r *Recorder) DrawString(x, y float64, text string) {
	r.Ops = append(r.Ops, Op{Kind: OpDraw, X: x, Y: y, Text: text, Font: r.font})
}

// ShowPage implements Surface.
func (r *Recorder) ShowPage() {
	r.Ops = append(r.Ops, Op{Kind: OpShowPage})
}

// Pages groups the draw ops by page. A trailing page with no ShowPage is
// included only if something was drawn on it.
func (r *Recorder) Pages() [][]Op {
	var pages [][]Op
	var cur []Op
	for _, op := range r.Ops {
		switch op.Kind {
		case OpDraw:
			cur = append(cur, op)
		case OpShowPage:
			pages = append(pages, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		pages = append(pages, cur)
	}
	return pages
}

// Texts returns the text of every draw op, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpDraw {
			out = append(out, op.Text)
		}
	}
	return out
}
