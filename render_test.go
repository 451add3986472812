package overlay

import (
	"fmt"
	"image/color"
	"slices"
	"testing"
)

// recorder is a Surface which records every call as a string.
type recorder struct {
	calls []string
	depth int
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) Save() {
	r.depth++
	r.log("save")
}

func (r *recorder) Restore() {
	if r.depth > 0 {
		r.depth--
	}
	r.log("restore")
}

func (r *recorder) SetFillColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r.log("fill-color %02x%02x%02x/%d", n.R, n.G, n.B, n.A)
}

func (r *recorder) SetStrokeColor(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	r.log("stroke-color %02x%02x%02x/%d", n.R, n.G, n.B, n.A)
}

func (r *recorder) SetLineWidth(w float64) { r.log("line-width %g", w) }
func (r *recorder) FillRect(x Rect)        { r.log("fill %g %g %g %g", x.X, x.Y, x.Width, x.Height) }
func (r *recorder) StrokeRect(x Rect)      { r.log("stroke %g %g %g %g", x.X, x.Y, x.Width, x.Height) }
func (r *recorder) ClearRect(x Rect)       { r.log("clear %g %g %g %g", x.X, x.Y, x.Width, x.Height) }

func (r *recorder) count(prefix string) int {
	n := 0
	for _, c := range r.calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func TestDraw(t *testing.T) {
	rec := &recorder{}
	c := Colors{
		Background: color.NRGBA{R: 0x93, G: 0xc5, B: 0xfd, A: 0xff},
		Border:     color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff},
	}
	Draw(rec, Rect{X: 10, Y: 20, Width: 30, Height: 40}, c, DefaultOpacity)

	want := []string{
		"save",
		"fill-color 93c5fd/77",
		"fill 10 20 30 40",
		"stroke-color 2563eb/255",
		"line-width 2",
		"stroke 10 20 30 40",
		"restore",
	}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("unexpected calls:\n got %q\nwant %q", rec.calls, want)
	}
	if rec.depth != 0 {
		t.Errorf("unbalanced save/restore: depth %d", rec.depth)
	}
}

func TestDrawOpacity(t *testing.T) {
	rec := &recorder{}
	Draw(rec, Rect{Width: 1, Height: 1}, Lookup(PaletteMismatch), 0.5)
	if rec.calls[1] != "fill-color fca5a5/128" {
		t.Errorf("unexpected fill colour call %q", rec.calls[1])
	}
}

func TestDrawBoxes(t *testing.T) {
	boxes := []Box{
		{ID: "a", X: 0.1, Y: 0.1, Width: 0.5, Height: 0.25},
		{ID: "b", X: 0.5, Y: 0.5, Width: 0.25, Height: 0.125},
		{ID: "c", X: 0, Y: 0, Width: 1, Height: 1},
	}

	rec := &recorder{}
	DrawBoxes(rec, boxes, 200, 400, 2, StatusMismatch, false)

	if n := rec.count("fill "); n != 3 {
		t.Errorf("expected 3 fills, got %d", n)
	}
	if n := rec.count("stroke "); n != 3 {
		t.Errorf("expected 3 strokes, got %d", n)
	}
	if n := rec.count("stroke-color dc2626/255"); n != 3 {
		t.Errorf("expected 3 mismatch borders, got %d", n)
	}
	if !slices.Contains(rec.calls, "fill 200 400 100 100") {
		t.Errorf("box b not drawn at the expected position: %q", rec.calls)
	}
	if !slices.Contains(rec.calls, "stroke 0 0 400 800") {
		t.Errorf("box c not drawn at the expected position: %q", rec.calls)
	}
	if rec.depth != 0 {
		t.Errorf("unbalanced save/restore: depth %d", rec.depth)
	}

	src := &recorder{}
	DrawBoxes(src, boxes, 200, 400, 2, StatusMismatch, true)
	if n := src.count("stroke-color ca8a04/255"); n != 3 {
		t.Errorf("source panel: expected 3 source borders, got %d", n)
	}
}

func TestDrawBoxesByKind(t *testing.T) {
	boxes := []Box{{X: 0.25, Y: 0.5, Width: 0.5, Height: 0.25}}

	rec := &recorder{}
	DrawBoxesByKind(rec, boxes, 100, 100, 1, KindEntity)
	want := []string{
		"save",
		"fill-color 93c5fd/77",
		"fill 25 50 50 25",
		"stroke-color 2563eb/255",
		"line-width 2",
		"stroke 25 50 50 25",
		"restore",
	}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("unexpected calls:\n got %q\nwant %q", rec.calls, want)
	}
}

func TestDrawBoxesEmpty(t *testing.T) {
	rec := &recorder{}
	DrawBoxes(rec, nil, 100, 100, 1, StatusVerified, false)
	DrawBoxesByKind(rec, nil, 100, 100, 1, KindContradiction)
	if len(rec.calls) != 0 {
		t.Errorf("expected no calls, got %q", rec.calls)
	}
}

func TestClear(t *testing.T) {
	rec := &recorder{}
	Clear(rec, 918, 1188)
	want := []string{"clear 0 0 918 1188"}
	if !slices.Equal(rec.calls, want) {
		t.Errorf("expected %q, got %q", want, rec.calls)
	}
}
