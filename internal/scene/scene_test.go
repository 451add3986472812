// seehuhn.de/go/overlay - highlight overlays for PDF pages
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

import (
	"bytes"
	"errors"
	"image/color"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"seehuhn.de/go/overlay"
	"seehuhn.de/go/overlay/canvas"
)

const letterScene = `
name: letter
page: {width: 612, height: 792}
scale: 1.5
panel: target
layers:
  - status: mismatch
    boxes:
      - {id: c1, x: 0.1, y: 0.2, width: 0.3, height: 0.05}
  - kind: entity
    boxes:
      - {id: e1, x: 0.5, y: 0.5, width: 0.1, height: 0.1}
      - {id: e2, x: 0.55, y: 0.55, width: 0.1, height: 0.1}
`

func ptr[T any](v T) *T { return &v }

func TestDecode(t *testing.T) {
	sc, err := Decode(strings.NewReader(letterScene))
	if err != nil {
		t.Fatal(err)
	}

	want := &Scene{
		Name:  "letter",
		Page:  Page{Width: 612, Height: 792},
		Scale: 1.5,
		Panel: PanelTarget,
		Layers: []Layer{
			{
				Status: ptr(overlay.StatusMismatch),
				Boxes:  []overlay.Box{{ID: "c1", X: 0.1, Y: 0.2, Width: 0.3, Height: 0.05}},
			},
			{
				Kind: ptr(overlay.KindEntity),
				Boxes: []overlay.Box{
					{ID: "e1", X: 0.5, Y: 0.5, Width: 0.1, Height: 0.1},
					{ID: "e2", X: 0.55, Y: 0.55, Width: 0.1, Height: 0.1},
				},
			},
		},
	}
	if !reflect.DeepEqual(sc, want) {
		t.Errorf("expected %+v, got %+v", want, sc)
	}
}

func TestDecodeJSON(t *testing.T) {
	in := `{"page": {"width": 100, "height": 200}, "layers": [{"kind": "citation", "boxes": [{"id": "a", "x": 0, "y": 0, "width": 1, "height": 1}]}]}`
	sc, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if sc.Scale != 1 {
		t.Errorf("missing scale: expected 1, got %g", sc.Scale)
	}
	if len(sc.Layers) != 1 || *sc.Layers[0].Kind != overlay.KindCitation {
		t.Errorf("unexpected layers %+v", sc.Layers)
	}
}

func TestDecodeUnknownStatus(t *testing.T) {
	in := "page: {width: 10, height: 10}\nlayers:\n  - status: reviewed\n    boxes: []\n"
	sc, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if got := *sc.Layers[0].Status; got != overlay.StatusUnknown {
		t.Errorf("expected %v, got %v", overlay.StatusUnknown, got)
	}
	if sc.Colors(0) != overlay.Lookup(overlay.PaletteVerified) {
		t.Errorf("unknown status should use the verified colours")
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"zero_width", "page: {width: 0, height: 10}"},
		{"negative_height", "page: {width: 10, height: -1}"},
		{"zero_scale", "page: {width: 10, height: 10}\nscale: 0"},
		{"negative_scale", "page: {width: 10, height: 10}\nscale: -2"},
		{"bad_panel", "page: {width: 10, height: 10}\npanel: left"},
		{"bad_page_color", "page: {width: 10, height: 10}\npage_color: '#12345'"},
		{"both", "page: {width: 10, height: 10}\nlayers: [{status: verified, kind: entity}]"},
		{"neither", "page: {width: 10, height: 10}\nlayers: [{boxes: []}]"},
		{"unknown_field", "page: {width: 10, height: 10}\nzoom: 2"},
		{"syntax", "page: [1, 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tc.in))
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}

	t.Run("empty", func(t *testing.T) {
		_, err := Decode(strings.NewReader(""))
		if !errors.Is(err, ErrEmpty) {
			t.Errorf("expected ErrEmpty, got %v", err)
		}
	})
}

func TestEncodeDecode(t *testing.T) {
	sc, err := Decode(strings.NewReader(letterScene))
	if err != nil {
		t.Fatal(err)
	}
	sc.PageColor = "#ffffff"
	sc.Panel = PanelSource

	buf := &bytes.Buffer{}
	if err := Encode(buf, sc); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "status: mismatch") {
		t.Errorf("statuses should be stored by name:\n%s", buf.String())
	}

	got, err := Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, sc) {
		t.Errorf("expected %+v, got %+v", sc, got)
	}
}

func TestFiles(t *testing.T) {
	sc, err := Decode(strings.NewReader(letterScene))
	if err != nil {
		t.Fatal(err)
	}

	name := filepath.Join(t.TempDir(), "letter.yaml")
	if err := WriteFile(name, sc); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, sc) {
		t.Errorf("expected %+v, got %+v", sc, got)
	}

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestColors(t *testing.T) {
	sc, err := Decode(strings.NewReader(letterScene))
	if err != nil {
		t.Fatal(err)
	}
	if got := sc.Colors(0); got != overlay.Lookup(overlay.PaletteMismatch) {
		t.Errorf("layer 0: got %v", got)
	}
	if got := sc.Colors(1); got != overlay.Lookup(overlay.PaletteVerified) {
		t.Errorf("layer 1: got %v", got)
	}

	// on the source panel, citation layers use the source colours while
	// category layers are unchanged
	sc.Panel = PanelSource
	if got := sc.Colors(0); got != overlay.Lookup(overlay.PaletteSource) {
		t.Errorf("source panel, layer 0: got %v", got)
	}
	if got := sc.Colors(1); got != overlay.Lookup(overlay.PaletteVerified) {
		t.Errorf("source panel, layer 1: got %v", got)
	}
}

func TestHit(t *testing.T) {
	sc, err := Decode(strings.NewReader(letterScene))
	if err != nil {
		t.Fatal(err)
	}
	// page is 918x1188 device pixels
	cases := []struct {
		x, y       float64
		layer, box int
		ok         bool
	}{
		{100, 250, 0, 0, true}, // citation box
		{367, 296, 0, 0, true}, // near the bottom-right corner
		{470, 600, 1, 0, true}, // e1 only
		{520, 670, 1, 1, true}, // overlap of e1 and e2
		{10, 10, 0, 0, false},  // empty page area
	}
	for _, tc := range cases {
		layer, box, ok := sc.Hit(tc.x, tc.y)
		if ok != tc.ok || layer != tc.layer || box != tc.box {
			t.Errorf("Hit(%g, %g) = %d, %d, %t, expected %d, %d, %t",
				tc.x, tc.y, layer, box, ok, tc.layer, tc.box, tc.ok)
		}
	}
}

func TestBounds(t *testing.T) {
	sc := &Scene{Page: Page{Width: 100, Height: 100}, Scale: 2}
	if _, ok := sc.Bounds(); ok {
		t.Error("scene without boxes should have no bounds")
	}

	sc.Layers = []Layer{
		{Kind: ptr(overlay.KindEntity), Boxes: []overlay.Box{{X: 0.1, Y: 0.1, Width: 0.1, Height: 0.1}}},
		{Kind: ptr(overlay.KindCitation), Boxes: []overlay.Box{{X: 0.5, Y: 0.25, Width: 0.25, Height: 0.5}}},
	}
	got, ok := sc.Bounds()
	want := overlay.Rect{X: 20, Y: 20, Width: 130, Height: 130}
	if !ok || got != want {
		t.Errorf("expected %v, got %v (ok=%t)", want, got, ok)
	}
}

func TestDraw(t *testing.T) {
	sc := &Scene{
		Page:      Page{Width: 100, Height: 50},
		Scale:     2,
		PageColor: "#fff",
		Layers: []Layer{
			{
				Kind:  ptr(overlay.KindContradiction),
				Boxes: []overlay.Box{{X: 0.1, Y: 0.2, Width: 0.3, Height: 0.2}},
			},
		},
	}
	w, h := sc.Size()
	img := canvas.New(int(w), int(h))
	img.Fill(color.NRGBA{R: 10, G: 20, B: 30, A: 255}) // stale content
	sc.Draw(img)

	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	border := overlay.Lookup(overlay.PaletteMismatch).Border
	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 5, white},
		{199, 99, white},
		{19, 19, color.RGBA{R: border.R, G: border.G, B: border.B, A: 255}},
		{80, 30, color.RGBA{R: border.R, G: border.G, B: border.B, A: 255}},
	}
	for _, tc := range cases {
		if got := img.RGBA.RGBAAt(tc.x, tc.y); got != tc.want {
			t.Errorf("pixel (%d,%d): expected %v, got %v", tc.x, tc.y, tc.want, got)
		}
	}

	// the interior is white with a red tint
	inside := img.RGBA.RGBAAt(50, 30)
	if inside.A != 255 || inside.R < 250 || inside.G > 240 || inside.G < 200 {
		t.Errorf("unexpected interior colour %v", inside)
	}
}
