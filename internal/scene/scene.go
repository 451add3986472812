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

// Package scene describes the highlights of one page of the split view in
// a form which can be stored in YAML files.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/overlay"
)

// Scene is one rendered page together with its highlight layers.
type Scene struct {
	Name string `yaml:"name,omitempty"`

	// Page is the page size at scale 1.0.
	Page Page `yaml:"page"`

	// Scale is the zoom factor. A missing value means 1.0.
	Scale float64 `yaml:"scale"`

	// Panel selects the palette for citation statuses.
	Panel Panel `yaml:"panel,omitempty"`

	// PageColor, if set, is painted underneath the highlights, as
	// "#rrggbb" or "#rgb".
	PageColor string `yaml:"page_color,omitempty"`

	// Layers are drawn in order, so that later layers end up on top.
	Layers []Layer `yaml:"layers"`
}

// Page gives the size of a page in device pixels at scale 1.0.
type Page struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Panel identifies one side of the split view.
type Panel string

// These are the valid panels.
const (
	PanelTarget Panel = "target"
	PanelSource Panel = "source"
)

// Layer is a group of highlights which share their colours.
// Exactly one of Status and Kind must be set.
type Layer struct {
	Status *overlay.Status `yaml:"status,omitempty"`
	Kind   *overlay.Kind   `yaml:"kind,omitempty"`
	Boxes  []overlay.Box   `yaml:"boxes"`
}

// ErrEmpty is returned by [Decode] if the input contains no document.
var ErrEmpty = errors.New("empty scene")

// Decode reads a scene in YAML format from r and validates it.
// Since JSON is a subset of YAML, JSON input is accepted as well.
func Decode(r io.Reader) (*Scene, error) {
	sc := &Scene{Scale: 1}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(sc)
	if errors.Is(err, io.EOF) {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

// ReadFile reads and validates the scene stored in the named file.
func ReadFile(name string) (*Scene, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	sc, err := Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return sc, nil
}

// Encode writes sc to w in YAML format.
func Encode(w io.Writer, sc *Scene) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return enc.Close()
}

// WriteFile stores sc in the named file, replacing any existing file.
func WriteFile(name string, sc *Scene) (err error) {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := fd.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return Encode(fd, sc)
}

// Validate checks that the page geometry is usable and that every layer
// has exactly one way of choosing its colours.
func (sc *Scene) Validate() error {
	if !(sc.Page.Width > 0 && sc.Page.Height > 0) {
		return fmt.Errorf("invalid page size %gx%g", sc.Page.Width, sc.Page.Height)
	}
	if !(sc.Scale > 0) {
		return fmt.Errorf("invalid scale %g", sc.Scale)
	}
	switch sc.Panel {
	case "", PanelTarget, PanelSource:
		// pass
	default:
		return fmt.Errorf("invalid panel %q", sc.Panel)
	}
	if sc.PageColor != "" {
		if _, err := overlay.ParseHex(sc.PageColor); err != nil {
			return fmt.Errorf("page colour: %w", err)
		}
	}
	for i, l := range sc.Layers {
		if (l.Status == nil) == (l.Kind == nil) {
			return fmt.Errorf("layer %d: exactly one of status and kind must be given", i)
		}
	}
	return nil
}

// Size returns the size of the rendered page in device pixels.
func (sc *Scene) Size() (width, height float64) {
	return sc.Page.Width * sc.Scale, sc.Page.Height * sc.Scale
}

// Colors returns the colours used for the given layer.
func (sc *Scene) Colors(layer int) overlay.Colors {
	l := sc.Layers[layer]
	if l.Kind != nil {
		return overlay.KindColors(*l.Kind)
	}
	var status overlay.Status
	if l.Status != nil {
		status = *l.Status
	}
	return overlay.StatusColors(status, sc.Panel == PanelSource)
}

// Draw clears the page area of s and paints all layers.
// An invalid page colour is ignored.
func (sc *Scene) Draw(s overlay.Surface) {
	w, h := sc.Size()
	overlay.Clear(s, w, h)

	if sc.PageColor != "" {
		if c, err := overlay.ParseHex(sc.PageColor); err == nil {
			paintPage(s, c, w, h)
		}
	}

	for _, l := range sc.Layers {
		if l.Kind != nil {
			overlay.DrawBoxesByKind(s, l.Boxes, sc.Page.Width, sc.Page.Height, sc.Scale, *l.Kind)
			continue
		}
		var status overlay.Status
		if l.Status != nil {
			status = *l.Status
		}
		overlay.DrawBoxes(s, l.Boxes, sc.Page.Width, sc.Page.Height, sc.Scale,
			status, sc.Panel == PanelSource)
	}
}

func paintPage(s overlay.Surface, c color.Color, w, h float64) {
	s.Save()
	defer s.Restore()
	s.SetFillColor(c)
	s.FillRect(overlay.Rect{Width: w, Height: h})
}

// Rects returns the device rectangles of all boxes, in drawing order.
func (sc *Scene) Rects() []overlay.Rect {
	var res []overlay.Rect
	for _, l := range sc.Layers {
		for _, b := range l.Boxes {
			res = append(res, overlay.Position(b, sc.Page.Width, sc.Page.Height, sc.Scale))
		}
	}
	return res
}

// Bounds returns the smallest rectangle containing all highlights.
// The second return value is false if the scene has no boxes.
func (sc *Scene) Bounds() (overlay.Rect, bool) {
	return overlay.Bounds(sc.Rects())
}

// Hit finds the topmost highlight containing the device point (x, y).
// It returns the layer index and the index of the box within the layer.
func (sc *Scene) Hit(x, y float64) (layer, box int, ok bool) {
	idx := overlay.HitTest(x, y, sc.Rects())
	if idx < 0 {
		return 0, 0, false
	}
	for i, l := range sc.Layers {
		if idx < len(l.Boxes) {
			return i, idx, true
		}
		idx -= len(l.Boxes)
	}
	panic("unreachable")
}
