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

// Package testcases holds named highlight scenes used by the tests and
// by the export and genpdf tools.
package testcases

import (
	"seehuhn.de/go/overlay"
	"seehuhn.de/go/overlay/internal/scene"
)

// Case is a single named scene.
type Case struct {
	Name  string // lowercase a-z, 0-9 and _ only
	Scene *scene.Scene
}

// Common page sizes in device pixels at scale 1.0.
var (
	letter = scene.Page{Width: 612, Height: 792}
	a4     = scene.Page{Width: 595, Height: 842}
)

func status(s overlay.Status) *overlay.Status { return &s }

func kind(k overlay.Kind) *overlay.Kind { return &k }

// box is a helper to create an overlay.Box.
func box(id string, x, y, w, h float64) overlay.Box {
	return overlay.Box{ID: id, X: x, Y: y, Width: w, Height: h}
}

// statusLayer returns a layer with all boxes sharing one status.
func statusLayer(s overlay.Status, boxes ...overlay.Box) scene.Layer {
	return scene.Layer{Status: status(s), Boxes: boxes}
}

// kindLayer returns a layer with all boxes sharing one category.
func kindLayer(k overlay.Kind, boxes ...overlay.Box) scene.Layer {
	return scene.Layer{Kind: kind(k), Boxes: boxes}
}

// textLines returns n boxes laid out like consecutive lines of a
// paragraph, starting at vertical position top.
func textLines(prefix string, top float64, n int) []overlay.Box {
	const lineHeight = 0.018
	res := make([]overlay.Box, n)
	for i := range res {
		w := 0.76
		if i == n-1 {
			w = 0.41 // last line of the paragraph
		}
		res[i] = box(prefix+string(rune('a'+i)), 0.12, top+float64(i)*lineHeight, w, 0.014)
	}
	return res
}
