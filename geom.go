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

package overlay

// Contains reports whether the point (x, y) lies in r.
// Points on the edges and corners count as inside, so that clicks on a
// highlight border still hit the highlight.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitTest returns the index of the topmost rectangle containing (x, y),
// or -1 if there is none. Later rectangles are drawn on top of earlier
// ones.
func HitTest(x, y float64, rects []Rect) int {
	for i := len(rects) - 1; i >= 0; i-- {
		if rects[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

// Bounds returns the smallest rectangle enclosing all of rects.
// The second return value is false if rects is empty.
func Bounds(rects []Rect) (Rect, bool) {
	switch len(rects) {
	case 0:
		return Rect{}, false
	case 1:
		return rects[0], true
	}

	first := rects[0]
	xMin, yMin := first.X, first.Y
	xMax, yMax := first.X+first.Width, first.Y+first.Height
	for _, r := range rects[1:] {
		xMin = min(xMin, r.X)
		yMin = min(yMin, r.Y)
		xMax = max(xMax, r.X+r.Width)
		yMax = max(yMax, r.Y+r.Height)
	}
	return Rect{X: xMin, Y: yMin, Width: xMax - xMin, Height: yMax - yMin}, true
}
