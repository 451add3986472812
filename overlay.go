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

// Package overlay draws citation, entity and contradiction highlights on
// top of rendered PDF pages.
//
// Highlights arrive as boxes in normalized page coordinates. [Position]
// maps a box to device pixels for a given page size and zoom scale,
// [StatusColors] and [KindColors] pick the palette entry, and [Draw] paints
// the result onto a [Surface]. [Bounds] and [HitTest] support scrolling to
// and clicking on highlights.
//
// All functions are synchronous and keep no state between calls. A Surface
// is owned by the caller, who must call [Clear] before redrawing a page.
package overlay

//go:generate go run ./testcases/export

// Box is a highlight region on a page, in normalized coordinates.
// All fields are fractions of the page width or height; the origin is the
// top-left corner of the page. Values outside [0,1] are not rejected.
type Box struct {
	ID     string  `json:"id" yaml:"id"`
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Rect is an axis-aligned rectangle in device pixels at the current zoom
// scale. The origin is the top-left corner of the page.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Position converts a normalized box into device pixels.
// The page dimensions are those of the page rendered at scale 1.0.
//
// Degenerate input (zero page size, zero scale or an empty box) gives a
// zero-area rectangle.
func Position(b Box, pageWidth, pageHeight, scale float64) Rect {
	sx := pageWidth * scale
	sy := pageHeight * scale
	return Rect{
		X:      b.X * sx,
		Y:      b.Y * sy,
		Width:  b.Width * sx,
		Height: b.Height * sy,
	}
}
