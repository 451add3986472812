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

import "image/color"

// Surface is a 2D drawing context, as provided by the page viewer.
//
// Save pushes the current graphics state (colours, line width and any
// transformation) and Restore pops it. Restore without a matching Save
// has no effect.
type Surface interface {
	Save()
	Restore()
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	FillRect(r Rect)
	StrokeRect(r Rect)
	ClearRect(r Rect)
}

const (
	// DefaultOpacity is the opacity of highlight backgrounds.
	DefaultOpacity = 0.3

	// BorderWidth is the width of highlight borders in device pixels.
	BorderWidth = 2.0
)

// Draw paints a single highlight: a translucent fill in the background
// colour, then a solid border. The graphics state of s is the same after
// the call as before.
func Draw(s Surface, r Rect, c Colors, opacity float64) {
	s.Save()
	defer s.Restore()

	s.SetFillColor(c.Fill(opacity))
	s.FillRect(r)

	s.SetStrokeColor(c.Border)
	s.SetLineWidth(BorderWidth)
	s.StrokeRect(r)
}

// DrawBoxes paints the citation highlights of one page. All boxes share
// the same verification status; see [StatusColors].
func DrawBoxes(s Surface, boxes []Box, pageWidth, pageHeight, scale float64, status Status, sourcePanel bool) {
	drawAll(s, boxes, pageWidth, pageHeight, scale, StatusColors(status, sourcePanel))
}

// DrawBoxesByKind paints highlights of one category; see [KindColors].
func DrawBoxesByKind(s Surface, boxes []Box, pageWidth, pageHeight, scale float64, kind Kind) {
	drawAll(s, boxes, pageWidth, pageHeight, scale, KindColors(kind))
}

func drawAll(s Surface, boxes []Box, pageWidth, pageHeight, scale float64, c Colors) {
	for _, b := range boxes {
		Draw(s, Position(b, pageWidth, pageHeight, scale), c, DefaultOpacity)
	}
}

// Clear erases the region (0,0)-(width,height) of s.
// Call it before redrawing highlights after a zoom, scroll or page change;
// otherwise the new highlights are painted over the old ones.
func Clear(s Surface, width, height float64) {
	s.ClearRect(Rect{Width: width, Height: height})
}
