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

// Zoom limits of the page viewer.
const (
	MinScale = 0.1
	MaxScale = 10.0
)

// FitScale returns the zoom scale at which content fits into a viewport of
// the given size, with padding device pixels on every side.
// Content is measured at the zoom scale scale. The result is clamped to
// [MinScale, MaxScale]. If content is empty or the viewport has no room
// left after padding, scale itself is returned (clamped). NaN sizes count
// as empty.
func FitScale(content Rect, scale, viewWidth, viewHeight, padding float64) float64 {
	availW := viewWidth - 2*padding
	availH := viewHeight - 2*padding
	if !(content.Width > 0) || !(content.Height > 0) || !(availW > 0) || !(availH > 0) || !(scale > 0) {
		return clampScale(scale)
	}

	// content.Width/scale is the width at zoom 1.0
	fit := min(availW*scale/content.Width, availH*scale/content.Height)
	return clampScale(fit)
}

// clampScale maps NaN to MinScale.
func clampScale(s float64) float64 {
	if !(s >= MinScale) {
		return MinScale
	}
	return min(MaxScale, s)
}

// ScrollOffset returns the vertical scroll position which centres content
// in a viewport of height viewHeight. The result stays within the
// scrollable range [0, docHeight-viewHeight].
func ScrollOffset(content Rect, viewHeight, docHeight float64) float64 {
	offset := content.Y + content.Height/2 - viewHeight/2
	limit := max(0, docHeight-viewHeight)
	return max(0, min(limit, offset))
}
