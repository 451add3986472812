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

// Package raster converts vector paths into anti-aliased pixel coverage.
//
// Coverage is the exact fraction of each pixel's area inside the filled or
// stroked path. Device space has its origin at the top-left corner of the
// output, with y increasing downwards, and pixel (x, y) occupies the unit
// square [x, x+1)×[y, y+1).
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates.
type edge struct {
	x0, y0 float64 // start point
	x1, y1 float64 // end point
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

func (e *edge) xAt(y float64) float64 {
	return e.x0 + e.dxdy*(y-e.y0)
}

// Rasteriser converts vector paths to pixel coverage values.
// Create one instance and reuse it for many paths: internal buffers grow
// as needed but are never released.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip bounds the output, in device coordinates.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve flattening tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style of stroke end points.
	Cap graphics.LineCapStyle

	// Join is the style of stroke corners.
	Join graphics.LineJoinStyle

	// MiterLimit is the largest ratio of miter length to line width.
	// Longer miters are drawn as bevels. Must be at least 1.
	MiterLimit float64

	cover     []float32 // per-pixel change of the winding count
	area      []float32 // per-pixel partial coverage
	edges     []edge
	activeIdx []int

	// edge bounding box in device space
	edgeBBoxFirst bool
	devXMin       float64
	devXMax       float64
	devYMin       float64
	devYMax       float64

	// stroke outline polygons, all stored in poly[]
	poly        []vec.Vec2
	polyOffsets []int

	// flattened stroke subpaths, all stored in pts[]
	pts        []vec.Vec2
	ptsOffsets []int
	ptsClosed  []bool
}

// NewRasteriser returns a Rasteriser with the given clip rectangle and
// PDF default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1.0
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.poly = r.poly[:0]
	r.polyOffsets = r.polyOffsets[:0]
	r.pts = r.pts[:0]
	r.ptsOffsets = r.ptsOffsets[:0]
	r.ptsClosed = r.ptsClosed[:0]
}

// FillNonZero fills the path using the nonzero winding rule.
// The emit callback receives coverage row by row, trimmed to the span of
// non-zero values. The coverage slice is only valid during the call.
func (r *Rasteriser) FillNonZero(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	r.walkPath(p, r.addEdge)
	r.sweep(fillNonZero, emit)
}

// FillEvenOdd fills the path using the even-odd rule.
// See [Rasteriser.FillNonZero] for the emit callback.
func (r *Rasteriser) FillEvenOdd(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	r.walkPath(p, r.addEdge)
	r.sweep(fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

// walkPath flattens p and calls seg for every line segment, in user space.
// Each subpath is closed implicitly, as required for filling.
func (r *Rasteriser) walkPath(p path.Path, seg func(a, b vec.Vec2)) {
	var current, start vec.Vec2
	open := false

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				seg(current, start)
			}
			current = pts[0]
			start = current
			open = true

		case path.CmdLineTo:
			seg(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			r.flattenQuadratic(current, pts[0], pts[1], seg)
			current = pts[1]

		case path.CmdCubeTo:
			r.flattenCubic(current, pts[0], pts[1], pts[2], seg)
			current = pts[2]

		case path.CmdClose:
			if current != start {
				seg(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		seg(current, start)
	}
}

// addEdge transforms a user-space segment to device space and adds it to
// the edge list. Horizontal segments carry no coverage and are dropped.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{
		x0: x0, y0: y0,
		x1: x1, y1: y1,
		dxdy: (x1 - x0) / dy,
	})

	if r.edgeBBoxFirst {
		r.devXMin, r.devXMax = min(x0, x1), max(x0, x1)
		r.devYMin, r.devYMax = min(y0, y1), max(y0, y1)
		r.edgeBBoxFirst = false
		return
	}
	r.devXMin = min(r.devXMin, x0, x1)
	r.devXMax = max(r.devXMax, x0, x1)
	r.devYMin = min(r.devYMin, y0, y1)
	r.devYMax = max(r.devYMax, y0, y1)
}

// transformLinear applies the 2×2 linear part of the CTM to a vector.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments, within Flatness device pixels.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// maximum deviation from the chord is |P0 - 2P1 + P2| / 4
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))

	n := 1
	if d := e.Length(); d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, ..., p3 by line
// segments, using Wang's formula for the segment count.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Coverage accumulation:
//
// Every edge crossing a scanline is cut at pixel column boundaries. A
// piece of the edge with vertical extent dy, lying in column x at average
// horizontal offset f within the pixel, adds
//
//	cover[x] += sign*dy
//	area[x]  += sign*dy*(1-f)
//
// where sign is +1 for downward and -1 for upward edges. Scanning the row
// from left to right, pixel x then has signed coverage
//
//	raw[x] = area[x] + sum(cover[i] for i < x)
//
// which is the winding-number-weighted area of the path inside the pixel.
// The fill rule turns raw into a value in [0,1].

// sweep rasterises the collected edges, one scanline at a time.
func (r *Rasteriser) sweep(rule fillRule, emit func(y, xMin int, coverage []float32)) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.devXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.devXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.devYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.devYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}

	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < yBot {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.yMax() <= yTop {
				// edge is finished; swap-remove it
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			if r.accumulate(e, yTop, yBot, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if rule == fillNonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if trimmed, offset := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// accumulate adds the contribution of the part of e inside the scanline
// [yTop, yBot) to the cover and area buffers, which start at column xMin.
// It reports whether anything was added.
func (r *Rasteriser) accumulate(e *edge, yTop, yBot float64, xMin, xMax int) bool {
	yTop = max(yTop, e.yMin())
	yBot = min(yBot, e.yMax())
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa, xb := e.xAt(yTop), e.xAt(yBot)
	if xa > xb {
		xa, xb = xb, xa
	}
	pixLeft := int(math.Floor(xa))
	pixRight := int(math.Floor(xb))

	if pixRight < xMin {
		// entirely left of the clip region: full cover from the first column
		c := sign * float32(yBot-yTop)
		r.cover[0] += c
		r.area[0] += c
		return true
	}
	if pixLeft >= xMax {
		return false
	}

	if pixLeft == pixRight {
		r.deposit(pixLeft, sign*float32(yBot-yTop), (xa+xb)/2, xMin, xMax)
		return true
	}

	// the edge crosses several columns; dy per unit of x is constant
	dydx := (yBot - yTop) / (xb - xa)
	x := xa
	for pix := pixLeft; pix <= pixRight && pix < xMax; pix++ {
		xNext := min(float64(pix+1), xb)
		if dy := (xNext - x) * dydx; dy > 0 {
			r.deposit(pix, sign*float32(dy), (x+xNext)/2, xMin, xMax)
		}
		x = xNext
	}
	return true
}

// deposit adds a piece of an edge in column pix with vertical extent c
// (signed) and average x-coordinate xMid.
func (r *Rasteriser) deposit(pix int, c float32, xMid float64, xMin, xMax int) {
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-(xMid-float64(pix)))
	}
}

// integrateNonZero converts cover/area to coverage using the nonzero
// winding rule. The result overwrites cover.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		cover[i] = min(abs32(raw), 1)
	}
}

// integrateEvenOdd converts cover/area to coverage using the even-odd
// rule. The result overwrites cover.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := abs32(acc + area[i])
		acc += cover[i]
		m := raw - 2*float32(int(raw/2))
		cover[i] = 1 - abs32(1-m)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros returns the non-zero part of coverage and its offset.
// It returns nil if all values are zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// Default values for rasteriser parameters.
const (
	// defaultFlatness is the curve flattening tolerance in device pixels.
	// 0.25 is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF/PostScript: joins with an interior
	// angle below about 11.5 degrees are bevelled.
	defaultMiterLimit = 10.0
)

// Numerical tolerances.
const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the smallest length of a stroke segment.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold is the largest |sin| of the turning angle for
	// which no join is drawn.
	collinearityThreshold = 1e-6
)
