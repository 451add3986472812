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

package raster

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
// See [Rasteriser.FillNonZero] for the emit callback.
//
// Each open subpath becomes one polygon: the +N offset side forward, the
// end cap, the -N side backward and the start cap. A closed subpath
// becomes a pair of loops, one per side, with opposite orientation.
// All outlines are filled together with the nonzero rule.
func (r *Rasteriser) Stroke(p path.Path, emit func(y, xMin int, coverage []float32)) {
	r.flattenSubpaths(p)

	r.poly = r.poly[:0]
	r.polyOffsets = r.polyOffsets[:0]
	for i := range r.ptsOffsets {
		pts := r.subpath(i)
		switch {
		case len(pts) == 1:
			// no orientation: only a round cap leaves a mark
			if r.Cap == graphics.LineCapRound {
				r.addCircle(pts[0], r.Width/2)
			}
		case r.ptsClosed[i] && len(pts) > 2:
			r.outlineClosed(pts)
		default:
			r.outlineOpen(pts)
		}
	}

	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	for i := range r.polyOffsets {
		poly := r.polygon(i)
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.sweep(fillNonZero, emit)
}

// flattenSubpaths splits p into subpaths and flattens curves. Results go
// to r.pts, r.ptsOffsets and r.ptsClosed. Repeated points are removed.
// A subpath of a single point is kept only if it had a drawing command,
// since it then still produces a round dot.
func (r *Rasteriser) flattenSubpaths(p path.Path) {
	r.pts = r.pts[:0]
	r.ptsOffsets = r.ptsOffsets[:0]
	r.ptsClosed = r.ptsClosed[:0]

	var current vec.Vec2
	subStart := 0
	inSubpath := false
	drawn := false

	appendPoint := func(_, to vec.Vec2) {
		drawn = true
		if last := r.pts[len(r.pts)-1]; to.Sub(last).Length() < zeroLengthThreshold {
			return
		}
		r.pts = append(r.pts, to)
	}
	endSubpath := func(closed bool) {
		pts := r.pts[subStart:]
		if closed && len(pts) > 1 && pts[len(pts)-1].Sub(pts[0]).Length() < zeroLengthThreshold {
			r.pts = r.pts[:len(r.pts)-1]
			pts = pts[:len(pts)-1]
		}
		if len(pts) == 1 && !drawn {
			r.pts = r.pts[:subStart]
			return
		}
		r.ptsOffsets = append(r.ptsOffsets, subStart)
		r.ptsClosed = append(r.ptsClosed, closed)
	}

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if inSubpath {
				endSubpath(false)
			}
			current = pts[0]
			subStart = len(r.pts)
			r.pts = append(r.pts, current)
			inSubpath = true
			drawn = false

		case path.CmdLineTo:
			if inSubpath {
				appendPoint(current, pts[0])
			}
			current = pts[0]

		case path.CmdQuadTo:
			if inSubpath {
				r.flattenQuadratic(current, pts[0], pts[1], appendPoint)
			}
			current = pts[1]

		case path.CmdCubeTo:
			if inSubpath {
				r.flattenCubic(current, pts[0], pts[1], pts[2], appendPoint)
			}
			current = pts[2]

		case path.CmdClose:
			if inSubpath {
				current = r.pts[subStart]
				endSubpath(true)
				inSubpath = false
			}
		}
	}
	if inSubpath {
		endSubpath(false)
	}
}

// subpath returns the points of flattened subpath i.
func (r *Rasteriser) subpath(i int) []vec.Vec2 {
	end := len(r.pts)
	if i+1 < len(r.ptsOffsets) {
		end = r.ptsOffsets[i+1]
	}
	return r.pts[r.ptsOffsets[i]:end]
}

// polygon returns the vertices of stroke polygon i.
func (r *Rasteriser) polygon(i int) []vec.Vec2 {
	end := len(r.poly)
	if i+1 < len(r.polyOffsets) {
		end = r.polyOffsets[i+1]
	}
	return r.poly[r.polyOffsets[i]:end]
}

// outlineOpen adds the stroke outline of an open subpath with at least
// two points. A closed subpath of two points is stroked as open, like a
// zero-width rectangle in an HTML canvas.
func (r *Rasteriser) outlineOpen(pts []vec.Vec2) {
	d := r.Width / 2
	n := len(pts)
	start := len(r.poly)

	t0 := unit(pts[1].Sub(pts[0]))
	tn := unit(pts[n-1].Sub(pts[n-2]))

	// +N side, forward
	r.poly = append(r.poly, pts[0].Add(normal(t0).Mul(d)))
	for i := 1; i < n-1; i++ {
		r.addSideVertex(pts, i, +1)
	}
	r.poly = append(r.poly, pts[n-1].Add(normal(tn).Mul(d)))
	r.addCap(pts[n-1], tn, d)
	r.poly = append(r.poly, pts[n-1].Sub(normal(tn).Mul(d)))

	// -N side, backward
	for i := n - 2; i >= 1; i-- {
		k := len(r.poly)
		r.addSideVertex(pts, i, -1)
		slices.Reverse(r.poly[k:])
	}
	r.poly = append(r.poly, pts[0].Sub(normal(t0).Mul(d)))
	r.addCap(pts[0], t0.Mul(-1), d)

	if signedArea(r.poly[start:]) < 0 {
		slices.Reverse(r.poly[start:])
	}
	r.polyOffsets = append(r.polyOffsets, start)
}

// outlineClosed adds the two offset loops of a closed subpath with at
// least three points.
func (r *Rasteriser) outlineClosed(pts []vec.Vec2) {
	startA := len(r.poly)
	for i := range pts {
		r.addSideVertex(pts, i, +1)
	}
	startB := len(r.poly)
	for i := range pts {
		r.addSideVertex(pts, i, -1)
	}
	loopA, loopB := r.poly[startA:startB], r.poly[startB:]
	slices.Reverse(loopB)

	if signedArea(loopA)+signedArea(loopB) < 0 {
		slices.Reverse(loopA)
		slices.Reverse(loopB)
	}
	r.polyOffsets = append(r.polyOffsets, startA, startB)
}

// addSideVertex appends the outline points for vertex i of pts on one side
// of the path (+1 for the +N side, -1 for the -N side). Indices wrap
// around, so this also serves closed subpaths.
func (r *Rasteriser) addSideVertex(pts []vec.Vec2, i int, side float64) {
	n := len(pts)
	prev, P, next := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
	t1 := unit(P.Sub(prev))
	t2 := unit(next.Sub(P))
	d := r.Width / 2

	u1 := normal(t1).Mul(side * d)
	u2 := normal(t2).Mul(side * d)
	o1, o2 := P.Add(u1), P.Add(u2)

	cross := t1.X*t2.Y - t1.Y*t2.X
	dot := t1.Dot(t2)
	if math.Abs(cross) < collinearityThreshold {
		if dot > 0 {
			r.poly = append(r.poly, o1) // straight continuation
			return
		}
		// cusp: both sides are outer sides
	} else if (cross > 0) == (side > 0) {
		// inner side of the turn: use the intersection of the two offset
		// lines, if it lies within both adjacent segments
		m := u1.Add(u2)
		ext := d * math.Abs(cross) / (1 + dot)
		if ext <= min(P.Sub(prev).Length(), next.Sub(P).Length()) {
			r.poly = append(r.poly, P.Add(m.Mul(2*d*d/m.Dot(m))))
		} else {
			r.poly = append(r.poly, o1, P, o2)
		}
		return
	}

	switch r.Join {
	case graphics.LineJoinMiter:
		// miter length / line width = 1/sin(φ/2), φ the interior angle
		sinHalf := math.Sqrt(max(0, (1+dot)/2))
		if m := u1.Add(u2); sinHalf*r.MiterLimit >= 1 && m.Dot(m) > 0 {
			r.poly = append(r.poly, o1, P.Add(m.Mul(2*d*d/m.Dot(m))), o2)
			return
		}
	case graphics.LineJoinRound:
		sweep := math.Atan2(u1.X*u2.Y-u1.Y*u2.X, u1.Dot(u2))
		if math.Abs(cross) < collinearityThreshold {
			// cusp: go round through the direction of travel
			sweep = math.Copysign(math.Pi, u1.X*t1.Y-u1.Y*t1.X)
		}
		r.poly = append(r.poly, o1)
		r.appendArc(P, u1, sweep)
		r.poly = append(r.poly, o2)
		return
	}
	r.poly = append(r.poly, o1, o2) // bevel
}

// addCap appends the cap at end point E, from the +N side to the -N side.
// The vector t points away from the path.
func (r *Rasteriser) addCap(E, t vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		u := normal(t).Mul(d)
		r.appendArc(E, u, math.Copysign(math.Pi, u.X*t.Y-u.Y*t.X))
	case graphics.LineCapSquare:
		nrm := normal(t).Mul(d)
		ext := t.Mul(d)
		r.poly = append(r.poly, E.Add(nrm).Add(ext), E.Sub(nrm).Add(ext))
	}
}

// addCircle adds a polygon approximating a circle.
func (r *Rasteriser) addCircle(center vec.Vec2, radius float64) {
	start := len(r.poly)
	from := vec.Vec2{X: radius}
	r.poly = append(r.poly, center.Add(from))
	r.appendArc(center, from, 2*math.Pi)
	r.polyOffsets = append(r.polyOffsets, start)
}

// appendArc appends the interior points of the arc around center which
// starts at center+from and sweeps by the given angle. The number of
// points is chosen so that the chords stay within Flatness device pixels
// of the arc.
func (r *Rasteriser) appendArc(center, from vec.Vec2, sweep float64) {
	radius := from.Length()
	rd := radius * max(
		r.transformLinear(vec.Vec2{X: 1}).Length(),
		r.transformLinear(vec.Vec2{Y: 1}).Length())

	n := int(math.Ceil(math.Abs(sweep) / maxArcStep))
	if rd > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/rd)
		n = max(n, int(math.Ceil(math.Abs(sweep)/step)))
	}
	n = min(n, maxArcSegments)

	for i := 1; i < n; i++ {
		phi := sweep * float64(i) / float64(n)
		c, s := math.Cos(phi), math.Sin(phi)
		r.poly = append(r.poly, center.Add(vec.Vec2{
			X: from.X*c - from.Y*s,
			Y: from.X*s + from.Y*c,
		}))
	}
}

// signedArea returns twice the signed area of a polygon.
func signedArea(poly []vec.Vec2) float64 {
	var a float64
	for i := range poly {
		p, q := poly[i], poly[(i+1)%len(poly)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

// normal returns t rotated by 90 degrees.
func normal(t vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: -t.Y, Y: t.X}
}

// unit returns v scaled to length 1. The zero vector is returned unchanged.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

const (
	// maxArcStep is the largest angle covered by one chord of a round
	// join or cap, independent of the device resolution.
	maxArcStep = math.Pi / 8

	// maxArcSegments bounds the number of chords per arc.
	maxArcSegments = 1024
)
