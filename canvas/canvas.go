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

// Package canvas provides an [overlay.Surface] which paints into an
// in-memory image.
//
// Rectangles are rasterised with exact area coverage and composited with
// the source-over operator. User space coincides with image pixels until
// a transformation is applied.
package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/overlay"
	"seehuhn.de/go/overlay/raster"
)

// state is the part of the graphics state affected by Save and Restore.
type state struct {
	fill   color.RGBA64 // premultiplied
	stroke color.RGBA64 // premultiplied
	width  float64
	ctm    matrix.Matrix
}

// Image is a drawing surface backed by an [image.RGBA].
//
// An Image is not safe for concurrent use.
type Image struct {
	// RGBA holds the pixels. It may be read at any time between drawing
	// calls.
	RGBA *image.RGBA

	r     *raster.Rasteriser
	cur   state
	stack []state
}

var _ overlay.Surface = (*Image)(nil)

// New allocates a transparent image of the given size.
func New(width, height int) *Image {
	return NewFromRGBA(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewFromRGBA returns a surface which draws into img.
// Device coordinates are those of img, so that a rectangle at user
// coordinates (x, y) covers pixel (x, y) of img when no transformation
// is set.
func NewFromRGBA(img *image.RGBA) *Image {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	r := raster.NewRasteriser(clip)
	r.Join = graphics.LineJoinMiter
	r.Cap = graphics.LineCapButt
	return &Image{
		RGBA: img,
		r:    r,
		cur: state{
			fill:   color.RGBA64{A: 0xffff},
			stroke: color.RGBA64{A: 0xffff},
			width:  1,
			ctm:    matrix.Identity,
		},
	}
}

// Save pushes a copy of the graphics state.
func (img *Image) Save() {
	img.stack = append(img.stack, img.cur)
}

// Restore pops the graphics state saved by the matching call to Save.
// Without a saved state, Restore does nothing.
func (img *Image) Restore() {
	n := len(img.stack)
	if n == 0 {
		return
	}
	img.cur = img.stack[n-1]
	img.stack = img.stack[:n-1]
}

// SetFillColor sets the colour used by FillRect.
func (img *Image) SetFillColor(c color.Color) {
	img.cur.fill = toRGBA64(c)
}

// SetStrokeColor sets the colour used by StrokeRect.
func (img *Image) SetStrokeColor(c color.Color) {
	img.cur.stroke = toRGBA64(c)
}

// SetLineWidth sets the stroke width, in user space units.
// Negative widths are treated as zero.
func (img *Image) SetLineWidth(w float64) {
	img.cur.width = max(w, 0)
}

// Transform applies m to user space, before the current transformation.
func (img *Image) Transform(m matrix.Matrix) {
	img.cur.ctm = m.Mul(img.cur.ctm)
}

// Translate moves the user space origin to (dx, dy).
func (img *Image) Translate(dx, dy float64) {
	img.Transform(matrix.Translate(dx, dy))
}

// Scale scales user space by sx horizontally and sy vertically.
func (img *Image) Scale(sx, sy float64) {
	img.Transform(matrix.Scale(sx, sy))
}

// FillRect fills r with the current fill colour.
func (img *Image) FillRect(r overlay.Rect) {
	if img.cur.fill.A == 0 {
		return
	}
	img.r.CTM = img.cur.ctm
	img.r.FillNonZero(rectPath(r), img.compositor(img.cur.fill))
}

// StrokeRect draws the outline of r with the current stroke colour and
// line width. The stroke is centred on the rectangle edges and uses
// mitered corners.
func (img *Image) StrokeRect(r overlay.Rect) {
	if img.cur.stroke.A == 0 || img.cur.width == 0 {
		return
	}
	img.r.CTM = img.cur.ctm
	img.r.Width = img.cur.width
	img.r.Stroke(rectPath(r), img.compositor(img.cur.stroke))
}

// ClearRect makes the pixels covered by r transparent. Partially covered
// pixels lose the covered fraction of their opacity.
func (img *Image) ClearRect(r overlay.Rect) {
	if pr, ok := img.pixelRect(r); ok {
		draw.Draw(img.RGBA, pr, image.Transparent, image.Point{}, draw.Src)
		return
	}

	img.r.CTM = img.cur.ctm
	pix := img.RGBA.Pix
	img.r.FillNonZero(rectPath(r), func(y, xMin int, coverage []float32) {
		i := img.RGBA.PixOffset(xMin, y)
		for _, c := range coverage {
			keep := 1 - c
			for k := range 4 {
				pix[i+k] = uint8(float32(pix[i+k])*keep + 0.5)
			}
			i += 4
		}
	})
}

// Fill paints the whole image with c, replacing what was there.
func (img *Image) Fill(c color.Color) {
	draw.Draw(img.RGBA, img.RGBA.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Background paints src scaled to cover the whole image, using bilinear
// interpolation. This places a rendered PDF page underneath the
// highlights.
func (img *Image) Background(src image.Image) {
	draw.BiLinear.Scale(img.RGBA, img.RGBA.Bounds(), src, src.Bounds(), draw.Over, nil)
}

// rectPath returns the outline of r as a closed path.
func rectPath(r overlay.Rect) path.Path {
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.Width, r.Y+r.Height
	return func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{{X: x0, Y: y0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y0}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x1, Y: y1}}) &&
			yield(path.CmdLineTo, []vec.Vec2{{X: x0, Y: y1}}) &&
			yield(path.CmdClose, nil)
	}
}

// pixelRect returns the device rectangle of r if it lies exactly on pixel
// boundaries, clipped to the image.
func (img *Image) pixelRect(r overlay.Rect) (image.Rectangle, bool) {
	m := img.cur.ctm
	if m[1] != 0 || m[2] != 0 {
		return image.Rectangle{}, false
	}
	x0 := m[0]*r.X + m[4]
	y0 := m[3]*r.Y + m[5]
	x1 := m[0]*(r.X+r.Width) + m[4]
	y1 := m[3]*(r.Y+r.Height) + m[5]
	for _, v := range []float64{x0, y0, x1, y1} {
		if v != math.Trunc(v) || math.Abs(v) > 1<<30 {
			return image.Rectangle{}, false
		}
	}
	pr := image.Rect(int(x0), int(y0), int(x1), int(y1)) // canonicalised
	return pr.Intersect(img.RGBA.Bounds()), true
}

// compositor returns an emit function which paints colour c with
// source-over compositing, weighted by the pixel coverage.
func (img *Image) compositor(c color.RGBA64) func(y, xMin int, coverage []float32) {
	sr := float32(c.R) / 0xffff
	sg := float32(c.G) / 0xffff
	sb := float32(c.B) / 0xffff
	sa := float32(c.A) / 0xffff
	pix := img.RGBA.Pix
	return func(y, xMin int, coverage []float32) {
		i := img.RGBA.PixOffset(xMin, y)
		for _, cov := range coverage {
			if cov > 0 {
				keep := 1 - sa*cov
				pix[i+0] = blend(pix[i+0], sr*cov, keep)
				pix[i+1] = blend(pix[i+1], sg*cov, keep)
				pix[i+2] = blend(pix[i+2], sb*cov, keep)
				pix[i+3] = blend(pix[i+3], sa*cov, keep)
			}
			i += 4
		}
	}
}

// blend computes src + dst*keep for one premultiplied channel.
// src is given in the range [0, 1].
func blend(dst uint8, src, keep float32) uint8 {
	v := src*255 + float32(dst)*keep
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func toRGBA64(c color.Color) color.RGBA64 {
	if c == nil {
		return color.RGBA64{}
	}
	return color.RGBA64Model.Convert(c).(color.RGBA64)
}
