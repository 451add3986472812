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

// Command genpdf generates coverage reference images for the highlight
// test cases. It draws each scene into a PDF page, white on black, and
// renders the PDF to a grayscale PNG using Ghostscript.
package main

import (
	"fmt"
	"image/color"
	"maps"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/overlay"
	"seehuhn.de/go/overlay/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(pdfPath, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.Case, pdfPath string) error {
	w, h := tc.Scene.Size()
	w, h = math.Ceil(w), math.Ceil(h)

	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{URx: w, URy: h}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; scenes use top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, h})
	page.SetLineJoin(graphics.LineJoinMiter)
	page.SetMiterLimit(10)

	tc.Scene.Draw(&maskSurface{page: page, cur: maskState{width: 1}})

	return page.Close()
}

// maskSurface draws the coverage of highlights onto a PDF page: covered
// areas are white, everything else is black.
//
// Translucent fills and all strokes are drawn in white regardless of
// their colour. Opaque fills are page backgrounds and, like cleared areas,
// are painted black. Save and Restore track the line width and fill
// colour only.
type maskSurface struct {
	page  *document.Page
	cur   maskState
	saved []maskState
}

type maskState struct {
	width  float64
	opaque bool
}

func (s *maskSurface) Save() {
	s.saved = append(s.saved, s.cur)
}

func (s *maskSurface) Restore() {
	if n := len(s.saved); n > 0 {
		s.cur = s.saved[n-1]
		s.saved = s.saved[:n-1]
		s.page.SetLineWidth(s.cur.width)
	}
}

func (s *maskSurface) SetFillColor(c color.Color) {
	_, _, _, a := c.RGBA()
	s.cur.opaque = a == 0xffff
}

func (s *maskSurface) SetStrokeColor(color.Color) {}

func (s *maskSurface) SetLineWidth(w float64) {
	s.cur.width = w
	s.page.SetLineWidth(w)
}

func (s *maskSurface) FillRect(r overlay.Rect) {
	if s.cur.opaque {
		s.ClearRect(r)
		return
	}
	s.page.SetFillColor(pdfcolor.DeviceGray(1))
	s.page.Rectangle(r.X, r.Y, r.Width, r.Height)
	s.page.Fill()
}

func (s *maskSurface) StrokeRect(r overlay.Rect) {
	s.page.SetStrokeColor(pdfcolor.DeviceGray(1))
	s.page.Rectangle(r.X, r.Y, r.Width, r.Height)
	s.page.Stroke()
}

func (s *maskSurface) ClearRect(r overlay.Rect) {
	s.page.SetFillColor(pdfcolor.DeviceGray(0))
	s.page.Rectangle(r.X, r.Y, r.Width, r.Height)
	s.page.Fill()
}

func renderPNG(pdfPath, pngPath string) error {
	// -sDEVICE=pnggray: 8-bit grayscale coverage
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
