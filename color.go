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

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// Colors is the visual style of a highlight.
// Background is drawn translucently, Border is drawn opaque.
type Colors struct {
	Background color.NRGBA
	Border     color.NRGBA
}

// Hex returns the background and border colours in #rrggbb form.
// Alpha is not included.
func (c Colors) Hex() (background, border string) {
	return hexString(c.Background), hexString(c.Border)
}

// Fill returns the background colour with its alpha set from opacity.
// Opacity is clamped to [0, 1].
func (c Colors) Fill(opacity float64) color.NRGBA {
	opacity = max(0, min(1, opacity))
	if math.IsNaN(opacity) {
		opacity = 0
	}
	fill := c.Background
	fill.A = uint8(math.Round(opacity * 255))
	return fill
}

// PaletteEntry names one of the fixed highlight styles.
type PaletteEntry int

// The palette entries.
const (
	// PaletteSource marks the claimed text in the source document.
	// Citations and the source panel of the split view use it.
	PaletteSource PaletteEntry = iota

	// PaletteVerified marks confirmed citations and entities.
	PaletteVerified

	// PaletteMismatch marks citations whose text does not match the
	// target, and contradictions.
	PaletteMismatch

	// PaletteSectionNotFound marks citations whose section could not be
	// located in the target document.
	PaletteSectionNotFound

	numPaletteEntries
)

// palette is initialised once and never modified.
// Lookup returns copies, so callers cannot change it.
var palette = [numPaletteEntries]Colors{
	PaletteSource:          mustColors("#fde047", "#ca8a04"),
	PaletteVerified:        mustColors("#93c5fd", "#2563eb"),
	PaletteMismatch:        mustColors("#fca5a5", "#dc2626"),
	PaletteSectionNotFound: mustColors("#fdba74", "#ea580c"),
}

// Lookup returns the colours of a palette entry.
// Out-of-range entries give the source colours.
func Lookup(e PaletteEntry) Colors {
	if e < 0 || e >= numPaletteEntries {
		e = PaletteSource
	}
	return palette[e]
}

// StatusColors returns the highlight colours for a citation with the given
// verification status.
//
// The source panel of the split view always uses the source colours: the
// source excerpt is what was claimed, its accuracy is not being judged.
// Pending, act_unavailable and unknown states have no completed judgment
// and use the verified colours.
func StatusColors(status Status, sourcePanel bool) Colors {
	if sourcePanel {
		return palette[PaletteSource]
	}
	switch status {
	case StatusVerified:
		return palette[PaletteVerified]
	case StatusMismatch:
		return palette[PaletteMismatch]
	case StatusSectionNotFound:
		return palette[PaletteSectionNotFound]
	case StatusPending, StatusActUnavailable:
		// colour for these is still an open product decision, see DESIGN.md
		return palette[PaletteVerified]
	default:
		return palette[PaletteVerified]
	}
}

// KindColors returns the highlight colours for a highlight category.
// Unknown categories use the source colours.
func KindColors(kind Kind) Colors {
	switch kind {
	case KindCitation:
		return palette[PaletteSource]
	case KindEntity:
		return palette[PaletteVerified]
	case KindContradiction:
		return palette[PaletteMismatch]
	default:
		return palette[PaletteSource]
	}
}

// ParseHex parses a colour given as "#rgb" or "#rrggbb".
// The leading '#' is optional. The result is opaque.
func ParseHex(s string) (color.NRGBA, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}

	var r, g, b uint64
	var err error
	switch len(h) {
	case 3:
		var v uint64
		v, err = strconv.ParseUint(h, 16, 16)
		r = (v >> 8 & 0xf) * 0x11
		g = (v >> 4 & 0xf) * 0x11
		b = (v & 0xf) * 0x11
	case 6:
		var v uint64
		v, err = strconv.ParseUint(h, 16, 32)
		r = v >> 16 & 0xff
		g = v >> 8 & 0xff
		b = v & 0xff
	default:
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: need 3 or 6 hex digits", s)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}

func mustColors(background, border string) Colors {
	bg, err := ParseHex(background)
	if err != nil {
		panic(err)
	}
	bd, err := ParseHex(border)
	if err != nil {
		panic(err)
	}
	return Colors{Background: bg, Border: bd}
}

func hexString(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
