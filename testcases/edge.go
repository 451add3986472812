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

package testcases

import (
	"seehuhn.de/go/overlay"
	"seehuhn.de/go/overlay/internal/scene"
)

// edgeCases exercise unusual but valid input.
var edgeCases = []Case{
	{
		Name: "empty_page",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1,
		},
	},
	{
		Name: "full_page",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1,
			Layers: []scene.Layer{
				statusLayer(overlay.StatusVerified, box("f", 0, 0, 1, 1)),
			},
		},
	},
	{
		Name: "outside_page",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1,
			Layers: []scene.Layer{
				statusLayer(overlay.StatusMismatch,
					box("left", -0.2, 0.5, 0.1, 0.05),
					box("below", 0.5, 1.1, 0.1, 0.05),
					box("straddle", 0.95, 0.3, 0.1, 0.05),
				),
			},
		},
	},
	{
		Name: "zero_area",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1,
			Layers: []scene.Layer{
				kindLayer(overlay.KindEntity,
					box("flat", 0.3, 0.3, 0.2, 0),
					box("thin", 0.3, 0.4, 0, 0.1),
				),
			},
		},
	},
	{
		Name: "max_zoom",
		Scene: &scene.Scene{
			Page:  scene.Page{Width: 100, Height: 80},
			Scale: overlay.MaxScale,
			Layers: []scene.Layer{
				kindLayer(overlay.KindCitation, box("c", 0.25, 0.25, 0.5, 0.5)),
			},
		},
	},
	{
		Name: "min_zoom",
		Scene: &scene.Scene{
			Page:  a4,
			Scale: overlay.MinScale,
			Layers: []scene.Layer{
				kindLayer(overlay.KindContradiction, box("k", 0.1, 0.1, 0.8, 0.3)),
			},
		},
	},
	{
		Name: "unknown_status",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1,
			Layers: []scene.Layer{
				statusLayer(overlay.StatusUnknown, box("u", 0.4, 0.4, 0.2, 0.2)),
			},
		},
	},
	{
		Name: "stacked",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1,
			Layers: []scene.Layer{
				statusLayer(overlay.StatusVerified, box("a", 0.2, 0.2, 0.4, 0.2)),
				statusLayer(overlay.StatusMismatch, box("b", 0.3, 0.25, 0.4, 0.2)),
				kindLayer(overlay.KindEntity, box("c", 0.35, 0.3, 0.1, 0.05)),
			},
		},
	},
}
