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

var entityCases = []Case{
	{
		Name: "names_and_dates",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1,
			Layers: []scene.Layer{
				kindLayer(overlay.KindEntity,
					box("e1", 0.15, 0.21, 0.12, 0.014),
					box("e2", 0.55, 0.21, 0.08, 0.014),
					box("e3", 0.31, 0.265, 0.2, 0.014),
				),
			},
		},
	},
	{
		Name: "entities_over_citation",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 2,
			Layers: []scene.Layer{
				kindLayer(overlay.KindCitation, textLines("c", 0.4, 3)...),
				kindLayer(overlay.KindEntity,
					box("e1", 0.2, 0.4, 0.1, 0.014),
					box("e2", 0.5, 0.418, 0.15, 0.014),
				),
			},
		},
	},
}

var contradictionCases = []Case{
	{
		Name: "two_passages",
		Scene: &scene.Scene{
			Page:      a4,
			Scale:     1,
			PageColor: "#fafafa",
			Layers: []scene.Layer{
				kindLayer(overlay.KindContradiction, textLines("a", 0.18, 2)...),
				kindLayer(overlay.KindContradiction, textLines("b", 0.66, 3)...),
			},
		},
	},
	{
		Name: "against_entities",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1.5,
			Layers: []scene.Layer{
				kindLayer(overlay.KindEntity, box("e1", 0.3, 0.5, 0.1, 0.014)),
				kindLayer(overlay.KindContradiction, box("k1", 0.12, 0.495, 0.76, 0.024)),
			},
		},
	},
}
