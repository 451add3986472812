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

var citationCases = []Case{
	// ========================================
	// Target panel: one layer per status
	// ========================================
	{
		Name: "verified_single",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1,
			Panel: scene.PanelTarget,
			Layers: []scene.Layer{
				statusLayer(overlay.StatusVerified, box("c1", 0.1, 0.2, 0.3, 0.05)),
			},
		},
	},
	{
		Name: "verified_zoomed",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1.5,
			Panel: scene.PanelTarget,
			Layers: []scene.Layer{
				statusLayer(overlay.StatusVerified, box("c1", 0.1, 0.2, 0.3, 0.05)),
			},
		},
	},
	{
		Name: "mismatch_paragraph",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1.25,
			Panel: scene.PanelTarget,
			Layers: []scene.Layer{
				statusLayer(overlay.StatusMismatch, textLines("m", 0.31, 4)...),
			},
		},
	},
	{
		Name: "section_not_found",
		Scene: &scene.Scene{
			Page:  a4,
			Scale: 1,
			Panel: scene.PanelTarget,
			Layers: []scene.Layer{
				statusLayer(overlay.StatusSectionNotFound, box("s1", 0.08, 0.62, 0.84, 0.03)),
			},
		},
	},
	{
		Name: "pending_and_unavailable",
		Scene: &scene.Scene{
			Page:  letter,
			Scale: 1,
			Panel: scene.PanelTarget,
			Layers: []scene.Layer{
				statusLayer(overlay.StatusPending, box("p1", 0.1, 0.1, 0.5, 0.02)),
				statusLayer(overlay.StatusActUnavailable, box("u1", 0.1, 0.15, 0.5, 0.02)),
			},
		},
	},
	{
		Name: "all_statuses",
		Scene: &scene.Scene{
			Page:      letter,
			Scale:     1,
			Panel:     scene.PanelTarget,
			PageColor: "#ffffff",
			Layers: []scene.Layer{
				statusLayer(overlay.StatusVerified, textLines("v", 0.1, 3)...),
				statusLayer(overlay.StatusMismatch, textLines("m", 0.3, 2)...),
				statusLayer(overlay.StatusSectionNotFound, textLines("s", 0.5, 2)...),
				statusLayer(overlay.StatusPending, textLines("p", 0.7, 1)...),
			},
		},
	},

	// ========================================
	// Source panel: always the source colours
	// ========================================
	{
		Name: "source_excerpt",
		Scene: &scene.Scene{
			Page:      letter,
			Scale:     1,
			Panel:     scene.PanelSource,
			PageColor: "#ffffff",
			Layers: []scene.Layer{
				statusLayer(overlay.StatusMismatch, textLines("x", 0.42, 3)...),
			},
		},
	},
	{
		Name: "source_zoomed_out",
		Scene: &scene.Scene{
			Page:  a4,
			Scale: 0.5,
			Panel: scene.PanelSource,
			Layers: []scene.Layer{
				statusLayer(overlay.StatusVerified, box("x1", 0.2, 0.2, 0.6, 0.1)),
			},
		},
	},
}
