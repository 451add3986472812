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

// Command export writes the highlight test cases as scene files, for use
// with the overlay command line tool.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/overlay/internal/scene"
	"seehuhn.de/go/overlay/testcases"
)

const sceneDir = "testdata/scenes"

func main() {
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name

			sc := *tc.Scene
			sc.Name = name
			if err := scene.WriteFile(filepath.Join(sceneDir, name+".yaml"), &sc); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}
