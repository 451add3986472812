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

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var hitCmd = &cobra.Command{
	Use:   "hit <scene> <x> <y>",
	Short: "Find the highlight under a point",
	Long: `Hit prints the topmost highlight containing the given point, as
"layer L box B" followed by the box ID. The point is given in device
pixels at the scene's zoom scale. If no highlight contains the point,
"none" is printed.

Example:
  overlay hit page3.yaml 120.5 310`,
	Args: cobra.ExactArgs(3),
	RunE: runHit,
}

func init() {
	rootCmd.AddCommand(hitCmd)
}

func runHit(cmd *cobra.Command, args []string) error {
	x, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid x coordinate %q: %w", args[1], err)
	}
	y, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid y coordinate %q: %w", args[2], err)
	}

	sc, err := loadScene(cmd, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	layer, box, ok := sc.Hit(x, y)
	if !ok {
		fmt.Fprintln(out, "none")
		return nil
	}
	fmt.Fprintf(out, "layer %d box %d %q\n", layer, box, sc.Layers[layer].Boxes[box].ID)
	return nil
}
