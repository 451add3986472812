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
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/overlay"
)

var errNoHighlights = errors.New("scene has no highlights")

var boundsCmd = &cobra.Command{
	Use:   "bounds <scene>",
	Short: "Print the bounding box of all highlights",
	Long: `Bounds prints the smallest rectangle containing all highlights of a
scene, in device pixels at the scene's zoom scale.

If the size of a viewer window is given, bounds also prints the zoom
scale at which all highlights fit into the window, and the vertical
scroll offset which centres them.

Example:
  overlay bounds page3.yaml
  overlay bounds page3.yaml --view-width 800 --view-height 600 --padding 40`,
	Args: cobra.ExactArgs(1),
	RunE: runBounds,
}

func init() {
	rootCmd.AddCommand(boundsCmd)

	boundsCmd.Flags().Float64("view-width", 0, "width of the viewer window")
	boundsCmd.Flags().Float64("view-height", 0, "height of the viewer window")
	boundsCmd.Flags().Float64("padding", 20, "margin kept around the highlights when fitting")

	_ = viper.BindPFlag("view.width", boundsCmd.Flags().Lookup("view-width"))
	_ = viper.BindPFlag("view.height", boundsCmd.Flags().Lookup("view-height"))
	_ = viper.BindPFlag("view.padding", boundsCmd.Flags().Lookup("padding"))
}

// boundsReport is the output of the bounds command.
type boundsReport struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	FitScale     float64  `yaml:"fit_scale,omitempty"`
	ScrollOffset *float64 `yaml:"scroll_offset,omitempty"`
}

func runBounds(cmd *cobra.Command, args []string) error {
	sc, err := loadScene(cmd, args[0])
	if err != nil {
		return err
	}

	r, ok := sc.Bounds()
	if !ok {
		return fmt.Errorf("%s: %w", args[0], errNoHighlights)
	}
	report := boundsReport{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}

	viewWidth := viper.GetFloat64("view.width")
	viewHeight := viper.GetFloat64("view.height")
	if viewWidth > 0 && viewHeight > 0 {
		report.FitScale = overlay.FitScale(r, sc.Scale, viewWidth, viewHeight,
			viper.GetFloat64("view.padding"))
		_, docHeight := sc.Size()
		offset := overlay.ScrollOffset(r, viewHeight, docHeight)
		report.ScrollOffset = &offset
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("error marshaling bounds: %w", err)
	}
	return enc.Close()
}
