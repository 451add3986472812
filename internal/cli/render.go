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
	"image"
	_ "image/jpeg" // background formats
	"image/png"
	"math"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/image/draw"

	"seehuhn.de/go/overlay/canvas"
)

var renderCmd = &cobra.Command{
	Use:   "render <scene>",
	Short: "Render the highlights of a scene to a PNG image",
	Long: `Render paints the highlight layers of a scene file into a PNG image
of the page size at the scene's zoom scale.

If a background image is given, typically the rendered PDF page, it is
scaled to the page size and the highlights are painted on top of it.
Otherwise the areas outside the highlights are transparent.

Example:
  overlay render page3.yaml -o page3.png
  overlay render page3.yaml -o page3.png --background page3-raw.png --scale 2`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "overlay.png", "output PNG path")
	renderCmd.Flags().String("background", "", "page image to draw underneath the highlights")
	renderCmd.Flags().Float64("scale", 0, "zoom scale (default: from the scene file)")

	_ = viper.BindPFlag("render.output", renderCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("render.background", renderCmd.Flags().Lookup("background"))
	_ = viper.BindPFlag("render.scale", renderCmd.Flags().Lookup("scale"))
}

func runRender(cmd *cobra.Command, args []string) error {
	sc, err := loadScene(cmd, args[0])
	if err != nil {
		return err
	}
	if s := viper.GetFloat64("render.scale"); s > 0 {
		sc.Scale = s
	}

	w, h := sc.Size()
	img := canvas.New(int(math.Ceil(w)), int(math.Ceil(h)))
	sc.Draw(img)

	out := img.RGBA
	if name := viper.GetString("render.background"); name != "" {
		bg, err := readImage(name)
		if err != nil {
			return err
		}
		page := canvas.New(out.Rect.Dx(), out.Rect.Dy())
		page.Background(bg)
		draw.Draw(page.RGBA, page.RGBA.Bounds(), out, image.Point{}, draw.Over)
		out = page.RGBA
	}

	name := viper.GetString("render.output")
	if err := writePNG(name, out); err != nil {
		return err
	}
	if viper.GetBool("verbose") {
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s (%dx%d)\n", name, out.Rect.Dx(), out.Rect.Dy())
	}
	return nil
}

func readImage(name string) (image.Image, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return img, nil
}

func writePNG(name string, img image.Image) (err error) {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := fd.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", name, closeErr)
		}
	}()

	if err := png.Encode(fd, img); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
