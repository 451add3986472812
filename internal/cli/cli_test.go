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
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/overlay"
)

const testScene = `
page: {width: 100, height: 50}
scale: 2
layers:
  - status: verified
    boxes:
      - {id: c1, x: 0.1, y: 0.2, width: 0.3, height: 0.2}
`

// run executes the root command with the given arguments and returns
// what was written to standard output.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fname, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func readPNG(t *testing.T, name string) image.Image {
	t.Helper()
	fd, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer fd.Close()
	img, err := png.Decode(fd)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "overlay "+Version) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRender(t *testing.T) {
	sceneFile := writeFile(t, "scene.yaml", testScene)
	outFile := filepath.Join(t.TempDir(), "out.png")

	_, err := run(t, "render", sceneFile, "-o", outFile, "--scale", "0", "--background", "")
	if err != nil {
		t.Fatal(err)
	}

	img := readPNG(t, outFile)
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("expected 200x100 image, got %v", b)
	}
	border := overlay.StatusColors(overlay.StatusVerified, false).Border
	want := color.NRGBA{R: border.R, G: border.G, B: border.B, A: 255}
	if got := color.NRGBAModel.Convert(img.At(19, 19)); got != want {
		t.Errorf("border pixel: expected %v, got %v", want, got)
	}
	if _, _, _, a := img.At(5, 5).RGBA(); a != 0 {
		t.Errorf("pixel outside the highlights should be transparent")
	}
}

func TestRenderBackground(t *testing.T) {
	sceneFile := writeFile(t, "scene.yaml", testScene)
	dir := t.TempDir()

	bg := image.NewNRGBA(image.Rect(0, 0, 50, 25))
	for i := 0; i < len(bg.Pix); i += 4 {
		bg.Pix[i+1] = 180
		bg.Pix[i+3] = 255
	}
	bgFile := filepath.Join(dir, "page.png")
	fd, err := os.Create(bgFile)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(fd, bg); err != nil {
		t.Fatal(err)
	}
	if err := fd.Close(); err != nil {
		t.Fatal(err)
	}

	outFile := filepath.Join(dir, "out.png")
	_, err = run(t, "render", sceneFile, "-o", outFile, "--scale", "1", "--background", bgFile)
	if err != nil {
		t.Fatal(err)
	}

	img := readPNG(t, outFile)
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("expected 100x50 image, got %v", b)
	}
	want := color.NRGBA{G: 180, A: 255}
	if got := color.NRGBAModel.Convert(img.At(2, 2)); got != want {
		t.Errorf("background pixel: expected %v, got %v", want, got)
	}
}

func TestRenderMissingScene(t *testing.T) {
	_, err := run(t, "render", filepath.Join(t.TempDir(), "missing.yaml"),
		"-o", filepath.Join(t.TempDir(), "out.png"), "--scale", "0", "--background", "")
	if err == nil {
		t.Error("expected error for missing scene file")
	}
}

func TestBounds(t *testing.T) {
	sceneFile := writeFile(t, "scene.yaml", testScene)

	t.Run("plain", func(t *testing.T) {
		out, err := run(t, "bounds", sceneFile, "--view-width", "0", "--view-height", "0")
		if err != nil {
			t.Fatal(err)
		}
		var got boundsReport
		if err := yaml.Unmarshal([]byte(out), &got); err != nil {
			t.Fatal(err)
		}
		want := boundsReport{X: 20, Y: 20, Width: 60, Height: 20}
		if got != want {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("fit", func(t *testing.T) {
		out, err := run(t, "bounds", sceneFile,
			"--view-width", "200", "--view-height", "40", "--padding", "10")
		if err != nil {
			t.Fatal(err)
		}
		var got boundsReport
		if err := yaml.Unmarshal([]byte(out), &got); err != nil {
			t.Fatal(err)
		}
		if got.FitScale != 2 {
			t.Errorf("fit scale: expected 2, got %g", got.FitScale)
		}
		if got.ScrollOffset == nil || *got.ScrollOffset != 10 {
			t.Errorf("scroll offset: expected 10, got %v", got.ScrollOffset)
		}
	})

	t.Run("empty", func(t *testing.T) {
		empty := writeFile(t, "empty.yaml", "page: {width: 10, height: 10}\n")
		_, err := run(t, "bounds", empty, "--view-width", "0", "--view-height", "0")
		if !errors.Is(err, errNoHighlights) {
			t.Errorf("expected errNoHighlights, got %v", err)
		}
	})
}

func TestHit(t *testing.T) {
	sceneFile := writeFile(t, "scene.yaml", testScene)

	cases := []struct {
		x, y string
		want string
	}{
		{"50", "30", "layer 0 box 0 \"c1\"\n"},
		{"20", "20", "layer 0 box 0 \"c1\"\n"},
		{"19.5", "30", "none\n"},
	}
	for _, tc := range cases {
		out, err := run(t, "hit", sceneFile, tc.x, tc.y)
		if err != nil {
			t.Fatal(err)
		}
		if out != tc.want {
			t.Errorf("hit %s %s: expected %q, got %q", tc.x, tc.y, tc.want, out)
		}
	}

	if _, err := run(t, "hit", sceneFile, "left", "3"); err == nil {
		t.Error("expected error for invalid coordinate")
	}
}
