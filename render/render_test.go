package render

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	mandel "github.com/timelessnesses/mandelbrot.png"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func isColor(c color.Color, want color.RGBA) bool {
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := want.RGBA()
	return r == wr && g == wg && b == wb && a == wa
}

func TestCanvas_PixelOf(t *testing.T) {
	region := mandel.Region{Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1}
	c := NewCanvas(101, 101, region, white, black, 0)

	tests := []struct {
		p    mandel.Point
		x, y int
	}{
		{mandel.Point{Re: -1, Im: 1}, 0, 0},
		{mandel.Point{Re: 1, Im: -1}, 100, 100},
		{mandel.Point{Re: 0, Im: 0}, 50, 50},
		{mandel.Point{Re: 0.5, Im: 0.5}, 75, 25},
	}
	for _, tt := range tests {
		x, y, ok := c.PixelOf(tt.p)
		if !ok || x != tt.x || y != tt.y {
			t.Fatalf("PixelOf(%+v) = (%d, %d, %v), want (%d, %d)", tt.p, x, y, ok, tt.x, tt.y)
		}
	}
	if _, _, ok := c.PixelOf(mandel.Point{Re: 2, Im: 0}); ok {
		t.Fatalf("PixelOf outside region reported ok")
	}
}

func TestCanvas_PlotMarker(t *testing.T) {
	region := mandel.Region{Xmin: -1, Xmax: 1, Ymin: -1, Ymax: 1}
	c := NewCanvas(21, 21, region, white, black, 1)
	c.Plot(mandel.Point{})

	img := c.Image()
	for _, p := range [][2]int{{10, 10}, {9, 10}, {11, 10}, {10, 9}, {10, 11}} {
		if !isColor(img.At(p[0], p[1]), black) {
			t.Fatalf("pixel %v not drawn", p)
		}
	}
	// radius 1 disc leaves the diagonal neighbours alone
	for _, p := range [][2]int{{9, 9}, {11, 11}, {0, 0}, {12, 10}} {
		if !isColor(img.At(p[0], p[1]), white) {
			t.Fatalf("pixel %v drawn, want background", p)
		}
	}
}

func TestCanvas_PlotAtEdgeIsClipped(t *testing.T) {
	region := mandel.Region{Xmin: 0, Xmax: 1, Ymin: 0, Ymax: 1}
	c := NewCanvas(10, 10, region, white, black, 3)
	c.Plot(mandel.Point{Re: 0, Im: 0})
	if !isColor(c.Image().At(0, 9), black) {
		t.Fatalf("corner marker not drawn")
	}
}

func TestPNGFile_DrawPoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mandelbrot.png")
	f := PNGFile{
		Path: path,
		Style: Style{
			Width:        50,
			Height:       60,
			Background:   white,
			Foreground:   black,
			MarkerRadius: 1,
		},
	}
	cfg := mandel.DefaultConfig()
	cfg.Density = 20

	n, err := mandel.Plot(cfg, f)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if n == 0 {
		t.Fatalf("no stable points drawn")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 60 {
		t.Fatalf("image size %v, want 50x60", b)
	}
	if !isColor(img.At(0, 0), white) {
		t.Fatalf("top left corner %v, want background", img.At(0, 0))
	}

	// The origin is inside the set and well inside the region.
	c := NewCanvas(50, 60, cfg.Region, white, black, 1)
	x, y, _ := c.PixelOf(mandel.Point{})
	if !isColor(img.At(x, y), black) {
		t.Fatalf("pixel at origin (%d, %d) = %v, want foreground", x, y, img.At(x, y))
	}
}

func TestPNGFile_CreateError(t *testing.T) {
	f := PNGFile{
		Path:  filepath.Join(t.TempDir(), "missing", "dir", "out.png"),
		Style: Style{Width: 10, Height: 10, Background: white, Foreground: black},
	}
	if err := f.DrawPoints(mandel.FullSet, nil); err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := mandel.DefaultConfig().Output
	f, err := FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if f.Style.Width != 20000 || f.Path != "mandelbrot.png" || f.Style.MarkerRadius != 1 {
		t.Fatalf("FromConfig: got %+v", f)
	}
	want := Chrome{Caption: "Mandelbrot Set", Margin: 5, LabelArea: 20, Axes: true}
	if f.Style.Chrome != want {
		t.Fatalf("FromConfig chrome: got %+v, want %+v", f.Style.Chrome, want)
	}
	cfg.Foreground = "black"
	if _, err := FromConfig(cfg); err == nil {
		t.Fatalf("FromConfig: expected error for bad colour")
	}
}

func TestPNGWriter_DrawPoints(t *testing.T) {
	var buf bytes.Buffer
	pw := PNGWriter{
		W:     &buf,
		Style: Style{Width: 30, Height: 20, Background: white, Foreground: black},
	}
	if err := pw.DrawPoints(mandel.FullSet, []mandel.Point{{Re: 0, Im: 0}}); err != nil {
		t.Fatalf("DrawPoints: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 20 {
		t.Fatalf("image size %v, want 30x20", b)
	}
}
