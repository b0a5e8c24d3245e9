// Package render rasterizes stable points into PNG images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	mandel "github.com/timelessnesses/mandelbrot.png"
)

// Canvas is a two-colour raster with a plot area mapped onto a region of the
// complex plane. The real axis grows to the right, the imaginary axis upwards.
type Canvas struct {
	img    *image.Paletted
	plot   image.Rectangle
	region mandel.Region
	fg     color.Color
	radius int
}

const (
	bgIndex = 0
	fgIndex = 1
)

// NewCanvas returns a w×h canvas filled with bg. The plot area covers the
// whole canvas until Decorate reserves room around it.
func NewCanvas(w, h int, region mandel.Region, bg, fg color.Color, radius int) *Canvas {
	// Paletted keeps a 20000×20000 plot at one byte per pixel; index 0 is bg.
	img := image.NewPaletted(image.Rect(0, 0, w, h), color.Palette{bg, fg})
	return &Canvas{img: img, plot: img.Bounds(), region: region, fg: fg, radius: radius}
}

// Image returns the underlying raster.
func (c *Canvas) Image() image.Image { return c.img }

// PlotRect is the part of the canvas the region is mapped onto.
func (c *Canvas) PlotRect() image.Rectangle { return c.plot }

// PixelOf maps p into the plot area. ok is false for points outside the region.
func (c *Canvas) PixelOf(p mandel.Point) (x, y int, ok bool) {
	if !c.region.Contains(p) || c.plot.Empty() {
		return 0, 0, false
	}
	x, y = c.project(p)
	return x, y, true
}

func (c *Canvas) project(p mandel.Point) (x, y int) {
	fx := (p.Re - c.region.Xmin) / c.region.Width() * float64(c.plot.Dx()-1)
	fy := (c.region.Ymax - p.Im) / c.region.Height() * float64(c.plot.Dy()-1)
	return c.plot.Min.X + int(math.Round(fx)), c.plot.Min.Y + int(math.Round(fy))
}

// Plot draws a filled disc marker at p.
func (c *Canvas) Plot(p mandel.Point) {
	cx, cy, ok := c.PixelOf(p)
	if !ok {
		return
	}
	r := c.radius
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			// SetColorIndex ignores pixels outside the bounds.
			c.img.SetColorIndex(cx+dx, cy+dy, fgIndex)
		}
	}
}

// PlotAll draws a marker for every point.
func (c *Canvas) PlotAll(points []mandel.Point) {
	for _, p := range points {
		c.Plot(p)
	}
}

// Encode writes the canvas as PNG.
func (c *Canvas) Encode(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Style describes how points are drawn.
type Style struct {
	Width, Height int
	Background    color.Color
	Foreground    color.Color
	MarkerRadius  int
	Chrome        Chrome
}

// Draw returns a decorated canvas with a marker for every point.
func (s Style) Draw(r mandel.Region, points []mandel.Point) *Canvas {
	c := NewCanvas(s.Width, s.Height, r, s.Background, s.Foreground, s.MarkerRadius)
	c.Decorate(s.Chrome)
	c.PlotAll(points)
	return c
}

// StyleFromConfig builds the style described by the output section of a config.
func StyleFromConfig(cfg mandel.OutputConfig) (Style, error) {
	bg, err := mandel.ParseHexColor(cfg.Background)
	if err != nil {
		return Style{}, fmt.Errorf("background: %w", err)
	}
	fg, err := mandel.ParseHexColor(cfg.Foreground)
	if err != nil {
		return Style{}, fmt.Errorf("foreground: %w", err)
	}
	return Style{
		Width:        cfg.Width,
		Height:       cfg.Height,
		Background:   bg,
		Foreground:   fg,
		MarkerRadius: cfg.MarkerRadius,
		Chrome: Chrome{
			Caption:   cfg.Caption,
			Margin:    cfg.Margin,
			LabelArea: cfg.LabelArea,
			Axes:      cfg.Axes,
		},
	}, nil
}

// PNGWriter renders points as PNG into W.
type PNGWriter struct {
	W     io.Writer
	Style Style
}

var _ mandel.PointRenderer = PNGWriter{}

// DrawPoints implements mandel.PointRenderer.
func (pw PNGWriter) DrawPoints(r mandel.Region, points []mandel.Point) error {
	if err := pw.Style.Draw(r, points).Encode(pw.W); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// PNGFile renders points into a PNG file at Path.
type PNGFile struct {
	Path  string
	Style Style
}

var _ mandel.PointRenderer = PNGFile{}

// FromConfig builds the file renderer described by the output section of a config.
func FromConfig(cfg mandel.OutputConfig) (PNGFile, error) {
	s, err := StyleFromConfig(cfg)
	if err != nil {
		return PNGFile{}, err
	}
	return PNGFile{Path: cfg.Path, Style: s}, nil
}

// DrawPoints implements mandel.PointRenderer.
func (f PNGFile) DrawPoints(r mandel.Region, points []mandel.Point) (err error) {
	c := f.Style.Draw(r, points)

	out, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := c.Encode(out); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("failed to flush output file: %w", err)
	}
	return nil
}
