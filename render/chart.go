package render

import (
	"image"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	mandel "github.com/timelessnesses/mandelbrot.png"
)

// Chrome is the decoration drawn around the plot area.
type Chrome struct {
	Caption   string
	Margin    int
	LabelArea int // minimum height of the x labels and width of the y labels
	Axes      bool
}

const (
	tickLen    = 3
	captionGap = 4
	labelGap   = 2
	tickTarget = 5
)

var face = basicfont.Face7x13

// Decorate reserves the margin, caption and axis label areas, shrinking the
// plot area, and draws the caption and axes. Call it before plotting points.
func (c *Canvas) Decorate(ch Chrome) {
	area := c.img.Bounds().Inset(ch.Margin)
	m := face.Metrics()
	ascent, height := m.Ascent.Ceil(), m.Height.Ceil()

	if ch.Caption != "" {
		w := font.MeasureString(face, ch.Caption).Ceil()
		c.drawText(area.Min.X+(area.Dx()-w)/2, area.Min.Y+ascent, ch.Caption)
		area.Min.Y += height + captionGap
	}

	var xTicks, yTicks []float64
	if ch.Axes {
		xTicks = ticks(c.region.Xmin, c.region.Xmax)
		yTicks = ticks(c.region.Ymin, c.region.Ymax)

		yArea := ch.LabelArea
		for _, v := range yTicks {
			yArea = max(yArea, font.MeasureString(face, tickLabel(v, yTicks)).Ceil()+tickLen+labelGap)
		}
		xArea := max(ch.LabelArea, height+tickLen+labelGap)

		area.Min.X += yArea
		area.Max.Y -= xArea
	}

	if area.Min.X >= area.Max.X || area.Min.Y >= area.Max.Y {
		c.plot = image.Rectangle{Min: area.Min, Max: area.Min}
		return
	}
	c.plot = area

	if ch.Axes {
		c.drawAxes(xTicks, yTicks, ascent)
	}
}

// drawAxes draws the axis lines just outside the plot area, with ticks and labels.
func (c *Canvas) drawAxes(xTicks, yTicks []float64, ascent int) {
	left, bottom := c.plot.Min.X-1, c.plot.Max.Y
	c.hline(left, c.plot.Max.X, bottom)
	c.vline(left, c.plot.Min.Y, bottom+1)

	for _, v := range xTicks {
		x, _ := c.project(pointAt(v, c.region.Ymin))
		c.vline(x, bottom, bottom+tickLen+1)
		label := tickLabel(v, xTicks)
		w := font.MeasureString(face, label).Ceil()
		c.drawText(x-w/2, bottom+tickLen+labelGap+ascent, label)
	}
	for _, v := range yTicks {
		_, y := c.project(pointAt(c.region.Xmin, v))
		c.hline(left-tickLen, left, y)
		label := tickLabel(v, yTicks)
		w := font.MeasureString(face, label).Ceil()
		c.drawText(left-tickLen-labelGap-w, y+ascent/2, label)
	}
}

func pointAt(re, im float64) mandel.Point { return mandel.Point{Re: re, Im: im} }

func (c *Canvas) hline(x0, x1, y int) {
	for x := x0; x < x1; x++ {
		c.img.SetColorIndex(x, y, fgIndex)
	}
}

func (c *Canvas) vline(x, y0, y1 int) {
	for y := y0; y < y1; y++ {
		c.img.SetColorIndex(x, y, fgIndex)
	}
}

// drawText draws s with its baseline starting at (x, y).
func (c *Canvas) drawText(x, y int, s string) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.fg),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// ticks returns round values in [lo, hi], about tickTarget of them.
func ticks(lo, hi float64) []float64 {
	step := niceStep((hi - lo) / tickTarget)
	if step <= 0 || math.IsInf(step, 0) || math.IsNaN(step) {
		return nil
	}
	var vals []float64
	for k := math.Ceil(lo / step); k*step <= hi; k++ {
		vals = append(vals, k*step)
	}
	return vals
}

// niceStep rounds raw up to 1, 2 or 5 times a power of ten.
func niceStep(raw float64) float64 {
	p := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, f := range []float64{1, 2, 5, 10} {
		if raw <= f*p {
			return f * p
		}
	}
	return 10 * p
}

// tickLabel formats v with as many decimals as the tick spacing needs.
func tickLabel(v float64, all []float64) string {
	decimals := 0
	if len(all) > 1 {
		step := all[1] - all[0]
		decimals = max(0, int(math.Ceil(-math.Log10(step)-1e-9)))
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
