package mandel

import (
	"errors"
	"testing"
)

type recordingRenderer struct {
	region Region
	points []Point
	err    error
}

func (r *recordingRenderer) DrawPoints(region Region, points []Point) error {
	r.region = region
	r.points = points
	return r.err
}

func TestPlot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 10

	rr := &recordingRenderer{}
	n, err := Plot(cfg, rr)
	if err != nil {
		t.Fatalf("Plot: %v", err)
	}
	if rr.region != FullSet {
		t.Fatalf("renderer got region %+v", rr.region)
	}
	if n != len(rr.points) || n == 0 {
		t.Fatalf("Plot returned %d, renderer got %d points", n, len(rr.points))
	}
}

func TestPlot_RenderError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Density = 2

	want := errors.New("disk full")
	if _, err := Plot(cfg, &recordingRenderer{err: want}); !errors.Is(err, want) {
		t.Fatalf("Plot error = %v, want %v", err, want)
	}
}
