package mandel

// PointRenderer draws stable points onto an image and writes it out.
// Points are given in the same coordinate system as the sampled region.
// A nil error means the image was durably written.
type PointRenderer interface {
	DrawPoints(r Region, points []Point) error
}

// Plot samples cfg's region, classifies every sample and hands the stable
// points to pr. It returns the number of stable points drawn.
func Plot(cfg *Config, pr PointRenderer) (int, error) {
	grid := Sample(cfg.Region, cfg.Density)
	points := CollectStable(grid, cfg.Iterations)
	if err := pr.DrawPoints(cfg.Region, points); err != nil {
		return 0, err
	}
	return len(points), nil
}
