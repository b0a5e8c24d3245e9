package mandel

// Grid is a regular sampling of a Region.
// Points are stored row-major: rows by increasing imaginary part,
// each row by increasing real part.
type Grid struct {
	Rows, Cols int
	Points     []complex128
}

// At returns the sample at row i, column j.
func (g Grid) At(i, j int) complex128 {
	return g.Points[i*g.Cols+j]
}

// Row returns the samples of row i. The slice aliases the grid.
func (g Grid) Row(i int) []complex128 {
	return g.Points[i*g.Cols : (i+1)*g.Cols]
}

// Len is the number of samples in the grid.
func (g Grid) Len() int { return len(g.Points) }

// Sample builds the grid of complex numbers covering r at the given density.
// An axis whose sample count truncates to zero yields an empty grid.
// Callers must pass a well-formed region and a non-negative density.
func Sample(r Region, d Density) Grid {
	re := linspace(r.Xmin, r.Xmax, samples(r.Width(), d))
	im := linspace(r.Ymin, r.Ymax, samples(r.Height(), d))

	g := Grid{
		Rows:   len(im),
		Cols:   len(re),
		Points: make([]complex128, 0, len(im)*len(re)),
	}
	for _, y := range im {
		for _, x := range re {
			g.Points = append(g.Points, complex(x, y))
		}
	}
	return g
}

// samples is the number of samples along an axis of the given length.
func samples(length float64, d Density) int {
	n := length * float64(d)
	if n < 1 {
		return 0
	}
	return int(n)
}

// linspace returns n evenly spaced values over [lo, hi].
// Both endpoints are exact; a single sample holds lo.
func linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	vals := make([]float64, n)
	if n == 1 {
		vals[0] = lo
		return vals
	}
	step := (hi - lo) / float64(n-1)
	for i := range n - 1 {
		vals[i] = lo + float64(i)*step
	}
	vals[n-1] = hi
	return vals
}
