package mandel

// Region within the complex plane, Xmin < Xmax and Ymin < Ymax.
type Region struct {
	Xmin float64 `yaml:"xmin" json:"xmin"`
	Xmax float64 `yaml:"xmax" json:"xmax"`
	Ymin float64 `yaml:"ymin" json:"ymin"`
	Ymax float64 `yaml:"ymax" json:"ymax"`
}

// Width is the length of the region along the real axis.
func (r Region) Width() float64 { return r.Xmax - r.Xmin }

// Height is the length of the region along the imaginary axis.
func (r Region) Height() float64 { return r.Ymax - r.Ymin }

// Contains reports whether p lies inside r, bounds included.
func (r Region) Contains(p Point) bool {
	return p.Re >= r.Xmin && p.Re <= r.Xmax && p.Im >= r.Ymin && p.Im <= r.Ymax
}

// Density is the number of samples per unit length along each axis.
type Density int

// Point is a sampled complex number as a (re, im) pair.
type Point struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// FullSet covers the whole set, it's what the plot command renders by default.
var FullSet = Region{
	Xmin: -2.0,
	Xmax: 0.5,
	Ymin: -1.5,
	Ymax: 1.5,
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}
)

// Presets maps region names usable in config files to their regions.
var Presets = map[string]Region{
	"full":            FullSet,
	"seahorse-valley": SeahorseValley,
	"elephant-valley": ElephantValley,
	"spiral-minibrot": SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
}
