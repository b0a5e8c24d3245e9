package mandel

import (
	"iter"
	"math/big"
)

// OrbitConfig describes the integer recurrence z(n+1) = z(n)^2 + C starting at Z0.
// Nil seeds count as zero. Limit caps the number of terms produced; zero means unbounded.
type OrbitConfig struct {
	Z0    *big.Int
	C     *big.Int
	Limit int
}

// Orbit is a pull-based generator over an arbitrary-precision orbit.
// Unbounded orbits never end: use Take instead of collecting All.
type Orbit struct {
	z, c      *big.Int
	remaining int
	bounded   bool
}

// NewOrbit builds the generator described by cfg. The seeds are copied.
func NewOrbit(cfg OrbitConfig) *Orbit {
	return &Orbit{
		z:         seed(cfg.Z0),
		c:         seed(cfg.C),
		remaining: cfg.Limit,
		bounded:   cfg.Limit > 0,
	}
}

func seed(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v)
}

// MandelbrotOrbit starts at zero and adds c on every step.
func MandelbrotOrbit(c *big.Int) *Orbit {
	return NewOrbit(OrbitConfig{C: c})
}

// JuliaOrbit starts at c and adds p on every step.
func JuliaOrbit(c, p *big.Int) *Orbit {
	return NewOrbit(OrbitConfig{Z0: c, C: p})
}

// WithLimit caps o to at most n further terms. n <= 0 makes o unbounded.
func (o *Orbit) WithLimit(n int) *Orbit {
	o.remaining = n
	o.bounded = n > 0
	return o
}

// Bounded reports whether o ends after a finite number of terms.
func (o *Orbit) Bounded() bool { return o.bounded }

// Next returns the current term and advances the orbit.
// ok is false once a bounded orbit is exhausted.
func (o *Orbit) Next() (term *big.Int, ok bool) {
	if o.bounded {
		if o.remaining == 0 {
			return nil, false
		}
		o.remaining--
	}
	term = new(big.Int).Set(o.z)
	o.z.Mul(o.z, o.z).Add(o.z, o.c)
	return term, true
}

// All yields the remaining terms of o.
func (o *Orbit) All() iter.Seq[*big.Int] {
	return func(yield func(*big.Int) bool) {
		for {
			term, ok := o.Next()
			if !ok || !yield(term) {
				return
			}
		}
	}
}

// Take returns at most n further terms.
func (o *Orbit) Take(n int) []*big.Int {
	terms := make([]*big.Int, 0, max(n, 0))
	for len(terms) < n {
		term, ok := o.Next()
		if !ok {
			break
		}
		terms = append(terms, term)
	}
	return terms
}
