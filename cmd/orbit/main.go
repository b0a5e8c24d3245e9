// orbit prints the terms of the integer recurrence z = z*z + c,
// computed with arbitrary precision.
//
//	orbit -c 1 -n 6            # Mandelbrot orbit: 0 1 2 5 26 677
//	orbit -julia -c 1 -p 2 -n 4  # Julia orbit: 1 3 11 123
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"

	mandel "github.com/timelessnesses/mandelbrot.png"
)

func main() {
	cFlag := flag.String("c", "0", "orbit parameter (addend for Mandelbrot, start value for Julia), any size")
	pFlag := flag.String("p", "0", "Julia addend, any size")
	julia := flag.Bool("julia", false, "start at c and add p instead of starting at 0")
	n := flag.Int("n", 10, "number of terms to print")
	flag.Parse()

	if *n <= 0 {
		log.Fatalf("run: -n must be positive, got %d", *n)
	}

	c, err := parseInt("c", *cFlag)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	p, err := parseInt("p", *pFlag)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	o := mandel.MandelbrotOrbit(c)
	if *julia {
		o = mandel.JuliaOrbit(c, p)
	}
	if err := run(os.Stdout, o.WithLimit(*n)); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func parseInt(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("-%s: %q is not an integer", name, s)
	}
	return v, nil
}

func run(w io.Writer, o *mandel.Orbit) error {
	bw := bufio.NewWriter(w)
	for term := range o.All() {
		if _, err := fmt.Fprintln(bw, term); err != nil {
			return err
		}
	}
	return bw.Flush()
}
