package main

import (
	"bytes"
	"math/big"
	"testing"

	mandel "github.com/timelessnesses/mandelbrot.png"
)

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, mandel.JuliaOrbit(big.NewInt(1), big.NewInt(2)).WithLimit(4)); err != nil {
		t.Fatalf("run: %v", err)
	}
	if got, want := buf.String(), "1\n3\n11\n123\n"; got != want {
		t.Fatalf("output %q, want %q", got, want)
	}
}

func TestParseInt(t *testing.T) {
	v, err := parseInt("c", "-170141183460469231731687303715884105728")
	if err != nil {
		t.Fatalf("parseInt: %v", err)
	}
	if v.BitLen() != 128 || v.Sign() >= 0 {
		t.Fatalf("parseInt: got %v", v)
	}
	if _, err := parseInt("c", "1.5"); err == nil {
		t.Fatalf("parseInt(1.5): expected error")
	}
}
