package model

import (
	"errors"
	"math"
	"testing"
)

func TestEvaluateFinite(t *testing.T) {
	for _, typ := range Types() {
		for _, param := range []float64{0.5, 1, 5, 100} {
			fn, err := Func(typ, param)
			if err != nil {
				t.Fatalf("Func(%v, %v) error = %v", typ, param, err)
			}
			for ti := 0.0; ti <= 10; ti += 0.37 {
				v := fn(ti)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%v(param=%v) at t=%v is not finite: %v", typ, param, ti, v)
				}
			}
		}
	}
}

func TestSineValues(t *testing.T) {
	v, err := Evaluate(TypeSine, 0, 1)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if v != 0 {
		t.Fatalf("sine at t=0: got %v want 0", v)
	}

	v, err = Evaluate(TypeSine, 0.25, 1)
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if diff := v - 1; diff < -1e-12 || diff > 1e-12 {
		t.Fatalf("sine at quarter period: got %v want 1", v)
	}
}

func TestTrianglePeriodicity(t *testing.T) {
	const param = 2.0 // period 0.5
	fn, err := Func(TypeTriangle, param)
	if err != nil {
		t.Fatalf("Func() error = %v", err)
	}

	for ti := 0.0; ti < 1; ti += 0.05 {
		a := fn(ti)
		b := fn(ti + 1/param)
		if diff := a - b; diff < -1e-9 || diff > 1e-9 {
			t.Fatalf("triangle not periodic at t=%v: %v != %v", ti, a, b)
		}
	}
}

func TestTriangleRange(t *testing.T) {
	fn, err := Func(TypeTriangle, 1)
	if err != nil {
		t.Fatalf("Func() error = %v", err)
	}

	if got := fn(0); got != -1 {
		t.Fatalf("triangle at t=0: got %v want -1", got)
	}
	if got := fn(0.5); got != 1 {
		t.Fatalf("triangle at half period: got %v want 1", got)
	}
	for ti := 0.0; ti <= 3; ti += 0.01 {
		v := fn(ti)
		if v < -1-1e-12 || v > 1+1e-12 {
			t.Fatalf("triangle at t=%v out of [-1, 1]: %v", ti, v)
		}
	}
}

func TestExponentialDecay(t *testing.T) {
	fn, err := Func(TypeExponential, 2)
	if err != nil {
		t.Fatalf("Func() error = %v", err)
	}

	if got := fn(0); got != 1 {
		t.Fatalf("exponential at t=0: got %v want 1", got)
	}

	prev := fn(0)
	for ti := 0.1; ti <= 5; ti += 0.1 {
		v := fn(ti)
		if v >= prev {
			t.Fatalf("exponential not decreasing at t=%v: %v >= %v", ti, v, prev)
		}
		if v < 0 {
			t.Fatalf("exponential negative at t=%v: %v", ti, v)
		}
		prev = v
	}

	if v := fn(100); v > 1e-12 {
		t.Fatalf("exponential tail too large: %v", v)
	}
}

func TestUnknownType(t *testing.T) {
	if _, err := Func(Type(99), 1); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("Func(Type(99)) error = %v, want ErrUnknownType", err)
	}
	if _, err := ParseType("square"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("ParseType(square) error = %v, want ErrUnknownType", err)
	}
}

func TestInvalidParam(t *testing.T) {
	for _, param := range []float64{0, -1} {
		if _, err := Func(TypeSine, param); !errors.Is(err, ErrInvalidParam) {
			t.Fatalf("Func(param=%v) error = %v, want ErrInvalidParam", param, err)
		}
	}
}

func TestEvaluateAll(t *testing.T) {
	times := []float64{0, 0.25, 0.5, 0.75}
	out, err := EvaluateAll(TypeSine, times, 1)
	if err != nil {
		t.Fatalf("EvaluateAll() error = %v", err)
	}
	if len(out) != len(times) {
		t.Fatalf("len = %d, want %d", len(out), len(times))
	}
	for i, ti := range times {
		want := math.Sin(2 * math.Pi * ti)
		if out[i] != want {
			t.Fatalf("out[%d]=%v, want %v", i, out[i], want)
		}
	}
}

func TestParseTypeRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		got, err := ParseType(typ.String())
		if err != nil {
			t.Fatalf("ParseType(%q) error = %v", typ.String(), err)
		}
		if got != typ {
			t.Fatalf("ParseType(%q) = %v, want %v", typ.String(), got, typ)
		}
	}
}
