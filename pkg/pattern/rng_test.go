package pattern

import "testing"

func TestNextFormula(t *testing.T) {
	// (1664525·1234 + 1013904223) mod 982451497, computed literally.
	r := NewRNG(1234)
	if got := r.Next(); got != 120573582 {
		t.Errorf("Next() = %d, want 120573582", got)
	}

	// Continue the sequence to pin state advancement.
	want := []int64{616321122, 199173394, 867437926, 513243862}
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Errorf("Next()[%d] = %d, want %d", i+1, got, w)
		}
	}
}

func TestSeedNormalization(t *testing.T) {
	// Arbitrary int64 seeds reduce into [0, modulus) without changing the
	// generated sequence for congruent seeds.
	a := NewRNG(42)
	b := NewRNG(42 + rngModulus)
	c := NewRNG(42 - 3*rngModulus)
	for i := 0; i < 10; i++ {
		va, vb, vc := a.Next(), b.Next(), c.Next()
		if va != vb || va != vc {
			t.Fatalf("draw %d: congruent seeds diverged: %d %d %d", i, va, vb, vc)
		}
	}
}

func TestIntnDegenerate(t *testing.T) {
	r := NewRNG(1)
	if got := r.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
	if got := r.Intn(-5); got != 0 {
		t.Errorf("Intn(-5) = %d, want 0", got)
	}

	// Degenerate spreads must not consume a draw.
	before := NewRNG(1)
	before.Intn(0)
	after := NewRNG(1)
	if before.Next() != after.Next() {
		t.Error("Intn(0) consumed a draw")
	}
}

func TestIntnBounds(t *testing.T) {
	r := NewRNG(99)
	for i := 0; i < 1000; i++ {
		if got := r.Intn(7); got < 0 || got >= 7 {
			t.Fatalf("Intn(7) = %d, out of [0,7)", got)
		}
	}
}

func TestRangeInclusive(t *testing.T) {
	r := NewRNG(5)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Range(3, 6)
		if v < 3 || v > 6 {
			t.Fatalf("Range(3,6) = %d, out of bounds", v)
		}
		seen[v] = true
	}
	for v := 3; v <= 6; v++ {
		if !seen[v] {
			t.Errorf("Range(3,6) never produced %d", v)
		}
	}
}

func TestFloat(t *testing.T) {
	r := NewRNG(8)
	for i := 0; i < 1000; i++ {
		if f := r.Float(); f < 0 || f >= 1 {
			t.Fatalf("Float() = %v, out of [0,1)", f)
		}
	}

	r = NewRNG(8)
	for i := 0; i < 100; i++ {
		f := r.FloatRange(-2.5, 2.5)
		if f < -2.5 || f >= 2.5 {
			t.Fatalf("FloatRange(-2.5,2.5) = %v, out of bounds", f)
		}
	}
}

func TestPick(t *testing.T) {
	r := NewRNG(3)

	if v, ok := Pick(r, []string(nil)); ok || v != "" {
		t.Errorf("Pick(empty) = %q, %v; want zero, false", v, ok)
	}

	// Empty picks must not consume a draw.
	after := NewRNG(3)
	if r.Next() != after.Next() {
		t.Error("Pick(empty) consumed a draw")
	}

	items := []string{"a", "b", "c"}
	for i := 0; i < 100; i++ {
		v, ok := Pick(r, items)
		if !ok {
			t.Fatal("Pick returned not-ok for non-empty slice")
		}
		if v != "a" && v != "b" && v != "c" {
			t.Fatalf("Pick returned %q, not in slice", v)
		}
	}
}

func TestDeterministicSequence(t *testing.T) {
	a, b := NewRNG(777), NewRNG(777)
	for i := 0; i < 500; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at draw %d", i)
		}
	}
}
