package utils

import "testing"

type countingSource struct {
	calls int
	value float64
}

func (s *countingSource) Float64() float64 {
	s.calls++
	return s.value
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
	if a.Seed() != 42 {
		t.Errorf("seed = %d, want 42", a.Seed())
	}
}

func TestZeroSeedPicksOne(t *testing.T) {
	if NewPRNGService(0).Seed() == 0 {
		t.Error("zero seed kept")
	}
}

func TestFloatRange(t *testing.T) {
	src := &countingSource{value: 0.25}
	if got := (FloatRange{Min: 1, Max: 3}).Random(src); got != 1.5 {
		t.Errorf("Random = %v, want 1.5", got)
	}
	if src.calls != 1 {
		t.Errorf("calls = %d, want 1", src.calls)
	}

	src.calls = 0
	if got := (FloatRange{Min: 0.7, Max: 0.7}).Random(src); got != 0.7 {
		t.Errorf("degenerate Random = %v, want 0.7", got)
	}
	if src.calls != 0 {
		t.Errorf("degenerate range consumed %d draws", src.calls)
	}
}
