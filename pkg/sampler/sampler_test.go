package sampler

import "testing"

func TestResampleLength(t *testing.T) {
	smp := New(1)
	sample := []float64{1, 2, 3, 4, 5}

	out := smp.Resample(sample)
	if len(out) != len(sample) {
		t.Fatalf("expected resample of length %d, got %d", len(sample), len(out))
	}
}

func TestResampleMembership(t *testing.T) {
	smp := New(7)
	sample := []float64{1.5, -2.25, 3.75, 100}

	members := make(map[float64]bool, len(sample))
	for _, v := range sample {
		members[v] = true
	}

	for round := 0; round < 50; round++ {
		for _, v := range smp.Resample(sample) {
			if !members[v] {
				t.Fatalf("drawn value %v is not a member of the sample", v)
			}
		}
	}
}

func TestResampleDoesNotMutateInput(t *testing.T) {
	smp := New(3)
	sample := []float64{9, 1, 7, 3}
	want := []float64{9, 1, 7, 3}

	smp.Resample(sample)

	for i := range sample {
		if sample[i] != want[i] {
			t.Fatalf("sample mutated at index %d: got %v, want %v", i, sample[i], want[i])
		}
	}
}

func TestSeededDeterminism(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	a := New(42)
	b := New(42)

	for round := 0; round < 10; round++ {
		outA := a.Resample(sample)
		outB := b.Resample(sample)
		for i := range outA {
			if outA[i] != outB[i] {
				t.Fatalf("round %d: resamples diverge at index %d (%v != %v)",
					round, i, outA[i], outB[i])
			}
		}
	}
}

func TestForkDeterminism(t *testing.T) {
	sample := []float64{10, 20, 30}

	forksA := New(99).Fork(4)
	forksB := New(99).Fork(4)

	for w := range forksA {
		outA := forksA[w].Resample(sample)
		outB := forksB[w].Resample(sample)
		for i := range outA {
			if outA[i] != outB[i] {
				t.Fatalf("fork %d: resamples diverge at index %d", w, i)
			}
		}
	}
}

func TestResampleIntoLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on destination length mismatch")
		}
	}()

	New(1).ResampleInto([]float64{1, 2, 3}, make([]float64, 2))
}
