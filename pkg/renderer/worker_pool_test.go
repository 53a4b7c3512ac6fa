package renderer

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestPartitionBands(t *testing.T) {
	tests := []struct {
		name          string
		height        int
		workers       int
		expectedSizes []int
	}{
		{"uneven split", 10, 4, []int{3, 3, 3, 1}},
		{"three workers", 10, 3, []int{4, 4, 2}},
		{"exact split", 12, 4, []int{3, 3, 3, 3}},
		{"more workers than lines", 3, 8, []int{1, 1, 1}},
		{"single worker", 5, 1, []int{5}},
		{"zero workers treated as one", 5, 0, []int{5}},
		{"empty image", 0, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := PartitionBands(tt.height, tt.workers)
			if len(bands) != len(tt.expectedSizes) {
				t.Fatalf("Expected %d bands, got %d", len(tt.expectedSizes), len(bands))
			}

			next := 0
			for k, band := range bands {
				if band.Index != k {
					t.Errorf("Band %d has index %d", k, band.Index)
				}
				if len(band.Lines) != tt.expectedSizes[k] {
					t.Errorf("Band %d: expected %d lines, got %d", k, tt.expectedSizes[k], len(band.Lines))
				}
				// Contiguous and disjoint: lines continue exactly where the last band stopped
				for _, line := range band.Lines {
					if line != next {
						t.Fatalf("Band %d: expected line %d, got %d", k, next, line)
					}
					next++
				}
			}
			if next != tt.height {
				t.Errorf("Expected %d lines covered, got %d", tt.height, next)
			}
		})
	}
}

func TestWorkerPool_ResultsByIndex(t *testing.T) {
	bands := PartitionBands(9, 3)
	pool := NewWorkerPool(bands)

	results := pool.Run(func(band Band) [][]core.Vec3 {
		lines := make([][]core.Vec3, len(band.Lines))
		for k, j := range band.Lines {
			lines[k] = []core.Vec3{core.NewVec3(float64(j), 0, 0)}
		}
		return lines
	})

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}
	for k, result := range results {
		if result.Index != k || result.Err != nil {
			t.Fatalf("Result %d: unexpected %+v", k, result)
		}
		for n, line := range result.Lines {
			if int(line[0].X) != bands[k].Lines[n] {
				t.Errorf("Band %d line %d carries data for line %v", k, n, line[0].X)
			}
		}
	}
}

func TestWorkerPool_RunTwice(t *testing.T) {
	pool := NewWorkerPool(PartitionBands(6, 3))
	render := func(band Band) [][]core.Vec3 {
		return make([][]core.Vec3, len(band.Lines))
	}

	for run := 0; run < 2; run++ {
		results := pool.Run(render)
		if len(results) != 3 {
			t.Fatalf("Run %d: expected 3 results, got %d", run, len(results))
		}
		for k, result := range results {
			if result.Index != k || result.Err != nil || len(result.Lines) != 2 {
				t.Errorf("Run %d result %d: unexpected %+v", run, k, result)
			}
		}
	}
}

func TestWorkerPool_RecoversPanic(t *testing.T) {
	pool := NewWorkerPool(PartitionBands(4, 2))

	results := pool.Run(func(band Band) [][]core.Vec3 {
		if band.Index == 1 {
			panic("boom")
		}
		return make([][]core.Vec3, len(band.Lines))
	})

	if results[0].Err != nil {
		t.Errorf("Expected band 0 to succeed, got %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("Expected band 1 to report the panic")
	}
	if results[1].Lines != nil {
		t.Error("Expected no lines from the panicking band")
	}
}

func TestDefaultNumWorkers(t *testing.T) {
	if n := DefaultNumWorkers(); n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
}
