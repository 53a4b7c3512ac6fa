package renderer

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Band is a contiguous run of scanlines owned by a single worker
type Band struct {
	Index int   // Position of the band from the top of the image
	Lines []int // Scanline indices, ascending
}

// BandResult contains the colors a worker produced for its band
type BandResult struct {
	Index int
	Lines [][]core.Vec3 // One slice per scanline, in band order
	Err   error
}

// PartitionBands splits height scanlines into at most numWorkers contiguous,
// disjoint bands covering every line exactly once.
func PartitionBands(height, numWorkers int) []Band {
	if height <= 0 {
		return nil
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	bandSize := (height + numWorkers - 1) / numWorkers
	chunks := lo.Chunk(lo.Range(height), bandSize)

	return lo.Map(chunks, func(lines []int, index int) Band {
		return Band{Index: index, Lines: lines}
	})
}

// DefaultNumWorkers returns the number of physical cores, falling back to the
// logical CPU count when the platform cannot report it
func DefaultNumWorkers() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// BandRenderer renders every line of one band
type BandRenderer func(band Band) [][]core.Vec3

// WorkerPool runs one goroutine per band and joins them in a single barrier.
// Run may be called more than once.
type WorkerPool struct {
	bands []Band
}

// NewWorkerPool creates a pool for the given static partition
func NewWorkerPool(bands []Band) *WorkerPool {
	return &WorkerPool{bands: bands}
}

// NumWorkers returns the number of workers the pool starts
func (wp *WorkerPool) NumWorkers() int {
	return len(wp.bands)
}

// Run starts all workers, waits for them, and returns results indexed by band.
// A panicking worker is reported through its result's Err.
func (wp *WorkerPool) Run(render BandRenderer) []BandResult {
	resultQueue := make(chan BandResult, len(wp.bands))
	var wg sync.WaitGroup
	for _, band := range wp.bands {
		wg.Add(1)
		go work(band, render, resultQueue, &wg)
	}

	wg.Wait()
	close(resultQueue)

	results := make([]BandResult, len(wp.bands))
	for result := range resultQueue {
		results[result.Index] = result
	}
	return results
}

// work renders a single band and always posts exactly one result
func work(band Band, render BandRenderer, resultQueue chan<- BandResult, wg *sync.WaitGroup) {
	defer wg.Done()

	result := BandResult{Index: band.Index}
	defer func() {
		if r := recover(); r != nil {
			result.Lines = nil
			result.Err = errors.Errorf("worker for band %d panicked: %v", band.Index, r)
		}
		resultQueue <- result
	}()

	result.Lines = render(band)
}
