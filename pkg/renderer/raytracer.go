package renderer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// SamplerFactory creates the sampler owned by one band's worker
type SamplerFactory func(bandIndex int) core.Sampler

// RenderConfig controls parallelism and reproducibility
type RenderConfig struct {
	NumWorkers int   // Number of parallel workers (0 = physical core count)
	Seed       int64 // Band i draws from a generator seeded with Seed+i

	// NewSampler overrides the seeded samplers when set
	NewSampler SamplerFactory
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		NumWorkers: 0,
		Seed:       42,
	}
}

// ProgressCallback receives the number of finished scanlines. It is called
// concurrently from workers and must be safe for that.
type ProgressCallback func(linesDone, totalLines int)

// Raytracer renders a world through a camera with a fixed pool of band workers.
// The world is shared read-only by all workers.
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	sampling   SamplingConfig
	config     RenderConfig
	logger     core.Logger
	progress   ProgressCallback
	linesDone  atomic.Int64
}

// NewRaytracer creates a new raytracer. A nil logger is silent.
func NewRaytracer(world geometry.Hittable, camera *Camera, integ integrator.Integrator, sampling SamplingConfig, config RenderConfig, logger core.Logger) *Raytracer {
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		sampling:   sampling,
		config:     config,
		logger:     core.LoggerOrNop(logger),
	}
}

// SetProgressCallback registers a best-effort progress observer
func (rt *Raytracer) SetProgressCallback(callback ProgressCallback) {
	rt.progress = callback
}

// Render traces every pixel and returns the linear image. Each band of
// scanlines is rendered by its own goroutine; lines are reassembled by index
// after all workers join. A worker panic aborts the render with an error.
func (rt *Raytracer) Render() (*Image, RenderStats, error) {
	width, height := rt.camera.Width(), rt.camera.Height()
	runID := uuid.NewString()
	start := time.Now()

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = DefaultNumWorkers()
	}

	bands := PartitionBands(height, numWorkers)
	pool := NewWorkerPool(bands)
	rt.linesDone.Store(0)

	rt.logger.Printf("[%s] Rendering %dx%d, %d samples per pixel, depth %d (using %d workers)...\n",
		runID, width, height, rt.sampling.SamplesPerPixel, rt.sampling.MaxDepth, pool.NumWorkers())

	results := pool.Run(func(band Band) [][]core.Vec3 {
		return rt.renderBand(band, rt.newSampler(band.Index))
	})

	stats := RenderStats{
		RunID:      runID,
		NumWorkers: pool.NumWorkers(),
	}

	img := NewImage(width, height)
	for _, result := range results {
		if result.Err != nil {
			return nil, stats, errors.Wrapf(result.Err, "render %s", runID)
		}
		for k, line := range result.Lines {
			img.SetLine(bands[result.Index].Lines[k], line)
		}
	}

	stats.TotalPixels = width * height
	stats.TotalSamples = stats.TotalPixels * rt.sampling.SamplesPerPixel
	stats.AverageSamples = float64(rt.sampling.SamplesPerPixel)
	stats.Duration = time.Since(start)

	rt.logger.Printf("[%s] Done: %d samples in %v (%.0f samples/s)\n",
		runID, stats.TotalSamples, stats.Duration.Round(time.Millisecond), stats.SamplesPerSecond())

	return img, stats, nil
}

// newSampler returns the independent sampler for one band
func (rt *Raytracer) newSampler(bandIndex int) core.Sampler {
	if rt.config.NewSampler != nil {
		return rt.config.NewSampler(bandIndex)
	}
	return core.NewSeededSampler(rt.config.Seed + int64(bandIndex))
}

// renderBand renders the band's scanlines top to bottom with one sampler
func (rt *Raytracer) renderBand(band Band, sampler core.Sampler) [][]core.Vec3 {
	lines := make([][]core.Vec3, len(band.Lines))
	for k, j := range band.Lines {
		lines[k] = rt.renderLine(j, sampler)
		rt.reportLine()
	}
	return lines
}

// renderLine averages SamplesPerPixel paths for each pixel of scanline j
func (rt *Raytracer) renderLine(j int, sampler core.Sampler) []core.Vec3 {
	width := rt.camera.Width()
	spp := rt.sampling.SamplesPerPixel
	line := make([]core.Vec3, width)
	if spp <= 0 {
		return line
	}

	pixelSamplesScale := 1.0 / float64(spp)
	for i := 0; i < width; i++ {
		colorAccum := core.Vec3{}
		for sample := 0; sample < spp; sample++ {
			ray := rt.camera.GetRay(i, j, sampler)
			colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, rt.sampling.MaxDepth, sampler))
		}
		line[i] = colorAccum.Multiply(pixelSamplesScale)
	}
	return line
}

// reportLine bumps the shared progress counter
func (rt *Raytracer) reportLine() {
	done := rt.linesDone.Add(1)
	if rt.progress != nil {
		rt.progress(int(done), rt.camera.Height())
	}
}
