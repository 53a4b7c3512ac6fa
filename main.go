package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const defaultScene = "quick"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, renderer.NewDefaultLogger()))
}

// run parses args, renders and saves the image. Returns the process exit code.
func run(args []string, stdout io.Writer, logger core.Logger) int {
	flags, settings, configPath, help, err := parseFlags(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		help, err = true, nil
	}
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 2
	}
	if help {
		printHelp(flags, stdout)
		return 0
	}

	if configPath != "" {
		fileSettings, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(stdout, "Error: %v\n", err)
			return 1
		}
		// Command-line flags win over the file
		settings = fileSettings.Merge(settings)
	}

	outputPath, err := render(settings, logger)
	if err != nil {
		fmt.Fprintf(stdout, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Render saved as %s\n", outputPath)
	return 0
}

// parseFlags reads command-line flags into render settings. Only flags that
// were given explicitly are set, so they can be layered over a config file.
func parseFlags(args []string, output io.Writer) (*flag.FlagSet, config.RenderSettings, string, bool, error) {
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {} // printHelp covers usage

	sceneName := flags.String("scene", "", "Scene to render (default \""+defaultScene+"\")")
	configPath := flags.String("config", "", "JSON render settings file")
	width := flags.Int("width", 0, "Image width in pixels (0 = scene default)")
	spp := flags.Int("spp", 0, "Samples per pixel (0 = scene default)")
	depth := flags.Int("depth", 0, "Maximum bounce depth (0 = scene default)")
	workers := flags.Int("workers", 0, "Number of parallel workers (0 = physical cores)")
	seed := flags.Int64("seed", 0, "Random seed (default 42)")
	out := flags.String("out", "", "Output file, .ppm or .png (default output/<scene>/render_<timestamp>.png)")
	assets := flags.String("assets", "", "Directory containing texture images (default \"assets\")")
	help := flags.Bool("help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		return flags, config.RenderSettings{}, "", false, err
	}

	settings := config.RenderSettings{
		Scene:           *sceneName,
		Width:           *width,
		SamplesPerPixel: *spp,
		MaxDepth:        *depth,
		Workers:         *workers,
		Output:          *out,
		AssetDir:        *assets,
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			settings.Seed = seed
		}
	})

	if err := settings.Validate(); err != nil {
		return flags, settings, "", false, err
	}
	return flags, settings, *configPath, *help, nil
}

func printHelp(flags *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flags.SetOutput(w)
	flags.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, group := range scene.ListSceneGroups() {
		fmt.Fprintf(w, "  %s:\n", group.Name)
		for _, info := range group.Scenes {
			fmt.Fprintf(w, "    %-14s %s\n", info.ID, info.Description)
		}
	}
}

// render builds the selected scene, renders it and writes the image.
// Returns the path written.
func render(settings config.RenderSettings, logger core.Logger) (string, error) {
	opts := scene.DefaultOptions()
	opts.Logger = logger
	if settings.AssetDir != "" {
		opts.AssetDir = settings.AssetDir
	}
	if settings.Seed != nil {
		opts.Seed = *settings.Seed
	}

	sceneName := settings.Scene
	if sceneName == "" {
		sceneName = defaultScene
	}
	s, err := scene.ByName(sceneName, opts)
	if err != nil {
		return "", err
	}

	renderConfig := renderer.DefaultRenderConfig()
	settings.Apply(&s.Camera, &s.Sampling, &renderConfig)

	if err := s.Preprocess(); err != nil {
		return "", errors.Wrap(err, "preprocess scene")
	}
	logger.Printf("Scene %s: %d primitives\n", s.Name, s.GetPrimitiveCount())

	camera := renderer.NewCamera(s.Camera)
	pt := integrator.NewPathTracingIntegrator(s.Background)
	raytracer := renderer.NewRaytracer(s.Root(), camera, pt, s.Sampling, renderConfig, logger)
	raytracer.SetProgressCallback(newProgressLogger(logger).report)

	img, stats, err := raytracer.Render()
	if err != nil {
		return "", err
	}

	logger.Printf("Average luminance: %.4f\n", renderer.CalculateAverageLuminance(img.ToRGBA()))

	outputPath := settings.Output
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join("output", s.Name, fmt.Sprintf("render_%s_%s.png", timestamp, shortID(stats.RunID)))
	}
	if err := imageio.SaveImage(outputPath, img); err != nil {
		return "", err
	}
	return outputPath, nil
}

// shortID keeps the first block of a run id for file names
func shortID(runID string) string {
	if head, _, found := strings.Cut(runID, "-"); found {
		return head
	}
	return runID
}

// progressLogger logs scanline progress in 10% steps. Safe for concurrent use.
type progressLogger struct {
	mu     sync.Mutex
	logger core.Logger
	last   int
}

func newProgressLogger(logger core.Logger) *progressLogger {
	return &progressLogger{logger: logger, last: -1}
}

func (p *progressLogger) report(linesDone, totalLines int) {
	if totalLines <= 0 {
		return
	}
	step := linesDone * 10 / totalLines

	p.mu.Lock()
	defer p.mu.Unlock()
	if step <= p.last {
		return
	}
	p.last = step
	p.logger.Printf("Scanlines remaining: %d of %d\n", totalLines-linesDone, totalLines)
}
