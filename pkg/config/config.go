package config

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"github.com/df07/go-pathtracer/pkg/renderer"
)

// RenderSettings overrides a scene's recommended settings. Zero values leave
// the scene's choice untouched.
type RenderSettings struct {
	Scene           string `json:"scene,omitempty"`
	Width           int    `json:"width,omitempty"`
	SamplesPerPixel int    `json:"spp,omitempty"`
	MaxDepth        int    `json:"depth,omitempty"`
	Workers         int    `json:"workers,omitempty"`
	Seed            *int64 `json:"seed,omitempty"` // Nil keeps the default; 0 is a valid seed
	Output          string `json:"out,omitempty"`
	AssetDir        string `json:"assets,omitempty"`
}

// Load reads render settings from a JSON file. Unknown fields are rejected.
func Load(path string) (*RenderSettings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open render settings")
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()

	var settings RenderSettings
	if err := decoder.Decode(&settings); err != nil {
		return nil, errors.Wrapf(err, "parse render settings %s", path)
	}
	if err := settings.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid render settings %s", path)
	}
	return &settings, nil
}

// Validate rejects negative overrides
func (s *RenderSettings) Validate() error {
	switch {
	case s.Width < 0:
		return errors.Errorf("width must not be negative, got %d", s.Width)
	case s.SamplesPerPixel < 0:
		return errors.Errorf("spp must not be negative, got %d", s.SamplesPerPixel)
	case s.MaxDepth < 0:
		return errors.Errorf("depth must not be negative, got %d", s.MaxDepth)
	case s.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", s.Workers)
	}
	return nil
}

// Merge returns s with every set field of other taking precedence
func (s RenderSettings) Merge(other RenderSettings) RenderSettings {
	if other.Scene != "" {
		s.Scene = other.Scene
	}
	if other.Width > 0 {
		s.Width = other.Width
	}
	if other.SamplesPerPixel > 0 {
		s.SamplesPerPixel = other.SamplesPerPixel
	}
	if other.MaxDepth > 0 {
		s.MaxDepth = other.MaxDepth
	}
	if other.Workers > 0 {
		s.Workers = other.Workers
	}
	if other.Seed != nil {
		s.Seed = other.Seed
	}
	if other.Output != "" {
		s.Output = other.Output
	}
	if other.AssetDir != "" {
		s.AssetDir = other.AssetDir
	}
	return s
}

// Apply overlays the settings onto a scene's camera and sampling configs and
// the renderer's config
func (s RenderSettings) Apply(camera *renderer.CameraConfig, sampling *renderer.SamplingConfig, render *renderer.RenderConfig) {
	if s.Width > 0 {
		camera.Width = s.Width
	}
	if s.SamplesPerPixel > 0 {
		sampling.SamplesPerPixel = s.SamplesPerPixel
	}
	if s.MaxDepth > 0 {
		sampling.MaxDepth = s.MaxDepth
	}
	if s.Workers > 0 {
		render.NumWorkers = s.Workers
	}
	if s.Seed != nil {
		render.Seed = *s.Seed
	}
}
