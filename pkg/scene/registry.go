package scene

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Builder constructs a scene from shared options
type Builder func(opts Options) *Scene

// SceneInfo represents a registered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, used on the command line
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category

	build Builder
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string      `json:"name"`
	Scenes []SceneInfo `json:"scenes"`
}

const (
	groupBasics  = "Basics"
	groupTexture = "Textures"
	groupLights  = "Lights and Volumes"
)

func builtIn(id, description, group string, build Builder) SceneInfo {
	return SceneInfo{
		ID:          id,
		DisplayName: titleCase(id),
		Description: description,
		Group:       group,
		build:       build,
	}
}

var builtInScenes = []SceneInfo{
	builtIn("quick", "Ground, diffuse center, hollow glass and fuzzy metal spheres", groupBasics, NewQuickScene),
	builtIn("bouncing", "Random small spheres with motion blur on a checker ground", groupBasics, NewBouncingSpheresScene),
	builtIn("sphere-grid", "20x20 grid of OKLCH-colored metal spheres", groupBasics, NewSphereGridScene),
	builtIn("quads", "Five colored quads facing the camera", groupBasics, NewQuadsScene),
	builtIn("checkered", "Two large checker-textured spheres", groupTexture, NewCheckeredSpheresScene),
	builtIn("earth", "Image-textured globe", groupTexture, NewEarthScene),
	builtIn("perlin", "Marble-like Perlin noise spheres", groupTexture, NewPerlinSpheresScene),
	builtIn("simple-light", "Noise spheres lit by a quad and a sphere light", groupLights, NewSimpleLightScene),
	builtIn("cornell", "Cornell box with two rotated boxes", groupLights, NewCornellScene),
	builtIn("cornell-smoke", "Cornell box with boxes of smoke and fog", groupLights, NewCornellSmokeScene),
	builtIn("final", "Box field, moving sphere, media, textures and an instanced sphere cluster", groupLights, NewFinalScene),
}

// ListScenes returns every registered scene in registration order
func ListScenes() []SceneInfo {
	return append([]SceneInfo(nil), builtInScenes...)
}

// Names returns the ids of all registered scenes
func Names() []string {
	return lo.Map(builtInScenes, func(info SceneInfo, _ int) string {
		return info.ID
	})
}

// ListSceneGroups returns scenes grouped by category, groups in alphabetical order
func ListSceneGroups() []SceneGroup {
	grouped := lo.GroupBy(builtInScenes, func(info SceneInfo) string {
		return info.Group
	})

	groupNames := lo.Keys(grouped)
	sort.Strings(groupNames)

	return lo.Map(groupNames, func(name string, _ int) SceneGroup {
		return SceneGroup{Name: name, Scenes: grouped[name]}
	})
}

// ByName builds the scene registered under id
func ByName(id string, opts Options) (*Scene, error) {
	info, ok := lo.Find(builtInScenes, func(info SceneInfo) bool {
		return info.ID == strings.ToLower(strings.TrimSpace(id))
	})
	if !ok {
		return nil, errors.Errorf("unknown scene %q (available: %s)", id, strings.Join(Names(), ", "))
	}

	s := info.build(opts)
	s.Name = info.ID
	return s, nil
}

// titleCase converts an id-style string to title case
// e.g., "cornell-smoke" -> "Cornell Smoke"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
