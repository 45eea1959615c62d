package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string
	DisplayName string
	Description string
	build       func() *Preset
}

var builtInScenes = []SceneInfo{
	{
		ID:          "reference",
		DisplayName: "Reference Spheres",
		Description: "Three grey spheres lit from the eye",
		build:       NewReferenceScene,
	},
	{
		ID:          "single-sphere",
		DisplayName: "Single Sphere",
		Description: "Unit sphere five units ahead of the camera",
		build:       NewSingleSphereScene,
	},
	{
		ID:          "empty",
		DisplayName: "Empty",
		Description: "No surfaces, background only",
		build:       NewEmptyScene,
	},
}

// ListBuiltIn returns the built-in scenes sorted by ID
func ListBuiltIn() []SceneInfo {
	scenes := make([]SceneInfo, len(builtInScenes))
	copy(scenes, builtInScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Lookup builds the built-in scene with the given ID (case-insensitive)
func Lookup(id string) (*Preset, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, info := range builtInScenes {
		if info.ID == id {
			return info.build(), nil
		}
	}

	var known []string
	for _, info := range ListBuiltIn() {
		known = append(known, info.ID)
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", id, strings.Join(known, ", "))
}
