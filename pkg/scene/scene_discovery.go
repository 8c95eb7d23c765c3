package scene

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// SceneInfo describes a scene that can be rendered by name
type SceneInfo struct {
	ID          string // Unique identifier, used on the command line
	DisplayName string // Human readable name
	Description string // Optional description
	Type        string // "builtin" or "json"
	FilePath    string // Path to the scene description (json type only)
}

type builtinScene struct {
	info  SceneInfo
	build func() *Scene
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			DisplayName: "Default Scene",
			Description: "Single matte sphere lit by one disc light",
			Type:        "builtin",
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "mirrors",
			DisplayName: "Mirrors",
			Description: "Spheres of increasing reflectivity on a matte floor",
			Type:        "builtin",
		},
		build: NewMirrorsScene,
	},
	{
		info: SceneInfo{
			ID:          "triangles",
			DisplayName: "Triangles",
			Description: "Triangle pyramid over a reflective floor",
			Type:        "builtin",
		},
		build: NewTrianglesScene,
	},
}

// Lookup builds the built-in scene with the given id
func Lookup(id string) (*Scene, error) {
	for _, b := range builtinScenes {
		if b.info.ID == id {
			return b.build(), nil
		}
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", id, strings.Join(BuiltinNames(), ", "))
}

// BuiltinNames returns the ids of all built-in scenes
func BuiltinNames() []string {
	names := make([]string, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		names = append(names, b.info.ID)
	}
	return names
}

// ListScenes returns the built-in scenes followed by any *.json scene
// descriptions found in dir, sorted by display name. An empty dir skips the scan.
func ListScenes(dir string) ([]SceneInfo, error) {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, b := range builtinScenes {
		scenes = append(scenes, b.info)
	}

	if dir == "" {
		return scenes, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var found []SceneInfo
	for _, filePath := range files {
		name := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		found = append(found, SceneInfo{
			ID:          "json:" + name,
			DisplayName: titleCase(name),
			Type:        "json",
			FilePath:    filePath,
		})
	}
	sort.Slice(found, func(i, j int) bool {
		return found[i].DisplayName < found[j].DisplayName
	})

	return append(scenes, found...), nil
}

// titleCase converts a filename-style string to title case
// e.g., "mirror-hall" -> "Mirror Hall"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
