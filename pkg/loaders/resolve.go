package loaders

import (
	"fmt"
	"strings"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ResolveScene builds the scene with the given id: a built-in scene, or
// json:<name> for <name>.json in scenesDir
func ResolveScene(id, scenesDir string) (*scene.Scene, error) {
	if !strings.HasPrefix(id, "json:") {
		return scene.Lookup(id)
	}

	scenes, err := scene.ListScenes(scenesDir)
	if err != nil {
		return nil, err
	}
	for _, info := range scenes {
		if info.ID == id {
			return LoadScene(info.FilePath)
		}
	}
	return nil, fmt.Errorf("scene %q not found in %s", strings.TrimPrefix(id, "json:"), scenesDir)
}
