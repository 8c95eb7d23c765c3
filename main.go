package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/df07/go-whitted-raytracer/pkg/config"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "raytracer",
		Short:        "Whitted-style ray tracer with soft shadows",
		SilenceUsage: true,
	}

	root.AddCommand(newRenderCmd(), newScenesCmd())
	return root
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a scene to a PPM or PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return runRender(cfg, cmd.OutOrStdout())
		},
	}

	config.RegisterFlags(cmd.Flags())
	return cmd
}

func newScenesCmd() *cobra.Command {
	var scenesDir string

	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "List the scenes available to render",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listScenes(scenesDir, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&scenesDir, "scenes-dir", config.Defaults().ScenesDir, "Directory searched for JSON scenes")
	return cmd
}

func runRender(cfg config.Config, out io.Writer) error {
	logger := renderer.NewWriterLogger(out)

	sc, err := createScene(cfg)
	if err != nil {
		return err
	}
	logger.Printf("Rendering %s at %dx%d with %d workers, depth %d...\n",
		sceneLabel(cfg), cfg.Width, cfg.Height, cfg.Workers, cfg.Depth)

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	r := renderer.NewRenderer(cfg.RenderConfig(), logger)
	stats, err := r.RenderToFile(sc, cfg.Output)
	if err != nil {
		return err
	}

	logger.Printf("%.0f pixels/s\n", stats.PixelsPerSecond())
	logger.Printf("Render saved as %s\n", cfg.Output)
	return nil
}

// createScene resolves the scene named by the configuration: an explicit
// scene file wins over the scene id.
func createScene(cfg config.Config) (*scene.Scene, error) {
	if cfg.SceneFile != "" {
		return loaders.LoadScene(cfg.SceneFile)
	}
	return loaders.ResolveScene(cfg.Scene, cfg.ScenesDir)
}

func sceneLabel(cfg config.Config) string {
	if cfg.SceneFile != "" {
		return cfg.SceneFile
	}
	return cfg.Scene
}

func listScenes(dir string, out io.Writer) error {
	scenes, err := scene.ListScenes(dir)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Available scenes:")
	for _, info := range scenes {
		if info.Description != "" {
			fmt.Fprintf(out, "  %-16s %s\n", info.ID, info.Description)
		} else {
			fmt.Fprintf(out, "  %-16s %s\n", info.ID, info.FilePath)
		}
	}
	return nil
}
