package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// EnvPrefix is prepended to every key when reading environment variables,
// e.g. RAYTRACER_WIDTH or RAYTRACER_SCENE_FILE
const EnvPrefix = "RAYTRACER"

// DefaultEnvFile is loaded into the environment when present
const DefaultEnvFile = ".env"

// Config holds everything the render command needs
type Config struct {
	Scene      string `mapstructure:"scene"`      // Built-in scene id or json:<name>
	SceneFile  string `mapstructure:"scene-file"` // Path to a JSON scene; overrides Scene
	ScenesDir  string `mapstructure:"scenes-dir"` // Directory scanned for json:<name> scenes
	Output     string `mapstructure:"output"`     // Output path; .png selects PNG, anything else P3
	Width      int    `mapstructure:"width"`      // Image width in pixels
	Height     int    `mapstructure:"height"`     // Image height in pixels
	Workers    int    `mapstructure:"workers"`    // Number of render workers
	Depth      int    `mapstructure:"depth"`      // Maximum reflection depth
	ConfigFile string `mapstructure:"config"`     // Optional YAML/JSON/TOML file
}

// Defaults returns the configuration used when nothing else is set
func Defaults() Config {
	rc := renderer.DefaultConfig()
	return Config{
		Scene:     "default",
		ScenesDir: "scenes",
		Output:    "output.ppm",
		Width:     rc.Width,
		Height:    rc.Height,
		Workers:   rc.NumWorkers,
		Depth:     rc.MaxDepth,
	}
}

// Load resolves the configuration from, lowest precedence first: defaults,
// the config file, the environment (after loading .env) and explicitly set flags.
func Load(flags *pflag.FlagSet) (Config, error) {
	return LoadWithEnvFile(flags, DefaultEnvFile)
}

// LoadWithEnvFile is Load with a custom dotenv path. A missing env file is not an error.
func LoadWithEnvFile(flags *pflag.FlagSet, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v, Defaults())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the render settings and the output path
func (c Config) Validate() error {
	if err := c.RenderConfig().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Output == "" {
		return errors.New("invalid config: output path is empty")
	}
	if c.Scene == "" && c.SceneFile == "" {
		return errors.New("invalid config: no scene selected")
	}
	return nil
}

// RenderConfig returns the renderer settings
func (c Config) RenderConfig() renderer.Config {
	return renderer.Config{
		Width:      c.Width,
		Height:     c.Height,
		NumWorkers: c.Workers,
		MaxDepth:   c.Depth,
	}
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("scene", d.Scene)
	v.SetDefault("scene-file", d.SceneFile)
	v.SetDefault("scenes-dir", d.ScenesDir)
	v.SetDefault("output", d.Output)
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("depth", d.Depth)
	v.SetDefault("config", d.ConfigFile)
}

// RegisterFlags adds the render flags, with their defaults, to a flag set
func RegisterFlags(flags *pflag.FlagSet) {
	d := Defaults()
	flags.StringP("scene", "s", d.Scene, "Scene to render: a built-in id or json:<name>")
	flags.String("scene-file", d.SceneFile, "Path to a JSON scene description (overrides --scene)")
	flags.String("scenes-dir", d.ScenesDir, "Directory searched for json:<name> scenes")
	flags.StringP("output", "o", d.Output, "Output file (.png for PNG, otherwise plain PPM)")
	flags.IntP("width", "W", d.Width, "Image width in pixels")
	flags.IntP("height", "H", d.Height, "Image height in pixels")
	flags.IntP("workers", "j", d.Workers, "Number of parallel workers")
	flags.IntP("depth", "d", d.Depth, "Maximum reflection depth")
	flags.StringP("config", "c", d.ConfigFile, "Config file (YAML, JSON or TOML)")
}
