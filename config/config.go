package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridio"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid configuration")

// Point is an optional grid coordinate.
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Grid selects the input file and the search endpoints.
type Grid struct {
	Path  string `yaml:"path"`
	Start *Point `yaml:"start"`
	Goal  *Point `yaml:"goal"`
}

// Render controls the printed grid.
type Render struct {
	Mode  string `yaml:"mode"`
	Color bool   `yaml:"color"`
}

// Log controls the zap logger.
type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// Server controls the HTTP listener.
type Server struct {
	Addr string `yaml:"addr"`
}

// Config is the complete application configuration.
type Config struct {
	Grid   Grid   `yaml:"grid"`
	Render Render `yaml:"render"`
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
}

// Default returns the built-in settings: kind rendering without colour,
// info logging and a server on :8080.
func Default() Config {
	return Config{
		Render: Render{Mode: "kind"},
		Log:    Log{Level: "info"},
		Server: Server{Addr: ":8080"},
	}
}

// Parse decodes YAML over Default and validates the result.
// Empty input yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate checks enumerations and coordinates.
func (c Config) Validate() error {
	if _, ok := gridio.ParseMode(c.Render.Mode); !ok {
		return fmt.Errorf("%w: render.mode %q (want kind or fcost)", ErrInvalid, c.Render.Mode)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	for name, p := range map[string]*Point{"grid.start": c.Grid.Start, "grid.goal": c.Grid.Goal} {
		if p != nil && (p.X < 0 || p.Y < 0) {
			return fmt.Errorf("%w: %s has negative coordinate (%d,%d)", ErrInvalid, name, p.X, p.Y)
		}
	}
	return nil
}

func (c Config) level() (zapcore.Level, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return lvl, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return lvl, nil
}

// SearchOptions converts the endpoint settings into astar options.
func (c Config) SearchOptions() []astar.Option {
	var opts []astar.Option
	if p := c.Grid.Start; p != nil {
		opts = append(opts, astar.WithStart(p.X, p.Y))
	}
	if p := c.Grid.Goal; p != nil {
		opts = append(opts, astar.WithGoal(p.X, p.Y))
	}
	return opts
}

// RenderOptions converts the render settings into gridio options.
func (c Config) RenderOptions() []gridio.RenderOption {
	mode, _ := gridio.ParseMode(c.Render.Mode)
	return []gridio.RenderOption{gridio.WithMode(mode), gridio.WithColor(c.Render.Color)}
}

// Logger builds a zap logger from the log settings: the production JSON
// encoder by default, the console encoder when development is set.
func (c Config) Logger() (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	if c.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	return zc.Build()
}
