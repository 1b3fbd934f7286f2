package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	J "cuelang.org/go/encoding/json"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/leterax/go-maze/pkg/game"
	"github.com/leterax/go-maze/pkg/maze"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var Default []byte

//go:embed schema.cue
var schemaFile string

type Window struct {
	Width  int    `yaml:"width" json:"width"`
	Height int    `yaml:"height" json:"height"`
	Title  string `yaml:"title" json:"title"`
	VSync  bool   `yaml:"vsync" json:"vsync"`
}

type Room struct {
	Width  float32 `yaml:"width" json:"width"`
	Height float32 `yaml:"height" json:"height"`
	Depth  float32 `yaml:"depth" json:"depth"`
}

type Camera struct {
	Position [3]float32 `yaml:"position" json:"position"`
	FOV      float32    `yaml:"fov" json:"fov"`
	Near     float32    `yaml:"near" json:"near"`
	Far      float32    `yaml:"far" json:"far"`
}

type Controls struct {
	MoveSpeed        float32       `yaml:"moveSpeed" json:"moveSpeed"`
	RotationStep     float32       `yaml:"rotationStep" json:"rotationStep"`
	MouseSensitivity float32       `yaml:"mouseSensitivity" json:"mouseSensitivity"`
	TickInterval     time.Duration `yaml:"tickInterval" json:"tickInterval"`
}

type Config struct {
	Window   Window   `yaml:"window" json:"window"`
	Room     Room     `yaml:"room" json:"room"`
	Camera   Camera   `yaml:"camera" json:"camera"`
	Controls Controls `yaml:"controls" json:"controls"`
}

// Bounds converts the room section for scene construction
func (c *Config) Bounds() maze.RoomBounds {
	return maze.RoomBounds{
		Width:  c.Room.Width,
		Height: c.Room.Height,
		Depth:  c.Room.Depth,
	}
}

// Settings converts the controls section for the input controller
func (c *Config) Settings() game.Settings {
	return game.Settings{
		MoveSpeed:        c.Controls.MoveSpeed,
		RotationStep:     c.Controls.RotationStep,
		MouseSensitivity: c.Controls.MouseSensitivity,
	}
}

// StartPosition returns the initial camera position
func (c *Config) StartPosition() mgl32.Vec3 {
	return mgl32.Vec3(c.Camera.Position)
}

// Validate unifies the merged settings with the configuration schema
func (c *Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaFile)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	data, err := json.Marshal(c)
	if err != nil {
		return err
	}

	expr, err := J.Extract("<config>", data)
	if err != nil {
		return err
	}

	value := ctx.BuildExpr(expr)
	if err := value.Err(); err != nil {
		return err
	}

	schema = schema.Unify(value)
	if err := schema.Err(); err != nil {
		return err
	}

	return schema.Validate(cue.Concrete(true))
}

func decode(config *Config, data []byte) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	err := decoder.Decode(config)
	if errors.Is(err, io.EOF) {
		// Empty document
		return nil
	}
	return err
}

// Process loads the default configuration and applies each file in order.
// A file only overrides the keys it sets.
func Process(configPaths []string) (*Config, error) {
	config := Config{}
	if err := decode(&config, Default); err != nil {
		return nil, fmt.Errorf("invalid default config file: %w", err)
	}

	for _, path := range configPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read config file %s: %w", path, err)
		}

		if err := decode(&config, data); err != nil {
			return nil, fmt.Errorf("could not process config file %s: %w", path, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config is not valid: %w", err)
	}

	return &config, nil
}
