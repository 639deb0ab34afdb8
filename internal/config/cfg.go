// Package config loads the spritetool configuration.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/rupor-github/gencfg"
	"golang.org/x/text/language"
	yaml "gopkg.in/yaml.v3"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/layerops"
	"github.com/gogpu/sprite/render"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	BackgroundConfig struct {
		Type   string `yaml:"type" validate:"oneof=none checked"`
		Size   int    `yaml:"size" validate:"min=1"`
		Color1 string `yaml:"color1" validate:"hexcolor"`
		Color2 string `yaml:"color2" validate:"hexcolor"`
	}

	RenderConfig struct {
		NewBlend   bool             `yaml:"new_blend"`
		Scale      int              `yaml:"scale" validate:"min=1,max=64"`
		Workers    int              `yaml:"workers" validate:"min=0"`
		Background BackgroundConfig `yaml:"background"`
	}

	FlattenConfig struct {
		LayerName string `yaml:"layer_name"`
		Language  string `yaml:"language" validate:"bcp47_language_tag"`
	}

	Config struct {
		Version int           `yaml:"version" validate:"eq=1"`
		Render  RenderConfig  `yaml:"render"`
		Flatten FlattenConfig `yaml:"flatten"`
		Logging LoggingConfig `yaml:"logging"`
	}
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// Only fields defined above are accepted, so yaml.Unmarshal cannot be
	// used directly.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of the expanded configuration template to
// provide defaults and performs validation. An empty path loads the defaults.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates the default configuration from the template.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}

// BgOptions converts the background section for render.Renderer.
func (c *RenderConfig) BgOptions() (render.BgOptions, error) {
	if c.Background.Type != "checked" {
		return render.BgNone(), nil
	}
	c1, err := sprite.ParseHexColor(c.Background.Color1)
	if err != nil {
		return render.BgOptions{}, fmt.Errorf("background color1: %w", err)
	}
	c2, err := sprite.ParseHexColor(c.Background.Color2)
	if err != nil {
		return render.BgOptions{}, fmt.Errorf("background color2: %w", err)
	}
	return render.BgChecked(c.Background.Size, c1, c2), nil
}

// Options returns the flatten options described by the configuration.
func (c *Config) Options() ([]layerops.Option, error) {
	tag, err := language.Parse(c.Flatten.Language)
	if err != nil {
		return nil, fmt.Errorf("flatten language: %w", err)
	}
	opts := []layerops.Option{
		layerops.WithNewBlend(c.Render.NewBlend),
		layerops.WithLanguage(tag),
	}
	if c.Flatten.LayerName != "" {
		opts = append(opts, layerops.WithLayerName(c.Flatten.LayerName))
	}
	return opts, nil
}
