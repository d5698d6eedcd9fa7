package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/osuushi/pointset/internal/pointio"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults for the command line flags, optionally loaded from a yaml file.
// Flags given on the command line win.
type Config struct {
	Format      string       `yaml:"format"`
	InputFormat string       `yaml:"input_format"`
	Color       bool         `yaml:"color"`
	Verify      bool         `yaml:"verify"`
	Verbose     bool         `yaml:"verbose"`
	Render      RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	// Empty disables rendering
	Path   string  `yaml:"path"`
	Scale  float64 `yaml:"scale"`
	Imgcat bool    `yaml:"imgcat"`
	Labels bool    `yaml:"labels"`
}

func DefaultConfig() Config {
	return Config{
		Format:      string(pointio.OutputText),
		InputFormat: string(pointio.InputAuto),
		Render: RenderConfig{
			Scale: 50,
		},
	}
}

func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty file decodes to io.EOF, which just means "all defaults"
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, config.Validate()
}

func (c Config) Validate() error {
	if !contains(pointio.OutputFormats, c.Format) {
		return errors.Errorf("invalid format %q: must be one of %v", c.Format, pointio.OutputFormats)
	}
	if !contains(pointio.InputFormats, c.InputFormat) {
		return errors.Errorf("invalid input_format %q: must be one of %v", c.InputFormat, pointio.InputFormats)
	}
	if c.Render.Scale <= 0 {
		return errors.Errorf("invalid render scale %v: must be positive", c.Render.Scale)
	}
	return nil
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// Find the --config flag before the real parse, since the file supplies the
// defaults for every other flag.
func configPath(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, "--config=") {
			return strings.TrimPrefix(arg, "--config=")
		}
	}
	return os.Getenv("POINTSET_CONFIG")
}
