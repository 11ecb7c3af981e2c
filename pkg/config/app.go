package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultOutputFile      = "secret.png"
	DefaultPort            = "8080"
	DefaultMaxRequestBytes = 64 << 20
)

var ErrInvalidConfig = errors.New("invalid configuration")

// AppConfig holds the settings shared by the CLI and the HTTP server. Values come from the built-in defaults, then
// from an optional YAML file, and command line flags override both
type AppConfig struct {
	OutputFile     string       `yaml:"output_file"`
	PngCompression string       `yaml:"png_compression"`
	LogLevel       string       `yaml:"log_level"`
	Server         ServerConfig `yaml:"server"`
}

type ServerConfig struct {
	Port            string `yaml:"port"`
	MaxRequestBytes int64  `yaml:"max_request_bytes"`
}

func Default() AppConfig {
	return AppConfig{
		OutputFile:     DefaultOutputFile,
		PngCompression: "default",
		LogLevel:       "info",
		Server: ServerConfig{
			Port:            DefaultPort,
			MaxRequestBytes: DefaultMaxRequestBytes,
		},
	}
}

// Load reads a YAML document from r on top of the defaults. Unknown keys are rejected so typos do not go unnoticed
func Load(r io.Reader) (AppConfig, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return AppConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func LoadFile(path string) (AppConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return AppConfig{}, err
	}
	defer f.Close()
	return Load(f)
}

func (c AppConfig) Validate() error {
	if c.OutputFile == "" {
		return fmt.Errorf("%w: output_file must not be empty", ErrInvalidConfig)
	}
	if _, err := ParsePngCompression(c.PngCompression); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("%w: server.port must not be empty", ErrInvalidConfig)
	}
	if c.Server.MaxRequestBytes <= 0 {
		return fmt.Errorf("%w: server.max_request_bytes must be positive", ErrInvalidConfig)
	}
	return nil
}

func (c AppConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}

func (c AppConfig) ImageEncodeConfig() (ImageEncodeConfig, error) {
	level, err := ParsePngCompression(c.PngCompression)
	if err != nil {
		return ImageEncodeConfig{}, err
	}
	return ImageEncodeConfig{PngCompressionLevel: level}, nil
}
