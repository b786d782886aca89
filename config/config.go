package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/deanrtaylor1/docrank/logger"
)

//go:embed sample_config.toml
var sampleConfig string

const (
	defaultServerAddr = "127.0.0.1:8080"
	defaultLogLevel   = "info"
)

// Corpus describes where the documents come from and which one is the reference.
type Corpus struct {
	Documents []string `toml:"documents"`
	Dir       string   `toml:"dir"`
	Reference int      `toml:"reference"`
}

type Server struct {
	Addr string `toml:"addr"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	Corpus Corpus `toml:"corpus"`
	Server Server `toml:"server"`
	Log    Log    `toml:"log"`
}

// Default returns a Config with no documents, the first document as reference and
// the local server address.
func Default() Config {
	return Config{
		Server: Server{Addr: defaultServerAddr},
		Log:    Log{Level: defaultLogLevel},
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.Corpus.Dir = strings.TrimSpace(c.Corpus.Dir)
	c.Server.Addr = strings.TrimSpace(c.Server.Addr)
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Corpus.Reference < 0 {
		return fmt.Errorf("corpus.reference must be >= 0, got %d", c.Corpus.Reference)
	}
	if c.Corpus.Dir != "" && len(c.Corpus.Documents) > 0 {
		return errors.New("corpus.dir and corpus.documents are mutually exclusive")
	}
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// SampleConfig returns an annotated example configuration
func SampleConfig() string {
	return sampleConfig
}

// CreateSample writes the sample configuration to path, refusing to overwrite a file
func CreateSample(path string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create sample config: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(sampleConfig); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
