package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/okra-platform/cspoet/writer"
)

// FileName is the name of the project configuration file
const FileName = "cspoet.yaml"

// ErrNotFound is returned when no configuration file exists in the search path
var ErrNotFound = errors.New("config not found")

// Config represents the cspoet.yaml configuration file
type Config struct {
	Name      string      `yaml:"name"`
	Target    string      `yaml:"target"`
	Schema    string      `yaml:"schema"`
	Namespace string      `yaml:"namespace,omitempty"`
	Indent    string      `yaml:"indent"`
	Records   bool        `yaml:"records"`
	JSONNames bool        `yaml:"jsonNames"`
	Split     bool        `yaml:"split"`
	Output    string      `yaml:"output"`
	Watch     WatchConfig `yaml:"watch"`
}

// WatchConfig contains file watcher configuration
type WatchConfig struct {
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()
	return c
}

// ApplyDefaults fills unset fields
func (c *Config) ApplyDefaults() {
	if c.Target == "" {
		c.Target = "csharp"
	}
	if c.Schema == "" {
		c.Schema = "./schema.cs.gql"
	}
	if c.Indent == "" {
		c.Indent = writer.DefaultIndent
	}
	if c.Output == "" {
		c.Output = "./Generated"
	}
	if len(c.Watch.Include) == 0 {
		c.Watch.Include = []string{"*.cs.gql", "**/*.cs.gql", FileName}
	}
	if len(c.Watch.Exclude) == 0 {
		c.Watch.Exclude = []string{".git/", "bin/", "obj/"}
	}
}

// Load loads cspoet.yaml from the current directory or a parent directory.
// It returns the directory the file was found in.
func Load() (*Config, string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Wrap(err, "get current directory")
	}
	return LoadFromDir(dir)
}

// LoadFromPath loads the configuration from a specific file
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(err, "parse config file %s", path)
	}
	config.ApplyDefaults()

	return &config, nil
}

// LoadFromDir searches for cspoet.yaml in startDir and its parents
func LoadFromDir(startDir string) (*Config, string, error) {
	dir := startDir
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			config, err := LoadFromPath(configPath)
			if err != nil {
				return nil, "", err
			}
			return config, dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	err := errors.Wrapf(ErrNotFound, "no %s found in %s or any parent directory", FileName, startDir)
	return nil, "", errors.WithHint(err, "run `cspoet init` to create one")
}

// Marshal encodes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encode config")
	}
	return data, nil
}

// Save writes the configuration to path
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(err, "write config file")
	}
	return nil
}

// Resolve returns path relative to the project directory unless it is absolute
func Resolve(projectDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}
