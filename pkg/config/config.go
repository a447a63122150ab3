package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"
)

// Config holds the defaults applied to every invocation. Flags given on the
// command line take precedence.
type Config struct {
	// Output is the default output format.
	Output string `yaml:"output,omitempty"`
	// Lenient makes untranslatable units a warning instead of a failure.
	Lenient bool `yaml:"lenient,omitempty"`
	// NoColor disables coloured JSON output.
	NoColor bool `yaml:"no-color,omitempty"`
	// Template is used with the template output format when --template
	// is not given.
	Template string `yaml:"template,omitempty"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

// Path returns the file this config was read from or will be written to.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) SetOutput(format string) error {
	old := c.Output
	c.Output = format
	if err := c.Write(); err != nil {
		// Either everything is successful or nothing.
		c.Output = old
		return err
	}
	return nil
}

func (c *Config) SetLenient(lenient bool) error {
	old := c.Lenient
	c.Lenient = lenient
	if err := c.Write(); err != nil {
		c.Lenient = old
		return err
	}
	return nil
}

func (c *Config) Write() error {
	configPath := c.configPath
	if configPath == "" {
		var err error
		configPath, err = getDefaultConfigPath()
		if err != nil {
			return err
		}
	}
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(configDir, "config.*.tmp")
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()

	encoder := yaml.NewEncoder(tmpFile)
	if err := encoder.Encode(c); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encode config: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp config file: %w", err)
	}
	c.configPath = configPath
	return nil
}

// ReadConfig loads the config at cfgPath, or at the default location when
// cfgPath is empty. A missing default file yields an empty config; an
// explicit path must exist.
func ReadConfig(cfgPath string) (c Config, err error) {
	resolvedPath, err := resolveConfigPath(cfgPath)
	if err != nil {
		return Config{}, err
	}

	file, err := os.OpenFile(resolvedPath, os.O_RDONLY, 0644)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{configPath: resolvedPath}, nil
		}
		return Config{}, fmt.Errorf("open config file: %w", err)
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	err = decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	c.configPath = resolvedPath
	return c, nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func resolveConfigPath(cfgPath string) (string, error) {
	if cfgPath == "" {
		return getDefaultConfigPath()
	}
	expanded, err := homedir.Expand(cfgPath)
	if err != nil {
		return "", fmt.Errorf("expand config path: %w", err)
	}
	if !fileExists(expanded) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return expanded, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".morse", "config"), nil
}
