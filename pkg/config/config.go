package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v3"
)

// DefaultFormat is the output image format used when the config file does
// not override it.
const DefaultFormat = "png"

// ValidFormats lists the image formats hexcrypt can encode to.
var ValidFormats = []string{"png", "jpg", "jpeg"}

// Preset is a named size specifier that can be passed to --size in place of
// a literal WxH value.
type Preset struct {
	Name string `yaml:"name"`
	Size string `yaml:"size"`
}

type Config struct {
	// OutputFormat is the image format (file extension) used when no
	// explicit output path is given on encryption.
	OutputFormat string    `yaml:"output-format"`
	Presets      []*Preset `yaml:"presets"`
	// configPath is the file path used for reading and writing this config.
	configPath string `yaml:"-"`
}

// Format returns the configured output format, falling back to png.
func (c *Config) Format() string {
	if c == nil || c.OutputFormat == "" {
		return DefaultFormat
	}
	return c.OutputFormat
}

// HasPreset reports whether a preset with the given name exists.
func (c *Config) HasPreset(name string) bool {
	for _, p := range c.Presets {
		if p.Name == name {
			return true
		}
	}
	return false
}

// ResolveSize maps a preset name to its size specifier. A spec that names no
// preset is returned unchanged, so literal WxH values pass through.
func (c *Config) ResolveSize(spec string) string {
	if c == nil {
		return spec
	}
	for _, p := range c.Presets {
		if p.Name == spec {
			return p.Size
		}
	}
	return spec
}

// SetOutputFormat validates and persists the default output format.
func (c *Config) SetOutputFormat(format string) error {
	if !IsValidFormat(format) {
		return fmt.Errorf("unsupported output format %q (expected one of %v)", format, ValidFormats)
	}
	old := c.OutputFormat
	c.OutputFormat = format
	if err := c.Write(); err != nil {
		// "Revert" change to the config struct, either everything is
		// successful or nothing.
		c.OutputFormat = old
		return err
	}
	return nil
}

// IsValidFormat reports whether format is an encodable image format.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
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
	if err := encoder.Encode(&c); err != nil {
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
	return nil
}

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
	err = decoder.Decode(&c)
	if err != nil {
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
	if !fileExists(cfgPath) {
		return "", fmt.Errorf("config file %q does not exist", cfgPath)
	}
	return cfgPath, nil
}

func getDefaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}

	return filepath.Join(home, ".hexcrypt", "config"), nil
}
