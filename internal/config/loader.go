package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nao1215/shopcatalog/internal/report"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".shopcatalog"

// XDGConfigFile is the configuration file name inside XDGConfigDir.
const XDGConfigFile = "config.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .shopcatalog configuration file.
type File struct {
	Database DatabaseSection `yaml:"database,omitempty"`
	Report   ReportSection   `yaml:"report,omitempty"`
}

// DatabaseSection configures the product store.
type DatabaseSection struct {
	// Dir is the directory holding the SQLite database file.
	Dir string `yaml:"dir,omitempty"`
}

// ReportSection configures report rendering.
type ReportSection struct {
	// Format is one of text, xml, json, markdown.
	Format string `yaml:"format,omitempty"`

	// Title is the report title.
	Title string `yaml:"title,omitempty"`

	// Indent enables indented XML and JSON output.
	Indent bool `yaml:"indent,omitempty"`

	// XML overrides the XML element and attribute names.
	XML report.XMLLabels `yaml:"xml,omitempty"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .shopcatalog in the current directory
// 3. Look for .shopcatalog in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), XDGConfigFile)
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	return ""
}
