package config

import (
	"errors"
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"

	"github.com/nao1215/shopcatalog/internal/report"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "shopcatalog"

	// DefaultFormat is the report format used when none is configured.
	DefaultFormat = report.FormatText
)

// Config holds all configuration options for shopcatalog.
// It is populated from defaults, then the configuration file, then CLI
// flags, and passed through the application rather than kept as global state.
type Config struct {
	// DBDir is the directory holding the SQLite database.
	// Defaults to the XDG data directory (~/.local/share/shopcatalog on Linux).
	DBDir string

	// Format selects the report writer.
	Format report.Format

	// Title is the report title. The text writer prints it upper-cased
	// as its header line.
	Title string

	// XMLLabels overrides the element and attribute names of XML reports.
	// Empty fields keep their defaults.
	XMLLabels report.XMLLabels

	// Indent enables indented XML and JSON output.
	Indent bool

	// ReportFile is the output file path for the report.
	// When empty, the report is written to stdout.
	ReportFile string

	// Tee also prints the report to stdout when ReportFile is set.
	Tee bool

	// Verbose enables debug log output.
	Verbose bool

	// ConfigFilePath is the configuration file given on the command line.
	// If empty, .shopcatalog is searched in the current and home directories.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DBDir:     XDGDataDir(),
		Format:    DefaultFormat,
		Title:     report.DefaultTitle,
		XMLLabels: report.DefaultXMLLabels(),
	}
}

// XDGDataDir returns the XDG data directory for shopcatalog.
// On Linux: ~/.local/share/shopcatalog
// On macOS: ~/Library/Application Support/shopcatalog
// On Windows: %LOCALAPPDATA%\shopcatalog
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for shopcatalog.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Apply copies every value set in the configuration file into c.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Database.Dir != "" {
		c.DBDir = f.Database.Dir
	}
	if f.Report.Format != "" {
		// An unknown name is kept as is so that Validate reports it.
		format, err := report.ParseFormat(f.Report.Format)
		if err != nil {
			format = report.Format(f.Report.Format)
		}
		c.Format = format
	}
	if f.Report.Title != "" {
		c.Title = f.Report.Title
	}
	if f.Report.Indent {
		c.Indent = true
	}
	c.XMLLabels = f.Report.XML.Merge(c.XMLLabels)
}

// ReportOptions returns the writer options derived from c.
func (c *Config) ReportOptions() report.Options {
	return report.Options{
		Title:  c.Title,
		Labels: c.XMLLabels,
		Indent: c.Indent,
	}
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.DBDir == "" {
		return ErrNoDatabaseDir
	}

	if !slices.Contains(report.Formats(), c.Format) {
		return ErrInvalidFormat
	}

	if c.Title == "" {
		return ErrEmptyTitle
	}

	if err := c.XMLLabels.Validate(); err != nil {
		return errors.Join(ErrInvalidXMLLabels, err)
	}

	return nil
}
