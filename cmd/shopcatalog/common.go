package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/shopcatalog/internal/config"
	"github.com/nao1215/shopcatalog/internal/database"
	"github.com/nao1215/shopcatalog/internal/log"
	"github.com/nao1215/shopcatalog/internal/report"
)

// addReportFlags registers the flags shared by commands that print a report.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", string(config.DefaultFormat),
		"Report format: text, xml, json or markdown")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().String("title", report.DefaultTitle,
		"Report title")
	cmd.Flags().Bool("indent", false,
		"Indent XML and JSON output")
	cmd.Flags().Bool("tee", false,
		"With --output, also print the report to stdout")
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	return getGlobalBool(cmd, "verbose")
}

// getGlobalBool reads a persistent bool flag defined on the root command.
// It returns false when the flag does not exist.
func getGlobalBool(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		v, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return v
}

// getGlobalString reads a persistent string flag defined on the root command.
func getGlobalString(cmd *cobra.Command, name string) (string, error) {
	if v, err := cmd.Flags().GetString(name); err == nil {
		return v, nil
	}
	return cmd.Root().PersistentFlags().GetString(name)
}

// setupLogger creates the command logger. Logs go to stderr so they do not
// mix with a report written to stdout.
func setupLogger(cmd *cobra.Command) *slog.Logger {
	if getGlobalBool(cmd, "log-json") {
		return log.NewJSONLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	}
	return log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}

// buildConfig creates a Config from defaults, the configuration file and
// the command flags, in increasing order of precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = getGlobalString(cmd, "config")
	if err != nil {
		return nil, err
	}

	// An explicit path must exist; the default locations are optional.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(file)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	dbDir, err := getGlobalString(cmd, "db")
	if err != nil {
		return nil, err
	}
	if dbDir != "" {
		cfg.DBDir = dbDir
	}

	if err := applyReportFlags(cmd, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

// applyReportFlags copies explicitly set report flags into cfg.
// Commands without report flags leave cfg unchanged.
func applyReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Lookup("format") != nil && flags.Changed("format") {
		raw, err := flags.GetString("format")
		if err != nil {
			return err
		}
		format, err := report.ParseFormat(raw)
		if err != nil {
			return err
		}
		cfg.Format = format
	}

	if flags.Lookup("title") != nil && flags.Changed("title") {
		title, err := flags.GetString("title")
		if err != nil {
			return err
		}
		cfg.Title = title
	}

	if flags.Lookup("indent") != nil && flags.Changed("indent") {
		indent, err := flags.GetBool("indent")
		if err != nil {
			return err
		}
		cfg.Indent = indent
	}

	if flags.Lookup("output") != nil {
		output, err := flags.GetString("output")
		if err != nil {
			return err
		}
		cfg.ReportFile = output
	}

	if flags.Lookup("tee") != nil {
		tee, err := flags.GetBool("tee")
		if err != nil {
			return err
		}
		cfg.Tee = tee
	}

	return nil
}

// openDatabase opens the catalog database configured in cfg.
func openDatabase(cfg *config.Config, logger *slog.Logger) (*database.CatalogDB, error) {
	opts := database.DefaultOptions()
	opts.Logger = logger

	db, err := database.Open(cfg.DBDir, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", "dir", cfg.DBDir)
	return db, nil
}

// openOutput returns the report destination: the configured file, or the
// command output. The returned close function must always be called.
func openOutput(cmd *cobra.Command, cfg *config.Config) (io.Writer, func() error) {
	if cfg.ReportFile == "" {
		return cmd.OutOrStdout(), func() error { return nil }
	}
	f := &lazyFile{path: cfg.ReportFile}
	return f, f.Close
}

// lazyFile creates its file on the first Write, so a report that fails to
// render leaves no file behind.
type lazyFile struct {
	path string
	f    *os.File
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.f == nil {
		dir := filepath.Dir(l.path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return 0, fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.Create(l.path)
		if err != nil {
			return 0, fmt.Errorf("failed to create output file: %w", err)
		}
		l.f = f
	}
	return l.f.Write(p)
}

func (l *lazyFile) Close() error {
	if l.f == nil {
		return nil
	}
	return l.f.Close()
}

// writeReport renders products through the writer selected by cfg.
func writeReport(cmd *cobra.Command, cfg *config.Config, fill func(report.Writer) error) (err error) {
	out, closeOutput := openOutput(cmd, cfg)
	defer func() {
		if cerr := closeOutput(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()

	w, err := report.New(cfg.Format, out, cfg.ReportOptions())
	if err != nil {
		return err
	}
	if cfg.Tee && cfg.ReportFile != "" {
		stdout, err := report.New(cfg.Format, cmd.OutOrStdout(), cfg.ReportOptions())
		if err != nil {
			return err
		}
		w = report.NewMultiWriter(w, stdout)
	}
	if err := fill(w); err != nil {
		return err
	}

	_, err = w.Write()
	return err
}
