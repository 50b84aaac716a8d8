package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for shopcatalog.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shopcatalog",
		Short: "Product catalog with pricing and reports",
		Long: `shopcatalog stores products (generic items, books and CDs) in a SQLite
database and renders reports about them as text, XML, JSON or Markdown.

Books are always sold at their base price. Other products apply their
stored discount percentage.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	cmd.PersistentFlags().String("db", "",
		"Database directory (default: XDG data directory)")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .shopcatalog in current or home directory)")

	cmd.AddCommand(NewDemoCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
