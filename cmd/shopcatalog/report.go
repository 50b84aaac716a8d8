package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nao1215/shopcatalog/internal/model"
	"github.com/nao1215/shopcatalog/internal/report"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [id...]",
		Short: "Print a report of catalog products",
		Long: `Report loads products from the catalog and prints them in the chosen format.
Products are listed in the order of the given identifiers, or in
identifier order when none are given.

Examples:
  # Report every product as text
  shopcatalog report

  # Report two products as XML into a file
  shopcatalog report 3 1 --format xml -o out/products.xml

Configuration file (.shopcatalog) example:
  report:
    format: xml
    title: Products
    xml:
      root: Products
      item: Product
      name: Name
      summary: Summary`,
		Args: cobra.ArbitraryArgs,
		RunE: runReportCmd,
	}

	addReportFlags(cmd)

	return cmd
}

// parseIDs converts command arguments to product identifiers.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid product id %q: %w", arg, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	db, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(ids) == 0 {
		ids, err = db.ListIDs(ctx)
		if err != nil {
			return err
		}
	}

	logger.Info("writing report", "format", cfg.Format, "products", len(ids))

	return writeReport(cmd, cfg, func(w report.Writer) error {
		for _, id := range ids {
			p, err := model.Load(ctx, db, id)
			if err != nil {
				return err
			}
			w.AddProduct(p)
		}
		return nil
	})
}
