package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nao1215/shopcatalog/internal/config"
	"github.com/nao1215/shopcatalog/internal/database"
	"github.com/nao1215/shopcatalog/internal/model"
	"github.com/nao1215/shopcatalog/internal/report"
)

// NewDemoCmd creates the demo command.
func NewDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print a report for built-in sample products",
		Long: `Demo stores sample products in a temporary in-memory database, loads
them back and prints a report. The user's catalog is not touched.

Examples:
  # Print the sample product as text
  shopcatalog demo

  # Include a sample book and CD, as XML
  shopcatalog demo --all --format xml`,
		Args: cobra.NoArgs,
		RunE: runDemoCmd,
	}

	addReportFlags(cmd)
	cmd.Flags().BoolP("all", "a", false, "Include a sample book and CD")

	return cmd
}

// sampleProducts returns the demo products. The first one is always the
// generic "Heart of a Dog"; withVariants adds a discounted book and CD.
func sampleProducts(withVariants bool) ([]model.Product, error) {
	products := []model.Product{
		model.NewShopProduct("Heart of a Dog", "Mikhail", "Bulgakov", decimal.RequireFromString("5.99")),
	}
	if !withVariants {
		return products, nil
	}

	book, err := model.NewBookProduct("The Master and Margarita", "Mikhail", "Bulgakov", decimal.RequireFromString("9.99"), 480)
	if err != nil {
		return nil, err
	}
	book.SetDiscount(10)

	cd, err := model.NewCDProduct("Exile on Main St.", "", "The Rolling Stones", decimal.RequireFromString("10.99"), 4010)
	if err != nil {
		return nil, err
	}
	cd.SetDiscount(10)

	return append(products, book, cd), nil
}

// runDemoCmd executes the demo command.
func runDemoCmd(cmd *cobra.Command, _ []string) error {
	cfg := config.NewConfig()
	if err := applyReportFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	all, err := cmd.Flags().GetBool("all")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := database.OpenMemory(logger)
	if err != nil {
		return err
	}
	defer db.Close()

	samples, err := sampleProducts(all)
	if err != nil {
		return err
	}

	ids := make([]int64, 0, len(samples))
	for _, p := range samples {
		id, err := db.SaveProduct(ctx, p)
		if err != nil {
			return err
		}
		ids = append(ids, id)
	}

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
