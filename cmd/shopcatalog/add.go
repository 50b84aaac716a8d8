package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nao1215/shopcatalog/internal/model"
)

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the catalog",
		Long: `Add stores a new product and prints its identifier.

The --type flag selects the variant. "book" requires --pages and "cd"
requires --length; any other type is stored as a generic product.

Examples:
  # Add a generic product
  shopcatalog add --title "Heart of a Dog" --first Mikhail --main Bulgakov --price 5.99

  # Add a book with a discount (books are always sold at full price)
  shopcatalog add --type book --title "The Master" --main Bulgakov --price 9.99 --pages 480 --discount 10

  # Add a CD
  shopcatalog add --type cd --title "Exile" --main Cave --price 12 --length 3600`,
		Args: cobra.NoArgs,
		RunE: runAddCmd,
	}

	cmd.Flags().StringP("type", "t", "generic", "Product type: generic, book or cd")
	cmd.Flags().String("title", "", "Product title (required)")
	cmd.Flags().String("first", "", "Producer first name")
	cmd.Flags().String("main", "", "Producer main name (required)")
	cmd.Flags().String("price", "", "Base price, e.g. 5.99 (required)")
	cmd.Flags().Int("pages", 0, "Page count (books)")
	cmd.Flags().Int("length", 0, "Play length (CDs)")
	cmd.Flags().Int("discount", 0, "Discount percentage")

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("main")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

// productFlags holds the values of the add command flags.
type productFlags struct {
	kind     string
	title    string
	first    string
	main     string
	price    string
	pages    int
	length   int
	discount int
}

// readProductFlags collects the add command flags.
func readProductFlags(cmd *cobra.Command) (productFlags, error) {
	var pf productFlags
	flags := cmd.Flags()

	var errs []error
	var err error
	pf.kind, err = flags.GetString("type")
	errs = append(errs, err)
	pf.title, err = flags.GetString("title")
	errs = append(errs, err)
	pf.first, err = flags.GetString("first")
	errs = append(errs, err)
	pf.main, err = flags.GetString("main")
	errs = append(errs, err)
	pf.price, err = flags.GetString("price")
	errs = append(errs, err)
	pf.pages, err = flags.GetInt("pages")
	errs = append(errs, err)
	pf.length, err = flags.GetInt("length")
	errs = append(errs, err)
	pf.discount, err = flags.GetInt("discount")
	errs = append(errs, err)

	return pf, errors.Join(errs...)
}

// newProduct builds the product variant described by pf.
func newProduct(pf productFlags) (model.Product, error) {
	price, err := decimal.NewFromString(pf.price)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", pf.price, err)
	}

	var p model.Product
	switch model.ParseKind(pf.kind) {
	case model.KindBook:
		p, err = model.NewBookProduct(pf.title, pf.first, pf.main, price, pf.pages)
	case model.KindCD:
		p, err = model.NewCDProduct(pf.title, pf.first, pf.main, price, pf.length)
	default:
		p = model.NewShopProduct(pf.title, pf.first, pf.main, price)
	}
	if err != nil {
		return nil, err
	}

	p.SetDiscount(pf.discount)
	return p, nil
}

// runAddCmd executes the add command.
func runAddCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	pf, err := readProductFlags(cmd)
	if err != nil {
		return err
	}

	p, err := newProduct(pf)
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

	id, err := db.SaveProduct(ctx, p)
	if err != nil {
		return err
	}

	logger.Info("product added", "id", id, "kind", p.Kind(), "title", p.Title())
	fmt.Fprintf(cmd.OutOrStdout(), "Added product %d: %s (price %s)\n", id, p.SummaryLine(), p.Price())

	return nil
}
