package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete command.
func NewDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Remove products from the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runDeleteCmd,
	}
}

// runDeleteCmd executes the delete command. It stops at the first
// identifier that does not exist.
func runDeleteCmd(cmd *cobra.Command, args []string) error {
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

	for _, id := range ids {
		if err := db.DeleteProduct(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted product %d\n", id)
	}
	return nil
}
