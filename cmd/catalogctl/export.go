package main

import (
	"context"
	"fmt"

	"alcyxob/exercise-catalog/internal/catalog"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the current catalog to a .json/.yaml file",
	Long: `Loads the catalog through the configured tiers (or --file) and writes it out.
The output can seed catalog.local_path or be fed back to import.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	exercises, source, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	if err := catalog.NewFileSource(args[0]).Save(ctx, exercises); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "exported %d exercises from %s to %s\n", len(exercises), source, args[0])
	return nil
}
