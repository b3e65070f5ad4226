package main

import (
	"context"

	"alcyxob/exercise-catalog/internal/catalog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "List the distinct categories, equipment and primary muscles",
	Args:  cobra.NoArgs,
	RunE:  runFacets,
}

func runFacets(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	exercises, source, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	facets := catalog.ExtractFacets(exercises)
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()

	return enc.Encode(map[string]interface{}{
		"source":         source,
		"categories":     facets.Categories,
		"equipment":      facets.Equipment,
		"primaryMuscles": facets.PrimaryMuscles,
	})
}
