package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"alcyxob/exercise-catalog/internal/catalog"
	"alcyxob/exercise-catalog/internal/domain"

	"github.com/spf13/cobra"
)

var (
	searchCategory  string
	searchEquipment []string
	searchMuscle    string
	searchJSON      bool
)

var searchCmd = &cobra.Command{
	Use:   "search [term]",
	Short: "Search exercises by text, category, equipment and primary muscle",
	Example: `  catalogctl search press --equipment barbell,bench
  catalogctl search --category cardio --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchCategory, "category", "c", "", "exact category")
	searchCmd.Flags().StringSliceVarP(&searchEquipment, "equipment", "e", nil, "required equipment, all must be present")
	searchCmd.Flags().StringVarP(&searchMuscle, "muscle", "m", "", "exact primary muscle")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print full records as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	exercises, _, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	filter := domain.SearchFilter{
		Category:      searchCategory,
		Equipment:     searchEquipment,
		PrimaryMuscle: searchMuscle,
	}
	if len(args) == 1 {
		filter.SearchTerm = args[0]
	}

	matches := catalog.Filter(exercises, filter)
	out := cmd.OutOrStdout()

	if searchJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(matches)
	}

	for _, ex := range matches {
		equipment := "none"
		if len(ex.Equipment) > 0 {
			equipment = strings.Join(ex.Equipment, ", ")
		}
		fmt.Fprintf(out, "%-28s %-12s %-28s %s\n", ex.Name, ex.Category, strings.Join(ex.PrimaryMuscles, ", "), equipment)
	}
	fmt.Fprintf(out, "%d of %d exercises\n", len(matches), len(exercises))
	return nil
}
