package main

import (
	"context"
	"errors"
	"fmt"

	"alcyxob/exercise-catalog/internal/bootstrap"
	"alcyxob/exercise-catalog/internal/catalog"
	"alcyxob/exercise-catalog/internal/config"
	"alcyxob/exercise-catalog/internal/service"

	"github.com/spf13/cobra"
)

var importDryRun bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the remote catalog with the contents of a .json/.yaml file",
	Long: `Validates the file and replaces every exercise in the configured remote
store (mongo or firestore). Running servers pick the change up on their next reload.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "validate the file without writing")
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	exercises, err := catalog.NewFileSource(args[0]).Fetch(ctx)
	if err != nil {
		return err
	}
	exercises, err = service.ValidateExercises(exercises)
	if err != nil {
		return err
	}
	if importDryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "%d exercises are valid\n", len(exercises))
		return nil
	}

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	deps, err := bootstrap.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	if deps.RemoteErr != nil {
		return fmt.Errorf("remote catalog unavailable: %w", deps.RemoteErr)
	}
	if deps.Repo == nil {
		return errors.New("catalog.source is none, nothing to import into")
	}
	if err := deps.Repo.ReplaceAll(ctx, exercises); err != nil {
		return fmt.Errorf("replace exercises: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "imported %d exercises into %s\n", len(exercises), cfg.Catalog.Source)
	return nil
}
