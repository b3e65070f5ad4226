// Command catalogctl searches, inspects and maintains the exercise catalog
// from the command line, using the same configuration as the server.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"alcyxob/exercise-catalog/internal/bootstrap"
	"alcyxob/exercise-catalog/internal/catalog"
	"alcyxob/exercise-catalog/internal/config"
	"alcyxob/exercise-catalog/internal/domain"
	"alcyxob/exercise-catalog/internal/logging"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configDir   string
	catalogFile string
	logLevel    string
	timeout     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "Exercise catalog command line tool",
	Long: `Search and maintain the exercise catalog.

By default the catalog is loaded through the configured tiers (remote store,
snapshot, local file, embedded seed). Use --file to work on a catalog file only.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(logging.Params{Level: logLevel})
		// stdout carries command output
		log.SetOutput(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "directory containing config.yaml")
	rootCmd.PersistentFlags().StringVarP(&catalogFile, "file", "f", "", "read the catalog from this .json/.yaml file instead of the configured tiers")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "timeout for remote operations")

	rootCmd.AddCommand(searchCmd, facetsCmd, importCmd, exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadCatalog returns the catalog and the name of the tier that served it.
func loadCatalog(ctx context.Context) ([]domain.Exercise, string, error) {
	if catalogFile != "" {
		src := catalog.NewFileSource(catalogFile)
		exercises, err := src.Fetch(ctx)
		return exercises, src.Name(), err
	}

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, "", fmt.Errorf("load config: %w", err)
	}
	deps, err := bootstrap.Connect(ctx, cfg)
	if err != nil {
		return nil, "", err
	}
	defer deps.Close()

	// Queries must not rewrite the snapshot or local cache.
	return deps.ReadOnlyLoader(cfg.Catalog).Load(ctx)
}
