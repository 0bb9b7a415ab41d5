package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ghbootstrap/pkg/config"
	"ghbootstrap/pkg/scaffold"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print suggested labels, issues, and milestones",
	Long: `Print the catalog of labels, starter issues, and release milestones
that setup would create, without contacting GitHub.

Examples:
  ghbootstrap suggest --repo acme/widgets`,
	RunE: runSuggest,
}

func runSuggest(_ *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	repo, err := resolveRepository(cfg)
	if err != nil {
		return err
	}

	// Suggest is a pure preview; no client is needed
	syncer := scaffold.NewSyncer(nil, scaffold.DefaultCatalog(), os.Stdout)
	syncer.Suggest(repo)
	return nil
}
