package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ghbootstrap/pkg/config"
	"ghbootstrap/pkg/scaffold"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Apply suggested labels, issues, and milestones to a repo",
	Long: `Apply the catalog to a repository via the gh CLI: labels are created
or overwritten, milestones are created unless they already exist, and
issues are created unless an issue with the same title exists in any
state. Every item prints one status line tagged [ok], [skip], or [err].

Authentication is handled entirely by gh; run "gh auth login" first.

Examples:
  ghbootstrap setup --repo acme/widgets`,
	RunE: runSetup,
}

func runSetup(_ *cobra.Command, _ []string) error {
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

	client := scaffold.NewCLIClient(cfg.GitHub.Binary, cfg.GitHub.IssueLimit)
	syncer := scaffold.NewSyncer(client, scaffold.DefaultCatalog(), os.Stdout)

	// Per-item failures are reported inline and deliberately do not
	// change the process exit status.
	syncer.Setup(repo)
	return nil
}
