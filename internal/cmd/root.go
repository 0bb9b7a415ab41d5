package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ghbootstrap/pkg/config"
	"ghbootstrap/pkg/scaffold"
)

var repoFlag string

var rootCmd = &cobra.Command{
	Use:   "ghbootstrap",
	Short: "Bootstrap GitHub repos with common project management structure",
	Long: `Ghbootstrap seeds a GitHub repository with a standard set of labels,
starter issues, and release milestones through the gh CLI. Use suggest to
preview the catalog, then setup to apply it to a repository.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", "", "Target GitHub repository in owner/name format")
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(initCmd)
}

// resolveRepository picks the target repository from the --repo flag,
// falling back to the configured default.
func resolveRepository(cfg *config.Config) (scaffold.Repository, error) {
	spec := repoFlag
	if spec == "" {
		spec = cfg.GitHub.Repo
	}
	if spec == "" {
		return scaffold.Repository{}, fmt.Errorf("repository not specified: use --repo or set github.repo in config")
	}
	return scaffold.ParseRepository(spec)
}
