// Package scaffold bootstraps GitHub repositories with common
// project-management structure. It holds the fixed catalog of labels,
// starter issues, and release milestones, a narrow Client interface over
// the gh CLI, and the Syncer that pushes the catalog onto a repository.
//
// The package includes:
// - Catalog and its default dataset
// - Client interface for the gh operations the syncer needs
// - CLIClient shelling out to the gh executable
// - Syncer implementing the suggest/setup behavior
package scaffold
