package scaffold

// Catalog is the static set of labels, starter issues, and milestones the
// tool wants present on a repository. It is the single source of truth:
// synchronization pushes it one way and never reads remote edits back.
// The catalog is injected into the Syncer at construction so tests can
// substitute a smaller one.
type Catalog struct {
	Labels     []Label
	Issues     []Issue
	Milestones []Milestone
}

// DefaultCatalog returns the standard project-management scaffolding
// applied to new repositories.
func DefaultCatalog() Catalog {
	return Catalog{
		Labels: []Label{
			{Name: "bug", Color: "d73a4a", Description: "Something isn't working"},
			{Name: "feature", Color: "a2eeef", Description: "New feature request"},
			{Name: "enhancement", Color: "84b6eb", Description: "Improvement to existing functionality"},
			{Name: "documentation", Color: "0075ca", Description: "Improvements or additions to documentation"},
			{Name: "good first issue", Color: "7057ff", Description: "Good for newcomers"},
			{Name: "help wanted", Color: "008672", Description: "Extra attention is needed"},
			{Name: "question", Color: "d876e3", Description: "Further information is requested"},
			{Name: "wontfix", Color: "ffffff", Description: "This will not be worked on"},
		},
		Issues: []Issue{
			{Title: "README setup", Body: "Create a comprehensive README with project description, installation instructions, and usage examples."},
			{Title: "Add LICENSE", Body: "Choose and add an appropriate open-source license to the repository."},
			{Title: "Set up CI/CD", Body: "Configure continuous integration and deployment pipelines (e.g. GitHub Actions)."},
			{Title: "Create contributing guidelines", Body: "Add a CONTRIBUTING.md with guidelines for how others can contribute to the project."},
		},
		Milestones: []Milestone{
			{Title: "v0.1 - Initial Setup", Description: "Basic project scaffolding and repository configuration."},
			{Title: "v0.2 - Core Features", Description: "Implement the core functionality of the project."},
			{Title: "v1.0 - First Release", Description: "Stable first public release."},
		},
	}
}
