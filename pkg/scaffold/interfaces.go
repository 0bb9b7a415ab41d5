package scaffold

// Client defines the narrow set of GitHub operations the syncer needs.
// The production implementation shells out to the gh CLI; tests substitute
// a mock so reconciliation logic runs without spawning processes.
type Client interface {
	// CreateLabel creates or overwrites a label on the repository
	CreateLabel(repo Repository, label Label) error

	// CreateMilestone attempts to create a milestone; a duplicate title
	// surfaces as an error carrying the platform's validation signal
	CreateMilestone(repo Repository, milestone Milestone) error

	// ListIssueTitles returns the titles of existing issues, open and closed
	ListIssueTitles(repo Repository) ([]string, error)

	// CreateIssue creates an issue and returns its URL
	CreateIssue(repo Repository, issue Issue) (string, error)
}

// Status represents the outcome of a single catalog item during setup
type Status string

const (
	StatusCreated Status = "ok"
	StatusSkipped Status = "skip"
	StatusFailed  Status = "err"
)

// Result records the per-item outcome of a setup run. Results are
// transient report data, not persisted anywhere.
type Result struct {
	Kind    string `json:"kind"` // label, milestone, or issue
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}
