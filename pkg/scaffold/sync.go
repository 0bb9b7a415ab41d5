package scaffold

import (
	"fmt"
	"io"
	"strings"
)

// bodyPreviewLen bounds issue body previews in the suggest report
const bodyPreviewLen = 50

// Syncer pushes a catalog onto a remote repository through a Client,
// strictly one call at a time. Item failures are reported inline and
// never abort the batch.
type Syncer struct {
	client  Client
	catalog Catalog
	out     io.Writer
}

// NewSyncer creates a syncer writing its report to out. The client may
// be nil for preview-only use; Suggest never touches it.
func NewSyncer(client Client, catalog Catalog, out io.Writer) *Syncer {
	return &Syncer{
		client:  client,
		catalog: catalog,
		out:     out,
	}
}

// Suggest prints the catalog as a preview report without contacting the
// remote repository at all.
func (s *Syncer) Suggest(repo Repository) {
	fmt.Fprintf(s.out, "Suggestions for %s\n\n", repo)

	fmt.Fprintln(s.out, "Labels:")
	fmt.Fprintf(s.out, "  %-20s %-10s %s\n", "Name", "Color", "Description")
	fmt.Fprintf(s.out, "  %s %s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 10), strings.Repeat("-", 40))
	for _, label := range s.catalog.Labels {
		fmt.Fprintf(s.out, "  %-20s #%-9s %s\n", label.Name, label.Color, label.Description)
	}

	fmt.Fprintln(s.out, "\nIssues:")
	fmt.Fprintf(s.out, "  %-35s %s\n", "Title", "Description")
	fmt.Fprintf(s.out, "  %s %s\n", strings.Repeat("-", 35), strings.Repeat("-", 50))
	for _, issue := range s.catalog.Issues {
		fmt.Fprintf(s.out, "  %-35s %s\n", issue.Title, truncate(issue.Body, bodyPreviewLen))
	}

	fmt.Fprintln(s.out, "\nMilestones:")
	fmt.Fprintf(s.out, "  %-25s %s\n", "Title", "Description")
	fmt.Fprintf(s.out, "  %s %s\n", strings.Repeat("-", 25), strings.Repeat("-", 50))
	for _, milestone := range s.catalog.Milestones {
		fmt.Fprintf(s.out, "  %-25s %s\n", milestone.Title, milestone.Description)
	}
}

// Setup applies the catalog to repo: all labels first (cheap, idempotent
// overwrites), then all milestones, then issues last so the
// existing-title lookup happens closest to its use. Catalog order is
// preserved within each kind. The returned results mirror the printed
// report line for line.
func (s *Syncer) Setup(repo Repository) []Result {
	fmt.Fprintf(s.out, "Setting up project structure for %s\n\n", repo)

	results := s.setupLabels(repo)
	results = append(results, s.setupMilestones(repo)...)
	results = append(results, s.setupIssues(repo)...)

	fmt.Fprintln(s.out, "\nDone!")
	return results
}

func (s *Syncer) setupLabels(repo Repository) []Result {
	fmt.Fprintln(s.out, "Creating labels...")

	results := make([]Result, 0, len(s.catalog.Labels))
	for _, label := range s.catalog.Labels {
		result := Result{Kind: "label", Name: label.Name, Status: StatusCreated}
		if err := s.client.CreateLabel(repo, label); err != nil {
			result.Status = StatusFailed
			result.Message = err.Error()
		}
		results = append(results, s.report(result))
	}
	return results
}

func (s *Syncer) setupMilestones(repo Repository) []Result {
	fmt.Fprintln(s.out, "\nCreating milestones...")

	results := make([]Result, 0, len(s.catalog.Milestones))
	for _, milestone := range s.catalog.Milestones {
		result := Result{Kind: "milestone", Name: milestone.Title, Status: StatusCreated}
		if err := s.client.CreateMilestone(repo, milestone); err != nil {
			// The API has no idempotent create for milestones, so a
			// duplicate only shows up as a failed attempt.
			if IsDuplicate(err) {
				result.Status = StatusSkipped
				result.Message = "already exists"
			} else {
				result.Status = StatusFailed
				result.Message = err.Error()
			}
		}
		results = append(results, s.report(result))
	}
	return results
}

func (s *Syncer) setupIssues(repo Repository) []Result {
	fmt.Fprintln(s.out, "\nCreating issues...")

	// Issue creation has no remote dedup, so fetch existing titles once
	// up front. A failed listing leaves the set empty and each create
	// then stands on its own.
	existing := make(map[string]struct{})
	if titles, err := s.client.ListIssueTitles(repo); err == nil {
		for _, title := range titles {
			existing[title] = struct{}{}
		}
	}

	results := make([]Result, 0, len(s.catalog.Issues))
	for _, issue := range s.catalog.Issues {
		result := Result{Kind: "issue", Name: issue.Title}
		if _, ok := existing[issue.Title]; ok {
			result.Status = StatusSkipped
			result.Message = "already exists"
		} else if url, err := s.client.CreateIssue(repo, issue); err != nil {
			result.Status = StatusFailed
			result.Message = err.Error()
		} else {
			result.Status = StatusCreated
			result.Message = url
		}
		results = append(results, s.report(result))
	}
	return results
}

// report prints the status line for a single item and passes it through
func (s *Syncer) report(result Result) Result {
	switch {
	case result.Status == StatusCreated && result.Message != "":
		fmt.Fprintf(s.out, "  [%s] %s %s\n", result.Status, result.Name, result.Message)
	case result.Status == StatusCreated:
		fmt.Fprintf(s.out, "  [%s] %s\n", result.Status, result.Name)
	default:
		fmt.Fprintf(s.out, "  [%s] %s: %s\n", result.Status, result.Name, result.Message)
	}
	return result
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
