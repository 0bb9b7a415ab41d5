package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// DefaultIssueLimit is the page size used when listing existing issues
const DefaultIssueLimit = 100

// runner executes an external command with the given stdin and returns
// its stdout and stderr. It is the seam tests use to intercept gh
// invocations without spawning processes.
type runner func(name, stdin string, args ...string) (stdout, stderr string, err error)

func execRunner(name, stdin string, args ...string) (string, string, error) {
	//nolint:gosec // arguments are passed as an argv, not through a shell
	cmd := exec.Command(name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err := cmd.Run()
	return out.String(), errOut.String(), err
}

// CLIClient implements Client by shelling out to the gh CLI, one process
// at a time. Authentication is whatever gh itself is configured with;
// this client holds no credentials or session state.
type CLIClient struct {
	binary     string
	issueLimit int
	run        runner
}

// NewCLIClient creates a gh-backed client. An empty binary defaults to
// "gh" and a non-positive issue limit defaults to DefaultIssueLimit.
func NewCLIClient(binary string, issueLimit int) *CLIClient {
	if binary == "" {
		binary = "gh"
	}
	if issueLimit <= 0 {
		issueLimit = DefaultIssueLimit
	}
	return &CLIClient{
		binary:     binary,
		issueLimit: issueLimit,
		run:        execRunner,
	}
}

// gh runs a single gh command and returns its trimmed stdout. A non-zero
// exit becomes a CommandError carrying the trimmed stderr text.
func (c *CLIClient) gh(stdin string, args ...string) (string, error) {
	stdout, stderr, err := c.run(c.binary, stdin, args...)
	if err != nil {
		return "", &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr),
			Err:    err,
		}
	}
	return strings.TrimSpace(stdout), nil
}

// CreateLabel creates or overwrites a label. The --force flag makes the
// call converge on the catalog's exact name/color/description triple on
// every run.
func (c *CLIClient) CreateLabel(repo Repository, label Label) error {
	_, err := c.gh("",
		"label", "create", label.Name,
		"--color", label.Color,
		"--description", label.Description,
		"--force",
		"-R", repo.String(),
	)
	return err
}

// CreateMilestone posts through the generic API endpoint since gh has no
// dedicated milestone command. The payload goes in on stdin.
func (c *CLIClient) CreateMilestone(repo Repository, milestone Milestone) error {
	payload, err := json.Marshal(map[string]string{
		"title":       milestone.Title,
		"description": milestone.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to encode milestone payload: %w", err)
	}

	_, err = c.gh(string(payload),
		"api", fmt.Sprintf("repos/%s/milestones", repo),
		"--method", "POST",
		"--input", "-",
	)
	return err
}

// ListIssueTitles returns the titles of existing issues in any state
func (c *CLIClient) ListIssueTitles(repo Repository) ([]string, error) {
	out, err := c.gh("",
		"issue", "list",
		"--state", "all",
		"--limit", strconv.Itoa(c.issueLimit),
		"--json", "title",
		"-R", repo.String(),
	)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var issues []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(out), &issues); err != nil {
		return nil, fmt.Errorf("failed to parse issue list: %w", err)
	}

	titles := make([]string, 0, len(issues))
	for _, issue := range issues {
		titles = append(titles, issue.Title)
	}
	return titles, nil
}

// CreateIssue creates an issue and returns its URL, which gh prints as
// the last line of output.
func (c *CLIClient) CreateIssue(repo Repository, issue Issue) (string, error) {
	out, err := c.gh("",
		"issue", "create",
		"--title", issue.Title,
		"--body", issue.Body,
		"-R", repo.String(),
	)
	if err != nil {
		return "", err
	}
	if out == "" {
		return "", nil
	}
	lines := strings.Split(out, "\n")
	return strings.TrimSpace(lines[len(lines)-1]), nil
}

// Ensure CLIClient implements the Client interface
var _ Client = (*CLIClient)(nil)
