package scaffold

import (
	"fmt"
	"strings"
)

// Label represents a repository label
type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color"` // 6 hex digits, no leading #
	Description string `json:"description"`
}

// Issue represents a starter issue; the title is the de-duplication key
type Issue struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Milestone represents a release milestone; GitHub enforces title uniqueness
type Milestone struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Repository identifies a GitHub repository by its owner/name pair
type Repository struct {
	Owner string
	Name  string
}

// ParseRepository parses an "owner/name" string into a Repository
func ParseRepository(s string) (Repository, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repository{}, fmt.Errorf("invalid repository %q: expected owner/name format", s)
	}
	return Repository{Owner: parts[0], Name: parts[1]}, nil
}

// String returns the owner/name form expected by the gh CLI
func (r Repository) String() string {
	return r.Owner + "/" + r.Name
}
