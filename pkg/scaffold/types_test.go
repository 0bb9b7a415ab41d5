package scaffold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRepository(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Repository
		wantErr bool
	}{
		{
			name:  "valid owner/name",
			input: "acme/widgets",
			want:  Repository{Owner: "acme", Name: "widgets"},
		},
		{
			name:    "missing slash",
			input:   "acme",
			wantErr: true,
		},
		{
			name:    "empty owner",
			input:   "/widgets",
			wantErr: true,
		},
		{
			name:    "empty name",
			input:   "acme/",
			wantErr: true,
		},
		{
			name:    "too many segments",
			input:   "acme/widgets/extra",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := ParseRepository(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "owner/name")
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, repo)
		})
	}
}

func TestRepository_String(t *testing.T) {
	repo := Repository{Owner: "acme", Name: "widgets"}
	assert.Equal(t, "acme/widgets", repo.String())
}
