package action

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestValidateRepoURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want error
	}{
		{"valid", "https://github.com/alice/myrepo.git", nil},
		{"hyphen and underscore", "https://github.com/my-org/my_repo-2.git", nil},
		{"empty", "", ErrEmptyURL},
		{"wrong scheme", "http://github.com/alice/myrepo.git", ErrInvalidURL},
		{"space in repo", "https://github.com/alice/my repo.git", ErrInvalidURL},
		{"missing .git", "https://github.com/alice/myrepo", ErrInvalidURL},
		{"other host", "https://gitlab.com/alice/myrepo.git", ErrInvalidURL},
		{"nested path", "https://github.com/alice/team/myrepo.git", ErrInvalidURL},
		{"dot in repo", "https://github.com/alice/my.repo.git", ErrInvalidURL},
		{"leading whitespace", " https://github.com/alice/myrepo.git", ErrInvalidURL},
		{"trailing newline", "https://github.com/alice/myrepo.git\n", ErrInvalidURL},
		{"only spaces", "   ", ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateRepoURL(tt.url)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateRepoURL_Messages(t *testing.T) {
	t.Parallel()

	assert.EqualError(t, ValidateRepoURL(""), "Please enter a GitHub repository URL")
	assert.EqualError(t, ValidateRepoURL("nope"),
		"Please enter a valid GitHub repository URL (https://github.com/username/repo.git)")
}

func TestValidateRepoURL_AcceptsWellFormed(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		owner := rapid.StringMatching(`[A-Za-z0-9_-]{1,20}`).Draw(t, "owner")
		repo := rapid.StringMatching(`[A-Za-z0-9_-]{1,20}`).Draw(t, "repo")

		url := "https://github.com/" + owner + "/" + repo + ".git"
		if err := ValidateRepoURL(url); err != nil {
			t.Fatalf("ValidateRepoURL(%q) = %v, want nil", url, err)
		}
	})
}

func TestValidateRepoURL_NonEmptyMismatchUsesFormatMessage(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Filter(func(s string) bool {
			return s != "" && !repoURLPattern.MatchString(s)
		}).Draw(t, "input")

		err := ValidateRepoURL(s)
		var v *ValidationError
		if !errors.As(err, &v) {
			t.Fatalf("ValidateRepoURL(%q) = %v, want ValidationError", s, err)
		}
		if v.Code != CodeInvalidURL || v.Message != MessageInvalidURL {
			t.Fatalf("ValidateRepoURL(%q) = %+v, want invalid URL", s, v)
		}
	})
}

func TestValidationError_Is(t *testing.T) {
	t.Parallel()

	err := ValidateRepoURL("")
	assert.ErrorIs(t, err, ErrEmptyURL)
	assert.NotErrorIs(t, err, ErrInvalidURL)
	assert.True(t, IsValidation(err))
	assert.False(t, IsValidation(errors.New("x")))
}
