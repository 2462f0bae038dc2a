package action

import "regexp"

// Validation messages shown under the input.
const (
	MessageEmptyURL   = "Please enter a GitHub repository URL"
	MessageInvalidURL = "Please enter a valid GitHub repository URL (https://github.com/username/repo.git)"
)

var repoURLPattern = regexp.MustCompile(`^https://github\.com/[\w-]+/[\w-]+\.git$`)

// ValidateRepoURL checks url in order: non-empty, then the exact
// https://github.com/<owner>/<repo>.git shape. The input is not trimmed.
func ValidateRepoURL(url string) error {
	if url == "" {
		return &ValidationError{Code: CodeEmptyURL, Message: MessageEmptyURL}
	}
	if !repoURLPattern.MatchString(url) {
		return &ValidationError{Code: CodeInvalidURL, Message: MessageInvalidURL}
	}
	return nil
}
