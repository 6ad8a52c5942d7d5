package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// Deployment error taxonomy. Callers branch on these with errors.Is
	// instead of inspecting messages.
	ErrAuth         = goerr.New("github app authentication failed")
	ErrRepoConflict = goerr.New("repository already exists")
	ErrRepo         = goerr.New("repository operation failed")
	ErrPush         = goerr.New("content push failed")
	ErrActivation   = goerr.New("pages activation failed")

	// ErrBranchNotInitialized is a distinct sub-case of activation failure:
	// the target branch has no commits, which indicates an ordering bug
	// upstream rather than a transient condition.
	ErrBranchNotInitialized = goerr.New("branch has no commits")

	ErrThemeNotFound = goerr.New("theme not found")
)
