package model

import (
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
)

var ptnValidRepoName = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
var ptnValidOwnerLogin = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

// RepositoryTarget identifies the destination repository of a deployment.
// The (Owner, Name) pair must be unique on GitHub; creation fails if it
// already exists.
type RepositoryTarget struct {
	Owner       string `json:"owner" firestore:"owner"`
	Name        string `json:"name" firestore:"name"`
	Private     bool   `json:"private" firestore:"private"`
	Description string `json:"description" firestore:"description"`
}

func (x *RepositoryTarget) Validate() error {
	if !ptnValidOwnerLogin.MatchString(x.Owner) {
		return goerr.Wrap(types.ErrValidationFailed, "invalid owner login", goerr.V("owner", x.Owner))
	}
	if !ptnValidRepoName.MatchString(x.Name) {
		return goerr.Wrap(types.ErrValidationFailed, "invalid repository name", goerr.V("name", x.Name))
	}
	return nil
}

func (x *RepositoryTarget) FullName() string {
	return x.Owner + "/" + x.Name
}

// FileTree maps repository-relative POSIX paths to text file content. It is
// the unit of atomic commit: either every entry lands in one commit or none
// does.
type FileTree map[string]string

// Validate checks that every path is relative, stays inside the repository
// and is unique after normalization.
func (x FileTree) Validate() error {
	seen := make(map[string]string, len(x))
	for p := range x {
		if p == "" || strings.HasPrefix(p, "/") {
			return goerr.Wrap(types.ErrValidationFailed, "file path must be relative", goerr.V("path", p))
		}
		cleaned := path.Clean(p)
		if cleaned == ".." || strings.HasPrefix(cleaned, "../") || cleaned == "." {
			return goerr.Wrap(types.ErrValidationFailed, "file path escapes repository root", goerr.V("path", p))
		}
		if prev, ok := seen[cleaned]; ok {
			return goerr.Wrap(types.ErrValidationFailed, "duplicate file path after normalization",
				goerr.V("path", p),
				goerr.V("conflictsWith", prev),
			)
		}
		seen[cleaned] = p
	}
	return nil
}

// Normalized returns a copy of the tree with cleaned paths. Validate must
// have passed before calling this.
func (x FileTree) Normalized() FileTree {
	out := make(FileTree, len(x))
	for p, content := range x {
		out[path.Clean(p)] = content
	}
	return out
}

// DeployInput is the request of a single deployment attempt.
type DeployInput struct {
	InstallID types.GitHubAppInstallID
	Target    RepositoryTarget
	ThemeID   types.ThemeID
	Content   *ContentModel
}

func (x *DeployInput) Validate() error {
	if x.InstallID == 0 {
		return goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}
	if err := x.Target.Validate(); err != nil {
		return err
	}
	if x.ThemeID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "theme ID is empty")
	}
	if x.Content == nil {
		return goerr.Wrap(types.ErrInvalidOption, "content is empty")
	}
	if err := x.Content.Validate(); err != nil {
		return err
	}
	return nil
}

// DeploymentResult is returned to the caller of one deployment attempt. The
// remote platform stays the source of truth for repository existence; this
// value is advisory.
type DeploymentResult struct {
	ID            types.DeploymentID `json:"id"`
	Status        types.DeployStatus `json:"status"`
	Stage         types.DeployStage  `json:"stage"`
	RepositoryURL string             `json:"repository_url"`
	PagesURL      string             `json:"pages_url"`
	CommitSHA     types.CommitSHA    `json:"commit_sha,omitempty"`
	Warnings      []string           `json:"warnings,omitempty"`
}

// Deployment is the audit record of one deployment attempt, stored when a
// deployment history repository is configured.
type Deployment struct {
	ID            types.DeploymentID       `firestore:"id"`
	CreatedAt     time.Time                `firestore:"created_at"`
	InstallID     types.GitHubAppInstallID `firestore:"install_id"`
	Target        RepositoryTarget         `firestore:"target"`
	ThemeID       types.ThemeID            `firestore:"theme_id"`
	Status        types.DeployStatus       `firestore:"status"`
	Stage         types.DeployStage        `firestore:"stage"`
	RepositoryURL string                   `firestore:"repository_url"`
	PagesURL      string                   `firestore:"pages_url"`
	CommitSHA     types.CommitSHA          `firestore:"commit_sha"`
	Warnings      []string                 `firestore:"warnings"`
	Error         string                   `firestore:"error"`
}

// ThemeInfo describes one installable theme.
type ThemeInfo struct {
	ID          types.ThemeID `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
}
