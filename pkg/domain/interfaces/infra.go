package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub SiteRenderer

import (
	"context"

	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
)

// GitHub is the narrow capability surface the deployment pipeline needs from
// the GitHub API. The orchestration core never touches SDK object shapes
// directly; the ghapp adapter implements this.
type GitHub interface {
	// MintInstallationToken exchanges the app credential for a short-lived
	// installation access token.
	MintInstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationAccessToken, error)

	// LookupRepo returns the repository handle, or (nil, nil) when the
	// repository does not exist.
	LookupRepo(ctx context.Context, token types.InstallationToken, owner, name string) (*model.RepoHandle, error)

	// CreateRepo creates an auto-initialized repository. A conflict with an
	// existing repository is reported as types.ErrRepoConflict.
	CreateRepo(ctx context.Context, token types.InstallationToken, target *model.RepositoryTarget) (*model.RepoHandle, error)

	GetBranchHead(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName) (*model.BranchHead, error)
	CreateBlob(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, content string) (types.BlobSHA, error)
	CreateTree(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, base types.TreeSHA, entries []model.TreeEntry) (types.TreeSHA, error)
	CreateCommit(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, message string, tree types.TreeSHA, parent types.CommitSHA) (types.CommitSHA, error)

	// UpdateRef moves the branch ref to commit without force, so the ref can
	// only ever advance.
	UpdateRef(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, commit types.CommitSHA) error

	// EnablePages turns on static hosting for the branch. A branch without
	// commits is reported as types.ErrBranchNotInitialized.
	EnablePages(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, path string) error
}

// SiteRenderer produces the file trees a deployment pushes: the unmodified
// base theme and the personalized overlay rendered from the content model.
type SiteRenderer interface {
	RenderBase(themeID types.ThemeID) (model.FileTree, error)
	RenderContent(themeID types.ThemeID, content *model.ContentModel) (model.FileTree, error)
	Themes() []model.ThemeInfo
}
