package ghapp

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/quickfolio/quickfolio/pkg/domain/interfaces"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/utils/logging"
)

type Client struct {
	appID   types.GitHubAppID
	pem     types.GitHubAppPrivateKey
	baseURL *url.URL
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL overrides the GitHub API endpoint. Used for GitHub Enterprise
// and for tests against a local HTTP server. The URL must end with a slash.
func WithBaseURL(u *url.URL) Option {
	return func(x *Client) {
		x.baseURL = u
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	client := &Client{
		appID: appID,
		pem:   pem,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// buildAppClient returns a client authenticated as the app itself via a
// signed JWT assertion. ghinstallation backdates the issued-at claim to
// tolerate clock skew on GitHub's side.
func (x *Client) buildAppClient() (*github.Client, error) {
	tr := http.DefaultTransport
	itr, err := ghinstallation.NewAppsTransport(tr, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(types.ErrAuth, "failed to create app transport", goerr.V("error", err))
	}
	if x.baseURL != nil {
		itr.BaseURL = strings.TrimSuffix(x.baseURL.String(), "/")
	}

	client := github.NewClient(&http.Client{Transport: itr})
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client, nil
}

// tokenTransport injects the installation token into every request. The
// token is attached here and nowhere else, so it never ends up in logs via
// client options.
type tokenTransport struct {
	token types.InstallationToken
	base  http.RoundTripper
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+string(x.token))
	return x.base.RoundTrip(req)
}

// buildTokenClient returns a client authenticated with an installation token.
func (x *Client) buildTokenClient(token types.InstallationToken) *github.Client {
	client := github.NewClient(&http.Client{
		Transport: &tokenTransport{
			token: token,
			base:  http.DefaultTransport,
		},
	})
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

func (x *Client) MintInstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationAccessToken, error) {
	client, err := x.buildAppClient()
	if err != nil {
		return nil, err
	}

	issuedAt := time.Now()

	// https://docs.github.com/en/rest/apps/apps#create-an-installation-access-token-for-an-app
	tok, resp, err := client.Apps.CreateInstallationToken(ctx, int64(installID), &github.InstallationTokenOptions{})
	if err != nil {
		return nil, goerr.Wrap(types.ErrAuth, "failed to create installation token",
			goerr.V("installID", installID),
			goerr.V("status", httpStatus(resp)),
			goerr.V("error", err.Error()),
		)
	}
	if tok.GetToken() == "" {
		return nil, goerr.Wrap(types.ErrAuth, "installation token response has no token",
			goerr.V("installID", installID),
		)
	}

	logging.From(ctx).Debug("minted installation token",
		slog.Any("installID", installID),
		slog.Time("expiresAt", tok.GetExpiresAt().Time),
	)

	return &model.InstallationAccessToken{
		Token:     types.InstallationToken(tok.GetToken()),
		IssuedAt:  issuedAt,
		ExpiresAt: tok.GetExpiresAt().Time,
	}, nil
}

func (x *Client) LookupRepo(ctx context.Context, token types.InstallationToken, owner, name string) (*model.RepoHandle, error) {
	client := x.buildTokenClient(token)

	repo, resp, err := client.Repositories.Get(ctx, owner, name)
	if err != nil {
		if httpStatus(resp) == http.StatusNotFound {
			return nil, nil
		}
		return nil, goerr.Wrap(types.ErrRepo, "failed to look up repository",
			goerr.V("owner", owner),
			goerr.V("name", name),
			goerr.V("status", httpStatus(resp)),
			goerr.V("error", err.Error()),
		)
	}

	return repoHandle(repo), nil
}

func (x *Client) CreateRepo(ctx context.Context, token types.InstallationToken, target *model.RepositoryTarget) (*model.RepoHandle, error) {
	client := x.buildTokenClient(token)

	// AutoInit gives the default branch an initial commit, which is required
	// before tree-based pushes and pages activation.
	repo := &github.Repository{
		Name:        github.String(target.Name),
		Description: github.String(target.Description),
		Private:     github.Bool(target.Private),
		AutoInit:    github.Bool(true),
	}

	// https://docs.github.com/en/rest/repos/repos#create-a-repository-for-the-authenticated-user
	created, resp, err := client.Repositories.Create(ctx, "", repo)
	if err != nil {
		if httpStatus(resp) == http.StatusUnprocessableEntity && isAlreadyExists(err) {
			return nil, goerr.Wrap(types.ErrRepoConflict, "repository name is taken",
				goerr.V("repo", target.FullName()),
			)
		}
		return nil, goerr.Wrap(types.ErrRepo, "failed to create repository",
			goerr.V("repo", target.FullName()),
			goerr.V("status", httpStatus(resp)),
			goerr.V("error", err.Error()),
		)
	}

	logging.From(ctx).Info("created repository",
		slog.String("repo", created.GetFullName()),
		slog.String("defaultBranch", created.GetDefaultBranch()),
	)

	return repoHandle(created), nil
}

func (x *Client) GetBranchHead(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName) (*model.BranchHead, error) {
	client := x.buildTokenClient(token)

	ref, resp, err := client.Git.GetRef(ctx, repo.Owner, repo.Name, "heads/"+string(branch))
	if err != nil {
		return nil, goerr.Wrap(types.ErrPush, "failed to get branch ref",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", branch),
			goerr.V("status", httpStatus(resp)),
			goerr.V("error", err.Error()),
		)
	}

	commit, resp, err := client.Git.GetCommit(ctx, repo.Owner, repo.Name, ref.GetObject().GetSHA())
	if err != nil {
		return nil, goerr.Wrap(types.ErrPush, "failed to get branch tip commit",
			goerr.V("repo", repo.FullName()),
			goerr.V("sha", ref.GetObject().GetSHA()),
			goerr.V("status", httpStatus(resp)),
			goerr.V("error", err.Error()),
		)
	}

	return &model.BranchHead{
		Commit: types.CommitSHA(commit.GetSHA()),
		Tree:   types.TreeSHA(commit.GetTree().GetSHA()),
	}, nil
}

func (x *Client) CreateBlob(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, content string) (types.BlobSHA, error) {
	client := x.buildTokenClient(token)

	blob, resp, err := client.Git.CreateBlob(ctx, repo.Owner, repo.Name, &github.Blob{
		Content:  github.String(content),
		Encoding: github.String("utf-8"),
	})
	if err != nil {
		return "", goerr.Wrap(types.ErrPush, "failed to create blob",
			goerr.V("repo", repo.FullName()),
			goerr.V("status", httpStatus(resp)),
			goerr.V("error", err.Error()),
		)
	}

	return types.BlobSHA(blob.GetSHA()), nil
}

func (x *Client) CreateTree(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, base types.TreeSHA, entries []model.TreeEntry) (types.TreeSHA, error) {
	client := x.buildTokenClient(token)

	treeEntries := make([]*github.TreeEntry, 0, len(entries))
	for _, e := range entries {
		treeEntries = append(treeEntries, &github.TreeEntry{
			Path: github.String(e.Path),
			Mode: github.String("100644"),
			Type: github.String("blob"),
			SHA:  github.String(string(e.Blob)),
		})
	}

	tree, resp, err := client.Git.CreateTree(ctx, repo.Owner, repo.Name, string(base), treeEntries)
	if err != nil {
		return "", goerr.Wrap(types.ErrPush, "failed to create tree",
			goerr.V("repo", repo.FullName()),
			goerr.V("baseTree", base),
			goerr.V("status", httpStatus(resp)),
			goerr.V("error", err.Error()),
		)
	}

	return types.TreeSHA(tree.GetSHA()), nil
}

func (x *Client) CreateCommit(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, message string, tree types.TreeSHA, parent types.CommitSHA) (types.CommitSHA, error) {
	client := x.buildTokenClient(token)

	commit, resp, err := client.Git.CreateCommit(ctx, repo.Owner, repo.Name, &github.Commit{
		Message: github.String(message),
		Tree:    &github.Tree{SHA: github.String(string(tree))},
		Parents: []*github.Commit{{SHA: github.String(string(parent))}},
	})
	if err != nil {
		return "", goerr.Wrap(types.ErrPush, "failed to create commit",
			goerr.V("repo", repo.FullName()),
			goerr.V("tree", tree),
			goerr.V("parent", parent),
			goerr.V("status", httpStatus(resp)),
			goerr.V("error", err.Error()),
		)
	}

	return types.CommitSHA(commit.GetSHA()), nil
}

func (x *Client) UpdateRef(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, commit types.CommitSHA) error {
	client := x.buildTokenClient(token)

	// force=false: the ref may only advance. A non-fast-forward update is
	// rejected by GitHub and surfaces as a push failure.
	_, resp, err := client.Git.UpdateRef(ctx, repo.Owner, repo.Name, &github.Reference{
		Ref:    github.String("refs/heads/" + string(branch)),
		Object: &github.GitObject{SHA: github.String(string(commit))},
	}, false)
	if err != nil {
		return goerr.Wrap(types.ErrPush, "failed to update branch ref",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", branch),
			goerr.V("commit", commit),
			goerr.V("status", httpStatus(resp)),
			goerr.V("error", err.Error()),
		)
	}

	return nil
}

func (x *Client) EnablePages(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, path string) error {
	client := x.buildTokenClient(token)

	// https://docs.github.com/en/rest/pages/pages#create-a-github-pages-site
	_, resp, err := client.Repositories.EnablePages(ctx, repo.Owner, repo.Name, &github.Pages{
		Source: &github.PagesSource{
			Branch: github.String(string(branch)),
			Path:   github.String(path),
		},
	})
	if err != nil {
		status := httpStatus(resp)
		if (status == http.StatusUnprocessableEntity || status == http.StatusConflict) && isBranchNotInitialized(err) {
			return goerr.Wrap(types.ErrBranchNotInitialized, "cannot enable pages on a branch without commits",
				goerr.V("repo", repo.FullName()),
				goerr.V("branch", branch),
			)
		}
		return goerr.Wrap(types.ErrActivation, "failed to enable pages",
			goerr.V("repo", repo.FullName()),
			goerr.V("branch", branch),
			goerr.V("status", status),
			goerr.V("error", err.Error()),
		)
	}

	logging.From(ctx).Info("enabled pages",
		slog.String("repo", repo.FullName()),
		slog.Any("branch", branch),
	)

	return nil
}

func repoHandle(repo *github.Repository) *model.RepoHandle {
	branch := repo.GetDefaultBranch()
	if branch == "" {
		branch = "main"
	}
	return &model.RepoHandle{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		DefaultBranch: types.BranchName(branch),
		HTMLURL:       repo.GetHTMLURL(),
	}
}

func httpStatus(resp *github.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

func isAlreadyExists(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "already exists")
}

// isBranchNotInitialized matches the validation message GitHub returns when
// pages activation targets a branch that has no commits yet.
func isBranchNotInitialized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "must exist") || strings.Contains(msg, "commit")
}
