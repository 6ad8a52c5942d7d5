package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/utils/errutil"
	"github.com/quickfolio/quickfolio/pkg/utils/logging"
)

const (
	baseCommitMessage    = "Initial portfolio setup from template"
	contentCommitMessage = "Update portfolio content"

	pagesRootPath = "/"

	// Installation tokens are treated as valid for at most this long, minus
	// the skew buffer, regardless of the TTL the platform reports.
	tokenMaxLifetime = 10 * time.Minute
	tokenClockSkew   = time.Minute
)

// DeployPortfolio runs one deployment attempt: mint a token, create the
// repository, push the base theme, enable pages, then push the personalized
// content as a second commit. Stages up to and including the base push are
// all-or-nothing; later stages degrade to warnings. The returned result is
// populated even on failure so callers always learn whether a repository now
// exists at the target.
func (x *UseCase) DeployPortfolio(ctx context.Context, input *model.DeployInput) (*model.DeploymentResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result := &model.DeploymentResult{
		ID:     types.NewDeploymentID(),
		Status: types.DeployStatusFailed,
		Stage:  types.StageAuth,
	}

	logger := logging.From(ctx).With(
		slog.Any("deploymentID", result.ID),
		slog.String("repo", input.Target.FullName()),
		slog.Any("theme", input.ThemeID),
	)
	ctx = logging.With(ctx, logger)

	// Render both trees before the first remote call: a render failure must
	// not leave a half-provisioned repository behind.
	baseTree, err := x.renderTree(func() (model.FileTree, error) {
		return x.clients.Renderer().RenderBase(input.ThemeID)
	})
	if err != nil {
		return nil, err
	}
	contentTree, err := x.renderTree(func() (model.FileTree, error) {
		return x.clients.Renderer().RenderContent(input.ThemeID, input.Content)
	})
	if err != nil {
		return nil, err
	}

	deployErr := x.runPipeline(ctx, input, baseTree, contentTree, result)
	x.recordDeployment(ctx, input, result, deployErr)

	if deployErr != nil {
		return result, deployErr
	}

	logger.Info("deployment finished",
		slog.Any("status", result.Status),
		slog.String("repositoryURL", result.RepositoryURL),
		slog.String("pagesURL", result.PagesURL),
		slog.Int("warnings", len(result.Warnings)),
	)

	return result, nil
}

func (x *UseCase) renderTree(render func() (model.FileTree, error)) (model.FileTree, error) {
	tree, err := render()
	if err != nil {
		return nil, err
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	return tree.Normalized(), nil
}

func (x *UseCase) runPipeline(ctx context.Context, input *model.DeployInput, baseTree, contentTree model.FileTree, result *model.DeploymentResult) error {
	token, err := x.mintToken(ctx, input.InstallID)
	if err != nil {
		return err
	}

	result.Stage = types.StageProvision
	repo, err := x.provisionRepo(ctx, token.Token, &input.Target)
	if err != nil {
		return err
	}
	result.RepositoryURL = repo.HTMLURL

	result.Stage = types.StageBasePush
	commit, err := x.pushTree(ctx, token.Token, repo, baseTree, baseCommitMessage)
	if err != nil {
		// The repository now exists without hosting enabled. The result
		// carries the repository URL so the caller is told about the
		// partial side effect.
		return err
	}
	result.CommitSHA = commit

	if repo.Reused {
		result.Status = types.DeployStatusReused
	} else {
		result.Status = types.DeployStatusCreated
	}

	result.Stage = types.StagePages
	pagesURL, err := x.activatePages(ctx, token.Token, repo, repo.DefaultBranch, pagesRootPath)
	if err != nil {
		// The repository holds the base content; degrade instead of
		// aborting. The personalized push is skipped because its ordering
		// depends on activation.
		result.Status = types.DeployStatusPartial
		result.Warnings = append(result.Warnings,
			"pages activation failed: "+err.Error(),
			"personalized content push skipped",
		)
		errutil.HandleError(ctx, "pages activation failed", err)
		return nil
	}
	result.PagesURL = pagesURL

	result.Stage = types.StageContentPush
	if commit, err := x.pushTree(ctx, token.Token, repo, contentTree, contentCommitMessage); err != nil {
		// The base theme is already live; a failed personalization commit
		// must not invalidate it.
		result.Warnings = append(result.Warnings, "personalized content push failed: "+err.Error())
		errutil.HandleError(ctx, "personalized content push failed", err)
	} else if commit != "" {
		result.CommitSHA = commit
	}

	result.Stage = types.StageDone
	return nil
}

// mintToken obtains a fresh installation token for this attempt. Tokens are
// never cached across attempts.
func (x *UseCase) mintToken(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationAccessToken, error) {
	token, err := x.clients.GitHub().MintInstallationToken(ctx, installID)
	if err != nil {
		return nil, err
	}

	if !token.ExpiresAt.After(token.IssuedAt) {
		return nil, goerr.Wrap(types.ErrAuth, "installation token is already expired",
			goerr.V("issuedAt", token.IssuedAt),
			goerr.V("expiresAt", token.ExpiresAt),
		)
	}

	// Clamp the expiry so downstream never relies on a token older than the
	// short-lived window, even when the platform grants a longer TTL.
	if limit := token.IssuedAt.Add(tokenMaxLifetime - tokenClockSkew); token.ExpiresAt.After(limit) {
		token.ExpiresAt = limit
	}

	return token, nil
}
