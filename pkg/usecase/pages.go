package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/utils/logging"
)

// activatePages enables pages hosting for the default branch and returns the
// site URL. The URL is derived from owner and repository name, not read back
// from the API, so it is available even while the platform is still
// provisioning the site.
func (x *UseCase) activatePages(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, path string) (string, error) {
	if err := x.clients.GitHub().EnablePages(ctx, token, repo, branch, path); err != nil {
		return "", err
	}

	url := pagesURL(repo.Owner, repo.Name)

	logging.From(ctx).Info("pages activated",
		slog.String("repo", repo.FullName()),
		slog.String("pagesURL", url),
	)

	return url, nil
}

func pagesURL(owner, name string) string {
	return fmt.Sprintf("https://%s.github.io/%s/", strings.ToLower(owner), name)
}
