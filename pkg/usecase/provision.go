package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/utils/logging"
)

// provisionRepo creates the target repository, or resolves what to do when it
// already exists. Lookup runs first so the common conflict case is reported
// without a create attempt; a create-time conflict can still happen when two
// deployments race, and converges with the found-on-lookup path.
func (x *UseCase) provisionRepo(ctx context.Context, token types.InstallationToken, target *model.RepositoryTarget) (*model.RepoHandle, error) {
	gh := x.clients.GitHub()

	existing, err := gh.LookupRepo(ctx, token, target.Owner, target.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return x.resolveConflict(ctx, existing, target)
	}

	created, err := gh.CreateRepo(ctx, token, target)
	if err != nil {
		if errors.Is(err, types.ErrRepoConflict) {
			// Lost the race against a concurrent deployment of the same
			// target. Re-read the repository and treat it like a lookup hit.
			existing, lookupErr := gh.LookupRepo(ctx, token, target.Owner, target.Name)
			if lookupErr == nil && existing != nil {
				return x.resolveConflict(ctx, existing, target)
			}
		}
		return nil, err
	}

	return created, nil
}

func (x *UseCase) resolveConflict(ctx context.Context, existing *model.RepoHandle, target *model.RepositoryTarget) (*model.RepoHandle, error) {
	if !x.reuseOnConflict {
		return nil, goerr.Wrap(types.ErrRepoConflict, "repository already exists",
			goerr.V("repo", target.FullName()),
		)
	}

	logging.From(ctx).Info("reusing existing repository",
		slog.String("repo", existing.FullName()),
		slog.Any("defaultBranch", existing.DefaultBranch),
	)

	existing.Reused = true
	return existing, nil
}
