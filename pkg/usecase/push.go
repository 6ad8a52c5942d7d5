package usecase

import (
	"context"
	"log/slog"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/utils/logging"
)

// pushTree adds one commit on top of the default branch head containing the
// given files. Files absent from the tree keep whatever content the branch
// already holds; nothing is ever removed. All object writes happen before the
// single ref update, so a failure anywhere leaves the branch untouched.
func (x *UseCase) pushTree(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, tree model.FileTree, message string) (types.CommitSHA, error) {
	if len(tree) == 0 {
		return "", nil
	}

	gh := x.clients.GitHub()

	head, err := gh.GetBranchHead(ctx, token, repo, repo.DefaultBranch)
	if err != nil {
		return "", err
	}

	paths := make([]string, 0, len(tree))
	for path := range tree {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	entries := make([]model.TreeEntry, 0, len(paths))
	for _, path := range paths {
		blob, err := gh.CreateBlob(ctx, token, repo, tree[path])
		if err != nil {
			return "", goerr.Wrap(err, "failed to upload file content", goerr.V("path", path))
		}
		entries = append(entries, model.TreeEntry{Path: path, Blob: blob})
	}

	treeSHA, err := gh.CreateTree(ctx, token, repo, head.Tree, entries)
	if err != nil {
		return "", err
	}

	commit, err := gh.CreateCommit(ctx, token, repo, message, treeSHA, head.Commit)
	if err != nil {
		return "", err
	}

	if err := gh.UpdateRef(ctx, token, repo, repo.DefaultBranch, commit); err != nil {
		return "", err
	}

	logging.From(ctx).Info("pushed commit",
		slog.String("repo", repo.FullName()),
		slog.Any("commit", commit),
		slog.Int("files", len(paths)),
	)

	return commit, nil
}
