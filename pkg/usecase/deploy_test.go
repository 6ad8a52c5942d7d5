package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/quickfolio/quickfolio/pkg/domain/mock"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/infra"
	"github.com/quickfolio/quickfolio/pkg/usecase"
)

func validInput() *model.DeployInput {
	return &model.DeployInput{
		InstallID: 12345,
		Target: model.RepositoryTarget{
			Owner: "OctoCat",
			Name:  "portfolio",
		},
		ThemeID: "lynx",
		Content: &model.ContentModel{
			Profile: model.Profile{
				Name:     "Octo Cat",
				Headline: "Staff Cat",
			},
			Links: []model.Link{
				{Text: "GitHub", URL: "github.com/octocat"},
			},
		},
	}
}

func testRepoHandle() *model.RepoHandle {
	return &model.RepoHandle{
		Owner:         "OctoCat",
		Name:          "portfolio",
		DefaultBranch: "main",
		HTMLURL:       "https://github.com/OctoCat/portfolio",
	}
}

// newGitHubMock returns a mock wired for the happy path: the repository does
// not exist yet and every remote call succeeds.
func newGitHubMock() *mock.GitHubMock {
	var blobSeq int
	return &mock.GitHubMock{
		MintInstallationTokenFunc: func(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationAccessToken, error) {
			now := time.Now()
			return &model.InstallationAccessToken{
				Token:     "ghs_dummy",
				IssuedAt:  now,
				ExpiresAt: now.Add(time.Hour),
			}, nil
		},
		LookupRepoFunc: func(ctx context.Context, token types.InstallationToken, owner, name string) (*model.RepoHandle, error) {
			return nil, nil
		},
		CreateRepoFunc: func(ctx context.Context, token types.InstallationToken, target *model.RepositoryTarget) (*model.RepoHandle, error) {
			return testRepoHandle(), nil
		},
		GetBranchHeadFunc: func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName) (*model.BranchHead, error) {
			return &model.BranchHead{Commit: "c0ffee", Tree: "7ea7ea"}, nil
		},
		CreateBlobFunc: func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, content string) (types.BlobSHA, error) {
			blobSeq++
			return types.BlobSHA(string(rune('a' + blobSeq))), nil
		},
		CreateTreeFunc: func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, base types.TreeSHA, entries []model.TreeEntry) (types.TreeSHA, error) {
			return "deadbeef", nil
		},
		CreateCommitFunc: func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, message string, tree types.TreeSHA, parent types.CommitSHA) (types.CommitSHA, error) {
			return types.CommitSHA("sha-" + message[:4]), nil
		},
		UpdateRefFunc: func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, commit types.CommitSHA) error {
			return nil
		},
		EnablePagesFunc: func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, path string) error {
			return nil
		},
	}
}

func TestDeployCreate(t *testing.T) {
	ghMock := newGitHubMock()
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	result := gt.R1(uc.DeployPortfolio(context.Background(), validInput())).NoError(t)

	gt.V(t, result.Status).Equal(types.DeployStatusCreated)
	gt.V(t, result.Stage).Equal(types.StageDone)
	gt.V(t, result.RepositoryURL).Equal("https://github.com/OctoCat/portfolio")
	gt.V(t, result.PagesURL).Equal("https://octocat.github.io/portfolio/")
	gt.A(t, result.Warnings).Length(0)

	// base push and personalized push are two separate commits
	gt.A(t, ghMock.UpdateRefCalls()).Length(2)
	gt.A(t, ghMock.CreateRepoCalls()).Length(1)
	gt.A(t, ghMock.EnablePagesCalls()).Length(1)
}

func TestDeployStrictConflict(t *testing.T) {
	ghMock := newGitHubMock()
	ghMock.LookupRepoFunc = func(ctx context.Context, token types.InstallationToken, owner, name string) (*model.RepoHandle, error) {
		return testRepoHandle(), nil
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	result, err := uc.DeployPortfolio(context.Background(), validInput())
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrRepoConflict)).True()

	gt.V(t, result.Status).Equal(types.DeployStatusFailed)
	gt.V(t, result.Stage).Equal(types.StageProvision)

	// strict mode must not attempt creation or any push
	gt.A(t, ghMock.CreateRepoCalls()).Length(0)
	gt.A(t, ghMock.UpdateRefCalls()).Length(0)
}

func TestDeployReuseExisting(t *testing.T) {
	ghMock := newGitHubMock()
	ghMock.LookupRepoFunc = func(ctx context.Context, token types.InstallationToken, owner, name string) (*model.RepoHandle, error) {
		return testRepoHandle(), nil
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)), usecase.WithReuseOnConflict())

	result := gt.R1(uc.DeployPortfolio(context.Background(), validInput())).NoError(t)

	gt.V(t, result.Status).Equal(types.DeployStatusReused)
	gt.V(t, result.Stage).Equal(types.StageDone)
	gt.A(t, ghMock.CreateRepoCalls()).Length(0)
	gt.A(t, ghMock.UpdateRefCalls()).Length(2)
}

func TestDeployCreateRaceConverges(t *testing.T) {
	// Lookup misses, creation hits a conflict from a concurrent deployment,
	// and the retry lookup finds the repository.
	ghMock := newGitHubMock()
	var lookups int
	ghMock.LookupRepoFunc = func(ctx context.Context, token types.InstallationToken, owner, name string) (*model.RepoHandle, error) {
		lookups++
		if lookups == 1 {
			return nil, nil
		}
		return testRepoHandle(), nil
	}
	ghMock.CreateRepoFunc = func(ctx context.Context, token types.InstallationToken, target *model.RepositoryTarget) (*model.RepoHandle, error) {
		return nil, goerr.Wrap(types.ErrRepoConflict, "repository name is taken")
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)), usecase.WithReuseOnConflict())

	result := gt.R1(uc.DeployPortfolio(context.Background(), validInput())).NoError(t)

	gt.V(t, result.Status).Equal(types.DeployStatusReused)
	gt.V(t, lookups).Equal(2)
}

func TestDeployPagesActivationFailure(t *testing.T) {
	ghMock := newGitHubMock()
	ghMock.EnablePagesFunc = func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, path string) error {
		return goerr.Wrap(types.ErrActivation, "failed to enable pages")
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	result := gt.R1(uc.DeployPortfolio(context.Background(), validInput())).NoError(t)

	gt.V(t, result.Status).Equal(types.DeployStatusPartial)
	gt.V(t, result.RepositoryURL).Equal("https://github.com/OctoCat/portfolio")
	gt.V(t, result.PagesURL).Equal("")
	gt.A(t, result.Warnings).Length(2)

	// personalized content push is skipped, only the base commit landed
	gt.A(t, ghMock.UpdateRefCalls()).Length(1)
}

func TestDeployPersonalizedPushFailure(t *testing.T) {
	ghMock := newGitHubMock()
	var pushes int
	ghMock.UpdateRefFunc = func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, commit types.CommitSHA) error {
		pushes++
		if pushes > 1 {
			return goerr.Wrap(types.ErrPush, "non-fast-forward")
		}
		return nil
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	result := gt.R1(uc.DeployPortfolio(context.Background(), validInput())).NoError(t)

	// the base site is live, so a failed personalization is only a warning
	gt.V(t, result.Status).Equal(types.DeployStatusCreated)
	gt.V(t, result.Stage).Equal(types.StageDone)
	gt.A(t, result.Warnings).Length(1)
}

func TestDeployBasePushFailureIsFatal(t *testing.T) {
	ghMock := newGitHubMock()
	ghMock.UpdateRefFunc = func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, commit types.CommitSHA) error {
		return goerr.Wrap(types.ErrPush, "non-fast-forward")
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	result, err := uc.DeployPortfolio(context.Background(), validInput())
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrPush)).True()

	gt.V(t, result.Status).Equal(types.DeployStatusFailed)
	gt.V(t, result.Stage).Equal(types.StageBasePush)
	// the repository was created before the failure; the caller must learn
	// about the partial side effect
	gt.V(t, result.RepositoryURL).Equal("https://github.com/OctoCat/portfolio")
	gt.A(t, ghMock.EnablePagesCalls()).Length(0)
}

func TestDeployMidPushFailureLeavesRefUntouched(t *testing.T) {
	// A failure after blobs are uploaded but before the ref update must not
	// touch the branch: orphaned objects are acceptable, a moved ref is not.
	ghMock := newGitHubMock()
	ghMock.CreateTreeFunc = func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, base types.TreeSHA, entries []model.TreeEntry) (types.TreeSHA, error) {
		return "", goerr.Wrap(types.ErrPush, "failed to create tree")
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	result, err := uc.DeployPortfolio(context.Background(), validInput())
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrPush)).True()

	gt.V(t, result.Status).Equal(types.DeployStatusFailed)
	gt.V(t, result.Stage).Equal(types.StageBasePush)

	// blobs were uploaded, but no commit was created and the ref never moved
	gt.B(t, len(ghMock.CreateBlobCalls()) > 0).True()
	gt.A(t, ghMock.CreateCommitCalls()).Length(0)
	gt.A(t, ghMock.UpdateRefCalls()).Length(0)
}

func TestDeployEmptyTreesSkipRemoteWrites(t *testing.T) {
	ghMock := newGitHubMock()
	renderer := &mock.SiteRendererMock{
		RenderBaseFunc: func(themeID types.ThemeID) (model.FileTree, error) {
			return model.FileTree{}, nil
		},
		RenderContentFunc: func(themeID types.ThemeID, content *model.ContentModel) (model.FileTree, error) {
			return model.FileTree{}, nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock), infra.WithRenderer(renderer)))

	result := gt.R1(uc.DeployPortfolio(context.Background(), validInput())).NoError(t)

	gt.V(t, result.Status).Equal(types.DeployStatusCreated)
	gt.V(t, result.CommitSHA).Equal(types.CommitSHA(""))
	gt.A(t, ghMock.CreateBlobCalls()).Length(0)
	gt.A(t, ghMock.CreateCommitCalls()).Length(0)
	gt.A(t, ghMock.UpdateRefCalls()).Length(0)
}

func TestDeployAuthFailure(t *testing.T) {
	ghMock := newGitHubMock()
	ghMock.MintInstallationTokenFunc = func(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationAccessToken, error) {
		return nil, goerr.Wrap(types.ErrAuth, "bad credentials")
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	result, err := uc.DeployPortfolio(context.Background(), validInput())
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrAuth)).True()
	gt.V(t, result.Stage).Equal(types.StageAuth)
	gt.A(t, ghMock.LookupRepoCalls()).Length(0)
}

func TestDeployInvalidInput(t *testing.T) {
	ghMock := newGitHubMock()
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	input := validInput()
	input.Target.Name = "no/slash"

	_, err := uc.DeployPortfolio(context.Background(), input)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrValidationFailed)).True()
	gt.A(t, ghMock.MintInstallationTokenCalls()).Length(0)
}

func TestDeployRecordsHistory(t *testing.T) {
	ghMock := newGitHubMock()
	ghMock.EnablePagesFunc = func(ctx context.Context, token types.InstallationToken, repo *model.RepoHandle, branch types.BranchName, path string) error {
		return goerr.Wrap(types.ErrBranchNotInitialized, "cannot enable pages on a branch without commits")
	}

	var records []*model.Deployment
	repoMock := &mock.DeploymentRepositoryMock{
		PutDeploymentFunc: func(ctx context.Context, deployment *model.Deployment) error {
			records = append(records, deployment)
			return nil
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock), infra.WithDeployments(repoMock)))

	result := gt.R1(uc.DeployPortfolio(context.Background(), validInput())).NoError(t)

	gt.A(t, records).Length(1)
	gt.V(t, records[0].ID).Equal(result.ID)
	gt.V(t, records[0].Status).Equal(types.DeployStatusPartial)
	gt.V(t, records[0].Target.FullName()).Equal("OctoCat/portfolio")
}

func TestDeployHistoryWriteFailureIsAdvisory(t *testing.T) {
	ghMock := newGitHubMock()
	repoMock := &mock.DeploymentRepositoryMock{
		PutDeploymentFunc: func(ctx context.Context, deployment *model.Deployment) error {
			return errors.New("firestore unavailable")
		},
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock), infra.WithDeployments(repoMock)))

	result := gt.R1(uc.DeployPortfolio(context.Background(), validInput())).NoError(t)
	gt.V(t, result.Status).Equal(types.DeployStatusCreated)
}

func TestMintTokenClampsExpiry(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	ghMock := newGitHubMock()
	ghMock.MintInstallationTokenFunc = func(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationAccessToken, error) {
		return &model.InstallationAccessToken{
			Token:     "ghs_dummy",
			IssuedAt:  issued,
			ExpiresAt: issued.Add(time.Hour),
		}, nil
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	token := gt.R1(uc.MintToken(context.Background(), 12345)).NoError(t)

	// expiry is clamped to the short-lived window minus the skew buffer
	gt.V(t, token.ExpiresAt).Equal(issued.Add(9 * time.Minute))
	gt.B(t, token.ExpiresAt.After(token.IssuedAt)).True()
	gt.B(t, token.ExpiresAt.Before(issued.Add(10*time.Minute))).True()
}

func TestMintTokenRejectsExpired(t *testing.T) {
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	ghMock := newGitHubMock()
	ghMock.MintInstallationTokenFunc = func(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationAccessToken, error) {
		return &model.InstallationAccessToken{
			Token:     "ghs_dummy",
			IssuedAt:  issued,
			ExpiresAt: issued.Add(-time.Minute),
		}, nil
	}
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	_, err := uc.MintToken(context.Background(), 12345)
	gt.Error(t, err)
	gt.B(t, errors.Is(err, types.ErrAuth)).True()
}

func TestPagesURL(t *testing.T) {
	gt.V(t, usecase.PagesURL("OctoCat", "portfolio")).Equal("https://octocat.github.io/portfolio/")
	gt.V(t, usecase.PagesURL("alice", "alice.github.io")).Equal("https://alice.github.io/alice.github.io/")
}
