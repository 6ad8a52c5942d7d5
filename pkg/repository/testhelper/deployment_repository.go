package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/quickfolio/quickfolio/pkg/domain/interfaces"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/repository"
)

// TestAll runs all test cases for DeploymentRepository
// This is the main entry point for testing any DeploymentRepository implementation
func TestAll(t *testing.T, repo interfaces.DeploymentRepository) {
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, repo)
	})
	t.Run("GetNotFound", func(t *testing.T) {
		TestGetNotFound(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("ListByOwner", func(t *testing.T) {
		TestListByOwner(t, repo)
	})
	t.Run("InvalidInput", func(t *testing.T) {
		TestInvalidInput(t, repo)
	})
}

func newDeployment(owner string) *model.Deployment {
	return &model.Deployment{
		ID:        types.NewDeploymentID(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		InstallID: 12345,
		Target: model.RepositoryTarget{
			Owner: owner,
			Name:  fmt.Sprintf("repo-%s", uuid.New().String()[:8]),
		},
		ThemeID:       "lynx",
		Status:        types.DeployStatusCreated,
		Stage:         types.StageDone,
		RepositoryURL: fmt.Sprintf("https://github.com/%s/portfolio", owner),
		PagesURL:      fmt.Sprintf("https://%s.github.io/portfolio/", owner),
		CommitSHA:     "c0ffee",
	}
}

func TestPutAndGet(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()

	owner := fmt.Sprintf("owner-%s", uuid.New().String()[:8])
	deployment := newDeployment(owner)
	deployment.Warnings = []string{"pages activation failed: timeout"}
	deployment.Status = types.DeployStatusPartial

	gt.NoError(t, repo.PutDeployment(ctx, deployment))

	got := gt.R1(repo.GetDeployment(ctx, deployment.ID)).NoError(t)
	gt.V(t, got.ID).Equal(deployment.ID)
	gt.V(t, got.Target).Equal(deployment.Target)
	gt.V(t, got.ThemeID).Equal(deployment.ThemeID)
	gt.V(t, got.Status).Equal(types.DeployStatusPartial)
	gt.V(t, got.Stage).Equal(deployment.Stage)
	gt.V(t, got.PagesURL).Equal(deployment.PagesURL)
	gt.A(t, got.Warnings).Length(1)
}

func TestGetNotFound(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()

	_, err := repo.GetDeployment(ctx, types.NewDeploymentID())
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()
}

func TestOverwrite(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()

	owner := fmt.Sprintf("owner-%s", uuid.New().String()[:8])
	deployment := newDeployment(owner)
	deployment.Status = types.DeployStatusFailed
	deployment.Stage = types.StagePages
	gt.NoError(t, repo.PutDeployment(ctx, deployment))

	deployment.Status = types.DeployStatusCreated
	deployment.Stage = types.StageDone
	gt.NoError(t, repo.PutDeployment(ctx, deployment))

	got := gt.R1(repo.GetDeployment(ctx, deployment.ID)).NoError(t)
	gt.V(t, got.Status).Equal(types.DeployStatusCreated)
	gt.V(t, got.Stage).Equal(types.StageDone)
}

func TestListByOwner(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()

	owner := fmt.Sprintf("owner-%s", uuid.New().String()[:8])
	other := fmt.Sprintf("owner-%s", uuid.New().String()[:8])

	for range 3 {
		gt.NoError(t, repo.PutDeployment(ctx, newDeployment(owner)))
	}
	gt.NoError(t, repo.PutDeployment(ctx, newDeployment(other)))

	deployments := gt.R1(repo.ListDeployments(ctx, owner)).NoError(t)
	gt.A(t, deployments).Length(3)
	for _, d := range deployments {
		gt.V(t, d.Target.Owner).Equal(owner)
	}
}

func TestInvalidInput(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()

	err := repo.PutDeployment(ctx, &model.Deployment{})
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrInvalidInput)).True()

	_, err = repo.ListDeployments(ctx, "")
	gt.Error(t, err)
	gt.B(t, errors.Is(err, repository.ErrInvalidInput)).True()
}
