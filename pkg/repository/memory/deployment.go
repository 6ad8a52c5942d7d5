package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/repository"
)

func (r *deploymentRepository) PutDeployment(ctx context.Context, deployment *model.Deployment) error {
	if deployment.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "deployment ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.deployments[deployment.ID] = copyDeployment(deployment)
	return nil
}

func (r *deploymentRepository) GetDeployment(ctx context.Context, id types.DeploymentID) (*model.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deployment, exists := r.deployments[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "deployment not found",
			goerr.V("deploymentID", id),
		)
	}

	return copyDeployment(deployment), nil
}

func (r *deploymentRepository) ListDeployments(ctx context.Context, owner string) ([]*model.Deployment, error) {
	if owner == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "owner is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var deployments []*model.Deployment
	for _, deployment := range r.deployments {
		if deployment.Target.Owner == owner {
			deployments = append(deployments, copyDeployment(deployment))
		}
	}

	sort.Slice(deployments, func(i, j int) bool {
		return deployments[i].CreatedAt.Before(deployments[j].CreatedAt)
	})

	return deployments, nil
}

func copyDeployment(src *model.Deployment) *model.Deployment {
	dst := *src
	dst.Warnings = append([]string(nil), src.Warnings...)
	return &dst
}
