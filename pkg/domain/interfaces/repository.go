package interfaces

import (
	"context"

	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
)

//go:generate moq -out ../mock/deployment_repository_mock.go -pkg mock . DeploymentRepository

// DeploymentRepository stores the audit history of deployment attempts. It is
// advisory: a write failure must never fail a deployment.
type DeploymentRepository interface {
	PutDeployment(ctx context.Context, deployment *model.Deployment) error
	GetDeployment(ctx context.Context, id types.DeploymentID) (*model.Deployment, error)
	ListDeployments(ctx context.Context, owner string) ([]*model.Deployment, error)
}
