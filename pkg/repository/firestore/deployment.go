package firestore

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const collectionDeployment = "deployments"

func (r *deploymentRepository) PutDeployment(ctx context.Context, deployment *model.Deployment) error {
	if deployment.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "deployment ID is empty")
	}

	docRef := r.client.Collection(collectionDeployment).Doc(string(deployment.ID))

	if _, err := docRef.Set(ctx, deployment); err != nil {
		return goerr.Wrap(err, "failed to put deployment",
			goerr.V("deploymentID", deployment.ID),
		)
	}

	return nil
}

func (r *deploymentRepository) GetDeployment(ctx context.Context, id types.DeploymentID) (*model.Deployment, error) {
	docRef := r.client.Collection(collectionDeployment).Doc(string(id))

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "deployment not found",
				goerr.V("deploymentID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get deployment",
			goerr.V("deploymentID", id),
		)
	}

	var deployment model.Deployment
	if err := snap.DataTo(&deployment); err != nil {
		return nil, goerr.Wrap(err, "failed to decode deployment",
			goerr.V("deploymentID", id),
		)
	}

	return &deployment, nil
}

func (r *deploymentRepository) ListDeployments(ctx context.Context, owner string) ([]*model.Deployment, error) {
	if owner == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "owner is empty")
	}

	query := r.client.Collection(collectionDeployment).Where("target.owner", "==", owner)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var deployments []*model.Deployment
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate deployments",
				goerr.V("owner", owner),
			)
		}

		var deployment model.Deployment
		if err := snap.DataTo(&deployment); err != nil {
			return nil, goerr.Wrap(err, "failed to decode deployment")
		}

		deployments = append(deployments, &deployment)
	}

	return deployments, nil
}
