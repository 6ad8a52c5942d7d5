package memory

import (
	"sync"

	"github.com/quickfolio/quickfolio/pkg/domain/interfaces"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
)

// New creates an in-memory deployment history repository. Used as the default
// when no Firestore project is configured, and in tests.
func New() interfaces.DeploymentRepository {
	return &deploymentRepository{
		deployments: make(map[types.DeploymentID]*model.Deployment),
	}
}

type deploymentRepository struct {
	mu          sync.RWMutex
	deployments map[types.DeploymentID]*model.Deployment
}
