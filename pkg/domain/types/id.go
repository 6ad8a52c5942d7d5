package types

import "github.com/google/uuid"

type (
	RequestID    string
	DeploymentID string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewDeploymentID() DeploymentID {
	return DeploymentID(uuid.NewString())
}

func (x DeploymentID) String() string {
	return string(x)
}
