package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/quickfolio/quickfolio/pkg/domain/model"
)

type UseCase interface {
	// DeployPortfolio runs one deployment attempt. On failure it returns both
	// the error and a result describing how far the pipeline got, so callers
	// always learn whether a repository now exists at the target.
	DeployPortfolio(ctx context.Context, input *model.DeployInput) (*model.DeploymentResult, error)

	Themes() []model.ThemeInfo
}
