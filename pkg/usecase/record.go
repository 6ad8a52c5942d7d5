package usecase

import (
	"context"
	"log/slog"

	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/utils/logging"
)

// recordDeployment writes the audit record for one attempt. History is
// advisory: a write failure is logged and never changes the deployment
// outcome.
func (x *UseCase) recordDeployment(ctx context.Context, input *model.DeployInput, result *model.DeploymentResult, deployErr error) {
	repo := x.clients.Deployments()
	if repo == nil {
		return
	}

	record := &model.Deployment{
		ID:            result.ID,
		CreatedAt:     logging.CtxTime(ctx),
		InstallID:     input.InstallID,
		Target:        input.Target,
		ThemeID:       input.ThemeID,
		Status:        result.Status,
		Stage:         result.Stage,
		RepositoryURL: result.RepositoryURL,
		PagesURL:      result.PagesURL,
		CommitSHA:     result.CommitSHA,
		Warnings:      result.Warnings,
	}
	if deployErr != nil {
		record.Error = deployErr.Error()
	}

	if err := repo.PutDeployment(ctx, record); err != nil {
		logging.From(ctx).Warn("failed to record deployment history",
			slog.Any("deploymentID", record.ID),
			slog.Any("error", err),
		)
	}
}
