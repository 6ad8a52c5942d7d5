package usecase

import (
	"context"

	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
)

var PagesURL = pagesURL

func (x *UseCase) MintToken(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationAccessToken, error) {
	return x.mintToken(ctx, installID)
}
