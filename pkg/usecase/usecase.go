package usecase

import (
	"github.com/quickfolio/quickfolio/pkg/domain/interfaces"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/infra"
)

type UseCase struct {
	clients *infra.Clients

	// reuseOnConflict switches the provisioner from strict mode (fail when
	// the target repository already exists) to idempotent-redeploy mode
	// (update the existing repository). Strict is the default.
	reuseOnConflict bool
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

func WithReuseOnConflict() Option {
	return func(x *UseCase) {
		x.reuseOnConflict = true
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

func (x *UseCase) Themes() []model.ThemeInfo {
	return x.clients.Renderer().Themes()
}
