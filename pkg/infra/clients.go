package infra

import (
	"github.com/quickfolio/quickfolio/pkg/domain/interfaces"
	"github.com/quickfolio/quickfolio/pkg/infra/themes"
)

type Clients struct {
	github      interfaces.GitHub
	renderer    interfaces.SiteRenderer
	deployments interfaces.DeploymentRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		renderer: themes.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}

func (x *Clients) Renderer() interfaces.SiteRenderer {
	return x.renderer
}

func (x *Clients) Deployments() interfaces.DeploymentRepository {
	return x.deployments
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithRenderer(renderer interfaces.SiteRenderer) Option {
	return func(x *Clients) {
		x.renderer = renderer
	}
}

func WithDeployments(repo interfaces.DeploymentRepository) Option {
	return func(x *Clients) {
		x.deployments = repo
	}
}
