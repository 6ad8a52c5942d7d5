package cli

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/quickfolio/quickfolio/pkg/cli/config"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/infra"
	"github.com/quickfolio/quickfolio/pkg/repository/memory"
	"github.com/quickfolio/quickfolio/pkg/usecase"
	"github.com/quickfolio/quickfolio/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func deployCommand() *cli.Command {
	var (
		installID   int64
		owner       string
		repo        string
		theme       string
		contentPath string
		private     bool
		description string
		reuse       bool
		timeout     time.Duration

		githubApp config.GitHubApp
		firestore config.Firestore
		sentry    config.Sentry
	)

	deployFlags := []cli.Flag{
		&cli.Int64Flag{
			Name:        "installation-id",
			Usage:       "GitHub App installation ID of the target account",
			Sources:     cli.EnvVars("QUICKFOLIO_INSTALLATION_ID"),
			Destination: &installID,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "owner",
			Usage:       "Account that owns the target repository",
			Destination: &owner,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "Target repository name",
			Destination: &repo,
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "theme",
			Usage:       "Theme ID",
			Value:       "lynx",
			Destination: &theme,
		},
		&cli.StringFlag{
			Name:        "content",
			Aliases:     []string{"c"},
			Usage:       "Path to content model JSON file",
			Destination: &contentPath,
			Required:    true,
		},
		&cli.BoolFlag{
			Name:        "private",
			Usage:       "Create the repository as private",
			Destination: &private,
		},
		&cli.StringFlag{
			Name:        "description",
			Usage:       "Repository description",
			Destination: &description,
		},
		&cli.BoolFlag{
			Name:        "reuse-on-conflict",
			Usage:       "Redeploy into an existing repository instead of failing",
			Destination: &reuse,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Deadline for the whole deployment",
			Value:       2 * time.Minute,
			Destination: &timeout,
		},
	}

	return &cli.Command{
		Name:    "deploy",
		Aliases: []string{"d"},
		Usage:   "Deploy one portfolio from the command line",
		Flags: slice.Flatten(
			deployFlags,
			githubApp.Flags(),
			firestore.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			content, err := loadContentModel(contentPath)
			if err != nil {
				return err
			}

			ghApp, err := githubApp.New()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHub(ghApp),
			}
			if firestore.Enabled() {
				deployments, err := firestore.NewRepository(ctx)
				if err != nil {
					return err
				}
				infraOptions = append(infraOptions, infra.WithDeployments(deployments))
			} else {
				infraOptions = append(infraOptions, infra.WithDeployments(memory.New()))
			}

			var ucOptions []usecase.Option
			if reuse {
				ucOptions = append(ucOptions, usecase.WithReuseOnConflict())
			}
			uc := usecase.New(infra.New(infraOptions...), ucOptions...)

			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			input := &model.DeployInput{
				InstallID: types.GitHubAppInstallID(installID),
				Target: model.RepositoryTarget{
					Owner:       owner,
					Name:        repo,
					Private:     private,
					Description: description,
				},
				ThemeID: types.ThemeID(theme),
				Content: content,
			}

			result, deployErr := uc.DeployPortfolio(ctx, input)
			if result != nil {
				raw, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return goerr.Wrap(err, "failed to encode deployment result")
				}
				if _, err := os.Stdout.Write(append(raw, '\n')); err != nil {
					return goerr.Wrap(err, "failed to write deployment result")
				}
			}
			if deployErr != nil {
				return deployErr
			}

			for _, warning := range result.Warnings {
				logging.From(ctx).Warn("deployment warning", slog.String("warning", warning))
			}

			return nil
		},
	}
}

func loadContentModel(path string) (*model.ContentModel, error) {
	raw, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read content file", goerr.V("path", path))
	}

	var content model.ContentModel
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, goerr.Wrap(err, "failed to parse content file", goerr.V("path", path))
	}

	return &content, nil
}
