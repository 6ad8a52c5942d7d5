package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
)

func TestRepositoryTargetValidate(t *testing.T) {
	t.Run("valid targets", func(t *testing.T) {
		for _, target := range []model.RepositoryTarget{
			{Owner: "octocat", Name: "portfolio"},
			{Owner: "my-org", Name: "my.repo_v2"},
			{Owner: "a", Name: "alice.github.io"},
		} {
			gt.NoError(t, target.Validate())
		}
	})

	t.Run("invalid targets", func(t *testing.T) {
		for _, target := range []model.RepositoryTarget{
			{Owner: "", Name: "portfolio"},
			{Owner: "octocat", Name: ""},
			{Owner: "octocat", Name: "has/slash"},
			{Owner: "octocat", Name: "has space"},
			{Owner: "-leading-dash", Name: "portfolio"},
			{Owner: "has_underscore", Name: "portfolio"},
		} {
			err := target.Validate()
			gt.Error(t, err)
			gt.B(t, errors.Is(err, types.ErrValidationFailed)).True()
		}
	})
}

func TestFileTreeValidate(t *testing.T) {
	t.Run("valid tree", func(t *testing.T) {
		tree := model.FileTree{
			"index.html":        "<html></html>",
			"data/profile.json": "{}",
			".nojekyll":         "",
		}
		gt.NoError(t, tree.Validate())
	})

	t.Run("absolute path is rejected", func(t *testing.T) {
		tree := model.FileTree{"/etc/passwd": "x"}
		gt.Error(t, tree.Validate())
	})

	t.Run("path escaping the root is rejected", func(t *testing.T) {
		tree := model.FileTree{"../outside.txt": "x"}
		gt.Error(t, tree.Validate())

		tree = model.FileTree{"data/../../outside.txt": "x"}
		gt.Error(t, tree.Validate())
	})

	t.Run("duplicate after normalization is rejected", func(t *testing.T) {
		tree := model.FileTree{
			"data/profile.json":   "a",
			"data/./profile.json": "b",
		}
		gt.Error(t, tree.Validate())
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		tree := model.FileTree{"": "x"}
		gt.Error(t, tree.Validate())
	})
}

func TestFileTreeNormalized(t *testing.T) {
	tree := model.FileTree{
		"data/./profile.json": "{}",
		"index.html":          "<html></html>",
	}
	gt.NoError(t, tree.Validate())

	normalized := tree.Normalized()
	gt.V(t, normalized["data/profile.json"]).Equal("{}")
	gt.V(t, normalized["index.html"]).Equal("<html></html>")
	gt.V(t, len(normalized)).Equal(2)
}

func TestDeployInputValidate(t *testing.T) {
	valid := func() *model.DeployInput {
		return &model.DeployInput{
			InstallID: 12345,
			Target:    model.RepositoryTarget{Owner: "octocat", Name: "portfolio"},
			ThemeID:   "lynx",
			Content: &model.ContentModel{
				Profile: model.Profile{Name: "Octo Cat"},
			},
		}
	}

	t.Run("valid input", func(t *testing.T) {
		gt.NoError(t, valid().Validate())
	})

	t.Run("missing installation ID", func(t *testing.T) {
		input := valid()
		input.InstallID = 0
		gt.Error(t, input.Validate())
	})

	t.Run("missing theme", func(t *testing.T) {
		input := valid()
		input.ThemeID = ""
		gt.Error(t, input.Validate())
	})

	t.Run("missing content", func(t *testing.T) {
		input := valid()
		input.Content = nil
		gt.Error(t, input.Validate())
	})
}
