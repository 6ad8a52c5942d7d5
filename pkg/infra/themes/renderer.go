package themes

import (
	"bytes"
	"embed"
	"io/fs"
	"strings"
	"text/template"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/quickfolio/quickfolio/pkg/domain/interfaces"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
)

//go:embed all:templates
var templateFS embed.FS

// Renderer produces file trees from the embedded theme catalog. Base files
// are shipped verbatim; content files (*.tmpl) are rendered with the content
// model and land under their template path with the suffix stripped.
type Renderer struct{}

var _ interfaces.SiteRenderer = (*Renderer)(nil)

func New() *Renderer {
	return &Renderer{}
}

var themeCatalog = []model.ThemeInfo{
	{ID: "lynx", Name: "Lynx", Description: "Clean single-column link list"},
	{ID: "mono", Name: "Mono", Description: "Monospaced, terminal-inspired layout"},
}

func (x *Renderer) Themes() []model.ThemeInfo {
	return append([]model.ThemeInfo{}, themeCatalog...)
}

func (x *Renderer) RenderBase(themeID types.ThemeID) (model.FileTree, error) {
	root := "templates/" + string(themeID) + "/base"
	if _, err := fs.Stat(templateFS, root); err != nil {
		return nil, goerr.Wrap(types.ErrThemeNotFound, "unknown theme", goerr.V("theme", themeID))
	}

	tree := model.FileTree{}
	err := fs.WalkDir(templateFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := templateFS.ReadFile(path)
		if err != nil {
			return goerr.Wrap(err, "failed to read theme file", goerr.V("path", path))
		}
		tree[strings.TrimPrefix(path, root+"/")] = string(data)
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk theme files", goerr.V("theme", themeID))
	}

	return tree, nil
}

func (x *Renderer) RenderContent(themeID types.ThemeID, content *model.ContentModel) (model.FileTree, error) {
	root := "templates/" + string(themeID) + "/content"
	if _, err := fs.Stat(templateFS, root); err != nil {
		return nil, goerr.Wrap(types.ErrThemeNotFound, "unknown theme", goerr.V("theme", themeID))
	}

	funcs := template.FuncMap{
		"json": func(v any) (string, error) {
			raw, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return "", err
			}
			return string(raw), nil
		},
	}

	tree := model.FileTree{}
	err := fs.WalkDir(templateFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := templateFS.ReadFile(path)
		if err != nil {
			return goerr.Wrap(err, "failed to read content template", goerr.V("path", path))
		}

		tmpl, err := template.New(path).Funcs(funcs).Parse(string(data))
		if err != nil {
			return goerr.Wrap(err, "failed to parse content template", goerr.V("path", path))
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, content); err != nil {
			return goerr.Wrap(err, "failed to render content template", goerr.V("path", path))
		}

		dst := strings.TrimSuffix(strings.TrimPrefix(path, root+"/"), ".tmpl")
		tree[dst] = buf.String()
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to walk content templates", goerr.V("theme", themeID))
	}

	return tree, nil
}
