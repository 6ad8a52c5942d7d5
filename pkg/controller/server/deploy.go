package server

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/m-mizutani/goerr/v2"
	"github.com/quickfolio/quickfolio/pkg/domain/interfaces"
	"github.com/quickfolio/quickfolio/pkg/domain/model"
	"github.com/quickfolio/quickfolio/pkg/domain/types"
	"github.com/quickfolio/quickfolio/pkg/utils/errutil"
)

type deployRequest struct {
	InstallationID int64               `json:"installation_id"`
	Owner          string              `json:"owner"`
	Repo           string              `json:"repo"`
	Private        bool                `json:"private"`
	Description    string              `json:"description"`
	Theme          string              `json:"theme"`
	Content        *model.ContentModel `json:"content"`
}

func (x *deployRequest) toInput() *model.DeployInput {
	return &model.DeployInput{
		InstallID: types.GitHubAppInstallID(x.InstallationID),
		Target: model.RepositoryTarget{
			Owner:       x.Owner,
			Name:        x.Repo,
			Private:     x.Private,
			Description: x.Description,
		},
		ThemeID: types.ThemeID(x.Theme),
		Content: x.Content,
	}
}

type themesResponse struct {
	Themes []model.ThemeInfo `json:"themes"`
}

type deployErrorResponse struct {
	Error  string                  `json:"error"`
	Result *model.DeploymentResult `json:"result,omitempty"`
}

func handleDeploy(uc interfaces.UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deployRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondJSON(w, http.StatusBadRequest, &deployErrorResponse{
				Error: goerr.Wrap(err, "failed to parse deploy request").Error(),
			})
			return
		}

		result, err := uc.DeployPortfolio(r.Context(), req.toInput())
		if err != nil {
			errutil.HandleError(r.Context(), "deployment failed", err)
			// result may carry partial side effects (e.g. the repository was
			// created before the failure), so it is returned alongside the
			// error.
			respondJSON(w, deployErrorStatus(err), &deployErrorResponse{
				Error:  err.Error(),
				Result: result,
			})
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// deployErrorStatus maps pipeline failures to HTTP status codes. Anything not
// caused by the request itself is treated as an upstream failure.
func deployErrorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrValidationFailed), errors.Is(err, types.ErrInvalidOption), errors.Is(err, types.ErrThemeNotFound):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrRepoConflict):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}
