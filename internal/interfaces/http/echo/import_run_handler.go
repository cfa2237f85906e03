package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/contact-import/internal/application/contact"
)

type ImportRunHandler struct {
	get  app.GetImportRun
	list app.ListImportRuns
}

func NewImportRunHandler(get app.GetImportRun, list app.ListImportRuns) *ImportRunHandler {
	return &ImportRunHandler{get: get, list: list}
}

func (h *ImportRunHandler) GetImportRun(c echo.Context) error {
	out, err := h.get.Execute(c.Request().Context(), app.GetImportRunInput{
		OwnerID: ownerID(c),
		ID:      c.Param("id"),
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidImportRunID) {
			return writeError(c, http.StatusBadRequest, "invalid_import_run_id", "id must be a valid UUID")
		}
		if errors.Is(err, app.ErrImportRunNotFound) {
			return writeError(c, http.StatusNotFound, "not_found", "import run not found")
		}
		return writeError(c, http.StatusInternalServerError, "internal_error", "failed to get import run")
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *ImportRunHandler) ListImportRuns(c echo.Context) error {
	out, err := h.list.Execute(c.Request().Context(), app.ListImportRunsInput{OwnerID: ownerID(c)})
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "internal_error", "failed to list import runs")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
