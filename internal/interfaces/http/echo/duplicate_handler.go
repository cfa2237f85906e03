package echo

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/contact-import/internal/application/contact"
)

type DuplicateHandler struct {
	detect app.DetectDuplicates
	remove app.RemoveDuplicates
}

type removeDuplicatesRequest struct {
	DuplicateIDs []string `json:"duplicateIds"`
}

func NewDuplicateHandler(detect app.DetectDuplicates, remove app.RemoveDuplicates) *DuplicateHandler {
	return &DuplicateHandler{detect: detect, remove: remove}
}

func (h *DuplicateHandler) DetectDuplicates(c echo.Context) error {
	out, err := h.detect.Execute(c.Request().Context(), app.DetectDuplicatesInput{OwnerID: ownerID(c)})
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "internal_error", "failed to detect duplicates")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *DuplicateHandler) RemoveDuplicates(c echo.Context) error {
	var req removeDuplicatesRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "bad_request", "invalid request body")
	}

	out, err := h.remove.Execute(c.Request().Context(), app.RemoveDuplicatesInput{
		OwnerID:      ownerID(c),
		DuplicateIDs: req.DuplicateIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrNoDuplicateIDs):
			return writeError(c, http.StatusBadRequest, "no_duplicate_ids", "duplicateIds must not be empty")
		case errors.Is(err, app.ErrInvalidContactID):
			return writeError(c, http.StatusBadRequest, "invalid_contact_id", err.Error())
		default:
			return writeError(c, http.StatusInternalServerError, "internal_error", "failed to remove duplicates")
		}
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
