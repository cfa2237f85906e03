package echo

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/contact-import/internal/application/contact"
)

const uploadField = "files"

type UploadLimits struct {
	MaxFiles     int
	MaxFileBytes int64
}

type ImportHandler struct {
	useCase app.ImportContacts
	limits  UploadLimits
}

func NewImportHandler(useCase app.ImportContacts, limits UploadLimits) *ImportHandler {
	return &ImportHandler{useCase: useCase, limits: limits}
}

func (h *ImportHandler) ImportContacts(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return writeError(c, http.StatusBadRequest, "bad_request", "expected a multipart form")
	}

	headers := form.File[uploadField]
	if len(headers) == 0 {
		return writeError(c, http.StatusBadRequest, "no_files", "no files uploaded")
	}
	if h.limits.MaxFiles > 0 && len(headers) > h.limits.MaxFiles {
		return writeError(c, http.StatusBadRequest, "too_many_files", fmt.Sprintf("at most %d files per import", h.limits.MaxFiles))
	}

	files := make([]app.ImportFile, 0, len(headers))
	for _, fh := range headers {
		if h.limits.MaxFileBytes > 0 && fh.Size > h.limits.MaxFileBytes {
			return writeError(c, http.StatusRequestEntityTooLarge, "file_too_large", fmt.Sprintf("%s exceeds %d bytes", fh.Filename, h.limits.MaxFileBytes))
		}

		src, err := fh.Open()
		if err != nil {
			return writeError(c, http.StatusBadRequest, "bad_request", "failed to read "+fh.Filename)
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return writeError(c, http.StatusBadRequest, "bad_request", "failed to read "+fh.Filename)
		}

		files = append(files, app.ImportFile{Name: fh.Filename, Data: data})
	}

	out, err := h.useCase.Execute(c.Request().Context(), app.ImportContactsInput{
		OwnerID: ownerID(c),
		Files:   files,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidOwnerID) || errors.Is(err, app.ErrNoFiles) {
			return writeError(c, http.StatusBadRequest, "invalid_input", err.Error())
		}
		return writeError(c, http.StatusInternalServerError, "internal_error", "failed to import contacts")
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
