package echo_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/contact-import/internal/application/contact"
	httpecho "github.com/mohammadpnp/contact-import/internal/interfaces/http/echo"
)

type upload struct {
	name string
	body string
}

func newUploadRequest(t *testing.T, uploads ...upload) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, u := range uploads {
		part, err := w.CreateFormFile("files", u.name)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte(u.body)); err != nil {
			t.Fatalf("write form file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts/import", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	req.Header.Set(httpecho.HeaderUserID, "owner-1")
	return req
}

func TestImportHandlerSuccess(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	h.importer.output = app.ImportResult{
		TotalProcessed:   1,
		ContactsImported: 1,
		DuplicatesList:   []string{},
		Contacts:         []app.ImportedContact{},
	}
	rec := httptest.NewRecorder()

	h.server().ServeHTTP(rec, newUploadRequest(t,
		upload{name: "people.csv", body: "First Name\nJane\n"},
		upload{name: "cards.vcf", body: "BEGIN:VCARD\r\nEND:VCARD\r\n"},
	))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if h.importer.got.OwnerID != "owner-1" {
		t.Fatalf("unexpected owner: %q", h.importer.got.OwnerID)
	}
	if len(h.importer.got.Files) != 2 || h.importer.got.Files[0].Name != "people.csv" || string(h.importer.got.Files[0].Data) != "First Name\nJane\n" {
		t.Fatalf("unexpected files: %+v", h.importer.got.Files)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	data, ok := got["data"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %#v", got["data"])
	}
	if data["contactsImported"] != float64(1) {
		t.Fatalf("unexpected contactsImported: %#v", data["contactsImported"])
	}
}

func TestImportHandlerMissingOwner(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	req := newUploadRequest(t, upload{name: "people.csv", body: "a\n"})
	req.Header.Del(httpecho.HeaderUserID)
	rec := httptest.NewRecorder()

	h.server().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestImportHandlerNoFiles(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	rec := httptest.NewRecorder()

	h.server().ServeHTTP(rec, newUploadRequest(t))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestImportHandlerNotMultipart(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contacts/import", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(httpecho.HeaderUserID, "owner-1")
	rec := httptest.NewRecorder()

	h.server().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestImportHandlerTooManyFiles(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	rec := httptest.NewRecorder()

	h.server().ServeHTTP(rec, newUploadRequest(t,
		upload{name: "a.csv", body: "a\n"},
		upload{name: "b.csv", body: "b\n"},
		upload{name: "c.csv", body: "c\n"},
	))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestImportHandlerFileTooLarge(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	rec := httptest.NewRecorder()

	h.server().ServeHTTP(rec, newUploadRequest(t, upload{name: "big.csv", body: string(bytes.Repeat([]byte("x"), 2048))}))

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

func TestImportHandlerInternalError(t *testing.T) {
	t.Parallel()

	h := newHandlers()
	h.importer.err = errors.New("boom")
	rec := httptest.NewRecorder()

	h.server().ServeHTTP(rec, newUploadRequest(t, upload{name: "people.csv", body: "a\n"}))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
