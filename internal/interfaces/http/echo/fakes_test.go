package echo_test

import (
	"context"

	"github.com/labstack/echo/v4"
	app "github.com/mohammadpnp/contact-import/internal/application/contact"
	httpecho "github.com/mohammadpnp/contact-import/internal/interfaces/http/echo"
)

type fakeImportUseCase struct {
	output app.ImportResult
	err    error
	got    app.ImportContactsInput
}

func (f *fakeImportUseCase) Execute(ctx context.Context, in app.ImportContactsInput) (app.ImportResult, error) {
	f.got = in
	if f.err != nil {
		return app.ImportResult{}, f.err
	}
	return f.output, nil
}

type fakeDetectUseCase struct {
	output app.DetectDuplicatesOutput
	err    error
}

func (f *fakeDetectUseCase) Execute(ctx context.Context, in app.DetectDuplicatesInput) (app.DetectDuplicatesOutput, error) {
	if f.err != nil {
		return app.DetectDuplicatesOutput{}, f.err
	}
	return f.output, nil
}

type fakeRemoveUseCase struct {
	output app.RemoveDuplicatesOutput
	err    error
	got    app.RemoveDuplicatesInput
}

func (f *fakeRemoveUseCase) Execute(ctx context.Context, in app.RemoveDuplicatesInput) (app.RemoveDuplicatesOutput, error) {
	f.got = in
	if f.err != nil {
		return app.RemoveDuplicatesOutput{}, f.err
	}
	return f.output, nil
}

type fakeGetRunUseCase struct {
	output app.ImportRunOutput
	err    error
}

func (f *fakeGetRunUseCase) Execute(ctx context.Context, in app.GetImportRunInput) (app.ImportRunOutput, error) {
	if f.err != nil {
		return app.ImportRunOutput{}, f.err
	}
	return f.output, nil
}

type fakeListRunsUseCase struct {
	output app.ListImportRunsOutput
	err    error
}

func (f *fakeListRunsUseCase) Execute(ctx context.Context, in app.ListImportRunsInput) (app.ListImportRunsOutput, error) {
	if f.err != nil {
		return app.ListImportRunsOutput{}, f.err
	}
	return f.output, nil
}

type handlers struct {
	importer *fakeImportUseCase
	detect   *fakeDetectUseCase
	remove   *fakeRemoveUseCase
	getRun   *fakeGetRunUseCase
	listRuns *fakeListRunsUseCase
	limits   httpecho.UploadLimits
}

func newHandlers() *handlers {
	return &handlers{
		importer: &fakeImportUseCase{},
		detect:   &fakeDetectUseCase{},
		remove:   &fakeRemoveUseCase{},
		getRun:   &fakeGetRunUseCase{},
		listRuns: &fakeListRunsUseCase{},
		limits:   httpecho.UploadLimits{MaxFiles: 2, MaxFileBytes: 1024},
	}
}

func (h *handlers) server() *echo.Echo {
	e := echo.New()
	httpecho.RegisterRoutes(e,
		httpecho.NewImportHandler(h.importer, h.limits),
		httpecho.NewDuplicateHandler(h.detect, h.remove),
		httpecho.NewImportRunHandler(h.getRun, h.listRuns),
	)
	return e
}
