package handler

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"mdlib/internal/service"
	serviceMocks "mdlib/internal/service/mocks"
	"mdlib/internal/storage"
)

func TestExportHTML(t *testing.T) {
	t.Run("stores the page", func(t *testing.T) {
		mSvc := new(serviceMocks.MockExportService)
		mSvc.On("ExportHTML", mock.Anything, "<h1>Hi</h1>", "Notes").
			Return(&service.ExportResult{Key: "Notes.html", Size: 812, Location: "file:///data/exports/Notes.html"}, nil).Once()
		app := newTestApp(Deps{Export: mSvc})

		status, body := do(t, app, http.MethodPost, "/export/html", `{"html":"<h1>Hi</h1>","title":"Notes"}`)

		assert.Equal(t, http.StatusCreated, status)
		assert.JSONEq(t, `{"key":"Notes.html","size":812,"location":"file:///data/exports/Notes.html"}`, body)
		mSvc.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		mSvc := new(serviceMocks.MockExportService)
		mSvc.On("ExportHTML", mock.Anything, "", "").Return(nil, errors.New("bucket unreachable")).Once()
		app := newTestApp(Deps{Export: mSvc})

		status, body := do(t, app, http.MethodPost, "/export/html", `{}`)

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, body))
		assert.NotContains(t, body, "bucket")
	})
}

func TestDownloadExport(t *testing.T) {
	t.Run("streams the stored page", func(t *testing.T) {
		page := "<!DOCTYPE html><p>x</p>"
		mSvc := new(serviceMocks.MockExportService)
		mSvc.On("Open", mock.Anything, "sub/Notes.html").
			Return(io.NopCloser(strings.NewReader(page)), storage.ObjectInfo{
				Key: "sub/Notes.html", Size: int64(len(page)), ContentType: "text/html; charset=utf-8",
			}, nil).Once()
		app := newTestApp(Deps{Export: mSvc})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/export/sub%2FNotes.html", nil))
		require.NoError(t, err)
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
		assert.Equal(t, page, string(body))
		mSvc.AssertExpectations(t)
	})

	t.Run("missing export", func(t *testing.T) {
		mSvc := new(serviceMocks.MockExportService)
		mSvc.On("Open", mock.Anything, "gone.html").
			Return(nil, storage.ObjectInfo{}, fmt.Errorf("export.open: %w", fs.ErrNotExist)).Once()
		app := newTestApp(Deps{Export: mSvc})

		status, body := do(t, app, http.MethodGet, "/export/gone.html", "")

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "FILE_NOT_FOUND", errorCode(t, body))
	})

	t.Run("key escaping the export root", func(t *testing.T) {
		mSvc := new(serviceMocks.MockExportService)
		mSvc.On("Open", mock.Anything, "../secrets").
			Return(nil, storage.ObjectInfo{}, fmt.Errorf("export.open: %w", storage.ErrInvalidKey)).Once()
		app := newTestApp(Deps{Export: mSvc})

		status, body := do(t, app, http.MethodGet, "/export/..%2Fsecrets", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_KEY", errorCode(t, body))
	})
}

func TestRemoveExport(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		mSvc := new(serviceMocks.MockExportService)
		mSvc.On("Remove", mock.Anything, "Notes.html").Return(nil).Once()
		app := newTestApp(Deps{Export: mSvc})

		status, body := do(t, app, http.MethodDelete, "/export/Notes.html", "")

		assert.Equal(t, http.StatusNoContent, status)
		assert.Empty(t, body)
		mSvc.AssertExpectations(t)
	})

	t.Run("blank key", func(t *testing.T) {
		mSvc := new(serviceMocks.MockExportService)
		mSvc.On("Remove", mock.Anything, " ").Return(service.ErrKeyRequired).Once()
		app := newTestApp(Deps{Export: mSvc})

		status, body := do(t, app, http.MethodDelete, "/export/%20", "")

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, body))
	})

	t.Run("storage failure", func(t *testing.T) {
		mSvc := new(serviceMocks.MockExportService)
		mSvc.On("Remove", mock.Anything, "Notes.html").Return(errors.New("bucket unreachable")).Once()
		app := newTestApp(Deps{Export: mSvc})

		status, body := do(t, app, http.MethodDelete, "/export/Notes.html", "")

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "INTERNAL_ERROR", errorCode(t, body))
		assert.NotContains(t, body, "bucket")
	})
}
