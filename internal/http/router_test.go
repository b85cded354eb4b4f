package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"camp-admin/backend/internal/config"
	"camp-admin/backend/internal/domain/attendance"
	"camp-admin/backend/internal/domain/export"
	"camp-admin/backend/internal/domain/files"
	"camp-admin/backend/internal/middleware"
	ss "camp-admin/backend/internal/spreadsheet"
)

type fakeServices struct{ mock.Mock }

func (f *fakeServices) Build(ctx context.Context, tenant string, req export.Request) (ss.Data, error) {
	args := f.Called(ctx, tenant, req)
	return args.Get(0).(ss.Data), args.Error(1)
}

func (f *fakeServices) Archive(ctx context.Context, tenant, uid string, req export.Request) (files.Record, error) {
	args := f.Called(ctx, tenant, uid, req)
	return args.Get(0).(files.Record), args.Error(1)
}

func (f *fakeServices) List(ctx context.Context, tenant string) ([]files.Record, error) {
	args := f.Called(ctx, tenant)
	return args.Get(0).([]files.Record), args.Error(1)
}

func (f *fakeServices) DownloadURL(ctx context.Context, tenant, id string) (files.DownloadURL, error) {
	args := f.Called(ctx, tenant, id)
	return args.Get(0).(files.DownloadURL), args.Error(1)
}

func (f *fakeServices) AttendancesForChild(ctx context.Context, tenant, childID string) (map[string]attendance.Detail, error) {
	args := f.Called(ctx, tenant, childID)
	return args.Get(0).(map[string]attendance.Detail), args.Error(1)
}

// fakeAuth logs every request in as a member of tenant t1.
func fakeAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		au := &middleware.AuthUser{UID: "u1", Email: "u1@example.com", Claims: map[string]any{"tenants": []any{"t1"}}}
		next.ServeHTTP(w, r.WithContext(middleware.WithAuthUser(r.Context(), au)))
	})
}

func newTestRouter(f *fakeServices) http.Handler {
	return NewRouter(RouterDeps{
		Cfg:           config.Config{AllowedOrigins: []string{"http://localhost:3000"}},
		Log:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		Auth:          fakeAuth,
		Exports:       f,
		Files:         f,
		AttendanceSvc: f,
	})
}

func do(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	rec := do(newTestRouter(new(fakeServices)), http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":true`)
}

func TestMe(t *testing.T) {
	rec := do(newTestRouter(new(fakeServices)), http.MethodGet, "/v1/me")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["uid"])
}

func TestExportDownload(t *testing.T) {
	f := new(fakeServices)
	data := ss.Data{
		Filename:   "Aanwezigheden kinderen 2020",
		Worksheets: []ss.Worksheet{{Name: "x", Columns: []ss.Column{{Values: []ss.Value{ss.String("Voornaam")}}}}},
	}
	f.On("Build", mock.Anything, "t1", export.Request{Kind: export.KindChildAttendances, Year: 2020}).Return(data, nil)

	rec := do(newTestRouter(f), http.MethodGet, "/v1/organisations/t1/exports/child-attendances?year=2020")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeXLSX, rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Aanwezigheden kinderen 2020.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.NotZero(t, rec.Body.Len())
	f.AssertExpectations(t)
}

func TestExportBadRequest(t *testing.T) {
	f := new(fakeServices)
	rec := do(newTestRouter(f), http.MethodGet, "/v1/organisations/t1/exports/fiscal-certificates")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "year is required")
	f.AssertNotCalled(t, "Build", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportUpstreamFailureHidesDetails(t *testing.T) {
	f := new(fakeServices)
	f.On("Build", mock.Anything, "t1", export.Request{Kind: export.KindCrew}).
		Return(ss.Data{}, errors.New("load crew: rpc error: secret internals"))

	rec := do(newTestRouter(f), http.MethodGet, "/v1/organisations/t1/exports/crew")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestArchiveUpstreamFailureHidesDetails(t *testing.T) {
	f := new(fakeServices)
	f.On("Archive", mock.Anything, "t1", "u1", export.Request{Kind: export.KindChildren}).
		Return(files.Record{}, errors.New("load children: rpc error: code = PermissionDenied desc = projects/secret-proj/databases"))

	rec := do(newTestRouter(f), http.MethodPost, "/v1/organisations/t1/exports/children")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to access export archive")
	assert.NotContains(t, rec.Body.String(), "secret-proj")
}

func TestAttendancesUpstreamFailureHidesDetails(t *testing.T) {
	f := new(fakeServices)
	f.On("AttendancesForChild", mock.Anything, "t1", "c1").
		Return(map[string]attendance.Detail(nil), errors.New("rpc error: code = Unavailable desc = secret-host:443"))

	rec := do(newTestRouter(f), http.MethodGet, "/v1/organisations/t1/children/c1/attendances")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "failed to load attendances")
	assert.NotContains(t, rec.Body.String(), "secret-host")
}

func TestArchiveWithoutAuthIsUnauthorized(t *testing.T) {
	f := new(fakeServices)
	h := NewRouter(RouterDeps{
		Log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Files: f,
	})

	rec := do(h, http.MethodPost, "/v1/organisations/t1/exports/children")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	f.AssertNotCalled(t, "Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVersion(t *testing.T) {
	h := NewRouter(RouterDeps{Log: slog.New(slog.NewTextHandler(io.Discard, nil)), Release: "2026.10.1"})
	rec := do(h, http.MethodGet, "/version")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"release":"2026.10.1"}`, rec.Body.String())

	rec = do(newTestRouter(new(fakeServices)), http.MethodGet, "/version")
	assert.JSONEq(t, `{"release":"dev"}`, rec.Body.String())
}

func TestOtherTenantIsForbidden(t *testing.T) {
	f := new(fakeServices)
	rec := do(newTestRouter(f), http.MethodGet, "/v1/organisations/t2/exports/children")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	f.AssertNotCalled(t, "Build", mock.Anything, mock.Anything, mock.Anything)
}

func TestArchive(t *testing.T) {
	f := new(fakeServices)
	req := export.Request{Kind: export.KindChildren}
	f.On("Archive", mock.Anything, "t1", "u1", req).Return(files.Record{ID: "f1", Tenant: "t1", Name: "Alle kinderen.xlsx"}, nil)

	rec := do(newTestRouter(f), http.MethodPost, "/v1/organisations/t1/exports/children")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"f1"`)
	assert.NotContains(t, rec.Body.String(), "objectPath")
}

func TestArchiveConflict(t *testing.T) {
	f := new(fakeServices)
	f.On("Archive", mock.Anything, "t1", "u1", export.Request{Kind: export.KindChildren}).
		Return(files.Record{}, files.ErrConflict)

	rec := do(newTestRouter(f), http.MethodPost, "/v1/organisations/t1/exports/children")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestFiles(t *testing.T) {
	f := new(fakeServices)
	f.On("List", mock.Anything, "t1").Return([]files.Record{{ID: "f1"}}, nil)
	f.On("DownloadURL", mock.Anything, "t1", "f1").Return(files.DownloadURL{URL: "https://signed", ExpiresAt: time.Unix(0, 0).UTC()}, nil)
	f.On("DownloadURL", mock.Anything, "t1", "nope").Return(files.DownloadURL{}, files.ErrNotFound)
	h := newTestRouter(f)

	rec := do(h, http.MethodGet, "/v1/organisations/t1/files")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"f1"`)

	rec = do(h, http.MethodGet, "/v1/organisations/t1/files/f1/url")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://signed")

	rec = do(h, http.MethodGet, "/v1/organisations/t1/files/nope/url")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChildAttendances(t *testing.T) {
	f := new(fakeServices)
	f.On("AttendancesForChild", mock.Anything, "t1", "c1").Return(map[string]attendance.Detail{"s1": {AgeGroupName: "Kleuters"}}, nil)

	rec := do(newTestRouter(f), http.MethodGet, "/v1/organisations/t1/children/c1/attendances")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kleuters")
}
