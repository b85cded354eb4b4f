package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"camp-admin/backend/internal/config"
	"camp-admin/backend/internal/domain/attendance"
	"camp-admin/backend/internal/domain/export"
	"camp-admin/backend/internal/domain/files"
	"camp-admin/backend/internal/logging"
	"camp-admin/backend/internal/middleware"
	ss "camp-admin/backend/internal/spreadsheet"
)

type ExportBuilder interface {
	Build(ctx context.Context, tenant string, req export.Request) (ss.Data, error)
}

type FileArchive interface {
	Archive(ctx context.Context, tenant, uid string, req export.Request) (files.Record, error)
	List(ctx context.Context, tenant string) ([]files.Record, error)
	DownloadURL(ctx context.Context, tenant, id string) (files.DownloadURL, error)
}

type ChildAttendances interface {
	AttendancesForChild(ctx context.Context, tenant, childID string) (map[string]attendance.Detail, error)
}

type RouterDeps struct {
	Cfg config.Config
	Log *slog.Logger
	// Auth authenticates the /v1 routes, normally middleware.WithAuth.
	Auth          func(http.Handler) http.Handler
	Exports       ExportBuilder
	Files         FileArchive
	AttendanceSvc ChildAttendances
	// Release identifies the running build on /version.
	Release string
}

func tenantParam(r *http.Request) string {
	return strings.TrimSpace(chi.URLParam(r, "tenant"))
}

func NewRouter(d RouterDeps) http.Handler {
	log := d.Log
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(log, d.Cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	release := d.Release
	if release == "" {
		release = "dev"
	}
	r.Get("/version", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"release": release})
	})

	r.Group(func(pr chi.Router) {
		if d.Auth != nil {
			pr.Use(d.Auth)
		}

		pr.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			au, ok := middleware.GetAuthUser(r.Context())
			if !ok || au == nil {
				Fail(w, 401, "unauthorized")
				return
			}
			WriteJSON(w, 200, map[string]any{
				"uid":    au.UID,
				"email":  au.Email,
				"claims": au.Claims,
			})
		})

		pr.Route("/v1/organisations/{tenant}", func(tr chi.Router) {
			tr.Use(middleware.RequireTenant(tenantParam))

			tr.Get("/exports", func(w http.ResponseWriter, r *http.Request) {
				kinds := export.Kinds()
				out := make([]map[string]any, 0, len(kinds))
				for _, k := range kinds {
					out = append(out, map[string]any{
						"kind":      k,
						"needsYear": k.NeedsYear(),
						"needsDay":  k.NeedsDay(),
					})
				}
				WriteJSON(w, 200, out)
			})

			// Build and download an export directly.
			tr.Get("/exports/{kind}", func(w http.ResponseWriter, r *http.Request) {
				req, err := parseExportRequest(r)
				if err != nil {
					status, msg := mapExportError(err)
					Fail(w, status, msg)
					return
				}

				data, err := d.Exports.Build(r.Context(), tenantParam(r), req)
				if err != nil {
					status, msg := mapExportError(err)
					if status >= 500 {
						log.Error("export failed", "tenant", tenantParam(r), "kind", req.Kind, logging.Err(err))
					}
					Fail(w, status, msg)
					return
				}
				if err := WriteXLSX(w, data); err != nil {
					log.Error("failed to render export", "kind", req.Kind, logging.Err(err))
					Fail(w, 500, "failed to render export")
				}
			})

			// Build an export and keep it in the organisation's files.
			tr.Post("/exports/{kind}", func(w http.ResponseWriter, r *http.Request) {
				au, ok := middleware.GetAuthUser(r.Context())
				if !ok || au == nil {
					Fail(w, 401, "unauthorized")
					return
				}
				req, err := parseExportRequest(r)
				if err != nil {
					status, msg := mapExportError(err)
					Fail(w, status, msg)
					return
				}

				rec, err := d.Files.Archive(r.Context(), tenantParam(r), au.UID, req)
				if err != nil {
					status, msg := mapFilesError(err)
					if status >= 500 {
						log.Error("archive failed", "tenant", tenantParam(r), "kind", req.Kind, logging.Err(err))
					}
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, rec)
			})

			tr.Get("/files", func(w http.ResponseWriter, r *http.Request) {
				out, err := d.Files.List(r.Context(), tenantParam(r))
				if err != nil {
					status, msg := mapFilesError(err)
					if status >= 500 {
						log.Error("files request failed", "tenant", tenantParam(r), logging.Err(err))
					}
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			tr.Get("/files/{fileId}/url", func(w http.ResponseWriter, r *http.Request) {
				out, err := d.Files.DownloadURL(r.Context(), tenantParam(r), chi.URLParam(r, "fileId"))
				if err != nil {
					status, msg := mapFilesError(err)
					if status >= 500 {
						log.Error("files request failed", "tenant", tenantParam(r), logging.Err(err))
					}
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			tr.Get("/children/{childId}/attendances", func(w http.ResponseWriter, r *http.Request) {
				out, err := d.AttendanceSvc.AttendancesForChild(r.Context(), tenantParam(r), chi.URLParam(r, "childId"))
				if err != nil {
					status, msg := mapAttendanceError(err)
					if status >= 500 {
						log.Error("loading attendances failed", "tenant", tenantParam(r), logging.Err(err))
					}
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})
		})
	})

	return r
}

func parseExportRequest(r *http.Request) (export.Request, error) {
	q := r.URL.Query()
	return export.ParseRequest(chi.URLParam(r, "kind"), q.Get("year"), q.Get("day"))
}

func mapExportError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case export.IsErrBadRequest(err), attendance.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, "failed to build export"
	}
}

func mapFilesError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case files.IsErrNotFound(err):
		return 404, err.Error()
	case files.IsErrConflict(err):
		return 409, err.Error()
	case files.IsErrBadRequest(err), export.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, "failed to access export archive"
	}
}

func mapAttendanceError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case attendance.IsErrNotFound(err):
		return 404, err.Error()
	case attendance.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, "failed to load attendances"
	}
}
