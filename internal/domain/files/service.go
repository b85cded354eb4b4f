package files

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"camp-admin/backend/internal/domain/export"
	"camp-admin/backend/internal/lock"
	"camp-admin/backend/internal/logging"
	ss "camp-admin/backend/internal/spreadsheet"
	"camp-admin/backend/internal/utils"
)

type RecordStore interface {
	Create(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (Record, error)
	ListForTenant(ctx context.Context, tenant string) ([]Record, error)
}

type ObjectStore interface {
	Put(ctx context.Context, objectPath, contentType string, body []byte) error
	SignedURL(ctx context.Context, objectPath string, expires time.Time) (string, error)
}

type ExportBuilder interface {
	Build(ctx context.Context, tenant string, req export.Request) (ss.Data, error)
}

type Options struct {
	LockTTL time.Duration
	URLTTL  time.Duration
	Log     *slog.Logger
}

type Service struct {
	records RecordStore
	objects ObjectStore
	exports ExportBuilder
	locker  lock.Locker
	opts    Options
	now     func() time.Time
}

func NewService(records RecordStore, objects ObjectStore, exports ExportBuilder, locker lock.Locker, opts Options) *Service {
	if opts.LockTTL <= 0 {
		opts.LockTTL = 2 * time.Minute
	}
	if opts.URLTTL <= 0 || opts.URLTTL > time.Hour {
		opts.URLTTL = 15 * time.Minute
	}
	if opts.Log == nil {
		opts.Log = slog.Default()
	}
	if locker == nil {
		locker = lock.NewLocal()
	}
	return &Service{
		records: records,
		objects: objects,
		exports: exports,
		locker:  locker,
		opts:    opts,
		now:     time.Now,
	}
}

// Archive builds an export, stores the XLSX and records it for the tenant.
// The same export cannot be archived twice concurrently.
func (s *Service) Archive(ctx context.Context, tenant, uid string, req export.Request) (Record, error) {
	tenant = strings.TrimSpace(tenant)
	if tenant == "" {
		return Record{}, fmt.Errorf("%w: tenant is required", ErrBadRequest)
	}

	key := lockKey(tenant, req)
	release, ok, err := s.locker.Lock(ctx, key, s.opts.LockTTL)
	if err != nil {
		return Record{}, err
	}
	if !ok {
		return Record{}, fmt.Errorf("%w: export %s is already being generated", ErrConflict, req.Kind)
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			s.opts.Log.Warn("failed to release export lock", "key", key, logging.Err(err))
		}
	}()

	data, err := s.exports.Build(ctx, tenant, req)
	if err != nil {
		return Record{}, err
	}

	var buf bytes.Buffer
	if err := ss.WriteXLSX(&buf, data); err != nil {
		return Record{}, fmt.Errorf("render %s: %w", req.Kind, err)
	}

	id := uuid.NewString()
	rec := Record{
		ID:          id,
		Tenant:      tenant,
		Name:        data.Filename + ".xlsx",
		Kind:        string(req.Kind),
		Description: describe(req),
		ObjectPath:  objectPath(tenant, id, utils.Slugify(data.Filename)),
		Size:        int64(buf.Len()),
		CreatedBy:   uid,
		CreatedAt:   s.now().UTC(),
	}

	if err := s.objects.Put(ctx, rec.ObjectPath, ContentTypeXLSX, buf.Bytes()); err != nil {
		return Record{}, err
	}
	if err := s.records.Create(ctx, rec); err != nil {
		return Record{}, err
	}

	s.opts.Log.Info("export archived", "tenant", tenant, "kind", rec.Kind, "id", rec.ID, "size", rec.Size)
	return rec, nil
}

func (s *Service) List(ctx context.Context, tenant string) ([]Record, error) {
	if strings.TrimSpace(tenant) == "" {
		return nil, fmt.Errorf("%w: tenant is required", ErrBadRequest)
	}
	return s.records.ListForTenant(ctx, tenant)
}

// DownloadURL signs a short lived GET link to a stored export. Records of
// other tenants are reported as missing.
func (s *Service) DownloadURL(ctx context.Context, tenant, id string) (DownloadURL, error) {
	if strings.TrimSpace(tenant) == "" || strings.TrimSpace(id) == "" {
		return DownloadURL{}, fmt.Errorf("%w: tenant and fileId are required", ErrBadRequest)
	}

	rec, err := s.records.Get(ctx, id)
	if err != nil {
		return DownloadURL{}, err
	}
	if rec.Tenant != tenant {
		return DownloadURL{}, fmt.Errorf("%w: report %s", ErrNotFound, id)
	}

	exp := s.now().Add(s.opts.URLTTL)
	url, err := s.objects.SignedURL(ctx, rec.ObjectPath, exp)
	if err != nil {
		return DownloadURL{}, err
	}
	return DownloadURL{URL: url, ExpiresAt: exp.UTC()}, nil
}
