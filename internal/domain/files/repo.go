package files

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.fs.Collection("reports")
}

func (r *Repo) Create(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return fmt.Errorf("%w: record id is required", ErrBadRequest)
	}
	if _, err := r.col().Doc(rec.ID).Create(ctx, rec); err != nil {
		return fmt.Errorf("failed to save report %s: %w", rec.ID, err)
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id string) (Record, error) {
	doc, err := r.col().Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Record{}, fmt.Errorf("%w: report %s", ErrNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to get report %s: %w", id, err)
	}

	var rec Record
	if err := doc.DataTo(&rec); err != nil {
		return Record{}, fmt.Errorf("failed to decode report %s: %w", id, err)
	}
	rec.ID = doc.Ref.ID
	return rec, nil
}

// ListForTenant returns the stored exports of a tenant, newest first.
func (r *Repo) ListForTenant(ctx context.Context, tenant string) ([]Record, error) {
	iter := r.col().
		Where("tenant", "==", tenant).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := []Record{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list reports: %w", err)
		}

		var rec Record
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", doc.Ref.ID, err)
		}
		rec.ID = doc.Ref.ID
		out = append(out, rec)
	}
	return out, nil
}
