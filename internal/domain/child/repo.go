package child

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.fs.Collection("children")
}

// ListForTenant returns every child of a tenant, in no particular order.
func (r *Repo) ListForTenant(ctx context.Context, tenant string) ([]Child, error) {
	iter := r.col().Where("tenant", "==", tenant).Documents(ctx)
	defer iter.Stop()

	out := []Child{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list children: %w", err)
		}

		var c Child
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("failed to decode child %s: %w", doc.Ref.ID, err)
		}
		c.ID = doc.Ref.ID
		out = append(out, c)
	}
	return out, nil
}
