package contact

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
	return r.fs.Collection("contact-people")
}

func (r *Repo) ListForTenant(ctx context.Context, tenant string) ([]Person, error) {
	iter := r.col().Where("tenant", "==", tenant).Documents(ctx)
	defer iter.Stop()

	out := []Person{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list contact people: %w", err)
		}

		var p Person
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("failed to decode contact person %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		out = append(out, p)
	}
	return out, nil
}
