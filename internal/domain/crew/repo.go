package crew

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
	return r.fs.Collection("crew-members")
}

// ListForTenant returns every crew member of a tenant, active or not.
func (r *Repo) ListForTenant(ctx context.Context, tenant string) ([]Crew, error) {
	iter := r.col().Where("tenant", "==", tenant).Documents(ctx)
	defer iter.Stop()

	out := []Crew{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list crew members: %w", err)
		}

		var c Crew
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("failed to decode crew member %s: %w", doc.Ref.ID, err)
		}
		c.ID = doc.Ref.ID
		out = append(out, c)
	}
	return out, nil
}
