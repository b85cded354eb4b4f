package shift

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/api/iterator"

	"camp-admin/backend/internal/daydate"
)

// price is the stored representation of an amount in euro.
type price struct {
	Euro  int64 `firestore:"euro"`
	Cents int64 `firestore:"cents"`
}

func (p price) decimal() decimal.Decimal {
	return decimal.NewFromInt(p.Euro).Add(decimal.New(p.Cents, -2))
}

type shiftDoc struct {
	Tenant      string `firestore:"tenant"`
	DayID       string `firestore:"dayId"`
	Kind        string `firestore:"kind"`
	Description string `firestore:"description"`
	Location    string `firestore:"location,omitempty"`
	Price       *price `firestore:"price,omitempty"`
}

func (d shiftDoc) toShift(id string) Shift {
	s := Shift{
		ID:          id,
		Tenant:      d.Tenant,
		DayID:       d.DayID,
		Kind:        d.Kind,
		Description: d.Description,
		Location:    d.Location,
	}
	if d.Price != nil {
		s.Price = d.Price.decimal()
	}
	return s
}

type Repo struct {
	fs *firestore.Client
}

func NewRepo(fs *firestore.Client) *Repo {
	return &Repo{fs: fs}
}

func (r *Repo) col() *firestore.CollectionRef {
	return r.fs.Collection("shifts")
}

// ListForTenant returns all shifts of a tenant.
func (r *Repo) ListForTenant(ctx context.Context, tenant string) ([]Shift, error) {
	return r.list(ctx, r.col().Where("tenant", "==", tenant))
}

// ListForTenantInYear queries day ids starting with "<year>-" ("." sorts
// right after "-") and filters again in memory, since older day ids are
// stored without zero padding.
func (r *Repo) ListForTenantInYear(ctx context.Context, tenant string, year int) ([]Shift, error) {
	if year <= 0 {
		return nil, fmt.Errorf("%w: year must be positive", ErrBadRequest)
	}
	y := strconv.Itoa(year)
	q := r.col().
		Where("tenant", "==", tenant).
		Where("dayId", ">=", y+"-").
		Where("dayId", "<", y+".")

	all, err := r.list(ctx, q)
	if err != nil {
		return nil, err
	}
	return InYear(all, year), nil
}

func (r *Repo) ListForTenantOnDay(ctx context.Context, tenant string, day daydate.Day) ([]Shift, error) {
	inYear, err := r.ListForTenantInYear(ctx, tenant, day.Year)
	if err != nil {
		return nil, err
	}
	return OnDay(inYear, day), nil
}

func (r *Repo) list(ctx context.Context, q firestore.Query) ([]Shift, error) {
	iter := q.Documents(ctx)
	defer iter.Stop()

	out := []Shift{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list shifts: %w", err)
		}

		var d shiftDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("failed to decode shift %s: %w", doc.Ref.ID, err)
		}
		out = append(out, d.toShift(doc.Ref.ID))
	}
	return out, nil
}
