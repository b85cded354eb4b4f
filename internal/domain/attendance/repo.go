package attendance

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// getAllChunk bounds the number of documents fetched per GetAll call.
const getAllChunk = 100

type detailDoc struct {
	DidAttend            *bool       `firestore:"didAttend,omitempty"`
	AmountPaid           interface{} `firestore:"amountPaid,omitempty"`
	AgeGroupName         string      `firestore:"ageGroupName,omitempty"`
	Enrolled             *time.Time  `firestore:"enrolled,omitempty"`
	EnrolledRegisteredBy string      `firestore:"enrolledRegisteredBy,omitempty"`
	Hours                *float64    `firestore:"hours,omitempty"`
}

func (d detailDoc) toDetail() Detail {
	out := Detail{
		DidAttend:            d.DidAttend,
		AmountPaid:           amountFromStore(d.AmountPaid),
		AgeGroupName:         d.AgeGroupName,
		Enrolled:             d.Enrolled,
		EnrolledRegisteredBy: d.EnrolledRegisteredBy,
	}
	if d.Hours != nil {
		out.Hours = decimal.NewNullDecimal(decimal.NewFromFloat(*d.Hours))
	}
	return out
}

// attendancesDoc is both the by-shift document (keyed by person id) and the
// by-child document (keyed by shift id).
type attendancesDoc struct {
	Tenant      string               `firestore:"tenant"`
	Attendances map[string]detailDoc `firestore:"attendances"`
}

func (d attendancesDoc) details() map[string]Detail {
	out := make(map[string]Detail, len(d.Attendances))
	for id, doc := range d.Attendances {
		out[id] = doc.toDetail()
	}
	return out
}

// amountFromStore accepts a plain number or the {euro, cents} price shape.
// Anything else is treated as "no amount".
func amountFromStore(v interface{}) decimal.NullDecimal {
	switch x := v.(type) {
	case int64:
		return decimal.NewNullDecimal(decimal.NewFromInt(x))
	case float64:
		return decimal.NewNullDecimal(decimal.NewFromFloat(x))
	case map[string]interface{}:
		euro, okE := x["euro"]
		cents, okC := x["cents"]
		if !okE && !okC {
			return decimal.NullDecimal{}
		}
		total := amountFromStore(euro).Decimal.Add(amountFromStore(cents).Decimal.Shift(-2))
		return decimal.NewNullDecimal(total)
	default:
		return decimal.NullDecimal{}
	}
}

type Repo struct {
	client *firestore.Client
}

func NewRepo(client *firestore.Client) *Repo {
	return &Repo{client: client}
}

func (r *Repo) byShiftCol(aud Audience) *firestore.CollectionRef {
	if aud == Crew {
		return r.client.Collection("crew-attendances-by-shift")
	}
	return r.client.Collection("child-attendances-by-shift")
}

func (r *Repo) byChildCol() *firestore.CollectionRef {
	return r.client.Collection("child-attendances-by-child")
}

// GetManyByShift loads the attendance documents of the given shifts. Shifts
// without a document, or whose document belongs to another tenant, are left
// out of the result.
func (r *Repo) GetManyByShift(ctx context.Context, aud Audience, tenant string, shiftIDs []string) ([]ShiftAttendances, error) {
	col := r.byShiftCol(aud)
	out := make([]ShiftAttendances, 0, len(shiftIDs))

	for start := 0; start < len(shiftIDs); start += getAllChunk {
		end := start + getAllChunk
		if end > len(shiftIDs) {
			end = len(shiftIDs)
		}

		refs := make([]*firestore.DocumentRef, 0, end-start)
		for _, id := range shiftIDs[start:end] {
			refs = append(refs, col.Doc(id))
		}

		docs, err := r.client.GetAll(ctx, refs)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s attendances: %w", aud, err)
		}

		for _, doc := range docs {
			if !doc.Exists() {
				continue
			}
			var d attendancesDoc
			if err := doc.DataTo(&d); err != nil {
				return nil, fmt.Errorf("failed to decode attendances of shift %s: %w", doc.Ref.ID, err)
			}
			if d.Tenant != tenant {
				continue
			}
			out = append(out, ShiftAttendances{ShiftID: doc.Ref.ID, Records: d.details()})
		}
	}

	return out, nil
}

// GetByChild loads all attendances of one child, keyed by shift id.
func (r *Repo) GetByChild(ctx context.Context, tenant, childID string) (map[string]Detail, error) {
	doc, err := r.byChildCol().Doc(childID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("%w: no attendances for child %s", ErrNotFound, childID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendances of child %s: %w", childID, err)
	}

	var d attendancesDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, fmt.Errorf("failed to decode attendances of child %s: %w", childID, err)
	}
	if d.Tenant != tenant {
		return nil, fmt.Errorf("%w: no attendances for child %s", ErrNotFound, childID)
	}
	return d.details(), nil
}
