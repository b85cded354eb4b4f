package files

import (
	"fmt"
	"time"

	"camp-admin/backend/internal/domain/export"
)

const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Record describes an export stored in Cloud Storage.
type Record struct {
	ID          string    `firestore:"-" json:"id"`
	Tenant      string    `firestore:"tenant" json:"tenant"`
	Name        string    `firestore:"name" json:"name"`
	Kind        string    `firestore:"kind" json:"kind"`
	Description string    `firestore:"description" json:"description"`
	ObjectPath  string    `firestore:"objectPath" json:"-"`
	Size        int64     `firestore:"size" json:"size"`
	CreatedBy   string    `firestore:"createdBy" json:"createdBy"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
}

// DownloadURL is a time limited link to a stored export.
type DownloadURL struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func objectPath(tenant, id, slug string) string {
	if slug == "" {
		slug = "export"
	}
	return fmt.Sprintf("organisations/%s/exports/%s-%s.xlsx", tenant, id, slug)
}

// describe is the line shown next to a stored export in the file list.
func describe(req export.Request) string {
	switch {
	case req.Kind.NeedsDay():
		return fmt.Sprintf("%s voor %s", req.Kind, req.Day.Format("-"))
	case req.Kind.NeedsYear():
		return fmt.Sprintf("%s %d", req.Kind, req.Year)
	default:
		return string(req.Kind)
	}
}

func lockKey(tenant string, req export.Request) string {
	return fmt.Sprintf("export:%s:%s:%d:%s", tenant, req.Kind, req.Year, req.Day.DayID())
}
