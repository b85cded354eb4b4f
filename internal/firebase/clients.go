package firebase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"cloud.google.com/go/firestore"
	credentials "cloud.google.com/go/iam/credentials/apiv1"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"camp-admin/backend/internal/config"
	"camp-admin/backend/internal/logging"
)

// Clients bundles the Firebase and GCP clients the service talks to.
type Clients struct {
	App       *firebase.App
	Auth      *auth.Client
	Firestore *firestore.Client
	Storage   *storage.Client
	// IAM signs download URLs. It is nil when the credentials client could
	// not be created; signing then fails with a clear error.
	IAM *credentials.IamCredentialsClient

	ProjectID string
	Bucket    string
}

// clientOptions picks explicit credentials when configured. Without them
// Application Default Credentials apply, which is what Cloud Run provides.
func clientOptions() []option.ClientOption {
	if raw := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); raw != "" {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(raw))}
	}
	if path := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); path != "" {
		return []option.ClientOption{option.WithCredentialsFile(path)}
	}
	return nil
}

func NewClients(ctx context.Context, cfg config.Config, log *slog.Logger) (*Clients, error) {
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("missing FIREBASE_PROJECT_ID or GOOGLE_CLOUD_PROJECT")
	}
	opts := clientOptions()

	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.ProjectID,
		StorageBucket: cfg.StorageBucket,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}

	fs, err := firestore.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("firestore: %w", err)
	}

	st, err := storage.NewClient(ctx, opts...)
	if err != nil {
		_ = fs.Close()
		return nil, fmt.Errorf("storage: %w", err)
	}

	iamClient := optionalIAM(log)(credentials.NewIamCredentialsClient(ctx, opts...))

	return &Clients{
		App:       app,
		Auth:      authClient,
		Firestore: fs,
		Storage:   st,
		IAM:       iamClient,
		ProjectID: cfg.ProjectID,
		Bucket:    cfg.StorageBucket,
	}, nil
}

// optionalIAM keeps the API running without an IAM client; only URL
// signing depends on it.
func optionalIAM(log *slog.Logger) func(*credentials.IamCredentialsClient, error) *credentials.IamCredentialsClient {
	if log == nil {
		log = slog.Default()
	}
	return func(c *credentials.IamCredentialsClient, err error) *credentials.IamCredentialsClient {
		if err != nil {
			log.Warn("iam credentials client unavailable, signed download urls will fail", logging.Err(err))
			return nil
		}
		return c
	}
}

// NewFirestore connects only to Firestore, for tools that read data.
func NewFirestore(ctx context.Context, projectID string) (*firestore.Client, error) {
	if projectID == "" {
		return nil, fmt.Errorf("missing FIREBASE_PROJECT_ID or GOOGLE_CLOUD_PROJECT")
	}
	return firestore.NewClient(ctx, projectID, clientOptions()...)
}

func (c *Clients) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Firestore != nil {
		errs = append(errs, c.Firestore.Close())
	}
	if c.Storage != nil {
		errs = append(errs, c.Storage.Close())
	}
	if c.IAM != nil {
		errs = append(errs, c.IAM.Close())
	}
	return errors.Join(errs...)
}
