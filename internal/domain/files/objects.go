package files

import (
	"context"
	"errors"
	"fmt"
	"time"

	credentials "cloud.google.com/go/iam/credentials/apiv1"
	"cloud.google.com/go/iam/credentials/apiv1/credentialspb"
	"cloud.google.com/go/storage"
)

// GCS stores exports in a Cloud Storage bucket and signs download links
// through the IAM credentials API, so no private key is needed locally.
type GCS struct {
	client         *storage.Client
	iam            *credentials.IamCredentialsClient
	bucket         string
	serviceAccount string
}

func NewGCS(client *storage.Client, iam *credentials.IamCredentialsClient, bucket, serviceAccount string) *GCS {
	return &GCS{client: client, iam: iam, bucket: bucket, serviceAccount: serviceAccount}
}

func (g *GCS) Put(ctx context.Context, objectPath, contentType string, body []byte) error {
	if g.bucket == "" {
		return errors.New("FIREBASE_STORAGE_BUCKET is not set")
	}

	w := g.client.Bucket(g.bucket).Object(objectPath).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to upload %s: %w", objectPath, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectPath, err)
	}
	return nil
}

func (g *GCS) SignedURL(ctx context.Context, objectPath string, expires time.Time) (string, error) {
	if g.bucket == "" {
		return "", errors.New("FIREBASE_STORAGE_BUCKET is not set")
	}
	if g.serviceAccount == "" {
		return "", errors.New("SIGNED_URL_SERVICE_ACCOUNT_EMAIL is not set")
	}
	if g.iam == nil {
		return "", errors.New("IAM credentials client not available")
	}

	opts := &storage.SignedURLOptions{
		Scheme:         storage.SigningSchemeV4,
		Method:         "GET",
		Expires:        expires,
		GoogleAccessID: g.serviceAccount,
		SignBytes: func(b []byte) ([]byte, error) {
			resp, err := g.iam.SignBlob(ctx, &credentialspb.SignBlobRequest{
				Name:    "projects/-/serviceAccounts/" + g.serviceAccount,
				Payload: b,
			})
			if err != nil {
				return nil, err
			}
			return resp.SignedBlob, nil
		},
	}

	url, err := storage.SignedURL(g.bucket, objectPath, opts)
	if err != nil {
		return "", fmt.Errorf("failed to sign url (check service account + permissions): %w", err)
	}
	return url, nil
}
