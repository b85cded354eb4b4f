package firebase

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	credentials "cloud.google.com/go/iam/credentials/apiv1"
	"github.com/stretchr/testify/assert"

	"camp-admin/backend/internal/config"
)

func TestOptionalIAMLogsCreationFailure(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	c := optionalIAM(log)(nil, errors.New("no default credentials"))

	assert.Nil(t, c)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), `error="no default credentials"`)
}

func TestOptionalIAMKeepsClient(t *testing.T) {
	var buf bytes.Buffer
	in := &credentials.IamCredentialsClient{}

	out := optionalIAM(slog.New(slog.NewTextHandler(&buf, nil)))(in, nil)

	assert.Same(t, in, out)
	assert.Empty(t, buf.String())
}

func TestNewClientsRequiresProject(t *testing.T) {
	_, err := NewClients(context.Background(), config.Config{}, nil)
	assert.ErrorContains(t, err, "FIREBASE_PROJECT_ID")
}
