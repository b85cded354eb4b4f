package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camp-admin/backend/internal/config"
)

func TestProdLogsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, config.EnvProd)

	log.Debug("hidden")
	log.Info("shown", Err(errors.New("boom")))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["msg"])
	assert.Equal(t, "boom", line["error"])
}

func TestLocalLogsDebugText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, config.EnvLocal).Debug("details")
	assert.Contains(t, buf.String(), "msg=details")
}
