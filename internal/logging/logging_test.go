package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphtrace/internal/logging"
)

func TestNew_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New("warn", "json", &buf)
	l.Info("hidden")
	l.Warn("shown", "algorithm", "bfs")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "bfs", rec["algorithm"])
}

func TestNew_TextDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logging.New("verbose", "", &buf)
	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestContext(t *testing.T) {
	fallback := logging.Discard()
	assert.Same(t, fallback, logging.FromContext(context.Background(), fallback))

	var buf bytes.Buffer
	l := logging.New("info", "text", &buf)
	ctx := logging.WithLogger(context.Background(), l)
	assert.Same(t, l, logging.FromContext(ctx, fallback))
}
