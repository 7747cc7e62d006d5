package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "gumi-server")

	l.Info().Str("item_id", "a1").Msg("saved")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "gumi-server", entry["role"])
	assert.Equal(t, "a1", entry["item_id"])
	assert.Equal(t, "saved", entry["message"])
	assert.Contains(t, entry, zerolog.TimestampFieldName)
	assert.Contains(t, entry["caller"], "TestNew_Fields")
}

func TestNew_LevelFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want zerolog.Level
	}{
		{"", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"INFO", zerolog.InfoLevel},
		{"loud", zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(LevelEnv, tt.env)
			New(&bytes.Buffer{}, "lvl")
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	t.Setenv(FileEnv, path)
	t.Setenv(LevelEnv, "")

	l := NewClientLogger("gumi-client")
	l.Info().Msg("started")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"gumi-client"`)
	assert.Contains(t, string(data), `"message":"started"`)
}

func TestNop(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")
	assert.Empty(t, buf.String())
}

func TestGetChildLogger(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "parent")

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "t-1")
	})
	child.Info().Msg("child")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "parent", entry["role"])
	assert.Equal(t, "t-1", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, decodeLine(t, &buf), "trace_id")
}

func TestWithUser(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "srv").WithUser(42).Info().Msg("x")

	assert.EqualValues(t, 42, decodeLine(t, &buf)["user_id"])
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := New(&buf, "ctx").WithUser(3).WithContext(context.Background())

		FromContext(ctx).Info().Msg("from ctx")
		assert.EqualValues(t, 3, decodeLine(t, &buf)["user_id"])
	})

	t.Run("nothing attached", func(t *testing.T) {
		l := FromContext(context.Background())
		require.NotNil(t, l)
		l.Info().Msg("must not panic")
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := New(&buf, "req").WithContext(context.Background())
	r := httptest.NewRequest("GET", "/api/items", nil).WithContext(ctx)

	FromRequest(r).Info().Msg("request")
	assert.Equal(t, "req", decodeLine(t, &buf)["role"])
}
