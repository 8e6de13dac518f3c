package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prevOut := logrus.StandardLogger().Out
	prevFormatter := logrus.StandardLogger().Formatter
	logrus.SetOutput(buf)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		logrus.SetOutput(prevOut)
		logrus.SetFormatter(prevFormatter)
	})
	return buf
}

func TestWithContext_AddsUserAndRequestID(t *testing.T) {
	buf := captureOutput(t)

	ctx := context.WithValue(context.Background(), "email", "admin@example.com")
	ctx = context.WithValue(ctx, RequestIDKey, "req-123")
	WithContext(ctx).Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "admin@example.com", entry["user"])
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "hello", entry["msg"])
}

func TestWithContext_EmptyContext(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).WithField("project_id", "T1").Warn("no identity")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, "user")
	assert.Equal(t, "T1", entry["project_id"])
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	prev := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(prev) })

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("chatty")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
