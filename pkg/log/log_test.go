package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	original := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(original) })

	SetupTestLogger()
	return buf
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestWithFields_DevelopmentKeepsOnlyRelevantFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{"year": 2003, "remote_addr": "10.0.0.1"}).Info("consulta")

	out := buf.String()
	assert.Contains(t, out, "year=2003")
	assert.NotContains(t, out, "remote_addr")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithFields(Fields{"remote_addr": "10.0.0.1"}).Info("consulta")

	assert.Contains(t, buf.String(), "remote_addr=10.0.0.1")
}

func TestForContext_AddsCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).Info("mensagem")

	assert.Contains(t, buf.String(), id)
}
