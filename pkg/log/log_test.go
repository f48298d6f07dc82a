package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_IncluiCorrelationID(t *testing.T) {
	Setup("debug")
	var buf bytes.Buffer
	logrus.SetOutput(&buf)

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("product_id", "1").Info("produto criado")

	assert.Contains(t, buf.String(), "correlation_id="+id)
	assert.Contains(t, buf.String(), "product_id=1")
	assert.Contains(t, buf.String(), "produto criado")
}

func TestSetup_NivelInvalido(t *testing.T) {
	Setup("barulhento")

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
