package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureAdapter(level string) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return NewLogrusAdapterFromLogger(logger), buf
}

func TestAdapterWritesFields(t *testing.T) {
	adapter, buf := captureAdapter("debug")

	adapter.Info("processing file", Field{Key: FieldFile, Value: "january.csv"})

	output := buf.String()
	assert.Contains(t, output, "processing file")
	assert.Contains(t, output, "january.csv")
}

func TestAdapterRespectsLevel(t *testing.T) {
	adapter, buf := captureAdapter("warn")

	adapter.Debug("not visible")
	adapter.Info("not visible either")
	adapter.Warn("visible")

	output := buf.String()
	assert.NotContains(t, output, "not visible")
	assert.Contains(t, output, "visible")
}

func TestAdapterWithErrorAndFields(t *testing.T) {
	adapter, buf := captureAdapter("debug")

	adapter.WithError(errors.New("disk full")).
		WithField(FieldStage, "aggregate").
		Error("write failed")

	output := buf.String()
	assert.Contains(t, output, "disk full")
	assert.Contains(t, output, "aggregate")
	assert.Contains(t, output, "write failed")
}

func TestNewLogrusAdapterFallsBackOnBadLevel(t *testing.T) {
	adapter := NewLogrusAdapter("nonsense", "text")
	require.NotNil(t, adapter)
}

func TestSetDefault(t *testing.T) {
	original := GetLogger()
	defer SetDefault(original)

	mock := &MockLogger{}
	SetDefault(mock)
	GetLogger().Info("routed to mock")

	assert.True(t, mock.HasMessage("routed to mock"))
}

func TestMockLoggerRecordsEntries(t *testing.T) {
	mock := &MockLogger{}
	mock.Warn("careful", Field{Key: FieldCategory, Value: "Groceries"})

	require.Len(t, mock.Entries, 1)
	assert.Equal(t, "careful", mock.Entries[0].Message)
	assert.False(t, mock.HasMessage("never logged"))
}
