package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmiyake/picking-list-generator/pkg/logging"
)

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})

	log.Info("processing %s", "FRAME12345.xlsx")

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "processing FRAME12345.xlsx", record["message"])
	assert.Contains(t, record, "time")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Options{Level: "warn", Format: "json", Output: &buf})

	log.Debug("dropped")
	log.Info("dropped")
	log.Warn("kept")

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Options{Level: "chatty", Format: "json", Output: &buf})

	log.Debug("dropped")
	log.Info("kept")

	assert.Contains(t, buf.String(), "kept")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Options{Level: "info", Output: &buf})

	log.Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNop(t *testing.T) {
	log := logging.Nop()
	log.Debug("x")
	log.Info("x")
	log.Warn("x")
	log.Error("x")
}

func TestCapture(t *testing.T) {
	log := logging.NewCapture()

	log.Info("first %d", 1)
	log.Warn("second")
	log.Info("third")
	log.Error("fourth")

	entries := log.Entries()
	require.Len(t, entries, 4)
	assert.Equal(t, logging.Entry{Level: "info", Message: "first 1"}, entries[0])

	assert.Equal(t, []string{"first 1", "third"}, log.Messages("info"))
	assert.Equal(t, []string{"second"}, log.Messages("warn"))
	assert.Empty(t, log.Messages("debug"))
}
