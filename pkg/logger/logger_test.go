package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput(t *testing.T) {
	t.Run("writes JSON with message key", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := NewWithOutput("debug", buf)

		log.WithField("facility_id", "F1").Info("Facility snapshot degraded")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "Facility snapshot degraded", entry["message"])
		assert.Equal(t, "F1", entry["facility_id"])
		assert.Equal(t, "info", entry["level"])
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		log := NewWithOutput("loud", &bytes.Buffer{})
		assert.Equal(t, logrus.InfoLevel, log.GetLevel())
	})

	t.Run("debug suppressed at warn level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := NewWithOutput("warn", buf)
		log.Debug("feed call failed")
		assert.Zero(t, buf.Len())
	})
}
