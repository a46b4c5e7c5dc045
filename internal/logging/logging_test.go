package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid json info", Config{Level: "info", Format: "json"}, false},
		{"valid console debug", Config{Level: "debug", Format: "console"}, false},
		{"bad level", Config{Level: "loud", Format: "json"}, true},
		{"bad format", Config{Level: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("builds with defaults when nil", func(t *testing.T) {
		logger, err := NewLogger(nil)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		_, err := NewLogger(&Config{Level: "nope", Format: "json"})
		assert.Error(t, err)
	})
}

func TestNewTestLogger(t *testing.T) {
	tl := NewTestLogger()
	tl.Logger.Info("scan complete")
	require.Len(t, tl.Observed.All(), 1)
	assert.Equal(t, "scan complete", tl.Observed.All()[0].Message)
}
