package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{"json backend", Config{Backend: BackendJSON, DataDir: "/srv/chests"}, nil},
		{"sqlite backend", Config{Backend: BackendSQLite, DataDir: "/srv/chests"}, nil},
		{"data dir is optional", Config{Backend: BackendJSON}, nil},
		{"empty backend", Config{DataDir: "/srv/chests"}, ErrBackendEmpty},
		{"backend names are case sensitive", Config{Backend: "JSON"}, ErrBackendUnknown},
		{"backend is not trimmed", Config{Backend: " sqlite"}, ErrBackendUnknown},
		{"unsupported backend", Config{Backend: "redis"}, ErrBackendUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestKnownBackendsMatchConstants(t *testing.T) {
	assert.Len(t, knownBackends, 2)
	for _, b := range []string{BackendJSON, BackendSQLite} {
		assert.True(t, knownBackends[b], b)
	}
}
