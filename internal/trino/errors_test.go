//go:build !integration

package trino

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeNetError struct{}

func (fakeNetError) Error() string   { return "dial tcp: i/o timeout" }
func (fakeNetError) Timeout() bool   { return true }
func (fakeNetError) Temporary() bool { return true }

var _ net.Error = fakeNetError{}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorKind
	}{
		{
			name:     "context deadline is transport",
			err:      context.DeadlineExceeded,
			expected: KindTransport,
		},
		{
			name:     "context cancellation is transport",
			err:      context.Canceled,
			expected: KindTransport,
		},
		{
			name:     "net error is transport",
			err:      fakeNetError{},
			expected: KindTransport,
		},
		{
			name:     "wrapped net error is transport",
			err:      fmt.Errorf("query: %w", fakeNetError{}),
			expected: KindTransport,
		},
		{
			name:     "connection refused is transport",
			err:      errors.New(`Post "http://127.0.0.1:8080/v1/statement": connection refused`),
			expected: KindTransport,
		},
		{
			name:     "syntax error is user error",
			err:      errors.New("trino: query failed (200 OK): SYNTAX_ERROR: line 1:8: mismatched input"),
			expected: KindUser,
		},
		{
			name:     "missing column is user error",
			err:      errors.New("COLUMN_NOT_FOUND: Column 'o.totalpric' cannot be resolved"),
			expected: KindUser,
		},
		{
			name:     "missing catalog is user error",
			err:      errors.New("CATALOG_NOT_FOUND: Catalog 'mysqk' not found"),
			expected: KindUser,
		},
		{
			name:     "federated source failure is external",
			err:      errors.New("JDBC_ERROR: Communications link failure to mysql connector"),
			expected: KindExternal,
		},
		{
			name:     "generic engine failure is external",
			err:      errors.New("GENERIC_INTERNAL_ERROR: worker node lost"),
			expected: KindExternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := classify("executing query", tt.err)
			assert.Equal(t, tt.expected, classified.Kind)
			assert.ErrorIs(t, classified, tt.err)
		})
	}
}

func TestKindOf(t *testing.T) {
	t.Run("extracts kind from executor error", func(t *testing.T) {
		err := newError(KindUser, "executing query", errors.New("SYNTAX_ERROR"))
		assert.Equal(t, KindUser, KindOf(err))
	})

	t.Run("extracts kind from wrapped executor error", func(t *testing.T) {
		err := fmt.Errorf("kpis: %w", newError(KindTransport, "executing query", context.DeadlineExceeded))
		assert.Equal(t, KindTransport, KindOf(err))
	})

	t.Run("defaults to external for unknown errors", func(t *testing.T) {
		assert.Equal(t, KindExternal, KindOf(errors.New("boom")))
	})
}

func TestError_Error(t *testing.T) {
	t.Run("includes kind, message, and cause", func(t *testing.T) {
		err := newError(KindExternal, "executing query", errors.New("worker lost"))
		assert.Contains(t, err.Error(), "external_error")
		assert.Contains(t, err.Error(), "executing query")
		assert.Contains(t, err.Error(), "worker lost")
	})

	t.Run("handles nil cause", func(t *testing.T) {
		err := newError(KindTransport, "opening connection", nil)
		assert.Contains(t, err.Error(), "transport_error")
	})
}

func TestNewClient(t *testing.T) {
	t.Run("builds DSN from config", func(t *testing.T) {
		client, err := NewClient(testTrinoConfig())
		assert.NoError(t, err)
		assert.Contains(t, client.dsn, "web@127.0.0.1:8080")
		assert.Equal(t, 10*time.Second, client.timeout)
	})

	t.Run("applies default timeout", func(t *testing.T) {
		cfg := testTrinoConfig()
		cfg.Timeout = 0
		client, err := NewClient(cfg)
		assert.NoError(t, err)
		assert.Equal(t, 10*time.Second, client.timeout)
	})
}
