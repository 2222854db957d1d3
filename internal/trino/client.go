// Package trino provides the query executor adapter for the federated engine.
// It opens one connection per call, runs a single statement, and classifies
// failures into the three buckets callers care about.
package trino

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	trinodriver "github.com/trinodb/trino-go-client/trino"

	"github.com/guttosm/segment-insights/config"
)

// Row is one result row of typed scalar values as returned by the engine.
type Row []any

// Executor runs one SQL statement against the query engine.
type Executor interface {
	Execute(ctx context.Context, query string) ([]Row, error)
}

// Client is the default Executor backed by the Trino Go driver.
// Deliberately no pooling: each Execute opens and closes its own connection
// so a stuck engine cannot pin idle sockets between requests.
type Client struct {
	dsn     string
	timeout time.Duration
}

// NewClient creates a Client from Trino connection settings.
func NewClient(cfg config.TrinoConfig) (*Client, error) {
	serverURI := fmt.Sprintf("http://%s@%s:%d", cfg.User, cfg.Host, cfg.Port)
	dsnCfg := trinodriver.Config{
		ServerURI: serverURI,
		Source:    "segment-insights",
	}
	dsn, err := dsnCfg.FormatDSN()
	if err != nil {
		return nil, fmt.Errorf("building trino DSN: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{dsn: dsn, timeout: timeout}, nil
}

// Execute runs query and returns all rows. One attempt, one connection,
// bounded by the configured timeout.
func (c *Client) Execute(ctx context.Context, query string) ([]Row, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	db, err := sql.Open("trino", c.dsn)
	if err != nil {
		return nil, newError(KindTransport, "opening connection", err)
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("executing query", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, classify("reading columns", err)
	}

	var result []Row
	for rows.Next() {
		values := make(Row, len(cols))
		scanTargets := make([]any, len(cols))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, classify("scanning row", err)
		}
		result = append(result, values)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("iterating rows", err)
	}

	return result, nil
}
