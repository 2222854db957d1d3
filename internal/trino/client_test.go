//go:build !integration

package trino

import (
	"time"

	"github.com/guttosm/segment-insights/config"
)

func testTrinoConfig() config.TrinoConfig {
	return config.TrinoConfig{
		Host:        "127.0.0.1",
		Port:        8080,
		User:        "web",
		MySQLSchema: "crm_1",
		Timeout:     10 * time.Second,
	}
}
