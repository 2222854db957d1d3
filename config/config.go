// Package config provides configuration management for the segment insights service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	Trino  TrinoConfig
	Cache  CacheConfig
	Query  QueryConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
	LogLevel    string
	LogPretty   bool
}

// TrinoConfig holds connection settings for the federated query engine.
type TrinoConfig struct {
	Host        string
	Port        int
	User        string
	MySQLSchema string
	Timeout     time.Duration
}

// CacheConfig holds TTL settings for cached metric results.
type CacheConfig struct {
	MetricTTL    time.Duration
	DashboardTTL time.Duration
}

// QueryConfig holds tunables for metric query construction and admission control.
type QueryConfig struct {
	GateCapacity    int
	TopCustomers    int
	TopCustomersMax int
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogPretty:   getEnvBool("LOG_PRETTY", false),
		},
		Trino: TrinoConfig{
			Host:        getEnv("TRINO_HOST", "127.0.0.1"),
			Port:        getEnvInt("TRINO_PORT", 8080),
			User:        getEnv("TRINO_USER", "web"),
			MySQLSchema: getEnv("MYSQL_SCHEMA", "crm_1"),
			Timeout:     getEnvDuration("QUERY_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			MetricTTL:    getEnvDuration("METRIC_TTL", 30*time.Second),
			DashboardTTL: getEnvDuration("DASHBOARD_TTL", time.Minute),
		},
		Query: QueryConfig{
			GateCapacity:    getEnvInt("GATE_CAPACITY", 4),
			TopCustomers:    getEnvInt("TOP_CUSTOMERS_LIMIT", 20),
			TopCustomersMax: getEnvInt("TOP_CUSTOMERS_MAX_LIMIT", 100),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
