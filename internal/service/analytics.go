package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/segment-insights/internal/domain/dto"
	"github.com/guttosm/segment-insights/internal/logger"
	"github.com/guttosm/segment-insights/internal/metrics"
	"github.com/guttosm/segment-insights/internal/trino"
)

// Config holds the tunables for metric computations.
type Config struct {
	// MySQLSchema is the operational-store schema holding the segment mapping.
	MySQLSchema string
	// MetricTTL bounds the staleness of individual metric results.
	MetricTTL time.Duration
	// DashboardTTL bounds the staleness of the composed dashboard payload.
	DashboardTTL time.Duration
	// TopCustomersDefault is the row limit applied when the caller gives none.
	TopCustomersDefault int
	// TopCustomersMax is the upper bound any caller-supplied limit is clamped to.
	TopCustomersMax int
}

// Analytics computes dashboard metrics by running federated queries through
// the admission gate and memoizing results in the TTL cache. It is the only
// component that talks to the executor.
type Analytics struct {
	exec  trino.Executor
	gate  *Gate
	cache *TTLCache
	cfg   Config
}

// NewAnalytics creates the metric computation service.
func NewAnalytics(exec trino.Executor, gate *Gate, cache *TTLCache, cfg Config) *Analytics {
	if cfg.TopCustomersDefault < 1 {
		cfg.TopCustomersDefault = 20
	}
	if cfg.TopCustomersMax < cfg.TopCustomersDefault {
		cfg.TopCustomersMax = 100
	}
	return &Analytics{exec: exec, gate: gate, cache: cache, cfg: cfg}
}

// query runs one SQL statement through the gate and records its outcome.
func (a *Analytics) query(ctx context.Context, metric, sql string) ([]trino.Row, error) {
	var rows []trino.Row
	start := time.Now()

	err := a.gate.Do(ctx, func(ctx context.Context) error {
		var err error
		rows, err = a.exec.Execute(ctx, sql)
		return err
	})
	if err != nil {
		kind := string(trino.KindOf(err))
		metrics.RecordQueryError(metric, kind)
		log := logger.Logger()
		log.Warn().
			Str("metric", metric).
			Str("kind", kind).
			Err(err).
			Msg("Federated query failed")
		return nil, fmt.Errorf("%s: %w", metric, err)
	}

	metrics.RecordQuery(metric, time.Since(start))
	return rows, nil
}

// Ping verifies the query engine is reachable. It bypasses the cache so
// health checks always observe the live engine, but still goes through the
// gate like every other downstream call.
func (a *Analytics) Ping(ctx context.Context) error {
	_, err := a.query(ctx, "health", "SELECT 1")
	return err
}

// KPIs returns the headline figures plus the top revenue segment.
func (a *Analytics) KPIs(ctx context.Context) (dto.KPIs, error) {
	value, err := a.cache.GetOrCompute("kpis", a.cfg.MetricTTL, func() (any, error) {
		rows, err := a.query(ctx, "kpis", a.kpisSQL())
		if err != nil {
			return nil, err
		}
		if len(rows) == 0 || len(rows[0]) < 4 {
			return nil, fmt.Errorf("kpis: engine returned no rows")
		}
		row := rows[0]
		return dto.KPIs{
			TotalRevenue:  toFloat64(row[0]),
			TotalOrders:   toInt64(row[1]),
			AvgOrderValue: toFloat64(row[2]),
			TopSegment:    toString(row[3]),
		}, nil
	})
	if err != nil {
		return dto.KPIs{}, err
	}
	return value.(dto.KPIs), nil
}

// RevenueBySegment returns total revenue per segment, revenue-descending.
// The revenue share endpoint serves the same computation and cache key.
func (a *Analytics) RevenueBySegment(ctx context.Context) (dto.SegmentSeries, error) {
	return a.segmentSeries(ctx, "revenue_by_segment", a.revenueBySegmentSQL())
}

// AvgOrderValueBySegment returns the average order value per segment.
func (a *Analytics) AvgOrderValueBySegment(ctx context.Context) (dto.SegmentSeries, error) {
	return a.segmentSeries(ctx, "avg_order_value_by_segment", a.avgOrderValueBySegmentSQL())
}

// OrdersCountBySegment returns the order count per segment.
func (a *Analytics) OrdersCountBySegment(ctx context.Context) (dto.SegmentCounts, error) {
	value, err := a.cache.GetOrCompute("orders_count_by_segment", a.cfg.MetricTTL, func() (any, error) {
		rows, err := a.query(ctx, "orders_count_by_segment", a.ordersCountBySegmentSQL())
		if err != nil {
			return nil, err
		}
		result := dto.EmptySegmentCounts()
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			result.Labels = append(result.Labels, toString(row[0]))
			result.Values = append(result.Values, toInt64(row[1]))
		}
		return result, nil
	})
	if err != nil {
		return dto.SegmentCounts{}, err
	}
	return value.(dto.SegmentCounts), nil
}

// MonthlyRevenueBySegment returns densified monthly revenue per segment over
// the trailing 12 months, anchored to the newest order date in the data
// rather than wall-clock time.
func (a *Analytics) MonthlyRevenueBySegment(ctx context.Context) (dto.MonthlySeries, error) {
	value, err := a.cache.GetOrCompute("monthly_revenue_by_segment", a.cfg.MetricTTL, func() (any, error) {
		rows, err := a.query(ctx, "monthly_revenue_by_segment", a.monthlyRevenueBySegmentSQL())
		if err != nil {
			return nil, err
		}
		return DensifyMonthly(rows), nil
	})
	if err != nil {
		return dto.MonthlySeries{}, err
	}
	return value.(dto.MonthlySeries), nil
}

// TopCustomers returns the top customers by revenue in upstream order.
// The limit is clamped before it reaches the query text.
func (a *Analytics) TopCustomers(ctx context.Context, limit int) (dto.TopCustomers, error) {
	limit = a.clampLimit(limit)
	key := fmt.Sprintf("top_customers:%d", limit)

	value, err := a.cache.GetOrCompute(key, a.cfg.MetricTTL, func() (any, error) {
		rows, err := a.query(ctx, "top_customers", a.topCustomersSQL(limit))
		if err != nil {
			return nil, err
		}
		result := dto.EmptyTopCustomers()
		for _, row := range rows {
			if len(row) < 4 {
				continue
			}
			result.Rows = append(result.Rows, dto.TopCustomer{
				CustomerName: toString(row[0]),
				Segment:      toString(row[1]),
				Orders:       toInt64(row[2]),
				Revenue:      toFloat64(row[3]),
			})
		}
		return result, nil
	})
	if err != nil {
		return dto.TopCustomers{}, err
	}
	return value.(dto.TopCustomers), nil
}

// Dashboard composes every metric into one payload under its own, typically
// longer, TTL. A warm dashboard entry costs zero queries; a cold one costs
// at most one pass over the sub-computations, which are themselves cached.
func (a *Analytics) Dashboard(ctx context.Context) (dto.Dashboard, error) {
	value, err := a.cache.GetOrCompute("dashboard", a.cfg.DashboardTTL, func() (any, error) {
		kpis, err := a.KPIs(ctx)
		if err != nil {
			return nil, err
		}
		revenue, err := a.RevenueBySegment(ctx)
		if err != nil {
			return nil, err
		}
		avgOrder, err := a.AvgOrderValueBySegment(ctx)
		if err != nil {
			return nil, err
		}
		orders, err := a.OrdersCountBySegment(ctx)
		if err != nil {
			return nil, err
		}
		monthly, err := a.MonthlyRevenueBySegment(ctx)
		if err != nil {
			return nil, err
		}
		return dto.Dashboard{
			KPIs:                    kpis,
			RevenueBySegment:        revenue,
			AvgOrderValueBySegment:  avgOrder,
			OrdersCountBySegment:    orders,
			MonthlyRevenueBySegment: monthly,
		}, nil
	})
	if err != nil {
		return dto.Dashboard{}, err
	}
	return value.(dto.Dashboard), nil
}

// clampLimit sanitizes a caller-supplied row limit into [1, max]; values
// below one fall back to the configured default.
func (a *Analytics) clampLimit(limit int) int {
	if limit < 1 {
		return a.cfg.TopCustomersDefault
	}
	if limit > a.cfg.TopCustomersMax {
		return a.cfg.TopCustomersMax
	}
	return limit
}

// segmentSeries runs a (segment, value) query and shapes it into labels and values.
func (a *Analytics) segmentSeries(ctx context.Context, metric, sql string) (dto.SegmentSeries, error) {
	value, err := a.cache.GetOrCompute(metric, a.cfg.MetricTTL, func() (any, error) {
		rows, err := a.query(ctx, metric, sql)
		if err != nil {
			return nil, err
		}
		result := dto.EmptySegmentSeries()
		for _, row := range rows {
			if len(row) < 2 {
				continue
			}
			result.Labels = append(result.Labels, toString(row[0]))
			result.Values = append(result.Values, toFloat64(row[1]))
		}
		return result, nil
	})
	if err != nil {
		return dto.SegmentSeries{}, err
	}
	return value.(dto.SegmentSeries), nil
}
