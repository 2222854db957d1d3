// Package dto defines the JSON response shapes served by the API.
package dto

// KPIs holds the headline numbers for the dashboard.
//
// @Description Headline revenue and order figures
// @Example {"total_revenue": 15214930.67, "total_orders": 15000, "avg_order_value": 1014.33, "top_segment": "GOLD"}
type KPIs struct {
	TotalRevenue  float64 `json:"total_revenue" example:"15214930.67"`
	TotalOrders   int64   `json:"total_orders" example:"15000"`
	AvgOrderValue float64 `json:"avg_order_value" example:"1014.33"`
	TopSegment    string  `json:"top_segment" example:"GOLD"`
} // @name KPIs

// SegmentSeries is a label-aligned series of float values, one per segment.
//
// @Description Per-segment values aligned with labels
// @Example {"labels": ["GOLD", "SILVER"], "values": [120.5, 77.25]}
type SegmentSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
} // @name SegmentSeries

// SegmentCounts is a label-aligned series of integer counts, one per segment.
//
// @Description Per-segment counts aligned with labels
// @Example {"labels": ["GOLD", "SILVER"], "values": [420, 97]}
type SegmentCounts struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
} // @name SegmentCounts

// Dataset is one segment's series over the shared month labels.
type Dataset struct {
	Label string    `json:"label" example:"GOLD"`
	Data  []float64 `json:"data"`
} // @name Dataset

// MonthlySeries is the densified monthly revenue chart payload. Every dataset
// has exactly one value per label, with months of no activity filled as 0.0.
//
// @Description Monthly revenue per segment over a trailing window
type MonthlySeries struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
} // @name MonthlySeries

// TopCustomer is one row of the top customers table.
type TopCustomer struct {
	CustomerName string  `json:"customer_name" example:"Customer#000000042"`
	Segment      string  `json:"segment" example:"GOLD"`
	Orders       int64   `json:"orders" example:"31"`
	Revenue      float64 `json:"revenue" example:"4510921.33"`
} // @name TopCustomer

// TopCustomers wraps the top customers rows in upstream (revenue-descending) order.
//
// @Description Top customers by revenue
type TopCustomers struct {
	Rows []TopCustomer `json:"rows"`
} // @name TopCustomers

// Dashboard composes every dashboard metric into one payload.
//
// @Description Full dashboard payload
type Dashboard struct {
	KPIs                    KPIs          `json:"kpis"`
	RevenueBySegment        SegmentSeries `json:"revenue_by_segment"`
	AvgOrderValueBySegment  SegmentSeries `json:"avg_order_value_by_segment"`
	OrdersCountBySegment    SegmentCounts `json:"orders_count_by_segment"`
	MonthlyRevenueBySegment MonthlySeries `json:"monthly_revenue_by_segment"`
} // @name Dashboard

// Health is the engine reachability payload.
//
// @Description Query engine reachability
type Health struct {
	OK bool `json:"ok"`
} // @name Health

// EmptySegmentSeries returns the neutral payload served when the engine is
// unavailable. Slices are non-nil so they serialize as [] rather than null.
func EmptySegmentSeries() SegmentSeries {
	return SegmentSeries{Labels: []string{}, Values: []float64{}}
}

// EmptySegmentCounts returns the neutral counts payload.
func EmptySegmentCounts() SegmentCounts {
	return SegmentCounts{Labels: []string{}, Values: []int64{}}
}

// EmptyMonthlySeries returns the neutral monthly payload.
func EmptyMonthlySeries() MonthlySeries {
	return MonthlySeries{Labels: []string{}, Datasets: []Dataset{}}
}

// EmptyTopCustomers returns the neutral top customers payload.
func EmptyTopCustomers() TopCustomers {
	return TopCustomers{Rows: []TopCustomer{}}
}
