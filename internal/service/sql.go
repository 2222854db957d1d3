package service

import "fmt"

// Query text for the federated metrics. Orders and customers live in the
// TPC-H warehouse catalog; the customer-segment mapping lives in the
// operational MySQL catalog and is joined at query time. The schema name is
// operator-supplied configuration; the only caller-influenced value, the top
// customers limit, is clamped to an integer range before interpolation.

func (a *Analytics) kpisSQL() string {
	return fmt.Sprintf(`
    WITH totals AS (
        SELECT
            ROUND(SUM(o.totalprice), 2) AS total_revenue,
            COUNT(*)                    AS total_orders,
            ROUND(AVG(o.totalprice), 2) AS avg_order_value
        FROM tpch.tiny.orders o
    ),
    top_seg AS (
        SELECT v.segment, SUM(o.totalprice) AS rev
        FROM tpch.tiny.orders o
        JOIN tpch.tiny.customer c ON o.custkey = c.custkey
        JOIN mysql.%s.vip_customers v ON v.custkey = c.custkey
        GROUP BY v.segment
        ORDER BY rev DESC
        LIMIT 1
    )
    SELECT t.total_revenue, t.total_orders, t.avg_order_value, s.segment AS top_segment
    FROM totals t
    CROSS JOIN top_seg s`, a.cfg.MySQLSchema)
}

func (a *Analytics) revenueBySegmentSQL() string {
	return fmt.Sprintf(`
    SELECT v.segment, ROUND(SUM(o.totalprice), 2) AS revenue
    FROM tpch.tiny.orders o
    JOIN tpch.tiny.customer c ON o.custkey = c.custkey
    JOIN mysql.%s.vip_customers v ON v.custkey = c.custkey
    GROUP BY v.segment
    ORDER BY revenue DESC`, a.cfg.MySQLSchema)
}

func (a *Analytics) avgOrderValueBySegmentSQL() string {
	return fmt.Sprintf(`
    SELECT v.segment, ROUND(AVG(o.totalprice), 2) AS avg_order_value
    FROM tpch.tiny.orders o
    JOIN tpch.tiny.customer c ON o.custkey = c.custkey
    JOIN mysql.%s.vip_customers v ON v.custkey = c.custkey
    GROUP BY v.segment
    ORDER BY avg_order_value DESC`, a.cfg.MySQLSchema)
}

func (a *Analytics) ordersCountBySegmentSQL() string {
	return fmt.Sprintf(`
    SELECT v.segment, COUNT(*) AS orders
    FROM tpch.tiny.orders o
    JOIN tpch.tiny.customer c ON o.custkey = c.custkey
    JOIN mysql.%s.vip_customers v ON v.custkey = c.custkey
    GROUP BY v.segment
    ORDER BY orders DESC`, a.cfg.MySQLSchema)
}

// The trailing window is anchored to max(orderdate) because the TPC-H sample
// data is historical; a wall-clock window would always be empty.
func (a *Analytics) monthlyRevenueBySegmentSQL() string {
	return fmt.Sprintf(`
    WITH bounds AS (
        SELECT max(orderdate) AS maxd
        FROM tpch.tiny.orders
    )
    SELECT date_trunc('month', o.orderdate) AS m,
           v.segment,
           ROUND(SUM(o.totalprice), 2) AS revenue
    FROM tpch.tiny.orders o
    JOIN tpch.tiny.customer c ON o.custkey = c.custkey
    JOIN mysql.%s.vip_customers v ON v.custkey = c.custkey
    CROSS JOIN bounds b
    WHERE o.orderdate >= date_add('month', -12, b.maxd)
    GROUP BY 1, 2
    ORDER BY 1, 2`, a.cfg.MySQLSchema)
}

func (a *Analytics) topCustomersSQL(limit int) string {
	return fmt.Sprintf(`
    SELECT c.name AS customer_name, v.segment, COUNT(o.orderkey) AS orders, ROUND(SUM(o.totalprice), 2) AS revenue
    FROM tpch.tiny.customer c
    JOIN tpch.tiny.orders   o ON o.custkey = c.custkey
    JOIN mysql.%s.vip_customers v ON v.custkey = c.custkey
    GROUP BY c.name, v.segment
    ORDER BY revenue DESC
    LIMIT %d`, a.cfg.MySQLSchema, limit)
}
