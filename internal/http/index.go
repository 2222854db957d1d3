package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// indexHTML is a minimal landing page for the dashboard UI. The production
// frontend is deployed separately; this page makes the service self-describing
// when opened in a browser.
const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Segment Insights</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 2rem auto; max-width: 42rem; color: #222; }
    code { background: #f4f4f4; padding: 0.1rem 0.3rem; border-radius: 3px; }
    li { margin: 0.3rem 0; }
  </style>
</head>
<body>
  <h1>Segment Insights</h1>
  <p>Read-only analytics API over the federated warehouse. Endpoints:</p>
  <ul>
    <li><code>GET /api/health</code></li>
    <li><code>GET /api/kpis</code></li>
    <li><code>GET /api/revenue_by_segment</code></li>
    <li><code>GET /api/revenue_share_by_segment</code></li>
    <li><code>GET /api/avg_order_value_by_segment</code></li>
    <li><code>GET /api/orders_count_by_segment</code></li>
    <li><code>GET /api/monthly_revenue_by_segment</code></li>
    <li><code>GET /api/top_customers?limit=20</code></li>
    <li><code>GET /api/dashboard</code></li>
  </ul>
  <p>Docs at <a href="/swagger/index.html">/swagger</a>, metrics at <a href="/metrics">/metrics</a>.</p>
</body>
</html>`

// Index handles GET / requests with the landing page.
func (h *Handler) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexHTML))
}
