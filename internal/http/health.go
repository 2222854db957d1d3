package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Liveness handles the liveness probe endpoint.
//
// @Summary     Liveness probe
// @Description Returns OK if the process is running. Engine reachability is reported by /api/health instead.
// @Tags        Health
// @Produce     json
// @Success     200 {object} map[string]string "Service is alive"
// @Router      /healthz [get]
func Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
