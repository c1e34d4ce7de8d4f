package handlers

import (
	"net/http"

	"mediflow/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest health snapshot of the backing stores.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()

	code := http.StatusOK
	if !status.Mongo || !status.Redis {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
