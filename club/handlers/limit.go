package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseLimit reads the limit query parameter, applying the handler's
// default and cap. On a bad value it writes the 400 response itself and
// returns ok=false.
func parseLimit(c *gin.Context, def, max int) (int, bool) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(def))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return 0, false
	}

	if limit > max {
		limit = max
	}
	return limit, true
}
