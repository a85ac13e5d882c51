package helper

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// PageNumber reads the 1-based "page" query parameter. Missing or
// non-numeric values mean the first page; numbers too large for an int mean
// the last one. Range clamping happens once the total is known.
func PageNumber(c *gin.Context) int {
	raw := strings.TrimSpace(c.Query("page"))
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(raw, "-") {
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return n
}
