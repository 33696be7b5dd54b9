package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/motorline/dealerdesk-api/pkg/pagination"
)

// GetUserID extracts the authenticated user's ID from the Gin context
func GetUserID(c *gin.Context) *uint {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return nil
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		return nil
	}
	return &userID
}

// GetUserRole extracts the authenticated user's role from the Gin context
func GetUserRole(c *gin.Context) string {
	role, exists := c.Get("user_role")
	if !exists {
		return ""
	}
	r, ok := role.(string)
	if !ok {
		return ""
	}
	return r
}

// parseIDParam parses the :id path parameter as an unsigned integer
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseCustomerIDParam parses the :customer_id path parameter
func parseCustomerIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("customer_id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// paginationParams reads page/limit query parameters
func paginationParams(c *gin.Context) *pagination.PaginationParams {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		return pagination.DefaultPagination()
	}
	params.Validate()
	return params
}

// parseDateRange reads from/to query parameters as YYYY-MM-DD dates
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
