// middleware/validation.go

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	kada_errors "github.com/kada-connect/api/errors"
	"github.com/kada-connect/api/util"
)

// ValidateSearchQuery rejects empty or oversized q parameters before they
// reach the lookup service and stores the trimmed value in the context.
func ValidateSearchQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		query := strings.TrimSpace(c.Query("q"))
		if query == "" {
			util.RespondWithError(c, http.StatusBadRequest, "Query parameter q is required", kada_errors.ErrInvalidSearchQuery)
			c.Abort()
			return
		}
		if len(query) > util.MaxSearchQueryLength {
			util.RespondWithError(c, http.StatusBadRequest, "Query parameter q is too long", kada_errors.ErrSearchQueryTooLong)
			c.Abort()
			return
		}

		c.Set("searchQuery", query)
		c.Next()
	}
}
