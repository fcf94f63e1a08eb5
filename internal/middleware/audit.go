package middleware

import (
	"net/http"
	"strings"

	"github.com/ateliersoft/backoffice_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not produce audit events
var pathsToSkip = map[string]bool{
	"/health": true,
}

// AuditMiddleware creates a Gin middleware handler that records an audit
// event for every successful mutating request. Auditing is best-effort:
// it runs after the response and can never fail the request.
func AuditMiddleware(auditClient *utils.AuditClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auditClient == nil || !auditClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		// Only successful mutations are audited.
		if c.Request.Method == http.MethodGet {
			return
		}
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// Event name from the route path, e.g. "/api/v1/quotes" -> "api_v1_quotes"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.ReplaceAll(eventName, "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		auditClient.Enqueue(userID, eventName, props)
	}
}
