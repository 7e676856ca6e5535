package handlers

import (
	"net/http"
	"strings"

	"oneflow/internal/domain/entities"
	"oneflow/internal/usecase"
	"oneflow/pkg"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "oneflow.session"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Login required", http.StatusUnauthorized)

// RequireAuth gates a route group on a Bearer token. A missing,
// malformed, or expired token aborts with 401; a valid one stores the
// rebuilt session in the request context.
func RequireAuth(auth usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := auth.CurrentSession(c.Request.Context(), bearerToken(c))
		if err != nil || !session.IsAuthenticated() {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// SessionFromContext returns the session stored by RequireAuth.
func SessionFromContext(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return entities.Session{}, false
	}
	session, ok := v.(entities.Session)
	return session, ok
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
