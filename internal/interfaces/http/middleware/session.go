package middleware

import (
	"net/http"
	"strings"

	appidentity "github.com/emporium/backend/internal/application/identity"
	"github.com/emporium/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// SessionKey is the gin context key holding the authenticated session
const SessionKey = "session"

// Authenticator validates a bearer token against the active session
type Authenticator interface {
	Authenticate(token string) (*appidentity.Session, error)
}

// SessionAuth requires a valid bearer token matching the active session.
// The session is stored in the gin context under SessionKey.
func SessionAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Missing authorization token")
			return
		}

		session, err := auth.Authenticate(token)
		if err != nil {
			abortUnauthorized(c, dto.ErrCodeTokenInvalid, "Invalid or expired session")
			return
		}

		c.Set(SessionKey, session)
		c.Next()
	}
}

// GetSession returns the authenticated session from the gin context, or nil
func GetSession(c *gin.Context) *appidentity.Session {
	value, exists := c.Get(SessionKey)
	if !exists {
		return nil
	}
	session, ok := value.(*appidentity.Session)
	if !ok {
		return nil
	}
	return session
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func abortUnauthorized(c *gin.Context, code, message string) {
	requestID := c.GetString("request_id")
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, message, requestID))
}
