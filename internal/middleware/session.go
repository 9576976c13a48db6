package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionOptions configures the session cookie.
type SessionOptions struct {
	CookieName string
	Secure     bool
	MaxAge     int // seconds; 0 keeps the cookie for the browser session
}

// SessionMiddleware makes sure every request carries a session ID. Requests
// without a valid session cookie get a fresh UUID and a Set-Cookie header.
func SessionMiddleware(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(opts.CookieName)
		if err == nil {
			_, err = uuid.Parse(sessionID)
		}
		if err != nil {
			sessionID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(opts.CookieName, sessionID, opts.MaxAge, "/", "", opts.Secure, true)
		}

		ctx := WithSessionID(c.Request.Context(), sessionID)
		logger := GetLoggerFromCtx(ctx).With(slog.String("session_id", sessionID))
		c.Request = c.Request.WithContext(WithLogger(ctx, logger))

		c.Next()
	}
}
