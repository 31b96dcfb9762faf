package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/response"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/rs/zerolog"
)

const (
	// ContextKeySession is the Gin context key for the signed-in employee.
	ContextKeySession = "session"
	// ContextKeyStorage is the Gin context key for the request's session storage.
	ContextKeyStorage = "session_storage"

	LoginPath = "/login"
	HomePath  = "/"
)

// Routes served without touching the session.
var (
	publicPaths    = []string{"/health", "/favicon.ico"}
	publicPrefixes = []string{"/static/"}
)

func isPublic(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	for _, p := range publicPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthGate opens the browser's session storage, boots the auth service and
// guards the route: anonymous visitors go to the login page and signed-in
// employees are sent away from it.
func AuthGate(auth *service.AuthService, driver session.Driver, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isPublic(path) {
			c.Next()
			return
		}

		st := driver.Open(c.Writer, c.Request)
		c.Set(ContextKeyStorage, st)

		state, sess, err := auth.Boot(c.Request.Context(), st)
		if err != nil {
			log.Error().Err(err).Str("request_id", c.GetString(response.ContextKeyRequestID)).Msg("Session boot failed")
			state, sess = service.StateAnonymous, nil
		}

		switch {
		case state != service.StateAuthenticated && path != LoginPath:
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		case state == service.StateAuthenticated && path == LoginPath:
			c.Redirect(http.StatusFound, HomePath)
			c.Abort()
			return
		}

		if sess != nil {
			c.Set(ContextKeySession, sess)
		}
		c.Next()
	}
}

// CurrentSession retrieves the signed-in employee from the Gin context.
func CurrentSession(c *gin.Context) *model.Session {
	val, exists := c.Get(ContextKeySession)
	if !exists {
		return nil
	}
	sess, ok := val.(*model.Session)
	if !ok {
		return nil
	}
	return sess
}

// CurrentStorage retrieves the session storage opened for this request.
func CurrentStorage(c *gin.Context) session.Storage {
	val, exists := c.Get(ContextKeyStorage)
	if !exists {
		return nil
	}
	st, ok := val.(session.Storage)
	if !ok {
		return nil
	}
	return st
}
