package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projetoguri/sgpg/internal/policy"
	"github.com/projetoguri/sgpg/internal/session"
)

// RequirePermission checks the policy table for the signed-in employee's
// role. A refusal is flashed and the browser sent back to fallback.
func RequirePermission(flasher *session.Flasher, resource policy.Resource, action policy.Action, fallback string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		if !policy.Allowed(sess.EmployeeRole, resource, action) {
			flasher.Add(c.Writer, c.Request, session.Flash{
				Level:   session.FlashError,
				Title:   "Opa!",
				Message: "Usuário não possui permissão.",
			})
			c.Redirect(http.StatusSeeOther, fallback)
			c.Abort()
			return
		}

		c.Next()
	}
}
