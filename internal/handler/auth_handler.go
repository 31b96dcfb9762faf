package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projetoguri/sgpg/internal/middleware"
	"github.com/projetoguri/sgpg/internal/model"
	"github.com/projetoguri/sgpg/internal/response"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/projetoguri/sgpg/internal/validator"
	"github.com/rs/zerolog"
)

// LoginData is the login page model. The password is never echoed back.
type LoginData struct {
	Email  string
	Errors map[string]string
}

// AuthHandler handles sign-in and sign-out.
type AuthHandler struct {
	pages
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, flasher *session.Flasher, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		pages:       pages{flasher: flasher, log: log.With().Str("handler", "auth").Logger()},
		authService: authService,
	}
}

// ShowLogin godoc
// GET /login
// Shows the sign-in form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", "Entrar", "", LoginData{})
}

// Login godoc
// POST /login
// Signs the employee in and sends them to the dashboard.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if errs := validator.Bind(c, &req); errs != nil {
		h.render(c, http.StatusUnprocessableEntity, "login.html", "Entrar", "",
			LoginData{Email: req.Email, Errors: errs}, validationFlash())
		return
	}

	st := middleware.CurrentStorage(c)
	if _, err := h.authService.SignIn(c.Request.Context(), st, req.Email, req.Password); err != nil {
		h.fail(c, err, middleware.LoginPath)
		return
	}
	h.success(c, "Usuário logado com sucesso.", middleware.HomePath)
}

// Logout godoc
// POST /logout
// Clears the session and returns to the sign-in page.
func (h *AuthHandler) Logout(c *gin.Context) {
	st := middleware.CurrentStorage(c)
	if err := h.authService.SignOut(st, middleware.CurrentSession(c)); err != nil {
		h.fail(c, err, middleware.HomePath)
		return
	}
	h.redirect(c, middleware.LoginPath)
}

// RateLimited answers a sign-in attempt over the per-IP limit.
func (h *AuthHandler) RateLimited(c *gin.Context) {
	h.log.Warn().Str("ip", c.ClientIP()).Msg("Sign-in rate limit exceeded")
	h.notice(c, response.ErrRateLimitExceeded, middleware.LoginPath)
}
