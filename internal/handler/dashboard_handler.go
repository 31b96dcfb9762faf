package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projetoguri/sgpg/internal/response"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/rs/zerolog"
)

// DashboardHandler handles the home page.
type DashboardHandler struct {
	pages
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *service.DashboardService, flasher *session.Flasher, log zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		pages:            pages{flasher: flasher, log: log.With().Str("handler", "dashboard").Logger()},
		dashboardService: dashboardService,
	}
}

// Home godoc
// GET /
// Greets the employee and shows how many students, instruments, employees
// and classes are live.
func (h *DashboardHandler) Home(c *gin.Context) {
	data, err := h.dashboardService.GetDashboardData(c.Request.Context())
	if err != nil {
		h.render(c, http.StatusOK, "dashboard.html", "Início", "home", &service.DashboardData{}, h.errorFlash(c, err))
		return
	}
	h.render(c, http.StatusOK, "dashboard.html", "Início", "home", data)
}

// NotFound answers unknown routes, as JSON when the client asks for it.
func (h *DashboardHandler) NotFound(c *gin.Context) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		response.NotFound(c)
		return
	}
	h.render(c, http.StatusNotFound, "not_found.html", "Página não encontrada", "", nil)
}
