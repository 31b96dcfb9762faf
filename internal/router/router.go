package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/projetoguri/sgpg/internal/config"
	"github.com/projetoguri/sgpg/internal/handler"
	"github.com/projetoguri/sgpg/internal/middleware"
	"github.com/projetoguri/sgpg/internal/policy"
	"github.com/projetoguri/sgpg/internal/response"
	"github.com/projetoguri/sgpg/internal/service"
	"github.com/projetoguri/sgpg/internal/session"
	"github.com/projetoguri/sgpg/internal/web"
	"github.com/rs/zerolog"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth             *handler.AuthHandler
	Dashboard        *handler.DashboardHandler
	Students         *handler.StudentHandler
	Employees        *handler.EmployeeHandler
	Roles            *handler.RoleHandler
	Instruments      *handler.InstrumentHandler
	InstrumentTypes  *handler.InstrumentTypeHandler
	InstrumentBrands *handler.InstrumentBrandHandler
	Classes          *handler.ClassHandler
	Roster           *handler.RosterHandler
	System           *handler.SystemHandler
}

// crudPages is what every entity handler exposes.
type crudPages interface {
	Resource() policy.Resource
	Path() string
	List(c *gin.Context)
	New(c *gin.Context)
	Edit(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	ConfirmDelete(c *gin.Context)
	Delete(c *gin.Context)
}

// SetupRouter configures the page routes and their middlewares.
func SetupRouter(
	authService *service.AuthService,
	driver session.Driver,
	flasher *session.Flasher,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) (*gin.Engine, error) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Brotli())
	router.Use(middleware.AuthGate(authService, driver, log))

	// Embedded CSS and JS, cached for a day.
	static := router.Group("/static")
	static.Use(middleware.CacheControl(86400))
	{
		static.StaticFS("/", web.Static())
	}

	router.GET("/health", handlers.System.Health)

	pages := router.Group("")
	pages.Use(middleware.NoStore())

	// ─── Auth ──────────────────────────────────────────────────────────
	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute)
	pages.GET(middleware.LoginPath, handlers.Auth.ShowLogin)
	pages.POST(middleware.LoginPath, loginLimiter.Middleware(handlers.Auth.RateLimited), handlers.Auth.Login)
	pages.POST("/logout", handlers.Auth.Logout)

	pages.GET(middleware.HomePath, handlers.Dashboard.Home)

	// ─── Entities ──────────────────────────────────────────────────────
	for _, h := range []crudPages{
		handlers.Students,
		handlers.Employees,
		handlers.Roles,
		handlers.InstrumentTypes,
		handlers.InstrumentBrands,
		handlers.Instruments,
		handlers.Classes,
	} {
		registerCRUD(pages, flasher, h)
	}

	// ─── Class roster ──────────────────────────────────────────────────
	canEditRoster := middleware.RequirePermission(flasher, policy.Classes, policy.Update, "/classes")
	pages.GET("/classes/:id/students", handlers.Roster.ShowRoster)
	pages.POST("/classes/:id/students", canEditRoster, handlers.Roster.Enroll)
	pages.POST("/classes/:id/students/:student_id/delete", canEditRoster, handlers.Roster.Unenroll)

	router.NoRoute(middleware.NoStore(), handlers.Dashboard.NotFound)

	return router, nil
}

// registerCRUD mounts the list, form and delete pages of one entity. Writes
// and the forms leading to them are guarded by the role policy.
func registerCRUD(g *gin.RouterGroup, flasher *session.Flasher, h crudPages) {
	base := h.Path()
	can := func(a policy.Action) gin.HandlerFunc {
		return middleware.RequirePermission(flasher, h.Resource(), a, base)
	}

	g.GET(base, h.List)
	g.GET(base+"/new", can(policy.Create), h.New)
	g.POST(base, can(policy.Create), h.Create)
	g.GET(base+"/:id/edit", can(policy.Update), h.Edit)
	g.POST(base+"/:id", can(policy.Update), h.Update)
	g.GET(base+"/:id/delete", can(policy.Delete), h.ConfirmDelete)
	g.POST(base+"/:id/delete", can(policy.Delete), h.Delete)
}
