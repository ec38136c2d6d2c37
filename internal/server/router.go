package server

import (
	"net/http"

	"eizer/internal/config"
	"eizer/internal/database"
	"eizer/internal/email"
	"eizer/internal/handlers"
	"eizer/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, store *database.Store, mailer *email.Mailer) *gin.Engine {
	r := gin.Default()

	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("eizer_session", sessionStore))

	r.Use(middleware.InjectUser(store))

	authHandler := handlers.NewAuthHandler(store)
	fundraiserHandler := handlers.NewFundraiserHandler(store)
	locationHandler := handlers.NewLocationHandler(store)
	machineHandler := handlers.NewMachineHandler(store, mailer, cfg.AdminEmail)
	redemptionHandler := handlers.NewRedemptionHandler(store, mailer, cfg.AdminEmail, cfg.StrictRedemptionTransitions)
	auditHandler := handlers.NewAuditHandler(store)

	api := r.Group("/api")

	// AUTH
	api.GET("/auth/me", authHandler.Me)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/logout", authHandler.Logout)

	// MACHINE LOCATIONS (list is public)
	api.GET("/machine-locations", locationHandler.List)
	api.POST("/machine-locations",
		middleware.RequireAuth(), middleware.RequireAdmin(),
		locationHandler.Create,
	)

	protected := api.Group("/")
	protected.Use(middleware.RequireAuth())

	// FUNDRAISERS
	protected.GET("/fundraisers", middleware.RequireAdmin(), fundraiserHandler.List)
	protected.GET("/fundraisers/by-user/:userId", fundraiserHandler.GetByUserID)
	protected.GET("/fundraisers/:id", middleware.RequireAdmin(), fundraiserHandler.GetByID)
	protected.POST("/fundraisers", middleware.RequireAdmin(), fundraiserHandler.Create)
	protected.PATCH("/fundraisers/:id", middleware.RequireAdmin(), fundraiserHandler.Update)

	// MACHINES
	protected.GET("/machines", middleware.RequireAdmin(), machineHandler.List)
	protected.GET("/machines/by-fundraiser/:fundraiserId", machineHandler.GetByFundraiserID)
	protected.GET("/machines/:id", machineHandler.GetByID)
	protected.POST("/machines", middleware.RequireAdmin(), machineHandler.Create)
	protected.PATCH("/machines/:id", middleware.RequireAdmin(), machineHandler.Update)

	// REDEMPTION REQUESTS
	protected.GET("/redemptions", middleware.RequireAdmin(), redemptionHandler.List)
	protected.GET("/redemptions/by-fundraiser/:fundraiserId", redemptionHandler.GetByFundraiserID)
	protected.GET("/redemptions/:id", redemptionHandler.GetByID)
	protected.POST("/redemptions", redemptionHandler.Create)
	protected.PATCH("/redemptions/:id", middleware.RequireAdmin(), redemptionHandler.Update)

	// AUDIT
	protected.GET("/audit", middleware.RequireAdmin(), auditHandler.List)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
