package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/joblens/joblens/internal/api/handlers"
	"github.com/joblens/joblens/internal/api/middleware"
)

type Deps struct {
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
	Grid      *handlers.GridHandler
	Preset    *handlers.PresetHandler
	Config    *handlers.ConfigHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/auth/login", d.Auth.Login)

	// Everything else sits behind the shared-password session.
	auth := r.Group("/")
	auth.Use(middleware.JWTAuth())

	auth.GET("/dashboard/breakdown", d.Dashboard.Breakdown)
	auth.GET("/dashboard/skills", d.Dashboard.Skills)
	auth.GET("/dashboard/options", d.Dashboard.Options)
	auth.GET("/postings", d.Dashboard.Postings)

	auth.GET("/grid", d.Grid.View)
	auth.POST("/grid/edits", d.Grid.Edit)
	auth.POST("/grid/save", d.Grid.Save)

	auth.GET("/presets/builtin", d.Preset.Builtin)
	auth.GET("/presets/:kind", d.Preset.List)
	auth.GET("/presets/:kind/:name", d.Preset.Get)
	auth.PUT("/presets/:kind/:name", d.Preset.Save)
	auth.DELETE("/presets/:kind/:name", d.Preset.Delete)

	auth.GET("/config", d.Config.Get)
	auth.PUT("/config", d.Config.Save)
}
