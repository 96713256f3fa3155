package settingsRoutes

import (
	controllers "dimensions/controllers/settings"
	"dimensions/middleware"
	validators "dimensions/validators/settings"

	"github.com/gofiber/fiber/v2"
)

func SetupSettingsRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/settings")

	adminGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controllers.GetSettings)
	adminGroup.Put("/", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validators.UpdateSettings(), controllers.UpdateSettings)
	adminGroup.Post("/cache/purge", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), controllers.PurgeTemplateCourseCache)
}
