package templateRoutes

import (
	controllers "dimensions/controllers/template"
	"dimensions/middleware"
	validators "dimensions/validators/template"

	"github.com/gofiber/fiber/v2"
)

func SetupTemplateRoutes(app *fiber.App) {
	templateGroup := app.Group("/template")

	templateGroup.Get("/:template_id", middleware.JWTMiddleware, validators.TemplateParam(), controllers.GetTemplateDisplay)

	templateGroup.Put("/:template_id/display", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "TEACHER"), validators.TemplateParam(), validators.UpdateDisplay(), controllers.UpdateTemplateDisplay)
	templateGroup.Post("/:template_id/competency", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "TEACHER"), validators.TemplateParam(), validators.CompetencyLink(), controllers.LinkCompetency)
	templateGroup.Delete("/:template_id/competency", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "TEACHER"), validators.TemplateParam(), validators.CompetencyLink(), controllers.UnlinkCompetency)
}
