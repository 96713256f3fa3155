package competencyRoutes

import (
	controllers "dimensions/controllers/competency"
	"dimensions/middleware"
	validators "dimensions/validators/competency"

	"github.com/gofiber/fiber/v2"
)

func SetupCompetencyRoutes(app *fiber.App) {
	competencyGroup := app.Group("/competency")

	competencyGroup.Get("/:competency_id", middleware.JWTMiddleware, validators.CompetencyParam(), controllers.GetCompetencyDisplay)
	competencyGroup.Get("/:competency_id/courses", middleware.JWTMiddleware, validators.CompetencyParam(), controllers.GetCompetencyCourses)

	// Display customisation and course links are staff-only.
	competencyGroup.Put("/:competency_id/display", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "TEACHER"), validators.CompetencyParam(), validators.UpdateDisplay(), controllers.UpdateCompetencyDisplay)
	competencyGroup.Post("/:competency_id/picture/:kind", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "TEACHER"), validators.CompetencyParam(), validators.PictureKind(), controllers.UploadCompetencyPicture)
	competencyGroup.Post("/:competency_id/course", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "TEACHER"), validators.CompetencyParam(), validators.CourseLink(), controllers.LinkCourse)
	competencyGroup.Delete("/:competency_id/course", middleware.JWTMiddleware, middleware.RequireRole("ADMIN", "TEACHER"), validators.CompetencyParam(), validators.CourseLink(), controllers.UnlinkCourse)
}
