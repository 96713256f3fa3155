package progressRoutes

import (
	controllers "dimensions/controllers/progress"
	"dimensions/middleware"
	validators "dimensions/validators/progress"

	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/progress")

	progressGroup.Post("/courses", middleware.JWTMiddleware, validators.CourseProgress(), controllers.GetCourseProgress)

	courseGroup := app.Group("/course")
	courseGroup.Post("/:course_id/activity/:activity_id/complete", middleware.JWTMiddleware, validators.ActivityCompletion(), controllers.MarkActivityComplete)
}
