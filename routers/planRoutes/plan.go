package planRoutes

import (
	controllers "dimensions/controllers/plan"
	"dimensions/middleware"
	validators "dimensions/validators/plan"

	"github.com/gofiber/fiber/v2"
)

func SetupPlanRoutes(app *fiber.App) {
	planGroup := app.Group("/plan")

	planGroup.Get("/:plan_id/view", middleware.JWTMiddleware, validators.PlanParam(), controllers.GetPlanView)
	planGroup.Get("/:plan_id/comments", middleware.JWTMiddleware, validators.PlanParam(), validators.CommentsList(), controllers.GetPlanComments)
	planGroup.Post("/:plan_id/comments", middleware.JWTMiddleware, validators.PlanParam(), validators.AddComment(), controllers.AddPlanComment)
}
