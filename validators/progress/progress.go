package progressValidator

import (
	"dimensions/middleware"
	"dimensions/progress"

	"github.com/gofiber/fiber/v2"
)

// maxBatchSize caps one progress request; dashboards page their course lists
const maxBatchSize = 100

// CourseProgress validates the batch progress request body
func CourseProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseIDs []uint `json:"course_ids"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.CourseIDs) == 0 {
			errors["course_ids"] = "At least one course id is required!"
		} else if len(reqData.CourseIDs) > maxBatchSize {
			errors["course_ids"] = "Too many course ids in one request!"
		} else {
			for _, id := range reqData.CourseIDs {
				if id == 0 {
					errors["course_ids"] = "Course ids must be greater than 0!"
					break
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseIds", reqData.CourseIDs)
		return c.Next()
	}
}

// ActivityCompletion validates the route params and completion state body
func ActivityCompletion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := c.ParamsInt("course_id")
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		activityID, err := c.ParamsInt("activity_id")
		if err != nil || activityID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid activity id!", nil)
		}

		reqData := new(struct {
			State int `json:"state"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.State < progress.StateIncomplete || reqData.State > progress.StateCompleteFail {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"state": "State must be between 0 and 3!",
			})
		}

		c.Locals("courseID", courseID)
		c.Locals("activityID", activityID)
		c.Locals("validatedState", reqData.State)
		return c.Next()
	}
}
