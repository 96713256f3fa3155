package planValidator

import (
	"strings"

	"dimensions/middleware"

	"github.com/gofiber/fiber/v2"
)

// maxCommentLength mirrors the widest comment column we migrate
const maxCommentLength = 2000

// PlanParam validates the :plan_id route param
func PlanParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		planID, err := c.ParamsInt("plan_id")
		if err != nil || planID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid plan id!", nil)
		}

		c.Locals("planID", planID)
		return c.Next()
	}
}

// CommentsList validates the page query param for the lazy-loaded comment list
func CommentsList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := c.QueryInt("page", 0)
		if page < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"page": "Page must be 0 or greater!",
			})
		}

		c.Locals("validatedPage", page)
		return c.Next()
	}
}

// AddComment validates the comment payload
func AddComment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Content      string `json:"content"`
			CompetencyID *uint  `json:"competency_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Content = strings.TrimSpace(reqData.Content)
		if reqData.Content == "" {
			errors["content"] = "Comment content is required!"
		} else if len(reqData.Content) > maxCommentLength {
			errors["content"] = "Comment is too long!"
		}

		if reqData.CompetencyID != nil && *reqData.CompetencyID == 0 {
			errors["competency_id"] = "Competency id must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}
