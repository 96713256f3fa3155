package competencyValidator

import (
	"regexp"

	"dimensions/middleware"

	"github.com/gofiber/fiber/v2"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// CompetencyParam validates the :competency_id route param
func CompetencyParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		competencyID, err := c.ParamsInt("competency_id")
		if err != nil || competencyID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid competency id!", nil)
		}

		c.Locals("competencyID", competencyID)
		return c.Next()
	}
}

// UpdateDisplay validates the display fields payload
func UpdateDisplay() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			BgColor    string   `json:"bg_color"`
			TextColor  string   `json:"text_color"`
			Icon       string   `json:"icon"`
			Tags       []string `json:"tags"`
			CustomSCSS string   `json:"custom_scss"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.BgColor != "" && !hexColorRe.MatchString(reqData.BgColor) {
			errors["bg_color"] = "Background color must be a hex color!"
		}
		if reqData.TextColor != "" && !hexColorRe.MatchString(reqData.TextColor) {
			errors["text_color"] = "Text color must be a hex color!"
		}
		for _, tag := range reqData.Tags {
			if tag == "" {
				errors["tags"] = "Tags must not be empty!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDisplay", reqData)
		return c.Next()
	}
}

// PictureKind validates the :kind route param for picture uploads
func PictureKind() fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := c.Params("kind")
		if kind != "card" && kind != "background" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Picture kind must be card or background!", nil)
		}

		c.Locals("validatedPictureKind", kind)
		return c.Next()
	}
}

// CourseLink validates the course link/unlink payload
func CourseLink() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CourseID uint `json:"course_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"course_id": "Course id is required!",
			})
		}

		c.Locals("validatedCourseId", reqData.CourseID)
		return c.Next()
	}
}
