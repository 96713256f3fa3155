package templateValidator

import (
	"regexp"

	"dimensions/middleware"
	"dimensions/models"

	"github.com/gofiber/fiber/v2"
)

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// TemplateParam validates the :template_id route param
func TemplateParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		templateID, err := c.ParamsInt("template_id")
		if err != nil || templateID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid template id!", nil)
		}

		c.Locals("templateID", templateID)
		return c.Next()
	}
}

// UpdateDisplay validates the template display fields payload
func UpdateDisplay() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			DisplayMode int      `json:"display_mode"`
			BgColor     string   `json:"bg_color"`
			TextColor   string   `json:"text_color"`
			Icon        string   `json:"icon"`
			Tags        []string `json:"tags"`
			CustomSCSS  string   `json:"custom_scss"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.DisplayMode != 0 &&
			reqData.DisplayMode != models.DisplayModeCompetencies &&
			reqData.DisplayMode != models.DisplayModePlan {
			errors["display_mode"] = "Display mode must be 1 or 2!"
		}
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

// CompetencyLink validates the competency link/unlink payload
func CompetencyLink() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			CompetencyID uint `json:"competency_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CompetencyID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"competency_id": "Competency id is required!",
			})
		}

		c.Locals("validatedCompetencyId", reqData.CompetencyID)
		return c.Next()
	}
}
