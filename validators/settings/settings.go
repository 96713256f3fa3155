package settingsValidator

import (
	"dimensions/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpdateSettings validates the admin settings payload
func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			EnrollmentFilter string `json:"summary_enrollment_filter" validate:"omitempty,oneof=all enrolled active"`
			CustomSCSS       string `json:"custom_scss" validate:"omitempty,max=65535"`
			DisplayMode      string `json:"default_display_mode" validate:"omitempty,oneof=1 2"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "EnrollmentFilter":
					errors["summary_enrollment_filter"] = "Filter must be all, enrolled or active!"
				case "CustomSCSS":
					errors["custom_scss"] = "Custom SCSS is too long!"
				case "DisplayMode":
					errors["default_display_mode"] = "Display mode must be 1 or 2!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSettings", reqData)
		return c.Next()
	}
}
