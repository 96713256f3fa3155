package settingsController

import (
	"dimensions/middleware"
	"dimensions/models"
	"dimensions/progress"
	"dimensions/utils"

	"github.com/gofiber/fiber/v2"
)

// GetSettings returns the plugin admin settings
func GetSettings(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings fetched successfully!", fiber.Map{
		models.SettingEnrollmentFilter: utils.GetSetting(models.SettingEnrollmentFilter, progress.FilterAll),
		models.SettingCustomSCSS:       utils.GetSetting(models.SettingCustomSCSS, ""),
		models.SettingDisplayMode:      utils.GetSetting(models.SettingDisplayMode, "1"),
	})
}

// UpdateSettings saves the provided admin settings
func UpdateSettings(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSettings").(*struct {
		EnrollmentFilter string `json:"summary_enrollment_filter" validate:"omitempty,oneof=all enrolled active"`
		CustomSCSS       string `json:"custom_scss" validate:"omitempty,max=65535"`
		DisplayMode      string `json:"default_display_mode" validate:"omitempty,oneof=1 2"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.EnrollmentFilter != "" {
		if err := utils.SetSetting(models.SettingEnrollmentFilter, reqData.EnrollmentFilter); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save settings!", nil)
		}
	}
	if reqData.CustomSCSS != "" {
		if err := utils.SetSetting(models.SettingCustomSCSS, reqData.CustomSCSS); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save settings!", nil)
		}
	}
	if reqData.DisplayMode != "" {
		if err := utils.SetSetting(models.SettingDisplayMode, reqData.DisplayMode); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save settings!", nil)
		}
	}

	return GetSettings(c)
}

// PurgeTemplateCourseCache drops every cached template-course entry
func PurgeTemplateCourseCache(c *fiber.Ctx) error {
	utils.TemplateCourses.PurgeAll()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template course cache purged!", nil)
}
