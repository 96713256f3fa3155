package templateController

import (
	"encoding/json"

	"dimensions/database"
	"dimensions/middleware"
	"dimensions/models"
	"dimensions/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func displayPayload(display models.TemplateDisplay) fiber.Map {
	var tags []string
	if len(display.Tags) > 0 {
		_ = json.Unmarshal(display.Tags, &tags)
	}
	displayMode := display.DisplayMode
	if displayMode == 0 {
		displayMode = models.DisplayModeCompetencies
	}
	return fiber.Map{
		"display_mode": displayMode,
		"bg_color":     display.BgColor,
		"text_color":   display.TextColor,
		"card_image":   utils.GetFileURL(display.CardImage),
		"bg_image":     utils.GetFileURL(display.BgImage),
		"icon":         display.Icon,
		"tags":         tags,
		"custom_scss":  display.CustomSCSS,
	}
}

// GetTemplateDisplay returns a template with its custom display fields
func GetTemplateDisplay(c *fiber.Ctx) error {
	templateID := c.Locals("templateID").(int)

	var template models.Template
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", templateID, false).First(&template).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Template not found!", nil)
	}

	var display models.TemplateDisplay
	database.Database.Db.Where("template_id = ?", templateID).First(&display)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Template fetched successfully!", fiber.Map{
		"template": template,
		"display":  displayPayload(display),
	})
}

// UpdateTemplateDisplay upserts the custom display fields of a template
func UpdateTemplateDisplay(c *fiber.Ctx) error {
	templateID := c.Locals("templateID").(int)

	reqData, ok := c.Locals("validatedDisplay").(*struct {
		DisplayMode int      `json:"display_mode"`
		BgColor     string   `json:"bg_color"`
		TextColor   string   `json:"text_color"`
		Icon        string   `json:"icon"`
		Tags        []string `json:"tags"`
		CustomSCSS  string   `json:"custom_scss"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var template models.Template
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", templateID, false).First(&template).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Template not found!", nil)
	}

	tagsJSON, err := json.Marshal(reqData.Tags)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tags!", nil)
	}

	var display models.TemplateDisplay
	err = database.Database.Db.Where("template_id = ?", templateID).First(&display).Error
	if err != nil {
		display = models.TemplateDisplay{TemplateID: uint(templateID)}
	}

	display.DisplayMode = reqData.DisplayMode
	display.BgColor = reqData.BgColor
	display.TextColor = reqData.TextColor
	display.Icon = reqData.Icon
	display.Tags = datatypes.JSON(tagsJSON)
	display.CustomSCSS = reqData.CustomSCSS

	if err := database.Database.Db.Save(&display).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save display fields!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Display fields saved successfully!", fiber.Map{
		"display": displayPayload(display),
	})
}

// LinkCompetency adds a competency to the template and invalidates the
// template's cached course links
func LinkCompetency(c *fiber.Ctx) error {
	templateID := c.Locals("templateID").(int)
	competencyID := c.Locals("validatedCompetencyId").(uint)

	var template models.Template
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", templateID, false).First(&template).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Template not found!", nil)
	}

	var competency models.Competency
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", competencyID, false).First(&competency).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Competency not found!", nil)
	}

	var existing models.TemplateCompetency
	if err := database.Database.Db.Where("template_id = ? AND competency_id = ?", templateID, competencyID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Competency already linked to this template!", nil)
	}

	var count int64
	database.Database.Db.Model(&models.TemplateCompetency{}).Where("template_id = ?", templateID).Count(&count)

	link := models.TemplateCompetency{
		TemplateID:   uint(templateID),
		CompetencyID: competencyID,
		OrderIndex:   int(count),
	}
	if err := database.Database.Db.Create(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to link competency!", nil)
	}

	utils.TemplateCourses.InvalidateTemplate(uint(templateID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Competency linked successfully!", link)
}

// UnlinkCompetency removes a competency from the template and invalidates the
// template's cached course links
func UnlinkCompetency(c *fiber.Ctx) error {
	templateID := c.Locals("templateID").(int)
	competencyID := c.Locals("validatedCompetencyId").(uint)

	var link models.TemplateCompetency
	if err := database.Database.Db.Where("template_id = ? AND competency_id = ?", templateID, competencyID).First(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Link not found!", nil)
	}

	if err := database.Database.Db.Delete(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unlink competency!", nil)
	}

	utils.TemplateCourses.InvalidateTemplate(uint(templateID))

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Competency unlinked successfully!", nil)
}
