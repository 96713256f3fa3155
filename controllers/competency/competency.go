package competencyController

import (
	"encoding/json"

	"dimensions/config"
	"dimensions/database"
	"dimensions/middleware"
	"dimensions/models"
	"dimensions/progress"
	"dimensions/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func displayPayload(display models.CompetencyDisplay) fiber.Map {
	var tags []string
	if len(display.Tags) > 0 {
		_ = json.Unmarshal(display.Tags, &tags)
	}
	return fiber.Map{
		"bg_color":    display.BgColor,
		"text_color":  display.TextColor,
		"card_image":  utils.GetFileURL(display.CardImage),
		"bg_image":    utils.GetFileURL(display.BgImage),
		"icon":        display.Icon,
		"tags":        tags,
		"custom_scss": display.CustomSCSS,
	}
}

// GetCompetencyDisplay returns a competency with its custom display fields
func GetCompetencyDisplay(c *fiber.Ctx) error {
	competencyID := c.Locals("competencyID").(int)

	var competency models.Competency
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", competencyID, false).First(&competency).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Competency not found!", nil)
	}

	// Missing display row means defaults everywhere.
	var display models.CompetencyDisplay
	database.Database.Db.Where("competency_id = ?", competencyID).First(&display)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Competency fetched successfully!", fiber.Map{
		"competency": competency,
		"display":    displayPayload(display),
	})
}

// UpdateCompetencyDisplay upserts the custom display fields of a competency
func UpdateCompetencyDisplay(c *fiber.Ctx) error {
	competencyID := c.Locals("competencyID").(int)

	reqData, ok := c.Locals("validatedDisplay").(*struct {
		BgColor    string   `json:"bg_color"`
		TextColor  string   `json:"text_color"`
		Icon       string   `json:"icon"`
		Tags       []string `json:"tags"`
		CustomSCSS string   `json:"custom_scss"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var competency models.Competency
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", competencyID, false).First(&competency).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Competency not found!", nil)
	}

	tagsJSON, err := json.Marshal(reqData.Tags)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid tags!", nil)
	}

	var display models.CompetencyDisplay
	err = database.Database.Db.Where("competency_id = ?", competencyID).First(&display).Error
	if err != nil {
		display = models.CompetencyDisplay{CompetencyID: uint(competencyID)}
	}

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

// UploadCompetencyPicture stores a card or background image for a competency
func UploadCompetencyPicture(c *fiber.Ctx) error {
	competencyID := c.Locals("competencyID").(int)
	kind := c.Locals("validatedPictureKind").(string)

	var competency models.Competency
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", competencyID, false).First(&competency).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Competency not found!", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Image file is required!", nil)
	}

	fileName, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
	}

	var display models.CompetencyDisplay
	err = database.Database.Db.Where("competency_id = ?", competencyID).First(&display).Error
	if err != nil {
		display = models.CompetencyDisplay{CompetencyID: uint(competencyID)}
	}

	if kind == "card" {
		display.CardImage = fileName
	} else {
		display.BgImage = fileName
	}

	if err := database.Database.Db.Save(&display).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save image!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Image uploaded successfully!", fiber.Map{
		"kind": kind,
		"url":  utils.GetFileURL(fileName),
	})
}

// GetCompetencyCourses lists visible courses linked to a competency, narrowed
// by the admin enrollment filter and annotated with the user's progress
func GetCompetencyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	competencyID := c.Locals("competencyID").(int)

	var competency models.Competency
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", competencyID, false).First(&competency).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Competency not found!", nil)
	}

	var courses []models.Course
	err := database.Database.Db.Model(&models.Course{}).
		Joins("JOIN course_competencies ON course_competencies.course_id = courses.id").
		Where("course_competencies.competency_id = ? AND courses.visible = ? AND courses.is_deleted = ?", competencyID, true, false).
		Order("courses.full_name asc").
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	store := progress.NewStore(database.Database.Db)
	calc := progress.NewCalculator(store, store, store, progress.NewPageURLs(config.AppConfig.LmsBaseURL))

	filterMode := utils.GetSetting(models.SettingEnrollmentFilter, progress.FilterAll)
	courses = calc.FilterCoursesByEnrollment(courses, userID, filterMode)

	urls := progress.NewPageURLs(config.AppConfig.LmsBaseURL)
	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		percentage := 0
		if p, err := calc.CoursePercentage(course.ID, userID); err == nil && p != nil {
			percentage = *p
		}
		result = append(result, fiber.Map{
			"id":           course.ID,
			"full_name":    course.FullName,
			"short_name":   course.ShortName,
			"course_image": course.ImageURL,
			"course_url":   urls.CourseURL(course.ID),
			"progress":     percentage,
			"visible":      course.Visible,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Competency courses fetched successfully!", fiber.Map{
		"courses": result,
	})
}

// LinkCourse links a course to the competency and invalidates every template
// cache entry that includes it
func LinkCourse(c *fiber.Ctx) error {
	competencyID := c.Locals("competencyID").(int)
	courseID := c.Locals("validatedCourseId").(uint)

	var competency models.Competency
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", competencyID, false).First(&competency).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Competency not found!", nil)
	}

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.CourseCompetency
	if err := database.Database.Db.Where("course_id = ? AND competency_id = ?", courseID, competencyID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already linked to this competency!", nil)
	}

	link := models.CourseCompetency{CourseID: courseID, CompetencyID: uint(competencyID)}
	if err := database.Database.Db.Create(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to link course!", nil)
	}

	if err := utils.TemplateCourses.InvalidateCompetency(uint(competencyID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh course cache!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course linked successfully!", link)
}

// UnlinkCourse removes a course-competency link and invalidates affected templates
func UnlinkCourse(c *fiber.Ctx) error {
	competencyID := c.Locals("competencyID").(int)
	courseID := c.Locals("validatedCourseId").(uint)

	var link models.CourseCompetency
	if err := database.Database.Db.Where("course_id = ? AND competency_id = ?", courseID, competencyID).First(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Link not found!", nil)
	}

	if err := database.Database.Db.Delete(&link).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to unlink course!", nil)
	}

	if err := utils.TemplateCourses.InvalidateCompetency(uint(competencyID)); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to refresh course cache!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course unlinked successfully!", nil)
}
