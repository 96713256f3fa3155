package planController

import (
	"encoding/json"

	"dimensions/config"
	"dimensions/database"
	"dimensions/middleware"
	"dimensions/models"
	"dimensions/progress"
	"dimensions/utils"

	"github.com/gofiber/fiber/v2"
)

func loadPlan(c *fiber.Ctx, userID uint) (*models.Plan, error) {
	planID := c.Locals("planID").(int)

	var plan models.Plan
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", planID, false).First(&plan).Error; err != nil {
		return nil, middleware.JsonResponse(c, fiber.StatusNotFound, false, "Plan not found!", nil)
	}

	// Owners see their own plan; staff can see any.
	if plan.UserID != userID {
		role, _ := c.Locals("userRole").(string)
		if role != "ADMIN" && role != "TEACHER" {
			return nil, middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have access to this plan!", nil)
		}
	}

	return &plan, nil
}

func competenciesForPlan(plan *models.Plan) ([]models.Competency, error) {
	var competencies []models.Competency

	query := database.Database.Db.Model(&models.Competency{}).
		Where("competencies.is_deleted = ?", false)

	if plan.TemplateID != nil {
		query = query.
			Joins("JOIN template_competencies ON template_competencies.competency_id = competencies.id").
			Where("template_competencies.template_id = ?", *plan.TemplateID).
			Order("template_competencies.order_index asc")
	} else {
		query = query.
			Joins("JOIN plan_competencies ON plan_competencies.competency_id = competencies.id").
			Where("plan_competencies.plan_id = ?", plan.ID).
			Order("plan_competencies.order_index asc")
	}

	err := query.Find(&competencies).Error
	return competencies, err
}

func competencyDisplayPayload(competencyID uint) fiber.Map {
	var display models.CompetencyDisplay
	database.Database.Db.Where("competency_id = ?", competencyID).First(&display)

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

// GetPlanView assembles the student-facing plan view payload: template display
// fields, the plan's competencies with their display fields, and the linked
// courses (via the template course cache) with the viewer's progress
func GetPlanView(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	plan, errResp := loadPlan(c, userID)
	if plan == nil {
		return errResp
	}

	templateData := fiber.Map{}
	if plan.TemplateID != nil {
		var template models.Template
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *plan.TemplateID, false).First(&template).Error; err == nil {
			var display models.TemplateDisplay
			database.Database.Db.Where("template_id = ?", template.ID).First(&display)

			var tags []string
			if len(display.Tags) > 0 {
				_ = json.Unmarshal(display.Tags, &tags)
			}
			displayMode := display.DisplayMode
			if displayMode == 0 {
				displayMode = models.DisplayModeCompetencies
			}
			templateData = fiber.Map{
				"id":           template.ID,
				"short_name":   template.ShortName,
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
	}

	competencies, err := competenciesForPlan(plan)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch competencies!", nil)
	}

	competencyList := make([]fiber.Map, 0, len(competencies))
	for _, competency := range competencies {
		competencyList = append(competencyList, fiber.Map{
			"id":          competency.ID,
			"short_name":  competency.ShortName,
			"id_number":   competency.IDNumber,
			"description": competency.Description,
			"display":     competencyDisplayPayload(competency.ID),
		})
	}

	courseIDs, err := utils.TemplateCourses.CoursesForPlan(*plan)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch linked courses!", nil)
	}

	var courses []models.Course
	if len(courseIDs) > 0 {
		if err := database.Database.Db.
			Where("id IN ? AND visible = ? AND is_deleted = ?", courseIDs, true, false).
			Order("full_name asc").Find(&courses).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch linked courses!", nil)
		}
	}

	store := progress.NewStore(database.Database.Db)
	calc := progress.NewCalculator(store, store, store, progress.NewPageURLs(config.AppConfig.LmsBaseURL))

	filterMode := utils.GetSetting(models.SettingEnrollmentFilter, progress.FilterAll)
	courses = calc.FilterCoursesByEnrollment(courses, plan.UserID, filterMode)

	urls := progress.NewPageURLs(config.AppConfig.LmsBaseURL)
	courseList := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		percentage := 0
		if p, err := calc.CoursePercentage(course.ID, plan.UserID); err == nil && p != nil {
			percentage = *p
		}
		courseList = append(courseList, fiber.Map{
			"id":           course.ID,
			"full_name":    course.FullName,
			"short_name":   course.ShortName,
			"course_image": course.ImageURL,
			"course_url":   urls.CourseURL(course.ID),
			"progress":     percentage,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Plan view fetched successfully!", fiber.Map{
		"plan": fiber.Map{
			"id":     plan.ID,
			"name":   plan.Name,
			"status": plan.Status,
			"owner":  plan.UserID,
		},
		"template":     templateData,
		"competencies": competencyList,
		"courses":      courseList,
	})
}
