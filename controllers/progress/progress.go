package progressController

import (
	"dimensions/config"
	"dimensions/database"
	"dimensions/middleware"
	"dimensions/models"
	"dimensions/progress"
	"dimensions/utils"

	"github.com/gofiber/fiber/v2"
)

// NewCalculator builds a calculator backed by the live database
func NewCalculator() *progress.Calculator {
	store := progress.NewStore(database.Database.Db)
	return progress.NewCalculator(store, store, store, progress.NewPageURLs(config.AppConfig.LmsBaseURL))
}

// GetCourseProgress computes per-section completion progress for a batch of
// courses. A failing course yields an error-tagged entry instead of aborting
// the whole batch.
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseIDs, ok := c.Locals("validatedCourseIds").([]uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	results := NewCalculator().ComputeCourses(courseIDs, userID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course progress fetched successfully!", fiber.Map{
		"results": results,
	})
}

// MarkActivityComplete records a completion state for the current user
func MarkActivityComplete(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)
	activityID := c.Locals("activityID").(int)
	state := c.Locals("validatedState").(int)

	var activity models.Activity
	if err := database.Database.Db.Where("id = ? AND course_id = ? AND is_deleted = ?", activityID, courseID, false).First(&activity).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Activity not found!", nil)
	}

	if activity.ModName == models.ModSubsection || activity.CompletionTracking == models.TrackingNone {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Activity does not track completion!", nil)
	}

	store := progress.NewStore(database.Database.Db)
	enrolled, err := store.IsEnrolled(uint(courseID), userID, true)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check enrollment!", nil)
	}
	if !enrolled {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var completion models.ActivityCompletion
	err = database.Database.Db.Where("activity_id = ? AND user_id = ? AND is_deleted = ?", activity.ID, userID, false).First(&completion).Error
	if err != nil {
		completion = models.ActivityCompletion{ActivityID: activity.ID, UserID: userID, State: state}
		if err := database.Database.Db.Create(&completion).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save completion!", nil)
		}
	} else {
		completion.State = state
		if err := database.Database.Db.Save(&completion).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save completion!", nil)
		}
	}

	utils.SendEventWebhook("activity_completed", map[string]interface{}{
		"user_id":     userID,
		"course_id":   courseID,
		"activity_id": activity.ID,
		"state":       state,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Completion saved successfully!", fiber.Map{
		"activity_id": activity.ID,
		"state":       completion.State,
	})
}
