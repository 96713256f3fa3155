package planController

import (
	"dimensions/database"
	"dimensions/middleware"
	"dimensions/models"
	"dimensions/utils"

	"github.com/gofiber/fiber/v2"
)

// commentsPerPage matches the lazy-load page size of the plan view widget
const commentsPerPage = 15

// GetPlanComments returns one page of comments for a plan, newest first
func GetPlanComments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	plan, errResp := loadPlan(c, userID)
	if plan == nil {
		return errResp
	}

	page := c.Locals("validatedPage").(int)

	query := database.Database.Db.Model(&models.PlanComment{}).
		Where("plan_id = ? AND is_deleted = ?", plan.ID, false)

	var total int64
	query.Count(&total)

	var comments []models.PlanComment
	if err := query.Order("created_at desc").
		Offset(page * commentsPerPage).Limit(commentsPerPage).
		Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	result := make([]fiber.Map, 0, len(comments))
	for _, comment := range comments {
		var author models.User
		database.Database.Db.Where("id = ?", comment.UserID).First(&author)
		result = append(result, fiber.Map{
			"id":            comment.ID,
			"content":       comment.Content,
			"user_id":       comment.UserID,
			"fullname":      author.Name,
			"competency_id": comment.CompetencyID,
			"time_created":  comment.CreatedAt,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", fiber.Map{
		"comments": result,
		"count":    total,
		"perpage":  commentsPerPage,
		"canpost":  true,
	})
}

// AddPlanComment posts a comment on a plan and notifies the plan owner
func AddPlanComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	plan, errResp := loadPlan(c, userID)
	if plan == nil {
		return errResp
	}

	reqData, ok := c.Locals("validatedComment").(*struct {
		Content      string `json:"content"`
		CompetencyID *uint  `json:"competency_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var author models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&author).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	comment := models.PlanComment{
		PlanID:       plan.ID,
		CompetencyID: reqData.CompetencyID,
		UserID:       userID,
		Content:      reqData.Content,
	}

	if err := database.Database.Db.Create(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save comment!", nil)
	}

	// Notify the owner when someone else comments on their plan.
	if plan.UserID != userID {
		var owner models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", plan.UserID, false).First(&owner).Error; err == nil {
			go func() {
				_ = utils.SendCommentNotification(owner.Email, plan.Name, author.Name, comment.Content)
			}()
		}
	}

	utils.SendEventWebhook("comment_added", map[string]interface{}{
		"plan_id":    plan.ID,
		"comment_id": comment.ID,
		"user_id":    userID,
	})

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment added successfully!", fiber.Map{
		"id":           comment.ID,
		"content":      comment.Content,
		"user_id":      userID,
		"fullname":     author.Name,
		"time_created": comment.CreatedAt,
	})
}
