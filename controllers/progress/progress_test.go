package progressController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"dimensions/config"
	"dimensions/database"
	"dimensions/middleware"
	"dimensions/models"
	"dimensions/progress"
	progressValidator "dimensions/validators/progress"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{
		JWTKey:     "test-secret",
		LmsBaseURL: "https://lms.example.com",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Section{},
		&models.Activity{},
		&models.ActivityCompletion{},
		&models.Enrollment{},
		&models.RoleAssignment{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/progress/courses", middleware.JWTMiddleware, progressValidator.CourseProgress(), GetCourseProgress)
	return app
}

func seedCourse(t *testing.T, userID uint) uint {
	t.Helper()
	db := database.Database.Db

	course := models.Course{FullName: "Algebra", ShortName: "ALG", Visible: true, StartDate: time.Now(), EnableCompletion: true}
	require.NoError(t, db.Create(&course).Error)

	section := models.Section{CourseID: course.ID, Name: "Basics", OrderIndex: 1, Visible: true}
	require.NoError(t, db.Create(&section).Error)

	acts := []models.Activity{
		{CourseID: course.ID, SectionID: section.ID, Name: "Reading", ModName: "page", CompletionTracking: models.TrackingManual, Visible: true},
		{CourseID: course.ID, SectionID: section.ID, Name: "Quiz", ModName: "quiz", CompletionTracking: models.TrackingAutomatic, Visible: true},
	}
	for i := range acts {
		require.NoError(t, db.Create(&acts[i]).Error)
	}

	require.NoError(t, db.Create(&models.Enrollment{UserID: userID, CourseID: course.ID, Status: "ACTIVE"}).Error)
	require.NoError(t, db.Create(&models.RoleAssignment{UserID: userID, CourseID: course.ID, ShortName: "student"}).Error)
	require.NoError(t, db.Create(&models.ActivityCompletion{ActivityID: acts[0].ID, UserID: userID, State: progress.StateComplete}).Error)

	return course.ID
}

func doProgressRequest(t *testing.T, app *fiber.App, token string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, "/progress/courses", bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGetCourseProgressBatch(t *testing.T) {
	app := setupTestApp(t)

	user := models.User{Name: "Student One", Email: "student@example.com", Password: "x", Role: "STUDENT"}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	courseID := seedCourse(t, user.ID)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	resp := doProgressRequest(t, app, token, fiber.Map{"course_ids": []uint{courseID, 9999}})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			Results []progress.CourseItem `json:"results"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.True(t, body.Status)
	require.Len(t, body.Data.Results, 2)

	first := body.Data.Results[0]
	assert.Equal(t, courseID, first.CourseID)
	assert.True(t, first.Enabled)
	assert.False(t, first.Locked)
	assert.Empty(t, first.Error)
	require.Len(t, first.Sections, 1)
	assert.Equal(t, "Basics", first.Sections[0].Name)
	assert.Equal(t, 50, first.Sections[0].Percentage)
	assert.True(t, first.Sections[0].IsStarted)
	assert.False(t, first.Sections[0].IsCompleted)
	assert.Equal(t, fmt.Sprintf("https://lms.example.com/course/view?id=%d", courseID), first.CourseURL)

	// The unknown course fails alone without breaking the batch.
	second := body.Data.Results[1]
	assert.Equal(t, uint(9999), second.CourseID)
	assert.False(t, second.Enabled)
	assert.NotEmpty(t, second.Error)
}

func TestGetCourseProgressRequiresAuth(t *testing.T) {
	app := setupTestApp(t)

	resp := doProgressRequest(t, app, "", fiber.Map{"course_ids": []uint{1}})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetCourseProgressRejectsEmptyBatch(t *testing.T) {
	app := setupTestApp(t)

	user := models.User{Name: "Student Two", Email: "student2@example.com", Password: "x", Role: "STUDENT"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)

	resp := doProgressRequest(t, app, token, fiber.Map{"course_ids": []uint{}})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
