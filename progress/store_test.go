package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dimensions/models"
)

func openTestDb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Course{},
		&models.Section{},
		&models.Activity{},
		&models.ActivityCompletion{},
		&models.Enrollment{},
		&models.RoleAssignment{},
	))
	return db
}

func enrollStudent(t *testing.T, db *gorm.DB, courseID, userID uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.Enrollment{UserID: userID, CourseID: courseID, Status: "ACTIVE"}).Error)
	require.NoError(t, db.Create(&models.RoleAssignment{UserID: userID, CourseID: courseID, ShortName: "student"}).Error)
}

func TestStoreCourseByID(t *testing.T) {
	db := openTestDb(t)
	store := NewStore(db)

	course := models.Course{FullName: "Algebra", EnableCompletion: true}
	require.NoError(t, db.Create(&course).Error)

	got, err := store.CourseByID(course.ID)
	require.NoError(t, err)
	assert.Equal(t, "Algebra", got.FullName)
	assert.True(t, got.EnableCompletion)

	_, err = store.CourseByID(9999)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestStoreCourseByIDDeleted(t *testing.T) {
	db := openTestDb(t)
	store := NewStore(db)

	course := models.Course{FullName: "Gone", IsDeleted: true}
	require.NoError(t, db.Create(&course).Error)

	_, err := store.CourseByID(course.ID)
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestStoreSectionsAvailability(t *testing.T) {
	db := openTestDb(t)
	store := NewStore(db)

	course := models.Course{FullName: "Algebra", EnableCompletion: true}
	require.NoError(t, db.Create(&course).Error)

	future := time.Now().Add(48 * time.Hour)
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, db.Create(&models.Section{CourseID: course.ID, Name: "Open", OrderIndex: 1, Visible: true, AvailableFrom: &past}).Error)
	require.NoError(t, db.Create(&models.Section{CourseID: course.ID, Name: "Soon", OrderIndex: 2, Visible: true, AvailableFrom: &future, RestrictionText: "Opens soon"}).Error)
	require.NoError(t, db.Create(&models.Section{CourseID: course.ID, Name: "Delegated", OrderIndex: 3, Visible: true, Component: "mod_subsection"}).Error)

	sections, err := store.Sections(course.ID, 1)
	require.NoError(t, err)
	require.Len(t, sections, 3)

	assert.Equal(t, "Open", sections[0].Name)
	assert.Equal(t, 1, sections[0].Number)
	assert.True(t, sections[0].UserVisible)

	assert.Equal(t, "Soon", sections[1].Name)
	assert.False(t, sections[1].UserVisible)
	assert.Equal(t, "Opens soon", sections[1].AvailableInfo)

	assert.Equal(t, "mod_subsection", sections[2].Component)
}

func TestStoreCompletionState(t *testing.T) {
	db := openTestDb(t)
	store := NewStore(db)

	require.NoError(t, db.Create(&models.ActivityCompletion{ActivityID: 5, UserID: 7, State: StateCompletePass}).Error)

	state, err := store.State(5, 7)
	require.NoError(t, err)
	assert.Equal(t, StateCompletePass, state)

	state, err = store.State(5, 8)
	require.NoError(t, err)
	assert.Equal(t, StateIncomplete, state)
}

func TestStoreEnrollmentWindow(t *testing.T) {
	db := openTestDb(t)
	store := NewStore(db)

	future := time.Now().Add(72 * time.Hour)
	require.NoError(t, db.Create(&models.Enrollment{UserID: 1, CourseID: 10, Status: "ACTIVE", TimeStart: &future}).Error)

	any, err := store.IsEnrolled(10, 1, false)
	require.NoError(t, err)
	assert.True(t, any)

	active, err := store.IsEnrolled(10, 1, true)
	require.NoError(t, err)
	assert.False(t, active)

	next, err := store.NextEnrolmentStart(10, 1)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.WithinDuration(t, future, *next, time.Second)

	next, err = store.NextEnrolmentStart(10, 2)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestStoreSuspendedEnrollmentNotActive(t *testing.T) {
	db := openTestDb(t)
	store := NewStore(db)

	require.NoError(t, db.Create(&models.Enrollment{UserID: 1, CourseID: 10, Status: "SUSPENDED"}).Error)

	active, err := store.IsEnrolled(10, 1, true)
	require.NoError(t, err)
	assert.False(t, active)
}

func TestStoreEndToEndProgress(t *testing.T) {
	db := openTestDb(t)

	course := models.Course{FullName: "Algebra", EnableCompletion: true, StartDate: time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, db.Create(&course).Error)

	sectionA := models.Section{CourseID: course.ID, Name: "A", OrderIndex: 1, Visible: true}
	sectionB := models.Section{CourseID: course.ID, Name: "B", OrderIndex: 2, Visible: true}
	require.NoError(t, db.Create(&sectionA).Error)
	require.NoError(t, db.Create(&sectionB).Error)
	sectionC := models.Section{CourseID: course.ID, Name: "C", OrderIndex: 3, Visible: true, Component: "mod_subsection"}
	require.NoError(t, db.Create(&sectionC).Error)

	acts := []models.Activity{
		{CourseID: course.ID, SectionID: sectionA.ID, Name: "Reading", ModName: "page", OrderIndex: 1, CompletionTracking: models.TrackingManual, Visible: true},
		{CourseID: course.ID, SectionID: sectionA.ID, Name: "Quiz", ModName: "quiz", OrderIndex: 2, CompletionTracking: models.TrackingAutomatic, Visible: true},
		{CourseID: course.ID, SectionID: sectionB.ID, Name: "Nested", ModName: models.ModSubsection, OrderIndex: 1, CompletionTracking: models.TrackingNone, Visible: true, DelegatedSectionID: &sectionC.ID},
		{CourseID: course.ID, SectionID: sectionC.ID, Name: "Video", ModName: "url", OrderIndex: 1, CompletionTracking: models.TrackingManual, Visible: true},
		{CourseID: course.ID, SectionID: sectionC.ID, Name: "Essay", ModName: "assign", OrderIndex: 2, CompletionTracking: models.TrackingManual, Visible: true},
	}
	for i := range acts {
		require.NoError(t, db.Create(&acts[i]).Error)
	}

	userID := uint(42)
	enrollStudent(t, db, course.ID, userID)
	require.NoError(t, db.Create(&models.ActivityCompletion{ActivityID: acts[0].ID, UserID: userID, State: StateComplete}).Error)
	require.NoError(t, db.Create(&models.ActivityCompletion{ActivityID: acts[3].ID, UserID: userID, State: StateComplete}).Error)
	require.NoError(t, db.Create(&models.ActivityCompletion{ActivityID: acts[4].ID, UserID: userID, State: StateCompletePass}).Error)

	store := NewStore(db)
	calc := NewCalculator(store, store, store, NewPageURLs("https://lms.example.com"))

	result, err := calc.ComputeCourse(course.ID, userID)
	require.NoError(t, err)
	assert.True(t, result.Enabled)
	assert.False(t, result.Locked)
	assert.Equal(t, "01/02/2027", result.FormattedStartDate)
	require.Len(t, result.Sections, 2)

	require.NotNil(t, result.Sections[0].Percentage)
	assert.Equal(t, 50, *result.Sections[0].Percentage)
	require.NotNil(t, result.Sections[1].Percentage)
	assert.Equal(t, 100, *result.Sections[1].Percentage)
}
