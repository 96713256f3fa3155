package utils

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

func openCacheTestDb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Template{},
		&models.TemplateCompetency{},
		&models.CourseCompetency{},
		&models.Plan{},
		&models.PlanCompetency{},
	))
	return db
}

func linkTemplate(t *testing.T, db *gorm.DB, templateID, competencyID, courseID uint) {
	t.Helper()
	require.NoError(t, db.Create(&models.TemplateCompetency{TemplateID: templateID, CompetencyID: competencyID}).Error)
	require.NoError(t, db.Create(&models.CourseCompetency{CourseID: courseID, CompetencyID: competencyID}).Error)
}

func TestCoursesForTemplate(t *testing.T) {
	db := openCacheTestDb(t)
	cache := NewTemplateCourseCache(db, time.Hour)

	linkTemplate(t, db, 1, 100, 10)
	linkTemplate(t, db, 1, 101, 11)
	// Same course linked through a second competency must not duplicate.
	require.NoError(t, db.Create(&models.TemplateCompetency{TemplateID: 1, CompetencyID: 102}).Error)
	require.NoError(t, db.Create(&models.CourseCompetency{CourseID: 10, CompetencyID: 102}).Error)

	courseIDs, err := cache.CoursesForTemplate(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{10, 11}, courseIDs)
}

func TestCoursesForTemplateServesStaleUntilInvalidated(t *testing.T) {
	db := openCacheTestDb(t)
	cache := NewTemplateCourseCache(db, time.Hour)

	linkTemplate(t, db, 1, 100, 10)

	courseIDs, err := cache.CoursesForTemplate(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{10}, courseIDs)

	// New link added after caching: a stale hit is acceptable within the TTL.
	linkTemplate(t, db, 1, 101, 11)
	courseIDs, err = cache.CoursesForTemplate(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{10}, courseIDs)

	// Explicit invalidation makes the change visible.
	cache.InvalidateTemplate(1)
	courseIDs, err = cache.CoursesForTemplate(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{10, 11}, courseIDs)
}

func TestCoursesForTemplateExpires(t *testing.T) {
	db := openCacheTestDb(t)
	cache := NewTemplateCourseCache(db, time.Millisecond)

	linkTemplate(t, db, 1, 100, 10)
	_, err := cache.CoursesForTemplate(1)
	require.NoError(t, err)

	linkTemplate(t, db, 1, 101, 11)
	time.Sleep(5 * time.Millisecond)

	courseIDs, err := cache.CoursesForTemplate(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{10, 11}, courseIDs)
}

func TestInvalidateCompetency(t *testing.T) {
	db := openCacheTestDb(t)
	cache := NewTemplateCourseCache(db, time.Hour)

	linkTemplate(t, db, 1, 100, 10)
	linkTemplate(t, db, 2, 200, 20)

	_, err := cache.CoursesForTemplate(1)
	require.NoError(t, err)
	_, err = cache.CoursesForTemplate(2)
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.CourseCompetency{CourseID: 11, CompetencyID: 100}).Error)
	require.NoError(t, cache.InvalidateCompetency(100))

	// Template 1 sees the new link, template 2 still serves its cached entry.
	courseIDs, err := cache.CoursesForTemplate(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{10, 11}, courseIDs)
}

func TestCoursesForPlanFallback(t *testing.T) {
	db := openCacheTestDb(t)
	cache := NewTemplateCourseCache(db, time.Hour)

	templateID := uint(1)
	linkTemplate(t, db, templateID, 100, 10)

	templatePlan := models.Plan{UserID: 1, TemplateID: &templateID, Name: "From template"}
	require.NoError(t, db.Create(&templatePlan).Error)

	adhocPlan := models.Plan{UserID: 1, Name: "Ad hoc"}
	require.NoError(t, db.Create(&adhocPlan).Error)
	require.NoError(t, db.Create(&models.PlanCompetency{PlanID: adhocPlan.ID, CompetencyID: 300}).Error)
	require.NoError(t, db.Create(&models.CourseCompetency{CourseID: 30, CompetencyID: 300}).Error)

	courseIDs, err := cache.CoursesForPlan(templatePlan)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{10}, courseIDs)

	courseIDs, err = cache.CoursesForPlan(adhocPlan)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{30}, courseIDs)
}

func TestSweepExpired(t *testing.T) {
	db := openCacheTestDb(t)
	cache := NewTemplateCourseCache(db, time.Millisecond)

	linkTemplate(t, db, 1, 100, 10)
	_, err := cache.CoursesForTemplate(1)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 1, cache.SweepExpired())
	assert.Equal(t, 0, cache.SweepExpired())
}
