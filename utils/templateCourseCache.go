package utils

import (
	"sync"
	"time"

	"gorm.io/gorm"

	"dimensions/models"
)

// TemplateCourseCache memoizes the set of course IDs linked to a template's
// competencies. All plans sharing one template share the same links, so one
// entry serves every plan instance until the TTL expires or a link-change
// handler invalidates the template.
type TemplateCourseCache struct {
	db  *gorm.DB
	ttl time.Duration

	mu      sync.Mutex
	entries map[uint]templateCourseEntry
}

type templateCourseEntry struct {
	courseIDs []uint
	expires   time.Time
}

// TemplateCourses is the global cache instance
var TemplateCourses *TemplateCourseCache

// InitTemplateCourseCache sets up the global cache
func InitTemplateCourseCache(db *gorm.DB, ttl time.Duration) {
	TemplateCourses = NewTemplateCourseCache(db, ttl)
}

// NewTemplateCourseCache creates a cache backed by the given database
func NewTemplateCourseCache(db *gorm.DB, ttl time.Duration) *TemplateCourseCache {
	return &TemplateCourseCache{
		db:      db,
		ttl:     ttl,
		entries: make(map[uint]templateCourseEntry),
	}
}

// CoursesForTemplate returns the distinct course IDs linked to any competency
// of the template, serving a cached copy when one is still fresh
func (c *TemplateCourseCache) CoursesForTemplate(templateID uint) ([]uint, error) {
	c.mu.Lock()
	entry, ok := c.entries[templateID]
	if ok && time.Now().Before(entry.expires) {
		courseIDs := append([]uint{}, entry.courseIDs...)
		c.mu.Unlock()
		return courseIDs, nil
	}
	c.mu.Unlock()

	// Cache miss - fetch from database.
	courseIDs, err := c.fetchCoursesForTemplate(templateID)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[templateID] = templateCourseEntry{
		courseIDs: courseIDs,
		expires:   time.Now().Add(c.ttl),
	}
	c.mu.Unlock()

	return append([]uint{}, courseIDs...), nil
}

// CoursesForPlan returns the course IDs for a plan, going through the template
// cache when the plan is template-based and querying directly otherwise
func (c *TemplateCourseCache) CoursesForPlan(plan models.Plan) ([]uint, error) {
	if plan.TemplateID == nil {
		return c.fetchCoursesForPlan(plan.ID)
	}
	return c.CoursesForTemplate(*plan.TemplateID)
}

// InvalidateTemplate drops the cached entry for a template.
// Call this when template competencies or course-competency links change.
func (c *TemplateCourseCache) InvalidateTemplate(templateID uint) {
	c.mu.Lock()
	delete(c.entries, templateID)
	c.mu.Unlock()
}

// InvalidateCompetency drops every template entry that includes the competency
func (c *TemplateCourseCache) InvalidateCompetency(competencyID uint) error {
	var templateIDs []uint
	err := c.db.Model(&models.TemplateCompetency{}).
		Where("competency_id = ?", competencyID).
		Pluck("template_id", &templateIDs).Error
	if err != nil {
		return err
	}

	c.mu.Lock()
	for _, templateID := range templateIDs {
		delete(c.entries, templateID)
	}
	c.mu.Unlock()
	return nil
}

// PurgeAll drops every cached entry
func (c *TemplateCourseCache) PurgeAll() {
	c.mu.Lock()
	c.entries = make(map[uint]templateCourseEntry)
	c.mu.Unlock()
}

// SweepExpired removes expired entries and reports how many were dropped
func (c *TemplateCourseCache) SweepExpired() int {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	swept := 0
	for templateID, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, templateID)
			swept++
		}
	}
	return swept
}

func (c *TemplateCourseCache) fetchCoursesForTemplate(templateID uint) ([]uint, error) {
	var courseIDs []uint
	err := c.db.Model(&models.CourseCompetency{}).
		Joins("JOIN template_competencies ON template_competencies.competency_id = course_competencies.competency_id").
		Where("template_competencies.template_id = ?", templateID).
		Distinct().
		Pluck("course_competencies.course_id", &courseIDs).Error
	if err != nil {
		return nil, err
	}
	return courseIDs, nil
}

func (c *TemplateCourseCache) fetchCoursesForPlan(planID uint) ([]uint, error) {
	var courseIDs []uint
	err := c.db.Model(&models.CourseCompetency{}).
		Joins("JOIN plan_competencies ON plan_competencies.competency_id = course_competencies.competency_id").
		Where("plan_competencies.plan_id = ?", planID).
		Distinct().
		Pluck("course_competencies.course_id", &courseIDs).Error
	if err != nil {
		return nil, err
	}
	return courseIDs, nil
}
