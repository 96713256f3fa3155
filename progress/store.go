package progress

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"dimensions/models"
)

// Store adapts the GORM database to the calculator's collaborator interfaces
type Store struct {
	db *gorm.DB
}

// NewStore creates a database-backed provider set
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CourseByID(courseID uint) (Course, error) {
	var course models.Course
	if err := s.db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Course{}, fmt.Errorf("%w: %d", ErrCourseNotFound, courseID)
		}
		return Course{}, err
	}
	return Course{
		ID:               course.ID,
		FullName:         course.FullName,
		StartDate:        course.StartDate,
		EnableCompletion: course.EnableCompletion,
	}, nil
}

func (s *Store) Sections(courseID, userID uint) ([]Section, error) {
	var sections []models.Section
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("order_index asc").Find(&sections).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]Section, 0, len(sections))
	for i, sec := range sections {
		out = append(out, Section{
			ID:            sec.ID,
			Number:        i + 1,
			Name:          sec.Name,
			Visible:       sec.Visible,
			UserVisible:   sec.Visible && available(sec.AvailableFrom, now),
			AvailableInfo: sec.RestrictionText,
			Component:     sec.Component,
		})
	}
	return out, nil
}

func (s *Store) Activities(courseID, userID uint) ([]Activity, error) {
	var activities []models.Activity
	if err := s.db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("section_id asc, order_index asc").Find(&activities).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]Activity, 0, len(activities))
	for _, act := range activities {
		var delegated uint
		if act.DelegatedSectionID != nil {
			delegated = *act.DelegatedSectionID
		}
		out = append(out, Activity{
			ID:                 act.ID,
			SectionID:          act.SectionID,
			ModName:            act.ModName,
			CompletionTracking: act.CompletionTracking,
			UserVisible:        act.Visible && available(act.AvailableFrom, now),
			DelegatedSectionID: delegated,
		})
	}
	return out, nil
}

func (s *Store) State(activityID, userID uint) (int, error) {
	var completion models.ActivityCompletion
	err := s.db.Where("activity_id = ? AND user_id = ? AND is_deleted = ?", activityID, userID, false).
		First(&completion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StateIncomplete, nil
		}
		return StateIncomplete, err
	}
	return completion.State, nil
}

func (s *Store) IsEnrolled(courseID, userID uint, onlyActive bool) (bool, error) {
	query := s.db.Model(&models.Enrollment{}).
		Where("course_id = ? AND user_id = ? AND is_deleted = ?", courseID, userID, false)

	if onlyActive {
		now := time.Now()
		query = query.Where("status = ?", "ACTIVE").
			Where("time_start IS NULL OR time_start <= ?", now).
			Where("time_end IS NULL OR time_end > ?", now)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) Roles(courseID, userID uint) ([]string, error) {
	var roles []string
	err := s.db.Model(&models.RoleAssignment{}).
		Where("course_id = ? AND user_id = ? AND is_deleted = ?", courseID, userID, false).
		Pluck("short_name", &roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

func (s *Store) NextEnrolmentStart(courseID, userID uint) (*time.Time, error) {
	var enrollment models.Enrollment
	err := s.db.Where("course_id = ? AND user_id = ? AND is_deleted = ?", courseID, userID, false).
		Where("time_start > ?", time.Now()).
		Order("time_start asc").
		First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return enrollment.TimeStart, nil
}

func available(from *time.Time, now time.Time) bool {
	return from == nil || !from.After(now)
}
