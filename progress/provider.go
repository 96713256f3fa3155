package progress

import (
	"errors"
	"time"
)

// ErrCourseNotFound is returned when a course ID does not resolve
var ErrCourseNotFound = errors.New("course not found")

// Catalog provides courses, sections and activities.
// Sections and Activities are returned in catalog order with per-user
// visibility already resolved for the given user.
type Catalog interface {
	CourseByID(courseID uint) (Course, error)
	Sections(courseID, userID uint) ([]Section, error)
	Activities(courseID, userID uint) ([]Activity, error)
}

// Completions resolves the completion state of one (activity, user) pair.
// Unknown pairs report StateIncomplete.
type Completions interface {
	State(activityID, userID uint) (int, error)
}

// Enrollments provides enrollment and role lookups for one course context
type Enrollments interface {
	IsEnrolled(courseID, userID uint, onlyActive bool) (bool, error)
	Roles(courseID, userID uint) ([]string, error)
	// NextEnrolmentStart returns the earliest future enrollment start for the
	// user in the course, or nil when none exists.
	NextEnrolmentStart(courseID, userID uint) (*time.Time, error)
}

// URLBuilder builds navigation targets for course and section pages
type URLBuilder interface {
	CourseURL(courseID uint) string
	SectionURL(sectionID uint) string
}
