package progress

import "time"

// Completion states for one (activity, user) pair. Only Complete and
// CompletePass count toward progress.
const (
	StateIncomplete   = 0
	StateComplete     = 1
	StateCompletePass = 2
	StateCompleteFail = 3
)

// Enrollment filter modes
const (
	FilterAll      = "all"
	FilterEnrolled = "enrolled"
	FilterActive   = "active"
)

// Course is the catalog view of a course as seen by the calculator
type Course struct {
	ID               uint
	FullName         string
	StartDate        time.Time
	EnableCompletion bool
}

// Section is the catalog view of one course section.
// Number is the section's position in catalog order, used for default names.
// Component is non-empty when the section is the delegated target of a
// subsection activity; such sections are folded into their root, never
// reported on their own.
type Section struct {
	ID            uint
	Number        int
	Name          string
	Visible       bool
	UserVisible   bool
	AvailableInfo string
	Component     string
}

// Activity is the catalog view of one course module.
// DelegatedSectionID is non-zero only for subsection pseudo-activities.
type Activity struct {
	ID                 uint
	SectionID          uint
	ModName            string
	CompletionTracking int
	UserVisible        bool
	DelegatedSectionID uint
}

// SectionResult is the computed progress entry for one root section.
// Percentage is nil when progress was not computed (locked section, locked
// course, or no trackable activities).
type SectionResult struct {
	Name          string `json:"name"`
	Percentage    *int   `json:"percentage"`
	HasActivities bool   `json:"has_activities"`
	URL           string `json:"url"`
	Locked        bool   `json:"locked"`
}

// CourseResult is the computed progress for one course.
// When Enabled is false no other field is populated.
type CourseResult struct {
	Enabled            bool            `json:"enabled"`
	Locked             bool            `json:"locked"`
	FormattedStartDate string          `json:"formatted_start_date"`
	IsEnrolmentStart   bool            `json:"is_enrolment_start"`
	CourseURL          string          `json:"course_url"`
	Sections           []SectionResult `json:"sections"`
}

// SectionItem is the wire form of a section entry in the batch response
type SectionItem struct {
	Name          string `json:"name"`
	Percentage    int    `json:"percentage"`
	HasActivities bool   `json:"has_activities"`
	URL           string `json:"url"`
	Locked        bool   `json:"locked"`
	IsCompleted   bool   `json:"is_completed"`
	IsStarted     bool   `json:"is_started"`
}

// CourseItem is one entry of the batch response. A failed course carries a
// non-empty Error with Enabled and Locked both false.
type CourseItem struct {
	CourseID           uint          `json:"courseid"`
	Enabled            bool          `json:"enabled"`
	Locked             bool          `json:"locked"`
	FormattedStartDate string        `json:"formatted_start_date"`
	IsEnrolmentStart   bool          `json:"is_enrolment_start"`
	CourseURL          string        `json:"course_url"`
	Sections           []SectionItem `json:"sections"`
	Error              string        `json:"error"`
}
