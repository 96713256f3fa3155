package models

import (
	"time"

	"gorm.io/gorm"
)

// ModSubsection is the module type of the pseudo-activity that delegates to a
// nested section. It is never counted as trackable content itself.
const ModSubsection = "subsection"

// Completion tracking modes
const (
	TrackingNone      = 0
	TrackingManual    = 1
	TrackingAutomatic = 2
)

// Activity represents a course module placed inside a section
type Activity struct {
	gorm.Model
	CourseID           uint       `json:"course_id" gorm:"index;not null"`
	SectionID          uint       `json:"section_id" gorm:"index;not null"`
	Name               string     `json:"name"`
	ModName            string     `json:"mod_name"` // page, quiz, assign, subsection, ...
	OrderIndex         int        `json:"order_index" gorm:"default:0"`
	CompletionTracking int        `json:"completion_tracking" gorm:"default:0"`
	Visible            bool       `json:"visible" gorm:"default:true"`
	AvailableFrom      *time.Time `json:"available_from"`
	DelegatedSectionID *uint      `json:"delegated_section_id"` // set when ModName == subsection
	IsDeleted          bool       `gorm:"default:false"`
}
