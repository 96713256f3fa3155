package models

import (
	"time"

	"gorm.io/gorm"
)

// Section represents a top-level or delegated section within a course.
// Component is set (e.g. "mod_subsection") when the section is the delegated
// target of a subsection activity; such sections are never listed as roots.
type Section struct {
	gorm.Model
	CourseID        uint       `json:"course_id" gorm:"index;not null"`
	Name            string     `json:"name"`
	OrderIndex      int        `json:"order_index" gorm:"default:0"`
	Visible         bool       `json:"visible" gorm:"default:true"`
	Component       string     `json:"component"`
	AvailableFrom   *time.Time `json:"available_from"`
	RestrictionText string     `json:"restriction_text"` // empty = hide entirely while restricted
	IsDeleted       bool       `gorm:"default:false"`
}
