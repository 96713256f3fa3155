package models

import "gorm.io/gorm"

// CourseCompetency links a course to a competency
type CourseCompetency struct {
	gorm.Model
	CourseID     uint `json:"course_id" gorm:"index;not null"`
	CompetencyID uint `json:"competency_id" gorm:"index;not null"`
}
