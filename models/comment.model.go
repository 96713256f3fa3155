package models

import "gorm.io/gorm"

// PlanComment is a comment left on a plan, optionally scoped to one competency
type PlanComment struct {
	gorm.Model
	PlanID       uint   `json:"plan_id" gorm:"index;not null"`
	CompetencyID *uint  `json:"competency_id" gorm:"index"`
	UserID       uint   `json:"user_id" gorm:"index;not null"`
	Content      string `json:"content"`
	IsDeleted    bool   `gorm:"default:false"`
}
