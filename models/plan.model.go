package models

import "gorm.io/gorm"

// Plan represents a learning plan instance owned by one user.
// TemplateID is nil for ad-hoc plans not created from a template.
type Plan struct {
	gorm.Model
	UserID     uint   `json:"user_id" gorm:"index;not null"`
	TemplateID *uint  `json:"template_id" gorm:"index"`
	Name       string `json:"name"`
	Status     string `json:"status" gorm:"default:'ACTIVE'"` // DRAFT, ACTIVE, COMPLETE
	IsDeleted  bool   `gorm:"default:false"`
}

// PlanCompetency links a competency directly to an ad-hoc plan
type PlanCompetency struct {
	gorm.Model
	PlanID       uint `json:"plan_id" gorm:"index;not null"`
	CompetencyID uint `json:"competency_id" gorm:"index;not null"`
	OrderIndex   int  `json:"order_index" gorm:"default:0"`
}
