package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Display modes for the plan view page
const (
	DisplayModeCompetencies = 1 // one card per competency (default)
	DisplayModePlan         = 2 // the whole plan as a single card
)

// Template represents a learning plan template
type Template struct {
	gorm.Model
	ShortName   string `json:"short_name"`
	Description string `json:"description"`
	Visible     bool   `json:"visible" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}

// TemplateDisplay holds the custom display fields of a template
type TemplateDisplay struct {
	gorm.Model
	TemplateID  uint           `json:"template_id" gorm:"uniqueIndex;not null"`
	DisplayMode int            `json:"display_mode" gorm:"default:1"`
	BgColor     string         `json:"bg_color"`
	TextColor   string         `json:"text_color"`
	CardImage   string         `json:"card_image"`
	BgImage     string         `json:"bg_image"`
	Icon        string         `json:"icon"`
	Tags        datatypes.JSON `json:"tags"`
	CustomSCSS  string         `json:"custom_scss"`
}

// TemplateCompetency links a competency to a template
type TemplateCompetency struct {
	gorm.Model
	TemplateID   uint `json:"template_id" gorm:"index;not null"`
	CompetencyID uint `json:"competency_id" gorm:"index;not null"`
	OrderIndex   int  `json:"order_index" gorm:"default:0"`
}
