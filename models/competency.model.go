package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Competency represents a competency record from the learning-plan framework
type Competency struct {
	gorm.Model
	ShortName   string `json:"short_name"`
	IDNumber    string `json:"id_number"`
	Description string `json:"description"`
	IsDeleted   bool   `gorm:"default:false"`
}

// CompetencyDisplay holds the custom display fields that augment a competency
// (colors, images, icon, tags, custom CSS). One row per competency.
type CompetencyDisplay struct {
	gorm.Model
	CompetencyID uint           `json:"competency_id" gorm:"uniqueIndex;not null"`
	BgColor      string         `json:"bg_color"`
	TextColor    string         `json:"text_color"`
	CardImage    string         `json:"card_image"`
	BgImage      string         `json:"bg_image"`
	Icon         string         `json:"icon"`
	Tags         datatypes.JSON `json:"tags"` // ordered list of tag strings
	CustomSCSS   string         `json:"custom_scss"`
}
