package models

import (
	"time"

	"gorm.io/gorm"
)

// Course represents a course in the catalog
type Course struct {
	gorm.Model
	FullName         string    `json:"full_name"`
	ShortName        string    `json:"short_name"`
	ImageURL         string    `json:"image_url"`
	Visible          bool      `json:"visible" gorm:"default:true"`
	StartDate        time.Time `json:"start_date"`
	EnableCompletion bool      `json:"enable_completion" gorm:"default:true"`
	IsDeleted        bool      `gorm:"default:false"`
}
