package utils

import (
	"dimensions/database"
	"dimensions/models"
)

// GetSetting reads an admin setting value, returning the default when unset
func GetSetting(name, defaultValue string) string {
	var setting models.Setting
	err := database.Database.Db.Where("name = ?", name).First(&setting).Error
	if err != nil || setting.Value == "" {
		return defaultValue
	}
	return setting.Value
}

// SetSetting upserts an admin setting value
func SetSetting(name, value string) error {
	var setting models.Setting
	err := database.Database.Db.Where("name = ?", name).First(&setting).Error
	if err != nil {
		return database.Database.Db.Create(&models.Setting{Name: name, Value: value}).Error
	}
	setting.Value = value
	return database.Database.Db.Save(&setting).Error
}
