package controllers

import (
	"errors"
	"net/http"
	"strings"

	"charter-backend/config"
	"charter-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type settingPayload struct {
	Value string `json:"value"`
}

// GetSiteSettings returns every key/value pair; public pages read branding
// and contact data from here.
func GetSiteSettings(c *gin.Context) {
	var settings []models.SiteSetting
	if err := config.DB.Order("setting_key ASC").Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// GetSiteSetting reads one key; an unknown key is a null result, not an
// error condition.
func GetSiteSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	var setting models.SiteSetting
	if err := config.DB.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"key": key, "value": nil})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": setting.Key, "value": setting.Value})
}

// UpdateSiteSetting upserts a single key.
func UpdateSiteSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "setting key required"})
		return
	}

	var payload settingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	var setting models.SiteSetting
	err := config.DB.Where("setting_key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			setting = models.SiteSetting{Key: key, Value: payload.Value}
			if err := config.DB.Create(&setting).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"setting": setting})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	setting.Value = payload.Value
	if err := config.DB.Save(&setting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"setting": setting})
}
