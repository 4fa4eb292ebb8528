package controllers

import (
	"errors"
	"net/http"

	"charter-backend/services"
	"charter-backend/utils"

	"github.com/gin-gonic/gin"
)

// UploadImage stores a multipart image and returns its public URL.
// An optional "path" form field hints the subdirectory (boats, articles,
// services, settings).
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "image file required")
		return
	}

	url, err := services.SaveUploadedImage(file, c.PostForm("path"))
	if err != nil {
		if errors.Is(err, services.ErrNotAnImage) {
			utils.JSONError(c, http.StatusBadRequest, "file is not an image")
			return
		}
		if errors.Is(err, services.ErrInvalidUploadPath) {
			utils.JSONError(c, http.StatusBadRequest, "invalid upload path")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"url": url})
}
