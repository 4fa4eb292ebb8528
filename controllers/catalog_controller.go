package controllers

import (
	"errors"
	"net/http"

	"charter-backend/models"
	"charter-backend/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	CatalogSvc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{CatalogSvc: svc}
}

// ListServices is the public catalog: active offerings only, display order,
// localized by ?lang=.
func (ctrl *CatalogController) ListServices(c *gin.Context) {
	lang := models.NormalizeLang(c.Query("lang"))

	offerings, err := ctrl.CatalogSvc.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]models.Service, 0, len(offerings))
	for _, o := range offerings {
		out = append(out, o.Localized(lang))
	}
	c.JSON(http.StatusOK, gin.H{"services": out})
}

func (ctrl *CatalogController) GetServiceBySlug(c *gin.Context) {
	lang := models.NormalizeLang(c.Query("lang"))

	offering, err := ctrl.CatalogSvc.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": offering.Localized(lang)})
}

// ListServicesAdmin includes hidden offerings.
func (ctrl *CatalogController) ListServicesAdmin(c *gin.Context) {
	offerings, err := ctrl.CatalogSvc.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": offerings})
}

func (ctrl *CatalogController) CreateService(c *gin.Context) {
	var draft models.Service
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if err := ctrl.CatalogSvc.Create(&draft); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"service": draft})
}

func (ctrl *CatalogController) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}
	var draft models.Service
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	offering, err := ctrl.CatalogSvc.Update(id, &draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": offering})
}

type activePayload struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ToggleService flips visibility without deleting the record.
func (ctrl *CatalogController) ToggleService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}
	var payload activePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "is_active required"})
		return
	}
	offering, err := ctrl.CatalogSvc.SetActive(id, *payload.IsActive)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service": offering})
}

func (ctrl *CatalogController) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}
	if err := ctrl.CatalogSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
	case errors.Is(err, services.ErrServiceNameRequired),
		errors.Is(err, services.ErrInvalidIcon):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isDuplicateErr(err):
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
