package controllers

import (
	"errors"
	"net/http"

	"charter-backend/models"
	"charter-backend/services"

	"github.com/gin-gonic/gin"
)

type BoatController struct {
	BoatSvc *services.BoatService
}

func NewBoatController(svc *services.BoatService) *BoatController {
	return &BoatController{BoatSvc: svc}
}

// ListBoats is the public fleet listing. ?type= filters by boat type
// ("all" or empty passes through); ?lang= selects the bilingual variant.
func (ctrl *BoatController) ListBoats(c *gin.Context) {
	lang := models.NormalizeLang(c.Query("lang"))

	boats, err := ctrl.BoatSvc.List(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]models.Boat, 0, len(boats))
	for _, b := range boats {
		out = append(out, b.Localized(lang))
	}
	c.JSON(http.StatusOK, gin.H{"boats": out})
}

// ListFeaturedBoats backs the homepage fleet strip.
func (ctrl *BoatController) ListFeaturedBoats(c *gin.Context) {
	lang := models.NormalizeLang(c.Query("lang"))

	boats, err := ctrl.BoatSvc.ListFeatured()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]models.Boat, 0, len(boats))
	for _, b := range boats {
		out = append(out, b.Localized(lang))
	}
	c.JSON(http.StatusOK, gin.H{"boats": out})
}

func (ctrl *BoatController) GetBoatBySlug(c *gin.Context) {
	lang := models.NormalizeLang(c.Query("lang"))

	boat, err := ctrl.BoatSvc.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrBoatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "boat not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"boat": boat.Localized(lang)})
}

// ListBoatsAdmin returns the raw records, both languages included.
func (ctrl *BoatController) ListBoatsAdmin(c *gin.Context) {
	boats, err := ctrl.BoatSvc.List(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"boats": boats})
}

// CreateBoat commits the whole editor draft in a single call.
func (ctrl *BoatController) CreateBoat(c *gin.Context) {
	var draft models.Boat
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	if err := ctrl.BoatSvc.Create(&draft); err != nil {
		respondBoatError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"boat": draft})
}

func (ctrl *BoatController) UpdateBoat(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid boat id"})
		return
	}

	var draft models.Boat
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	boat, err := ctrl.BoatSvc.Update(id, &draft)
	if err != nil {
		respondBoatError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"boat": boat})
}

func (ctrl *BoatController) DeleteBoat(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid boat id"})
		return
	}
	if err := ctrl.BoatSvc.Delete(id); err != nil {
		respondBoatError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func respondBoatError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBoatNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "boat not found"})
	case errors.Is(err, services.ErrBoatNameRequired),
		errors.Is(err, services.ErrInvalidBoatType),
		errors.Is(err, services.ErrNegativePrice),
		errors.Is(err, services.ErrUnknownFeature),
		errors.Is(err, services.ErrInvalidExtraUnit):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case isDuplicateErr(err):
		c.JSON(http.StatusConflict, gin.H{"error": "slug already in use"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
