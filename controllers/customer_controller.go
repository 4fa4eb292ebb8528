package controllers

import (
	"errors"
	"net/http"

	"charter-backend/models"
	"charter-backend/services"

	"github.com/gin-gonic/gin"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
	BookingSvc  *services.BookingService
}

func NewCustomerController(customerSvc *services.CustomerService, bookingSvc *services.BookingService) *CustomerController {
	return &CustomerController{CustomerSvc: customerSvc, BookingSvc: bookingSvc}
}

// ListCustomers supports ?tag= for tag-based segmentation.
func (ctrl *CustomerController) ListCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.List(c.Query("tag"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"customers":      customers,
		"suggested_tags": models.SuggestedCustomerTags,
	})
}

func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	customer, err := ctrl.CustomerSvc.GetByID(id)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// GetCustomerBookings returns the 5 most recent bookings sharing the
// customer's email.
func (ctrl *CustomerController) GetCustomerBookings(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	customer, err := ctrl.CustomerSvc.GetByID(id)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	bookings, err := ctrl.BookingSvc.RecentByEmail(customer.Email, 5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var draft models.Customer
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	if err := ctrl.CustomerSvc.Create(&draft); err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customer": draft})
}

func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	var draft models.Customer
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}
	customer, err := ctrl.CustomerSvc.Update(id, &draft)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	if err := ctrl.CustomerSvc.Delete(id); err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// RecalculateCustomer rebuilds the spend/booking aggregates from the
// bookings sharing the customer's email.
func (ctrl *CustomerController) RecalculateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid customer id"})
		return
	}
	customer, err := ctrl.CustomerSvc.RecalculateAggregates(id)
	if err != nil {
		respondCustomerError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func respondCustomerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
	case errors.Is(err, services.ErrCustomerRequired),
		errors.Is(err, services.ErrInvalidSource):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
