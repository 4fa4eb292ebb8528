package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"charter-backend/models"
	"charter-backend/services"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc  *services.BookingService
	CustomerSvc *services.CustomerService
}

func NewBookingController(bookingSvc *services.BookingService, customerSvc *services.CustomerService) *BookingController {
	return &BookingController{BookingSvc: bookingSvc, CustomerSvc: customerSvc}
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// BookingRequestPayload is the public contact/booking form. It always
// produces a pending booking; staff confirm or cancel it later.
type BookingRequestPayload struct {
	BoatID        uint   `json:"boat_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerEmail string `json:"customer_email" binding:"required"`
	CustomerPhone string `json:"customer_phone"`
	StartDate     string `json:"start_date" binding:"required"`
	EndDate       string `json:"end_date" binding:"required"`
	Notes         string `json:"notes"`
}

// ListBookings supports ?status= (exact) and ?q= (case-insensitive
// substring over customer name/email and boat name).
func (ctrl *BookingController) ListBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.List(c.Query("status"), c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (ctrl *BookingController) GetBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	booking, err := ctrl.BookingSvc.GetByID(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var draft services.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	booking, err := ctrl.BookingSvc.Create(draft)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var draft services.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	booking, err := ctrl.BookingSvc.Update(id, draft)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// UpdateBookingStatus changes only the status field.
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status required"})
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(id, payload.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}
	if err := ctrl.BookingSvc.Delete(id); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// MonthCalendar returns the per-day occupancy map for ?year=&month=
// (defaults to the current month), optionally scoped to ?boat_id=.
func (ctrl *BookingController) MonthCalendar(c *gin.Context) {
	now := time.Now().UTC()

	year := now.Year()
	if v := c.Query("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 2000 || parsed > 2100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}

	month := now.Month()
	if v := c.Query("month"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
			return
		}
		month = time.Month(parsed)
	}

	var boatID uint
	if v := c.Query("boat_id"); v != "" {
		parsed, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid boat_id"})
			return
		}
		boatID = uint(parsed)
	}

	days, err := ctrl.BookingSvc.MonthCalendar(year, month, boatID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"year":  year,
		"month": int(month),
		"days":  days,
	})
}

// CreateBookingRequest is the public form endpoint. The request lands as a
// real pending booking; a matching CRM record is created when the email is
// new (source "website").
func (ctrl *BookingController) CreateBookingRequest(c *gin.Context) {
	var payload BookingRequestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "details": err.Error()})
		return
	}

	booking, err := ctrl.BookingSvc.Create(services.BookingDraft{
		BoatID:        payload.BoatID,
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		CustomerPhone: payload.CustomerPhone,
		StartDate:     payload.StartDate,
		EndDate:       payload.EndDate,
		Status:        models.BookingStatusPending,
		Notes:         payload.Notes,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	// best-effort CRM record; the booking stands either way
	if _, err := ctrl.CustomerSvc.FindByEmail(payload.CustomerEmail); errors.Is(err, services.ErrCustomerNotFound) {
		_ = ctrl.CustomerSvc.Create(&models.Customer{
			Name:   payload.CustomerName,
			Email:  payload.CustomerEmail,
			Phone:  payload.CustomerPhone,
			Source: models.CustomerSourceWebsite,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

func respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, services.ErrBoatNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "boat not found"})
	case errors.Is(err, services.ErrBoatUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "boat already confirmed for an overlapping date range"})
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrCustomerIdentity),
		errors.Is(err, services.ErrNegativeTotalPrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
