package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dropu-backend/middleware"
	"dropu-backend/models"
	"dropu-backend/services"
	"dropu-backend/utils"
)

type feedbackPayload struct {
	Message  string `json:"message" binding:"required"`
	Region   string `json:"region" binding:"required"`
	Category string `json:"category" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
}

type updateAddressPayload struct {
	Address string `json:"address" binding:"required"`
}

type CustomerController struct {
	Customers *services.CustomerService
	Reports   *services.ReportService
}

func NewCustomerController(customers *services.CustomerService, reports *services.ReportService) *CustomerController {
	return &CustomerController{Customers: customers, Reports: reports}
}

func (ctl *CustomerController) Dashboard(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Welcome to Customer Dashboard"})
}

// SubmitFeedback records feedback tagged with the caller's identity and
// role from the session, not the payload.
func (ctl *CustomerController) SubmitFeedback(c *gin.Context) {
	var payload feedbackPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	fb := models.Feedback{
		UserID:   middleware.AccountID(c),
		UserType: middleware.SessionRole(c).String(),
		Message:  payload.Message,
		Region:   payload.Region,
		Category: payload.Category,
		Rating:   payload.Rating,
	}
	if err := ctl.Reports.SubmitFeedback(&fb); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to submit feedback")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, fb)
}

func (ctl *CustomerController) UpdateAddress(c *gin.Context) {
	var payload updateAddressPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	err := ctl.Customers.UpdateAddress(middleware.AccountID(c), payload.Address)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusNotFound, "customer not found")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update address")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "address updated"})
}
