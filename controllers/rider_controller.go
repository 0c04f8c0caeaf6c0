package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dropu-backend/middleware"
	"dropu-backend/services"
	"dropu-backend/utils"
)

type createRiderPayload struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,min=8"`
	BikeNumber  *string `json:"bike_number"`
	PhoneNumber string  `json:"phone_number" binding:"required"`
	BikeModel   string  `json:"bike_model" binding:"required"`
	BikeColor   string  `json:"bike_color" binding:"required"`
	License     string  `json:"license" binding:"required"`

	IDDocument     string `json:"id_document" binding:"required"`
	DrivingLicense string `json:"driving_license" binding:"required"`
	Insurance      string `json:"insurance" binding:"required"`

	EmergencyContactName         string `json:"emergency_contact_name" binding:"required"`
	EmergencyContactPhone        string `json:"emergency_contact_phone" binding:"required"`
	EmergencyContactRelationship string `json:"emergency_contact_relationship" binding:"required"`
}

type riderStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type resetPasswordPayload struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type RiderController struct {
	Riders *services.RiderService
}

func NewRiderController(riders *services.RiderService) *RiderController {
	return &RiderController{Riders: riders}
}

func (ctl *RiderController) Dashboard(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Welcome to Rider Dashboard"})
}

// Create onboards a rider; document fields carry base64 payloads that are
// stored under uploads/rider_documents.
func (ctl *RiderController) Create(c *gin.Context) {
	var payload createRiderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	rider, err := ctl.Riders.Create(middleware.AccountID(c), services.RiderOnboarding{
		Name:        payload.Name,
		Email:       strings.TrimSpace(payload.Email),
		Password:    payload.Password,
		BikeNumber:  payload.BikeNumber,
		PhoneNumber: payload.PhoneNumber,
		BikeModel:   payload.BikeModel,
		BikeColor:   payload.BikeColor,
		License:     payload.License,

		IDDocumentBase64:     payload.IDDocument,
		DrivingLicenseBase64: payload.DrivingLicense,
		InsuranceBase64:      payload.Insurance,

		EmergencyContactName:         payload.EmergencyContactName,
		EmergencyContactPhone:        payload.EmergencyContactPhone,
		EmergencyContactRelationship: payload.EmergencyContactRelationship,
	})
	if errors.Is(err, services.ErrDuplicateEmail) {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create rider")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rider)
}

func (ctl *RiderController) GetAll(c *gin.Context) {
	riders, err := ctl.Riders.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list riders")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, riders)
}

func (ctl *RiderController) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rider id")
		return
	}
	rider, err := ctl.Riders.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusNotFound, "rider not found")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load rider")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rider)
}

func (ctl *RiderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rider id")
		return
	}
	var payload riderStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	err = ctl.Riders.UpdateStatus(uint(id), payload.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusNotFound, "rider not found")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update rider status")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "rider status updated"})
}

func (ctl *RiderController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rider id")
		return
	}
	err = ctl.Riders.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusNotFound, "rider not found")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete rider")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Rider deleted"})
}

// ResetPassword redeems a temporary-password token and sets the permanent
// replacement. The route is unauthenticated: the token is the credential.
func (ctl *RiderController) ResetPassword(c *gin.Context) {
	var payload resetPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	err := ctl.Riders.ResetPassword(strings.TrimSpace(payload.Token), payload.NewPassword)
	if errors.Is(err, services.ErrInvalidOrExpired) {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to reset password")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "password updated"})
}
