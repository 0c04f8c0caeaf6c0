package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"dropu-backend/middleware"
	"dropu-backend/services"
	"dropu-backend/utils"
)

type profilePicturePayload struct {
	Image string `json:"image" binding:"required"`
}

type preferencesPayload struct {
	Preferences datatypes.JSON `json:"preferences" binding:"required"`
}

type confirmEmailPayload struct {
	Code     string `json:"code" binding:"required"`
	NewEmail string `json:"new_email" binding:"required,email"`
}

type confirmPasswordPayload struct {
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// AdminController serves the admin's own profile operations plus the rider
// reset-token issuance admins perform on riders' behalf.
type AdminController struct {
	Admins *services.AdminService
	Tokens *services.TokenService
}

func NewAdminController(admins *services.AdminService, tokens *services.TokenService) *AdminController {
	return &AdminController{Admins: admins, Tokens: tokens}
}

func (ctl *AdminController) Dashboard(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Welcome to Admin Dashboard"})
}

func (ctl *AdminController) GetProfile(c *gin.Context) {
	admin, err := ctl.Admins.GetByID(middleware.AccountID(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "admin not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admin)
}

func (ctl *AdminController) UpdateProfilePicture(c *gin.Context) {
	var payload profilePicturePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	path, err := ctl.Admins.UpdateProfilePicture(middleware.AccountID(c), payload.Image)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to store profile picture")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"profile_picture": path})
}

func (ctl *AdminController) UpdatePreferences(c *gin.Context) {
	var payload preferencesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if err := ctl.Admins.UpdatePreferences(middleware.AccountID(c), payload.Preferences); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update preferences")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "preferences updated"})
}

// RequestEmailChange mails a 6-digit code; the address only changes after
// ConfirmEmailChange presents it.
func (ctl *AdminController) RequestEmailChange(c *gin.Context) {
	err := ctl.Admins.RequestEmailChange(middleware.AccountID(c))
	if errors.Is(err, services.ErrNotification) {
		utils.JSONError(c, http.StatusBadGateway, "verification email could not be delivered")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue verification code")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "verification code sent"})
}

func (ctl *AdminController) ConfirmEmailChange(c *gin.Context) {
	var payload confirmEmailPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	err := ctl.Admins.ConfirmEmailChange(middleware.AccountID(c), strings.TrimSpace(payload.Code), strings.TrimSpace(payload.NewEmail))
	switch {
	case errors.Is(err, services.ErrInvalidOrExpired):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrDuplicateEmail):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to update email")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "email updated"})
}

func (ctl *AdminController) RequestPasswordChange(c *gin.Context) {
	err := ctl.Admins.RequestPasswordChange(middleware.AccountID(c))
	if errors.Is(err, services.ErrNotification) {
		utils.JSONError(c, http.StatusBadGateway, "verification email could not be delivered")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue verification code")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "verification code sent"})
}

func (ctl *AdminController) ConfirmPasswordChange(c *gin.Context) {
	var payload confirmPasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	err := ctl.Admins.ConfirmPasswordChange(middleware.AccountID(c), strings.TrimSpace(payload.Code), payload.NewPassword)
	if errors.Is(err, services.ErrInvalidOrExpired) {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update password")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "password updated"})
}

// IssueRiderReset hands a rider a temporary password valid for five
// minutes. The rider's old password stops working immediately.
func (ctl *AdminController) IssueRiderReset(c *gin.Context) {
	riderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid rider id")
		return
	}

	_, expiry, err := ctl.Tokens.IssueResetToken(uint(riderID))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, "rider not found")
		return
	case errors.Is(err, services.ErrNotification):
		utils.JSONError(c, http.StatusBadGateway, "reset email could not be delivered")
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "failed to issue reset token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message":    "temporary password sent to rider",
		"expires_at": expiry,
	})
}
