package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dropu-backend/models"
	"dropu-backend/services"
	"dropu-backend/utils"
)

type registerPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Register handles customer self-registration. Privileged roles must be
// created through the admin/super-admin routes and get a 403 here.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	role, ok := models.ParseRole(strings.ToLower(strings.TrimSpace(payload.Role)))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid role provided")
		return
	}

	id, err := ac.Auth.Register(strings.TrimSpace(payload.Email), payload.Password, payload.Name, role)
	switch {
	case errors.Is(err, services.ErrForbiddenRole):
		utils.JSONError(c, http.StatusForbidden, err.Error())
		return
	case errors.Is(err, services.ErrDuplicateEmail):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, "registration failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "User registered successfully",
		"user_id": id,
	})
}

// Login authenticates against every account table and sets the session
// cookie on success.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	id, role, err := ac.Auth.Authenticate(strings.TrimSpace(payload.Email), payload.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "login failed")
		return
	}

	setSessionCookie(c, services.EncodeSession(id, role))
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message":  "Login successful",
		"role":     role,
		"redirect": fmt.Sprintf("/%s/dashboard", role),
	})
}

// Logout clears the cookie; there is no server-side session state to drop.
func (ac *AuthController) Logout(c *gin.Context) {
	clearSessionCookie(c)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Logout successful"})
}

func setSessionCookie(c *gin.Context, value string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(services.SessionCookieName, value, 0, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(services.SessionCookieName, "", -1, "/", "", false, true)
}
