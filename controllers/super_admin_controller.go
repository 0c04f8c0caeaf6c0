package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dropu-backend/models"
	"dropu-backend/services"
	"dropu-backend/utils"
)

type registerAdminPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type issueStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// SuperAdminController owns admin lifecycle and reporting, the operations
// reserved for the super admin.
type SuperAdminController struct {
	Admins  *services.AdminService
	Reports *services.ReportService
}

func NewSuperAdminController(admins *services.AdminService, reports *services.ReportService) *SuperAdminController {
	return &SuperAdminController{Admins: admins, Reports: reports}
}

// RegisterAdmin creates a regular admin account. The endpoint refuses any
// other role outright.
func (ctl *SuperAdminController) RegisterAdmin(c *gin.Context) {
	var payload registerAdminPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if role, ok := models.ParseRole(strings.ToLower(strings.TrimSpace(payload.Role))); !ok || role != models.RoleAdmin {
		utils.JSONError(c, http.StatusBadRequest, "This endpoint can only create admins")
		return
	}

	admin, err := ctl.Admins.CreateAdmin(payload.Name, strings.TrimSpace(payload.Email), payload.Password)
	if errors.Is(err, services.ErrDuplicateEmail) {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create admin")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"id":    admin.ID,
		"email": admin.Email,
		"role":  admin.Role,
	})
}

func (ctl *SuperAdminController) GetAdmins(c *gin.Context) {
	admins, err := ctl.Admins.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list admins")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admins)
}

func (ctl *SuperAdminController) DeleteAdmin(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid admin id")
		return
	}
	err = ctl.Admins.Delete(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusNotFound, "admin not found")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete admin")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Admin deleted"})
}

// TopRegions reports feedback volume grouped by region, busiest first.
func (ctl *SuperAdminController) TopRegions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))
	rows, err := ctl.Reports.TopRegions(limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build report")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rows)
}

func (ctl *SuperAdminController) GetFeedback(c *gin.Context) {
	feedback, err := ctl.Reports.GetFeedback()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list feedback")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, feedback)
}

func (ctl *SuperAdminController) GetIssues(c *gin.Context) {
	issues, err := ctl.Reports.GetIssues()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list issues")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, issues)
}

func (ctl *SuperAdminController) UpdateIssueStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid issue id")
		return
	}
	var payload issueStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	err = ctl.Reports.UpdateIssueStatus(uint(id), payload.Status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusNotFound, "issue not found")
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update issue")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "issue updated"})
}
