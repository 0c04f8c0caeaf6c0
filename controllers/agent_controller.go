package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dropu-backend/services"
	"dropu-backend/utils"
)

type createAgentPayload struct {
	Name            string  `json:"name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=8"`
	StationLocation *string `json:"station_location"`
}

type reportIssuePayload struct {
	Description string `json:"description" binding:"required"`
	Urgency     bool   `json:"urgency"`
}

type AgentController struct {
	Agents  *services.AgentService
	Reports *services.ReportService
}

func NewAgentController(agents *services.AgentService, reports *services.ReportService) *AgentController {
	return &AgentController{Agents: agents, Reports: reports}
}

func (ctl *AgentController) Dashboard(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Welcome to Agent Dashboard"})
}

func (ctl *AgentController) Create(c *gin.Context) {
	var payload createAgentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	agent, err := ctl.Agents.Create(payload.Name, strings.TrimSpace(payload.Email), payload.Password, payload.StationLocation)
	if errors.Is(err, services.ErrDuplicateEmail) {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create agent")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, agent)
}

func (ctl *AgentController) GetAll(c *gin.Context) {
	agents, err := ctl.Agents.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list agents")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, agents)
}

func (ctl *AgentController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid agent id")
		return
	}
	if err := ctl.Agents.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "agent not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete agent")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Agent deleted"})
}

// ReportIssue lets station agents flag operational problems.
func (ctl *AgentController) ReportIssue(c *gin.Context) {
	var payload reportIssuePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	issue, err := ctl.Reports.ReportIssue(payload.Description, payload.Urgency)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to report issue")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, issue)
}
