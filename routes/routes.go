package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"dropu-backend/controllers"
	"dropu-backend/middleware"
	"dropu-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires every route group to its controller.
func SetupRouter(
	ac *controllers.AuthController,
	adc *controllers.AdminController,
	sac *controllers.SuperAdminController,
	rc *controllers.RiderController,
	agc *controllers.AgentController,
	cc *controllers.CustomerController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to Dropu Logistics Management System API"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.POST("/logout", ac.Logout)
	}

	admin := r.Group("/admin", middleware.RequireAuth(models.RoleAdmin, models.RoleSuperAdmin))
	{
		admin.GET("/dashboard", adc.Dashboard)
		admin.GET("/profile", adc.GetProfile)
		admin.PUT("/profile/picture", adc.UpdateProfilePicture)
		admin.PUT("/profile/preferences", adc.UpdatePreferences)

		admin.POST("/profile/email/request", adc.RequestEmailChange)
		admin.POST("/profile/email/confirm", adc.ConfirmEmailChange)
		admin.POST("/profile/password/request", adc.RequestPasswordChange)
		admin.POST("/profile/password/confirm", adc.ConfirmPasswordChange)

		admin.POST("/riders", rc.Create)
		admin.GET("/riders", rc.GetAll)
		admin.GET("/riders/:id", rc.GetByID)
		admin.PATCH("/riders/:id/status", rc.UpdateStatus)
		admin.DELETE("/riders/:id", rc.Delete)
		admin.POST("/riders/:id/reset-token", adc.IssueRiderReset)

		admin.POST("/agents", agc.Create)
		admin.GET("/agents", agc.GetAll)
		admin.DELETE("/agents/:id", agc.Delete)
	}

	superAdmin := r.Group("/super-admin", middleware.RequireAuth(models.RoleSuperAdmin))
	{
		superAdmin.POST("/register-admin", sac.RegisterAdmin)
		superAdmin.GET("/admins", sac.GetAdmins)
		superAdmin.DELETE("/admins/:id", sac.DeleteAdmin)

		superAdmin.GET("/reports/top-regions", sac.TopRegions)
		superAdmin.GET("/feedback", sac.GetFeedback)
		superAdmin.GET("/issues", sac.GetIssues)
		superAdmin.PATCH("/issues/:id", sac.UpdateIssueStatus)
	}

	rider := r.Group("/rider")
	{
		rider.GET("/dashboard", middleware.RequireAuth(models.RoleRider), rc.Dashboard)
		// Unauthenticated: the reset token itself is the credential.
		rider.POST("/reset-password", rc.ResetPassword)
	}

	agent := r.Group("/agent", middleware.RequireAuth(models.RoleAgent))
	{
		agent.GET("/dashboard", agc.Dashboard)
		agent.POST("/issues", agc.ReportIssue)
	}

	customer := r.Group("/customer", middleware.RequireAuth(models.RoleCustomer))
	{
		customer.GET("/dashboard", cc.Dashboard)
		customer.POST("/feedback", cc.SubmitFeedback)
		customer.PUT("/address", cc.UpdateAddress)
	}

	return r
}
