package routes

import (
	"pcg_compliance/internal/adapter/http/handlers"
	"pcg_compliance/internal/adapter/http/middleware"
	"pcg_compliance/internal/infrastructure/auth"
	"pcg_compliance/internal/infrastructure/wiring"

	"github.com/gin-gonic/gin"
)

const (
	PathCompliance = "/compliance"
	PathPeriods    = "/periods/:period_id"
	PathCompanies  = "/companies/:company_id"
)

// addComplianceRoutes registers the authenticated surface. Tenancy is checked
// by each handler against the caller's company.
func addComplianceRoutes(rg *gin.RouterGroup, c *wiring.Container) {
	periodHandler := handlers.NewPeriodHandler(c.PeriodUseCase, c.StatusUseCase)
	submissionHandler := handlers.NewSubmissionHandler(c.SubmissionUseCase, c.PeriodUseCase, c.Config.MaxUploadBytes)
	calendarHandler := handlers.NewCalendarHandler(c.CalendarUseCase)
	requirementHandler := handlers.NewRequirementHandler(c.RequirementUseCase)

	limiter := middleware.NewRateLimiter(c.Config.RateLimitRPS, c.Config.RateLimitBurst)
	admin := middleware.RequireRole(auth.RoleAdmin)
	staff := middleware.RequireRole(auth.RoleAdmin, auth.RoleRevisor)
	uploader := middleware.RequireRole(auth.RoleAdmin, auth.RoleSubcontratista)

	compliance := rg.Group(PathCompliance, middleware.RequireAuth(c.Validator), limiter.Middleware())
	{
		compliance.POST("/submissions", uploader, submissionHandler.Submit)
		compliance.POST("/submissions/review", staff, submissionHandler.Review)
	}

	periods := compliance.Group(PathPeriods)
	{
		periods.GET("", periodHandler.GetPeriod)
		periods.GET("/statuses", periodHandler.ListStatuses)
		periods.GET("/submissions", submissionHandler.ListByPeriod)
		periods.POST("/statuses/:subcontractor_id/evaluate", staff, periodHandler.EvaluateStatus)
	}

	companies := compliance.Group(PathCompanies)
	{
		companies.POST("/process", admin, periodHandler.ProcessCompany)
		companies.PUT("/calendar/:period_key", admin, calendarHandler.UpsertMonth)
		companies.GET("/calendar/:year", calendarHandler.GetYear)
		companies.POST("/requirements", admin, requirementHandler.Create)
		companies.GET("/requirements", requirementHandler.List)
		companies.PATCH("/requirements/:requirement_id", admin, requirementHandler.SetActive)
	}
}
