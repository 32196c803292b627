package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dentaldesk-io/dentaldesk-ce/internal/cache"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/middleware"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/models"
	"github.com/dentaldesk-io/dentaldesk-ce/internal/service"
)

// SetupRoutes mounts every portal endpoint. Module visibility and mutation
// capabilities are enforced here; handlers assume an authorized session.
func SetupRoutes(r *gin.Engine, svcs *service.Services, authMW *middleware.AuthMiddleware, redisCache *cache.RedisCache) {
	r.Use(middleware.RequestID())
	r.Use(middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authHandler := NewAuthHandler(svcs.Auth)
	employeeHandler := NewEmployeeHandler(svcs.Employees)
	scheduleHandler := NewScheduleHandler(svcs.Schedules)
	ptoHandler := NewPTOHandler(svcs.PTO)
	ticketHandler := NewTicketHandler(svcs.Tickets)
	labCaseHandler := NewLabCaseHandler(svcs.LabCases)
	directoryHandler := NewDirectoryHandler(svcs.Directory)
	documentHandler := NewDocumentHandler(svcs.Documents)
	insuranceHandler := NewInsuranceHandler(svcs.Insurances)
	dashboardHandler := NewDashboardHandler(svcs.Dashboard, svcs.Reports, redisCache)

	api := r.Group("/api/v1")
	api.POST("/login", authHandler.Login)

	authed := api.Group("")
	authed.Use(authMW.RequireAuth())
	authed.GET("/me", authHandler.Me)

	dashboard := authed.Group("", authMW.RequireModule(models.ModuleDashboard))
	dashboard.GET("/dashboard", dashboardHandler.Data)

	hr := authed.Group("", authMW.RequireModule(models.ModuleHR))
	hr.GET("/employees", employeeHandler.List)
	hr.GET("/employees/:id", employeeHandler.Get)
	hr.POST("/employees", authMW.RequirePermission(models.PermManageUsers), employeeHandler.Create)
	hr.PUT("/employees/:id", authMW.RequirePermission(models.PermManageUsers), employeeHandler.Update)
	hr.DELETE("/employees/:id", authMW.RequirePermission(models.PermManageUsers), employeeHandler.Delete)
	hr.GET("/pto", ptoHandler.List)
	hr.GET("/pto/balance", ptoHandler.Balance)
	hr.POST("/pto", ptoHandler.Create)
	hr.POST("/pto/:id/approve", authMW.RequirePermission(models.PermManageUsers), ptoHandler.Approve)
	hr.POST("/pto/:id/reject", authMW.RequirePermission(models.PermManageUsers), ptoHandler.Reject)
	hr.GET("/reports/roster", authMW.RequirePermission(models.PermViewReports), dashboardHandler.RosterReport)
	hr.GET("/reports/pto", authMW.RequirePermission(models.PermViewReports), dashboardHandler.PTOReport)

	schedules := authed.Group("", authMW.RequireModule(models.ModuleSchedules))
	schedules.GET("/schedules/front-desk", scheduleHandler.ListFrontDesk)
	schedules.GET("/schedules/doctors", scheduleHandler.ListDoctors)
	schedules.PUT("/schedules/front-desk", authMW.RequirePermission(models.PermModifySchedules), scheduleHandler.SetFrontDesk)
	schedules.POST("/schedules/front-desk/swap", authMW.RequirePermission(models.PermModifySchedules), scheduleHandler.SwapFrontDesk)
	schedules.PUT("/schedules/doctors", authMW.RequirePermission(models.PermModifySchedules), scheduleHandler.SetDoctor)
	schedules.POST("/schedules/doctors/swap", authMW.RequirePermission(models.PermModifySchedules), scheduleHandler.SwapDoctors)

	tickets := authed.Group("", authMW.RequireModule(models.ModuleTickets))
	tickets.GET("/tickets", ticketHandler.List)
	tickets.GET("/tickets/:id", ticketHandler.Get)
	tickets.POST("/tickets", authMW.RequirePermission(models.PermModifyTickets), ticketHandler.Create)
	tickets.PUT("/tickets/:id", authMW.RequirePermission(models.PermModifyTickets), ticketHandler.Update)
	tickets.DELETE("/tickets/:id", authMW.RequirePermission(models.PermModifyTickets), ticketHandler.Delete)
	tickets.POST("/tickets/:id/updates", authMW.RequirePermission(models.PermModifyTickets), ticketHandler.AddUpdate)

	laboratory := authed.Group("", authMW.RequireModule(models.ModuleLaboratory))
	laboratory.GET("/lab-cases", labCaseHandler.List)
	laboratory.GET("/lab-cases/:id", labCaseHandler.Get)
	laboratory.POST("/lab-cases", authMW.RequirePermission(models.PermAccessLaboratory), labCaseHandler.Create)
	laboratory.PUT("/lab-cases/:id", authMW.RequirePermission(models.PermAccessLaboratory), labCaseHandler.Update)

	contacts := authed.Group("", authMW.RequireModule(models.ModuleContacts))
	contacts.GET("/directory", directoryHandler.Aggregate)
	contacts.POST("/directory/entries", authMW.RequirePermission(models.PermModifyContacts), directoryHandler.CreateEntry)
	contacts.PUT("/directory/entries/:id", authMW.RequirePermission(models.PermModifyContacts), directoryHandler.UpdateEntry)
	contacts.POST("/directory/reorder", authMW.RequirePermission(models.PermModifyContacts), directoryHandler.Reorder)

	documents := authed.Group("", authMW.RequireModule(models.ModuleDocuments))
	documents.GET("/document-entities", documentHandler.ListEntities)
	documents.GET("/document-entities/:id", documentHandler.GetEntity)
	documents.POST("/documents", authMW.RequirePermission(models.PermModifyDocuments), documentHandler.AddDocument)
	documents.PUT("/documents/:id", authMW.RequirePermission(models.PermModifyDocuments), documentHandler.UpdateDocument)
	documents.DELETE("/documents/:id", authMW.RequirePermission(models.PermModifyDocuments), documentHandler.DeleteDocument)

	insurances := authed.Group("", authMW.RequireModule(models.ModuleInsurances))
	insurances.GET("/insurances", insuranceHandler.List)
	insurances.POST("/insurances", authMW.RequirePermission(models.PermModifyContacts), insuranceHandler.Create)
	insurances.PUT("/insurances/:id", authMW.RequirePermission(models.PermModifyContacts), insuranceHandler.Update)
	insurances.DELETE("/insurances/:id", authMW.RequirePermission(models.PermModifyContacts), insuranceHandler.Delete)
}
