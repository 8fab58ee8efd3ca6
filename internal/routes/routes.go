package routes

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Math-l7/scheduling-modular-api/internal/audit"
	"github.com/Math-l7/scheduling-modular-api/internal/clock"
	"github.com/Math-l7/scheduling-modular-api/internal/config"
	domain "github.com/Math-l7/scheduling-modular-api/internal/domain/appointment"
	"github.com/Math-l7/scheduling-modular-api/internal/handlers"
	infraRepo "github.com/Math-l7/scheduling-modular-api/internal/infra/repository"
	"github.com/Math-l7/scheduling-modular-api/internal/middleware"
	ucAppointment "github.com/Math-l7/scheduling-modular-api/internal/usecase/appointment"
)

// Infra holds the process-wide collaborators built in main.
type Infra struct {
	DB      *gorm.DB
	Locker  domain.StaffLocker
	Audit   audit.Recorder
	Limiter middleware.Limiter
	Clock   clock.System
	Logger  *slog.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(infra.Logger))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimit(infra.Limiter, infra.Logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA
	// ======================================================
	db := infra.DB
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		infra.Locker,
		domain.BarberShopPolicy{},
		infra.Clock,
		infra.Audit,
		infra.Logger,
	)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, infra.Clock, infra.Audit, infra.Logger)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, infra.Clock, infra.Audit, infra.Logger)
	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, infra.Clock)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	staffHandler := handlers.NewStaffHandler(db, listAppointmentsUC, infra.Clock)
	serviceHandler := handlers.NewServiceHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
		availabilityUC,
		infra.Clock.Location(),
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/businesses/:id/working-hours", workingHoursHandler.Get)
		api.GET("/businesses/:id/staff", businessHandler.ListStaff)
		api.GET("/businesses/:id/availability", appointmentHandler.Availability)
		api.GET("/services/by-business/:name", serviceHandler.ListByBusinessName)

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me/password", meHandler.ChangePassword)

			// businesses
			secured.POST("/businesses", middleware.RequireRole(domain.RoleStaff), businessHandler.Create)
			secured.GET("/businesses/:id", businessHandler.GetByID)
			secured.GET("/businesses/by-name/:name", businessHandler.GetByName)
			secured.PATCH("/businesses/:id/activate", businessHandler.Activate)
			secured.PATCH("/businesses/:id/deactivate", businessHandler.Deactivate)
			secured.PUT("/businesses/:id/working-hours", workingHoursHandler.Update)
			secured.GET("/businesses/:id/appointments", appointmentHandler.ListByBusiness)

			// staff
			secured.POST("/staff", staffHandler.Create)
			secured.GET("/staff/:id", staffHandler.GetByID)
			secured.PATCH("/staff/:id/activate", staffHandler.Activate)
			secured.PATCH("/staff/:id/deactivate", staffHandler.Deactivate)
			secured.GET("/staff/:id/schedule", staffHandler.Schedule)

			// service catalog
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.GetByID)
			secured.PATCH("/services/:id", serviceHandler.Update)
			secured.PATCH("/services/:id/activate", serviceHandler.Activate)
			secured.PATCH("/services/:id/deactivate", serviceHandler.Deactivate)

			// appointments
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/me/client", appointmentHandler.ListMineAsClient)
			secured.GET("/appointments/me/staff", middleware.RequireRole(domain.RoleStaff), appointmentHandler.ListMineAsStaff)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
