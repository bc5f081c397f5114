package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/norteboa/barberpos/internal/cache"
	"github.com/norteboa/barberpos/internal/config"
	"github.com/norteboa/barberpos/internal/handlers"
	infraRepo "github.com/norteboa/barberpos/internal/infra/repository"
	"github.com/norteboa/barberpos/internal/middleware"
	ucCashbook "github.com/norteboa/barberpos/internal/usecase/cashbook"
	ucCheckout "github.com/norteboa/barberpos/internal/usecase/checkout"
	ucReport "github.com/norteboa/barberpos/internal/usecase/report"
	ucSchedule "github.com/norteboa/barberpos/internal/usecase/schedule"
)

const availabilityTTL = 60 * time.Second

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	checkoutRepo := infraRepo.NewCheckoutGormRepository(db)
	cashbookRepo := infraRepo.NewCashbookGormRepository(db)
	reportRepo := infraRepo.NewReportGormRepository(db)

	availabilityCache := cache.NewAvailabilityCache(cfg, availabilityTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	bookUC := ucSchedule.NewBookAppointment(appointmentRepo, availabilityCache, cfg.SlotGrid)
	availabilityUC := ucSchedule.NewGetAvailability(appointmentRepo, availabilityCache, cfg.SlotGrid)
	transitionUC := ucSchedule.NewTransitionAppointment(appointmentRepo, availabilityCache, cfg.Timezone)
	listUC := ucSchedule.NewListAppointments(appointmentRepo)

	closeSaleUC := ucCheckout.NewCloseSale(checkoutRepo, cfg.Timezone)
	cashbookUC := ucCashbook.New(cashbookRepo, cfg.Timezone)
	summaryUC := ucReport.NewBuildSummary(reportRepo, cfg.Timezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	barberHandler := handlers.NewBarberHandler(db)
	productHandler := handlers.NewProductHandler(db)
	saleHandler := handlers.NewSaleHandler(db, closeSaleUC)
	cashHandler := handlers.NewCashHandler(cashbookUC)
	reportHandler := handlers.NewReportHandler(summaryUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		availabilityUC,
		transitionUC,
		listUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.PUT("/clients/:id", clientHandler.Update)
			secured.DELETE("/clients/:id", clientHandler.Delete)

			secured.GET("/barbers", barberHandler.List)
			secured.POST("/barbers", barberHandler.Create)
			secured.PUT("/barbers/:id", barberHandler.Update)
			secured.DELETE("/barbers/:id", barberHandler.Delete)

			secured.GET("/products", productHandler.List)
			secured.POST("/products", productHandler.Create)
			secured.PATCH("/products/:id", productHandler.Update)
			secured.DELETE("/products/:id", productHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/availability", appointmentHandler.Availability)
			secured.POST("/appointments", appointmentHandler.Book)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// POS
			// ------------------------------
			secured.POST("/sales", saleHandler.Create)
			secured.GET("/sales", saleHandler.List)

			secured.POST("/cash", cashHandler.Create)
			secured.GET("/cash", cashHandler.List)

			secured.GET("/reports/summary", reportHandler.Summary)
		}
	}
}
