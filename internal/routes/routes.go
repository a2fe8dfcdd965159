package routes

import (
	"github.com/gin-gonic/gin"

	"medtrack-server/internal/handlers"
	"medtrack-server/internal/store"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, s *store.Store) {
	// Initialize handlers
	doctorHandler := handlers.NewDoctorHandler(s)
	appointmentHandler := handlers.NewAppointmentHandler(s)
	medicationHandler := handlers.NewMedicationHandler(s)
	statusHandler := handlers.NewStatusHandler(s)
	documentHandler := handlers.NewDocumentHandler(s)
	timelineHandler := handlers.NewTimelineHandler(s)

	api := router.Group("/api/v1")
	{
		doctorRoutes := api.Group("/doctors")
		{
			doctorRoutes.GET("", doctorHandler.ListDoctors)
			doctorRoutes.POST("", doctorHandler.CreateDoctor)
			doctorRoutes.GET("/:id", doctorHandler.GetDoctorByID)
			doctorRoutes.PUT("/:id", doctorHandler.UpdateDoctor)
			doctorRoutes.DELETE("/:id", doctorHandler.DeleteDoctor)
		}

		appointmentRoutes := api.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.ListAppointments)
			appointmentRoutes.POST("", appointmentHandler.CreateAppointment)
			appointmentRoutes.GET("/:id", appointmentHandler.GetAppointmentByID)
			appointmentRoutes.PUT("/:id", appointmentHandler.UpdateAppointment)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		medicationRoutes := api.Group("/medications")
		{
			medicationRoutes.GET("", medicationHandler.ListMedications)
			medicationRoutes.POST("", medicationHandler.CreateMedication)
			medicationRoutes.GET("/:id", medicationHandler.GetMedicationByID)
			medicationRoutes.PUT("/:id", medicationHandler.UpdateMedication)
			medicationRoutes.DELETE("/:id", medicationHandler.DeleteMedication)
		}

		statusRoutes := api.Group("/status")
		{
			statusRoutes.GET("", statusHandler.ListStatusEntries)
			statusRoutes.POST("", statusHandler.CreateStatusEntry)
			statusRoutes.GET("/:id", statusHandler.GetStatusEntryByID)
			statusRoutes.PUT("/:id", statusHandler.UpdateStatusEntry)
			statusRoutes.DELETE("/:id", statusHandler.DeleteStatusEntry)
		}

		documentRoutes := api.Group("/documents")
		{
			documentRoutes.GET("", documentHandler.ListDocuments)
			documentRoutes.POST("", documentHandler.CreateDocument)
			documentRoutes.GET("/:id", documentHandler.GetDocumentByID)
			documentRoutes.PUT("/:id", documentHandler.UpdateDocument)
			documentRoutes.DELETE("/:id", documentHandler.DeleteDocument)
		}

		// The merged feed over everything above
		api.GET("/timeline", timelineHandler.GetTimeline)
	}

	// Simple health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
