package api

import (
	"barangay-backend/internal/auth"
	"barangay-backend/internal/config"
	"barangay-backend/internal/database"
	"barangay-backend/internal/docrequest"
	"barangay-backend/internal/email"
	"barangay-backend/internal/middleware"
	"barangay-backend/internal/notify"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, db *database.Database, cfg *config.Config) {
	notifications := notify.NewService(notify.NewPostgresSources(db))
	documents := docrequest.NewService(
		docrequest.NewPostgresRepository(db),
		email.NewEmailSender(cfg),
		cfg.App.BaseURL,
		cfg.App.BarangayName,
	)

	server := NewServer(db, cfg, notifications, documents)
	jwtManager := auth.NewJWTManager(cfg)

	// CORS middleware
	router.Use(middleware.CORSSpecific(cfg.GetCORSOrigins()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "barangay-backend",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (no authentication required)
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", server.Register)
			authGroup.POST("/login", server.Login)
		}

		// Protected routes (authentication required)
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware(jwtManager))
		{
			protected.GET("/profile", server.GetProfile)

			// Notification bell feed
			protected.GET("/notifications", server.GetNotifications)

			// Resident registry
			residents := protected.Group("/residents")
			{
				residents.GET("", middleware.StaffOrAdmin(), server.GetResidents)
				residents.POST("", middleware.StaffOrAdmin(), server.CreateResident)
				residents.PUT("/:id", middleware.StaffOrAdmin(), server.UpdateResident)
				residents.DELETE("/:id", middleware.AdminOnly(), server.DeleteResident)
			}
			protected.POST("/youth-profiles", middleware.StaffOrAdmin(), server.CreateYouthProfile)

			// Officials
			officials := protected.Group("/officials")
			{
				officials.GET("", server.GetOfficials)
				officials.POST("", middleware.StaffOrAdmin(), server.CreateOfficial)
				officials.PUT("/:id", middleware.StaffOrAdmin(), server.UpdateOfficial)
				officials.DELETE("/:id", middleware.AdminOnly(), server.DeleteOfficial)
			}

			// Zones, households, hotlines
			protected.GET("/zones", server.GetZones)
			protected.POST("/zones", middleware.StaffOrAdmin(), server.CreateZone)
			protected.DELETE("/zones/:id", middleware.AdminOnly(), server.DeleteZone)

			protected.GET("/households", middleware.StaffOrAdmin(), server.GetHouseholds)
			protected.POST("/households", middleware.StaffOrAdmin(), server.CreateHousehold)
			protected.DELETE("/households/:id", middleware.AdminOnly(), server.DeleteHousehold)

			protected.GET("/hotlines", server.GetHotlines)
			protected.POST("/hotlines", middleware.StaffOrAdmin(), server.CreateHotline)
			protected.DELETE("/hotlines/:id", middleware.AdminOnly(), server.DeleteHotline)

			// Activities
			activities := protected.Group("/activities")
			{
				activities.GET("", server.GetActivities)
				activities.POST("", middleware.StaffOrAdmin(), server.CreateActivity)
				activities.PUT("/:id", middleware.StaffOrAdmin(), server.UpdateActivity)
				activities.DELETE("/:id", middleware.AdminOnly(), server.DeleteActivity)
			}

			// SK youth module
			protected.GET("/announcements", server.GetAnnouncements)
			protected.POST("/announcements", middleware.StaffOrAdmin(), server.CreateAnnouncement)
			protected.DELETE("/announcements/:id", middleware.AdminOnly(), server.DeleteAnnouncement)

			protected.GET("/projects", server.GetProjects)
			protected.POST("/projects", middleware.StaffOrAdmin(), server.CreateProject)
			protected.DELETE("/projects/:id", middleware.AdminOnly(), server.DeleteProject)

			protected.GET("/participations", server.GetMyParticipations)
			protected.POST("/participations", server.CreateParticipation)

			protected.GET("/scholarships", server.GetScholarships)
			protected.POST("/scholarships", middleware.StaffOrAdmin(), server.CreateScholarship)
			protected.GET("/scholarship-applications", server.GetMyScholarshipApplications)
			protected.POST("/scholarship-applications", server.CreateScholarshipApplication)
			protected.PUT("/scholarship-applications/:id/status", middleware.StaffOrAdmin(), server.UpdateScholarshipApplicationStatus)

			// Blotters
			blotters := protected.Group("/blotters")
			{
				blotters.GET("", middleware.StaffOrAdmin(), server.GetBlotters)
				blotters.POST("", server.CreateBlotter)
				blotters.PUT("/:id", middleware.StaffOrAdmin(), server.UpdateBlotter)
				blotters.DELETE("/:id", middleware.AdminOnly(), server.DeleteBlotter)
			}

			// Feedback
			protected.GET("/feedback", middleware.StaffOrAdmin(), server.GetFeedback)
			protected.POST("/feedback", server.CreateFeedback)

			// Document types and requests
			protected.GET("/document-types", server.GetDocumentTypes)
			protected.POST("/document-types", middleware.StaffOrAdmin(), server.CreateDocumentType)

			requests := protected.Group("/document-requests")
			{
				requests.GET("", server.GetDocumentRequests)
				requests.POST("", server.CreateDocumentRequest)
				requests.PUT("/:id/accept", middleware.StaffOrAdmin(), server.AcceptDocumentRequest)
				requests.PUT("/:id/ready", middleware.StaffOrAdmin(), server.ReadyDocumentRequest)
				requests.PUT("/:id/decline", middleware.StaffOrAdmin(), server.DeclineDocumentRequest)
				requests.POST("/release", middleware.StaffOrAdmin(), server.ReleaseDocumentRequest)
				requests.GET("/:id/print", server.GetPrintableDocument)
				requests.GET("/:id/qr", server.GetDocumentRequestQR)
			}

			// Revenue
			protected.GET("/revenue/summary", middleware.StaffOrAdmin(), server.GetRevenueSummary)
		}
	}
}
