package routes

import (
	"log"

	"backend/config"
	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	studyCfg := config.LoadStudyConfig()

	rek, err := services.NewRekognitionService()
	if err != nil {
		log.Printf("Rekognition unavailable, proof photos will not be moderated: %v", err)
		rek = nil
	}

	checkSvc := services.NewKitchenCheckService(config.DB, studyCfg)
	challengeSvc := services.NewChallengeService(config.DB, rek)
	observationSvc := services.NewObservationService(config.DB)
	dashboardSvc := services.NewDashboardService(config.DB, studyCfg, challengeSvc, observationSvc)
	projectSvc := services.NewProjectDashboardService(config.DB)

	hub := services.NewRealtimeHub()
	services.InitEventDeps(config.DB, hub)

	pushSvc, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("SNS unavailable, push reminders disabled: %v", err)
	}

	checkCtl := controllers.NewKitchenCheckController(checkSvc)
	challengeCtl := controllers.NewChallengeController(challengeSvc)
	observationCtl := controllers.NewObservationController(observationSvc)
	dashboardCtl := controllers.NewDashboardController(dashboardSvc)
	projectCtl := controllers.NewProjectDashboardController(projectSvc)
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Static form vocabulary
	meta := r.Group("/meta")
	{
		meta.GET("/catalog", controllers.MetaCatalog)
		meta.GET("/countries", controllers.MetaCountries)
		meta.GET("/municipalities", controllers.MetaMunicipalities)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	check := r.Group("/kitchen-check")
	check.Use(middlewares.AuthMiddleware())
	{
		check.POST("/sessions", checkCtl.EnsureSession)
		check.GET("/milestones/:milestone", checkCtl.MilestoneState)
		check.GET("/sessions/:id/items", checkCtl.ListItems)
		check.POST("/sessions/:id/items", checkCtl.AddItem)
		check.GET("/sessions/:id/progress", checkCtl.Progress)
		check.POST("/sessions/:id/complete", checkCtl.CompleteSession)
		check.PUT("/items/:id", checkCtl.UpdateItem)
		check.DELETE("/items/:id", checkCtl.DeleteItem)
	}

	challenges := r.Group("/challenges")
	challenges.Use(middlewares.AuthMiddleware())
	{
		challenges.GET("", challengeCtl.List)
		challenges.GET("/summary", challengeCtl.Summary)
		challenges.POST("/:id/complete", challengeCtl.Complete)
	}

	observations := r.Group("/observations")
	observations.Use(middlewares.AuthMiddleware())
	{
		observations.GET("/questions", observationCtl.Questions)
		observations.GET("", observationCtl.List)
		observations.POST("", observationCtl.Submit)
	}

	dashboard := r.Group("/dashboard")
	dashboard.Use(middlewares.AuthMiddleware())
	{
		dashboard.GET("/overview", dashboardCtl.Overview)
	}

	if pushSvc != nil {
		deviceCtl := controllers.NewDeviceController(pushSvc)
		devices := r.Group("/devices")
		devices.Use(middlewares.AuthMiddleware())
		{
			devices.POST("", deviceCtl.Register)
		}
	}

	admin := r.Group("/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminMiddleware())
	{
		admin.GET("/project-dashboard", projectCtl.Summary)
		admin.GET("/events/ws", realtimeCtl.EventsWS)
		if pushSvc != nil {
			notificationCtl := controllers.NewNotificationController(pushSvc)
			admin.POST("/reminders", notificationCtl.SendReminder)
		}
	}

	return r
}
