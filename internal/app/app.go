package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "hustlepro/docs"
	"hustlepro/internal/config"
	"hustlepro/internal/db"
	"hustlepro/internal/handlers"
	"hustlepro/internal/pdf"
	"hustlepro/internal/repositories"
	"hustlepro/internal/routes"
	"hustlepro/internal/services"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB (runs embedded migrations) ===
	database, err := db.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(database)
	clientRepo := repositories.NewClientRepository(database)
	taskRepo := repositories.NewTaskRepository(database)
	invoiceRepo := repositories.NewInvoiceRepository(database)
	paymentRepo := repositories.NewPaymentRepository(database)
	documentRepo := repositories.NewDocumentRepository(database)
	notificationRepo := repositories.NewNotificationRepository(database)

	// === Services ===
	authService := services.NewAuthService(cfg.Auth.JWTSecret)
	var emailService services.EmailService
	if cfg.Email.SMTPHost != "" {
		emailService = services.NewEmailService(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	userService := services.NewUserService(userRepo, emailService, authService)
	clientService := services.NewClientService(clientRepo, documentRepo)
	taskService := services.NewTaskService(taskRepo, clientRepo, documentRepo, notificationRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo, clientRepo, userRepo, notificationRepo,
		cfg.Business.Name, cfg.Business.UPIID)
	paymentService := services.NewPaymentService(paymentRepo, invoiceRepo, notificationRepo)
	documentService := services.NewDocumentService(documentRepo, clientRepo, taskRepo)
	notificationService := services.NewNotificationService(notificationRepo)
	reminderService := services.NewReminderService(invoiceRepo, clientRepo, notificationRepo, emailService)
	reportService := services.NewReportService(clientRepo, taskRepo, invoiceRepo, paymentRepo)
	exportService := services.NewExportService(reportService)

	pdfGen := pdf.NewDocumentGenerator()

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	clientHandler := handlers.NewClientHandler(clientService)
	taskHandler := handlers.NewTaskHandler(taskService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, reminderService, userService, pdfGen)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	notificationHandler := handlers.NewNotificationHandler(notificationService, reportService)
	reportsHandler := handlers.NewReportsHandler(reportService, pdfGen)
	exportHandler := handlers.NewExportHandler(exportService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	routes.SetupRoutes(
		router,
		[]byte(cfg.Auth.JWTSecret),
		authHandler,
		userHandler,
		clientHandler,
		taskHandler,
		invoiceHandler,
		paymentHandler,
		documentHandler,
		notificationHandler,
		reportsHandler,
		exportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server failed: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
