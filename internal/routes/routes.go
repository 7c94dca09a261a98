package routes

import (
	"github.com/gin-gonic/gin"

	"hustlepro/internal/handlers"
	"hustlepro/internal/middleware"
)

func SetupRoutes(
	r *gin.Engine,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	clientHandler *handlers.ClientHandler,
	taskHandler *handlers.TaskHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
	documentHandler *handlers.DocumentHandler,
	notificationHandler *handlers.NotificationHandler,
	reportsHandler *handlers.ReportsHandler,
	exportHandler *handlers.ExportHandler,
) *gin.Engine {

	// ---- public
	r.POST("/login", authHandler.Login)
	r.POST("/register", authHandler.Register)
	r.POST("/refresh", authHandler.RefreshToken)

	// ---- protected
	r.Use(middleware.AuthMiddleware(jwtSecret))

	// PROFILE
	profile := r.Group("/profile")
	{
		profile.GET("", userHandler.GetProfile)
		profile.PUT("", userHandler.UpdateProfile)
	}

	// CLIENTS
	clients := r.Group("/clients")
	{
		clients.POST("", clientHandler.Create)
		clients.GET("", clientHandler.List)
		clients.GET("/:id", clientHandler.GetByID)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	// TASKS
	tasks := r.Group("/tasks")
	{
		tasks.POST("", taskHandler.Create)
		tasks.GET("", taskHandler.List)
		tasks.GET("/:id", taskHandler.GetByID)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.DELETE("/:id", taskHandler.Delete)
	}

	// INVOICES
	invoices := r.Group("/invoices")
	{
		invoices.POST("", invoiceHandler.Create)
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
		invoices.POST("/:id/send", invoiceHandler.MarkSent)
		invoices.POST("/:id/payment-link", invoiceHandler.GeneratePaymentLink)
		invoices.POST("/:id/reminder", invoiceHandler.SendReminder)
		invoices.GET("/:id/pdf", invoiceHandler.DownloadPDF)
	}

	// PAYMENTS
	payments := r.Group("/payments")
	{
		payments.POST("", paymentHandler.Record)
		payments.GET("", paymentHandler.List)
		payments.GET("/:id", paymentHandler.GetByID)
		payments.PUT("/:id", paymentHandler.Update)
		payments.DELETE("/:id", paymentHandler.Delete)
	}

	// DOCUMENTS
	docs := r.Group("/documents")
	{
		docs.POST("", documentHandler.Create)
		docs.GET("", documentHandler.ListByOwner)
		docs.GET("/:id", documentHandler.GetByID)
		docs.PUT("/:id", documentHandler.Update)
		docs.DELETE("/:id", documentHandler.Delete)
	}

	// NOTIFICATIONS
	notifications := r.Group("/notifications")
	{
		notifications.GET("", notificationHandler.List)
		notifications.DELETE("", notificationHandler.Clear)
		notifications.POST("/:id/read", notificationHandler.MarkRead)
		notifications.GET("/advisories", notificationHandler.Advisories)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/summary", reportsHandler.Summary)
		reports.GET("/monthly-earnings", reportsHandler.MonthlyEarnings)
		reports.GET("/revenue", reportsHandler.Revenue)
		reports.GET("/task-status", reportsHandler.TaskStatus)
		reports.GET("/invoice-aging", reportsHandler.InvoiceAging)
		reports.GET("/client-summary", reportsHandler.ClientSummary)
		reports.GET("/:type/pdf", reportsHandler.DownloadPDF)
	}

	// EXPORTS
	exports := r.Group("/exports")
	{
		exports.GET("/:type/csv", exportHandler.DownloadCSV)
	}

	return r
}
