package main

import "hustlepro/internal/app"

// @title           HustlePro API
// @version         1.0
// @description     Backend for the HustlePro small-business dashboard: clients, tasks, invoices, payments, and analytics.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @BasePath /
func main() {
	app.Run()
}
