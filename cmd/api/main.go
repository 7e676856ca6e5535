package main

import (
	_ "oneflow/docs"
	"oneflow/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           OneFlow Console API
// @version         1.0
// @description     Administrative console backend for service scheduling and billing: customers, services, products and estimates.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	routes.Run()
}
