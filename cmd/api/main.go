package main

import (
	_ "boq_service/docs"
	"boq_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           BOQ Service API
// @version         1.0
// @description     Bill of Quantities service: gated access requests backed by DynamoDB, a per-user line-item ledger, and Excel export.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
