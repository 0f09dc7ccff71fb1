package main

import (
	_ "engenharia_os/docs"
	"engenharia_os/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Engenharia OS API
// @version         1.0
// @description     Engineering lifecycle of service orders: planning, acceptance hand-off and replanning.
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
