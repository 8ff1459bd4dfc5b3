package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "garden_manager/docs"
	"garden_manager/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Garden Manager API
// @version         1.0
// @description     Order drafts, order lifecycle, catalog and notifications backed by DynamoDB and a local sqlite draft store.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	routes.Run()
}
