package routes

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "garden_manager/docs" // This will be auto-generated
	"garden_manager/internal/adapter/http/handlers"
	repository2 "garden_manager/internal/adapter/persistence/repository"
	"garden_manager/internal/infrastructure/database"
	"garden_manager/internal/notify"
	"garden_manager/internal/usecase"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	scheduler := getRoutes()
	defer scheduler.Close()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes() *notify.Scheduler {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)

	sqliteDB, err := database.OpenSQLite()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open draft database")
	}
	draftStore, err := repository2.NewDraftSQLiteStore(sqliteDB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare draft store")
	}

	scheduler := notify.NewScheduler()

	draftUseCase := usecase.NewDraftUseCase(draftStore)
	orderUseCase := usecase.NewOrderLifecycleUseCase(orderRepo, draftUseCase, scheduler)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, scheduler)

	draftHandler := handlers.NewDraftHandler(draftUseCase, catalogUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	notificationHandler := handlers.NewNotificationHandler(scheduler)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGardenRoutes(v1, draftHandler, orderHandler, catalogHandler, notificationHandler)

	return scheduler
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))
}
