package routes

import (
	"log"
	"strconv"

	_ "constructhub/docs" // This will be auto-generated
	"constructhub/internal/adapter/http/handlers"
	"constructhub/internal/adapter/persistence/repository"
	"constructhub/internal/infrastructure/database"
	"constructhub/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(port()))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	conversionStore := repository.NewConversionDynamoStore(ddb)

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo)
	conversionUseCase := usecase.NewConversionUseCase(estimateRepo, conversionStore)
	projectUseCase := usecase.NewProjectUseCase(projectRepo)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase, conversionUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimateRoutes(v1, estimateHandler)
	addProjectRoutes(v1, projectHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func port() int {
	if v, err := strconv.Atoi(getenvDefault("PORT", "")); err == nil && v > 0 {
		return v
	}
	return defaultPort
}
