package routes

import (
	"log"
	"os"
	"strconv"

	_ "aviniti_tools/docs" // This will be auto-generated
	"aviniti_tools/internal/adapter/http/handlers"
	repository2 "aviniti_tools/internal/adapter/persistence/repository"
	"aviniti_tools/internal/infrastructure/ai"
	"aviniti_tools/internal/infrastructure/database"
	"aviniti_tools/internal/infrastructure/ratelimit"
	"aviniti_tools/internal/usecase"
	"aviniti_tools/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	submissionRepo := repository2.NewSubmissionDynamoRepository(ddb)

	var aiClient interfaces.IAIClient
	gateway, err := ai.NewGeminiGateway(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Gemini gateway not configured: %v", err)
	} else {
		aiClient = gateway
	}

	limiter := ratelimit.NewMemoryRateLimiter()

	estimateUseCase := usecase.NewEstimateUseCase(aiClient, leadRepo, submissionRepo)
	nudgeUseCase := usecase.NewNudgeUseCase()
	transitionUseCase := usecase.NewTransitionUseCase()

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase, limiter)
	catalogHandler := handlers.NewCatalogHandler()
	nudgeHandler := handlers.NewNudgeHandler(nudgeUseCase)
	transitionHandler := handlers.NewTransitionHandler(transitionUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addToolRoutes(v1, estimateHandler, catalogHandler, nudgeHandler, transitionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
