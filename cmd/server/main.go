package main

import (
	"log"
	"net/http"

	"cardparty/backend/internal/auth"
	"cardparty/backend/internal/config"
	"cardparty/backend/internal/database"
	"cardparty/backend/internal/game"
	"cardparty/backend/internal/handler"
	"cardparty/backend/internal/hub"
	"cardparty/backend/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "cardparty/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Cardparty API
// @version         1.0
// @description     This is the API for the Cardparty game service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	eventHub := hub.NewHub()
	gameService := game.NewService(database.DB, eventHub)

	gameHandler := handler.NewGameHandler(gameService)
	expansionHandler := handler.NewExpansionHandler(gameService)
	eventsHandler := handler.NewEventsHandler(eventHub)

	router := gin.Default()
	router.Use(cors.Default())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/expansions", expansionHandler.ListExpansions)

		// Session-creating routes (no token yet)
		apiV1.POST("/game", gameHandler.CreateGame)
		apiV1.POST("/game/join/:code", gameHandler.JoinGame)

		// Game routes (protected)
		gameRoutes := apiV1.Group("/game")
		gameRoutes.Use(auth.AuthMiddleware())
		{
			gameRoutes.POST("/:id/submit", gameHandler.SubmitCards)
			gameRoutes.POST("/:id/rotate", gameHandler.Rotate)
			gameRoutes.GET("/:id/whiteCards/draw", gameHandler.DrawWhiteCards)
			gameRoutes.POST("/:id/blackCard/draw", gameHandler.DrawBlackCard)
			gameRoutes.POST("/:id/blackCard/discard", gameHandler.DiscardBlackCard)
			gameRoutes.GET("/:id/state", gameHandler.GameState)
			gameRoutes.GET("/:id/events", eventsHandler.Events)
		}
	}

	logger.Log.Infow("server starting", "port", config.AppConfig.Port)
	log.Fatal(router.Run(":" + config.AppConfig.Port))
}
