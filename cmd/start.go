/*
Copyright © 2025 tranvd
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/tranvd/askbot-be/config"
	"github.com/tranvd/askbot-be/database"
	"github.com/tranvd/askbot-be/handler"
	"github.com/tranvd/askbot-be/middleware"
	"github.com/tranvd/askbot-be/repository"
	"github.com/tranvd/askbot-be/service"
	"github.com/tranvd/askbot-be/types"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ask-bot server",
	Long:  `Starts the server that answers /ask slash commands from the document corpus.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			log.Fatalf("Invalid config: %v", err)
		}
		log.Printf("Configuration loaded, log level: %s", cfg.LogLevel)

		ctx := context.Background()

		// Core dependencies, constructed once and injected
		kb := service.NewKnowledgeBase(cfg.CorpusDir)
		tokens := service.NewTokenCounter(cfg.Model)
		selector := service.NewContextSelector(kb, tokens)

		completionConfig := types.CompletionConfig{
			Model:           cfg.Model,
			MaxOutputTokens: cfg.MaxOutputTokens,
			Temperature:     float32(cfg.Temperature),
		}

		var completion service.CompletionClient
		switch cfg.CompletionProvider {
		case "gemini":
			gemini, err := service.NewGeminiService(ctx, cfg.GeminiAPIKey, completionConfig)
			if err != nil {
				log.Fatalf("Failed to create Gemini service: %v", err)
			}
			defer gemini.Close()
			completion = gemini
		default:
			completion = service.NewOpenAIService(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, completionConfig)
		}

		var store database.AnswerStore
		switch cfg.CacheBackend {
		case "mongo":
			mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
			if err != nil {
				log.Fatalf("Failed to connect to MongoDB: %v", err)
			}
			store, err = repository.NewAnswerRepo(ctx, mongoClient.Database("askbot").Collection("answers"))
			if err != nil {
				log.Fatalf("Failed to initialize answer repository: %v", err)
			}
		default:
			addr := fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort)
			store = database.NewRedisStore(addr, cfg.RedisPassword)
		}
		defer store.Close(ctx)

		askService := service.NewAskService(
			store,
			selector,
			completion,
			cfg.MaxContextTokens,
			time.Duration(cfg.CacheTTLSeconds)*time.Second,
		)
		wsService := service.NewWebSocketService(askService)

		// Handlers
		corsHandler := handler.NewCorsHandler()
		askHandler := handler.NewAskHandler(askService)
		helpHandler := handler.NewHelpHandler()
		healthHandler := handler.NewHealthHandler()

		// Setup Gin router
		router := gin.New()
		router.HandleMethodNotAllowed = true

		// Apply global middleware
		router.Use(gin.Recovery())
		router.Use(middleware.RequestLogger)
		router.Use(corsHandler.CorsMiddleware)

		slack := router.Group("/slack")
		{
			slack.POST("/ask", askHandler.HandleAsk)
			slack.POST("/help", helpHandler.HandleHelp)
			slack.POST("/health", healthHandler.HandleHealth)
		}
		router.GET("/ws", func(c *gin.Context) {
			wsService.HandleAsk(c.Writer, c.Request)
		})

		log.Printf("Starting server on port %s...", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
