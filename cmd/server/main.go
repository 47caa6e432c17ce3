package main

import (
	"log"

	config "shopmate-api/configs"
	"shopmate-api/pkg/handlers"
	"shopmate-api/pkg/openai"
	"shopmate-api/pkg/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or could not be loaded: %v", err)
	}

	cfg := config.LoadConfig()

	r := gin.Default()

	// Services. A missing OpenAI key keeps llm nil and every consumer
	// on its deterministic fallback path.
	var llm services.Completer
	if cfg.OpenAIAPIKey != "" {
		llm = openai.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey, cfg.OpenAIModel)
	} else {
		log.Println("OPENAI_API_KEY not set, running with deterministic fallbacks only")
	}

	monitoringService := services.NewMonitoringService()
	providerService := services.NewProviderService(cfg.OpenWeatherMapAPIKey, cfg.NewsAPIKey)
	catalogService := services.NewCatalogService(services.LoadSeedCatalog(cfg.CatalogFile), services.DefaultProductAPIURL)
	extractorService := services.NewExtractorService(llm)
	filterService := services.NewFilterService()
	responderService := services.NewResponderService(llm, providerService)
	streamService := services.NewStreamService()

	// Handlers
	chatHandler := handlers.NewChatHandler(extractorService, catalogService, filterService, responderService, streamService)
	productHandler := handlers.NewProductHandler(catalogService, filterService)
	providerHandler := handlers.NewProviderHandler(providerService)
	streamHandler := handlers.NewStreamHandler(streamService)
	monitoringHandler := handlers.NewMonitoringHandler(monitoringService)

	// Middleware
	r.Use(monitoringService.LoggingMiddleware())

	corsConfig := cors.DefaultConfig()
	if cfg.AllowedOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.AllowedOrigin}
	}
	r.Use(cors.New(corsConfig))

	// Routes
	r.GET("/health", handlers.HealthCheck(cfg))

	r.POST("/chat", chatHandler.Chat)

	r.GET("/products", productHandler.GetProducts)
	r.GET("/products/:id/similar", productHandler.GetSimilar)

	r.GET("/weather/:city", providerHandler.GetWeather)
	r.GET("/news/:category", providerHandler.GetNews)
	r.GET("/joke", providerHandler.GetJoke)
	r.GET("/fact", providerHandler.GetFact)

	r.GET("/events", streamHandler.Events)
	r.POST("/typing", streamHandler.Typing)

	r.GET("/monitoring/logs", monitoringHandler.GetLogs)

	log.Printf("Starting ShopMate API server on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
