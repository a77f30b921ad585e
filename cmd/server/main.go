package main

import (
	"github.com/gin-gonic/gin"

	"github.com/uchannel/uchannel-backend/internal/config"
	"github.com/uchannel/uchannel-backend/internal/database"
	"github.com/uchannel/uchannel-backend/internal/handlers"
	"github.com/uchannel/uchannel-backend/internal/logger"
	"github.com/uchannel/uchannel-backend/internal/middleware"
	"github.com/uchannel/uchannel-backend/internal/repository"
	"github.com/uchannel/uchannel-backend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logging
	logger.Init(cfg)
	defer logger.Sync()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Log.Fatalw("failed to connect to database", "error", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Log.Fatalw("failed to run migrations", "error", err)
	}

	// Initialize repositories
	taskRepo := repository.NewTaskRepository(database.GetDB())
	messageRepo := repository.NewMessageRepository(database.GetDB())

	// Initialize AI service when a key is configured; chat falls back to
	// rule-based replies otherwise
	var aiService *services.AIService
	if cfg.QwenAPIKey != "" {
		aiService = services.NewAIService(cfg.QwenAPIKey, cfg.QwenBaseURL, cfg.QwenModel)
	}

	// Initialize services
	taskService := services.NewTaskService(taskRepo)
	statsService := services.NewStatsService(taskService)
	chatService := services.NewChatService(messageRepo, aiService)

	// Initialize handlers
	taskHandler := handlers.NewTaskHandler(taskService)
	statsHandler := handlers.NewStatsHandler(statsService)
	chatHandler := handlers.NewChatHandler(chatService)

	// Initialize Gin router
	r := gin.New()
	middleware.Setup(r)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "UChannel backend is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		tasks := api.Group("/tasks")
		{
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("", taskHandler.GetAllTasks)
			tasks.GET("/date/:date", taskHandler.GetTasksByDate)
			tasks.GET("/pending", taskHandler.GetPendingTasks)
			tasks.GET("/completed", taskHandler.GetCompletedTasks)
			tasks.POST("/breakdown", taskHandler.BreakdownTask)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/complete", taskHandler.CompleteTask)
			tasks.POST("/:id/cancel", taskHandler.CancelTask)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/overview", statsHandler.GetOverview)
			stats.GET("/weekly", statsHandler.GetWeeklyStats)
			stats.GET("/category", statsHandler.GetCategoryStats)
			stats.GET("/priority", statsHandler.GetPriorityStats)
			stats.GET("/heatmap", statsHandler.GetHeatmapData)
			stats.GET("/focus-time", statsHandler.GetFocusTimeStats)
		}

		chat := api.Group("/chat")
		{
			chat.POST("/send", chatHandler.SendMessage)
			chat.GET("/history/:id", chatHandler.GetHistory)
			chat.GET("/health", chatHandler.Health)
		}
	}

	// Start server
	addr := cfg.ServerHost + ":" + cfg.ServerPort
	logger.Log.Infow("server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Log.Fatalw("failed to start server", "error", err)
	}
}
