package main

import (
	"log"
	"net/http"
	"time"

	"ekima-service/internal/cache"
	"ekima-service/internal/config"
	"ekima-service/internal/db"
	"ekima-service/internal/event"
	"ekima-service/internal/handlers"
	"ekima-service/internal/middleware"
	"ekima-service/internal/repository"
	"ekima-service/internal/service"
	"ekima-service/pkg/discovery"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoDB.URI)
	database := db.Client.Database(cfg.MongoDB.Database)

	// Redis recommendation cache, optional
	var recCache *cache.RecommendationCache
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		recCache = cache.NewRecommendationCache(redisClient, cfg.Cache.RecommendationTTL)
	} else {
		log.Println("Redis not configured, recommendation caching disabled")
	}

	// RabbitMQ event publisher, optional
	var publisher *event.EventPublisher
	if cfg.RabbitMQ.URI != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, events will not be published")
	}

	// Consul registration, optional
	if cfg.Consul.Address != "" {
		registry, err := discovery.NewServiceRegistry(cfg)
		if err != nil {
			log.Fatalf("Failed to create Consul client: %v", err)
		}
		if err := registry.Register(); err != nil {
			log.Fatalf("Failed to register with Consul: %v", err)
		}
		defer registry.Deregister()
	}

	// Repositories
	userRepo := repository.NewUserRepository(database)
	progressRepo := repository.NewProgressRepository(database)
	attemptRepo := repository.NewQuizAttemptRepository(database)
	topicRepo := repository.NewTopicRepository(database)
	subjectRepo := repository.NewSubjectRepository(database)
	chapterRepo := repository.NewChapterRepository(database)
	recRepo := repository.NewRecommendationRepository(database)

	// Services
	recService := service.NewRecommendationService(
		userRepo, progressRepo, attemptRepo, topicRepo, subjectRepo, recRepo,
		recCache, publisher,
	)
	progressService := service.NewProgressService(progressRepo, chapterRepo, userRepo, publisher, recService)
	attemptService := service.NewQuizAttemptService(attemptRepo, userRepo, publisher, recService)
	statsService := service.NewStatsService(userRepo, progressRepo, topicRepo)
	topicService := service.NewTopicService(topicRepo)
	subjectService := service.NewSubjectService(subjectRepo)

	// Handlers
	recHandler := handlers.NewRecommendationHandler(recService)
	progressHandler := handlers.NewProgressHandler(progressService)
	attemptHandler := handlers.NewQuizAttemptHandler(attemptService)
	statsHandler := handlers.NewStatsHandler(statsService)
	topicHandler := handlers.NewTopicHandler(topicService)
	subjectHandler := handlers.NewSubjectHandler(subjectService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": cfg.Server.ServiceName})
	})

	// Public catalog routes
	publicTopic := r.Group("/public/ekima/topic")
	{
		publicTopic.GET("/", topicHandler.ListTopics)
		publicTopic.GET("/:id", topicHandler.GetTopic)
		publicTopic.GET("/subject/:subjectId", topicHandler.GetTopicsBySubject)
	}

	publicSubject := r.Group("/public/ekima/subject")
	{
		publicSubject.GET("/", subjectHandler.ListSubjects)
		publicSubject.GET("/:id", subjectHandler.GetSubject)
	}

	// Protected catalog management
	protectedTopic := r.Group("/protected/ekima/topic")
	protectedTopic.Use(middleware.Auth(cfg.JWT.Secret))
	{
		protectedTopic.POST("/", topicHandler.CreateTopic)
		protectedTopic.PUT("/:id", topicHandler.UpdateTopic)
		protectedTopic.DELETE("/:id", topicHandler.DeleteTopic)
	}

	protectedSubject := r.Group("/protected/ekima/subject")
	protectedSubject.Use(middleware.Auth(cfg.JWT.Secret))
	{
		protectedSubject.POST("/", subjectHandler.CreateSubject)
		protectedSubject.PUT("/:id", subjectHandler.UpdateSubject)
		protectedSubject.DELETE("/:id", subjectHandler.DeleteSubject)
	}

	// Recommendations
	protectedRec := r.Group("/protected/ekima/recommendation")
	protectedRec.Use(middleware.Auth(cfg.JWT.Secret))
	{
		protectedRec.GET("/", recHandler.GetRecommendations)
		protectedRec.PUT("/:id/used", recHandler.MarkUsed)
		protectedRec.POST("/:id/feedback", recHandler.SaveFeedback)
	}
	r.GET("/public/ekima/user/:id/recommendations", recHandler.GetStoredRecommendations)

	// Progress and quiz attempts
	protectedProgress := r.Group("/protected/ekima/progress")
	protectedProgress.Use(middleware.Auth(cfg.JWT.Secret))
	{
		protectedProgress.GET("/", progressHandler.GetUserProgress)
		protectedProgress.GET("/chapter/:chapterId", progressHandler.GetChapterProgress)
		protectedProgress.PUT("/", progressHandler.UpdateProgress)
	}

	protectedQuiz := r.Group("/protected/ekima/quiz-attempt")
	protectedQuiz.Use(middleware.Auth(cfg.JWT.Secret))
	{
		protectedQuiz.POST("/", attemptHandler.SubmitAttempt)
		protectedQuiz.GET("/", attemptHandler.GetUserAttempts)
	}

	// Stats
	protectedStats := r.Group("/protected/ekima/stats")
	protectedStats.Use(middleware.Auth(cfg.JWT.Secret))
	{
		protectedStats.GET("/", statsHandler.GetUserStats)
		protectedStats.GET("/topic/:topicId", statsHandler.GetTopicCompletion)
	}

	r.Run(":" + cfg.Server.Port)
}
