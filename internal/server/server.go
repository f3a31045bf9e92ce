// Package server contains the HTTP handlers for the community API.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	"fandom/internal/cache"
	"fandom/internal/config"
	"fandom/internal/database"
	"fandom/internal/identity"
	"fandom/internal/middleware"
	"fandom/internal/models"
	"fandom/internal/repository"
	"fandom/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus

	communityRepo repository.CommunityRepository
	memberRepo    repository.MembershipRepository
	banRepo       repository.BanRepository
	postRepo      repository.PostRepository
	wordRepo      repository.BannedWordRepository

	resolver identity.Resolver

	communityService  *service.CommunityService
	membershipService *service.MembershipService
	banService        *service.BanService
	postService       *service.PostService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	redisClient := cache.GetClient()

	var resolver identity.Resolver = identity.NewClient(cfg.IdentityURL, cfg.IdentityTimeoutDuration())
	if redisClient != nil {
		resolver = identity.NewCachedResolver(resolver)
	}

	return NewServerWithDeps(cfg, db, redisClient, resolver)
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, resolver identity.Resolver) (*Server, error) {
	communityRepo := repository.NewCommunityRepository(db)
	memberRepo := repository.NewMembershipRepository(db)
	banRepo := repository.NewBanRepository(db)
	postRepo := repository.NewPostRepository(db)
	wordRepo := repository.NewBannedWordRepository(db)

	prom := middleware.InitMetrics("fandom-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		communityRepo:  communityRepo,
		memberRepo:     memberRepo,
		banRepo:        banRepo,
		postRepo:       postRepo,
		wordRepo:       wordRepo,
		resolver:       resolver,
	}
	server.communityService = service.NewCommunityService(communityRepo, wordRepo, resolver)
	server.membershipService = service.NewMembershipService(memberRepo, communityRepo, banRepo, resolver)
	server.banService = service.NewBanService(banRepo)
	server.postService = service.NewPostService(postRepo, memberRepo, communityRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}

	// Community routes
	communities := api.Group("/communities")
	communities.Get("/", s.GetCommunities)
	communities.Post("/", s.CreateCommunity)
	communities.Get("/:id", s.GetCommunity)
	communities.Put("/:id", s.UpdateCommunity)
	communities.Delete("/:id", s.DeleteCommunity)

	// Membership routes
	communities.Get("/:id/members", s.GetMembers)
	communities.Post("/:id/members", s.JoinCommunity)
	communities.Get("/:id/members/:userId", s.GetMember)
	communities.Delete("/:id/members/:userId", s.LeaveCommunity)

	// Ban routes
	communities.Get("/:id/bans", s.GetBans)
	communities.Post("/:id/bans", s.BanUser)
	communities.Delete("/:id/bans/:userId", s.UnbanUser)

	// Banned-word registry routes
	communities.Get("/:id/banned-words", s.GetBannedWords)
	communities.Post("/:id/banned-words", s.AddBannedWords)
	communities.Put("/:id/banned-words", s.ReplaceBannedWords)
	communities.Delete("/:id/banned-words", s.RemoveBannedWords)

	// Post routes under a community
	communities.Get("/:id/posts", s.GetPosts)
	communities.Post("/:id/posts", s.CreatePost)

	// Post routes by global post id
	posts := api.Group("/posts")
	posts.Get("/:id", s.GetPost)
	posts.Put("/:id", s.UpdatePost)
	posts.Delete("/:id", s.DeletePost)
	posts.Get("/:id/likes", s.GetLikes)
	posts.Post("/:id/likes", s.LikePost)
	posts.Delete("/:id/likes/:userId", s.UnlikePost)

	// Communities a user belongs to
	api.Get("/users/:userId/communities", s.GetUserCommunities)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// Identity caching degrades gracefully without Redis.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Community API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
