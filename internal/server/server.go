// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "talkora/docs" // swagger docs
	"talkora/internal/cache"
	"talkora/internal/config"
	"talkora/internal/database"
	"talkora/internal/middleware"
	"talkora/internal/models"
	"talkora/internal/repository"
	"talkora/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v78"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config              *config.Config
	db                  *gorm.DB
	redis               *redis.Client
	app                 *fiber.App
	promMiddleware      *fiberprometheus.FiberPrometheus
	userRepo            repository.UserRepository
	postRepo            repository.PostRepository
	voteRepo            repository.VoteRepository
	commentRepo         repository.CommentRepository
	tagRepo             repository.TagRepository
	searchRepo          repository.SearchRepository
	announcementRepo    repository.AnnouncementRepository
	paymentRepo         repository.PaymentRepository
	userService         *service.UserService
	postService         *service.PostService
	commentService      *service.CommentService
	tagService          *service.TagService
	searchService       *service.SearchService
	announcementService *service.AnnouncementService
	adminService        *service.AdminService
	paymentService      *service.PaymentService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Initialize Redis
	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis and
// optionally performs explicit seeding.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	if cfg.StripeSecretKey != "" {
		stripe.Key = cfg.StripeSecretKey
	}

	server := &Server{
		config:           cfg,
		db:               db,
		redis:            redisClient,
		promMiddleware:   middleware.InitMetrics("talkora-api"),
		userRepo:         repository.NewUserRepository(db),
		postRepo:         repository.NewPostRepository(db),
		voteRepo:         repository.NewVoteRepository(db),
		commentRepo:      repository.NewCommentRepository(db),
		tagRepo:          repository.NewTagRepository(db),
		searchRepo:       repository.NewSearchRepository(db),
		announcementRepo: repository.NewAnnouncementRepository(db),
		paymentRepo:      repository.NewPaymentRepository(db),
	}

	server.userService = service.NewUserService(server.userRepo)
	server.postService = service.NewPostService(
		server.postRepo, server.voteRepo,
		server.userService.IsAdmin, server.userService.IsGoldMember)
	server.commentService = service.NewCommentService(server.commentRepo, server.postRepo)
	server.tagService = service.NewTagService(server.tagRepo)
	server.searchService = service.NewSearchService(server.searchRepo)
	server.announcementService = service.NewAnnouncementService(server.announcementRepo)
	server.adminService = service.NewAdminService(server.postRepo, server.commentRepo, server.userRepo)
	server.paymentService = service.NewPaymentService(server.paymentRepo, nil)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// OpenTelemetry server spans (before the context middleware so the
	// trace id is available in locals)
	app.Use(middleware.TracingMiddleware())

	// Context Middleware to propagate Request ID and caller identity
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they should be handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))
}

// SetupRoutes configures all routes for the application.
// The route surface intentionally mirrors the original flat endpoint names
// the frontend depends on (e.g. /tags-with-counts, /report-comment/:id).
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
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Talkora Backend Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Public browse routes
	api.Get("/posts", s.GetPosts)
	api.Get("/tags", s.GetTags)
	api.Get("/tags-with-counts", s.GetTagsWithCounts)
	api.Get("/public-announcements", s.GetPublicAnnouncements)
	api.Get("/comments", s.GetComments)
	api.Post("/searches", middleware.RateLimit(
		s.redis, 30, time.Minute, "record_search"), s.RecordSearch)
	api.Get("/popular-searches", s.GetPopularSearches)

	// First-sign-in registration and role lookup happen before a session
	// exists, so they stay public.
	api.Post("/users", s.RegisterUser)
	api.Patch("/users/:email", s.UpdateLastLogin)
	api.Get("/users/role/:email", s.GetUserRole)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	// User routes
	protected.Get("/users/profile", s.GetMyProfile)
	protected.Get("/users/posts-info", s.GetPostsInfo)
	protected.Patch("/users/membership/:email", s.GrantMembership)

	// Post routes. Specific paths before the generic /posts/:id.
	protected.Get("/posts/my-recent", s.GetMyRecentPosts)
	protected.Get("/user-posts", s.GetUserPosts)
	protected.Post("/posts", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_post"), s.CreatePost)
	protected.Patch("/posts/:id/vote", middleware.RateLimit(
		s.redis, 30, time.Minute, "vote"), s.VotePost)
	protected.Delete("/posts/:id", s.DeletePost)
	api.Get("/posts/:id", s.GetPost)

	// Comment routes
	protected.Post("/comments", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.CreateComment)
	protected.Get("/secure-comments/:postId", s.GetSecureComments)
	protected.Patch("/report-comment/:id", s.ReportComment)

	// Payment routes
	protected.Post("/create-payment-intent", middleware.RateLimit(
		s.redis, 10, time.Minute, "payment_intent"), s.CreatePaymentIntent)
	protected.Post("/payments", s.RecordPayment)

	// Admin routes
	admin := protected.Group("", s.AdminRequired())
	admin.Get("/admin/overview", s.GetAdminOverview)
	admin.Get("/users", s.GetAllUsers)
	admin.Patch("/users/role/:id", s.UpdateUserRole)
	admin.Post("/tags", s.CreateTag)
	admin.Get("/announcements", s.GetAnnouncements)
	admin.Post("/announcements", s.CreateAnnouncement)
	admin.Delete("/announcements/:id", s.DeleteAnnouncement)
	admin.Get("/reported-comments", s.GetReportedComments)
	admin.Patch("/ignore-report/:id", s.IgnoreReport)
	admin.Delete("/comments/:id", s.DeleteComment)
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

// AdminRequired returns middleware that rejects non-admin users with 403.
// Must be placed after AuthRequired so that the caller email is available
// in locals.
func (s *Server) AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		admin, err := s.userService.IsAdmin(c.UserContext(), email)
		if err != nil && !models.IsNotFound(err) {
			return respondError(c, err)
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewUnauthorizedError("Admin access required"))
		}

		return c.Next()
	}
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Talkora API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, fiber.StatusInternalServerError,
				models.NewInternalError("Internal server error", err))
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
