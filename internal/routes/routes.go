package routes

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/auth"
	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/config"
	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/identity"
	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/middleware"
	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/notification"
	"github.com/MarvellousNdulue/3MTT-CAPSTONE-PROJECT-BACKEND/internal/task"
)

// Deps aggregates shared dependencies required to wire routes. DB and Cache
// may be nil: users and tasks then live in memory and the Redis-backed
// middlewares are skipped.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	tokens, err := auth.NewTokenService(d.Cfg)
	if err != nil {
		return err
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(cors.New(corsConfig(d.Cfg.CORSOrigins)))
	if d.Cfg.IsDev() {
		// Plain text access log in desired format: [HH:MM:SS] 200 -  145ms METHOD /path
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
			TimeFormat: "15:04:05",
			TimeZone:   "Local",
		}))
	}
	app.Use(middleware.Audit(d.Logger))

	RegisterHealthRoutes(app, d)

	// Services and handlers
	var identityRepo identity.Repository
	var taskRepo task.Repository
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
		taskRepo = task.NewPostgresRepository(d.DB)
	} else {
		d.Logger.Warn("no database pool provided, using in-memory stores")
		identityRepo = identity.NewMemoryRepository()
		taskRepo = task.NewMemoryRepository()
	}
	identitySvc := identity.NewService(identityRepo, d.Cfg.BcryptCost)
	authSvc := auth.NewService(identitySvc, tokens)
	taskSvc := task.NewService(taskRepo, notification.NewLoggerNotifier(d.Logger))

	// Public routes
	rateLimiter := middleware.LoginRateLimit(d.Cache, d.Cfg.LoginAttemptsPerMinute, d.Logger)
	RegisterAuthRoutes(app, identity.NewHandler(identitySvc, d.Logger), auth.NewHandler(authSvc, d.Logger), rateLimiter)

	// Protected routes
	protected := []fiber.Handler{middleware.Authenticate(tokens, d.Logger)}
	if d.Cache != nil {
		protected = append(protected, middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}
	RegisterTaskRoutes(app, task.NewHandler(taskSvc), protected...)

	// Landing page and other static assets.
	if d.Cfg.PublicDir != "" {
		app.Static("/", d.Cfg.PublicDir)
	}

	return nil
}

func corsConfig(origins string) cors.Config {
	origins = strings.TrimSpace(origins)
	if origins == "" {
		origins = "*"
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Content-Type,Authorization,Idempotency-Key,X-Request-ID",
		AllowCredentials: origins != "*",
	}
}
