package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"finaid-preflight/core/config"
	"finaid-preflight/core/database"
	"finaid-preflight/core/loader"
	"finaid-preflight/core/logger"
	"finaid-preflight/core/middleware/auth"
	"finaid-preflight/core/middleware/rayid"
	"finaid-preflight/core/storage"
	"finaid-preflight/feature/preflight"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "finaid-preflight/docs/swagger"
)

// @title Financial Aid Preflight API
// @version 1.0
// @description Structure verification reports for the Financial Aid Assistant.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve verification reports over HTTP",
	Long:  `Starts the HTTP server exposing the preflight report endpoints, so CI and monitoring can poll the verification state.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if !cfg.Server.IsValidEnvironment() {
			logg.Fatal("Invalid environment", zap.String("environment", cfg.Server.Environment))
		}

		// 3. Connect to Database (Optional)
		var db *gorm.DB
		if cfg.Project.ProbeDatabase {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to application database")
			}
		}

		// 4. Initialize Storage (Optional)
		var store storage.Client
		if cfg.Project.ProbeStorage {
			if client, err := storage.NewClient(cfg.Storage); err != nil {
				logg.Warn("Optional storage client creation failed", zap.Error(err))
			} else {
				store = client
			}
		}

		// 5. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		svc := preflight.NewService(
			cfg.Project.ResolvedBaseDir(),
			cfg.Project.DatabaseFile,
			store,
			cfg.Storage.Bucket,
			db,
			cfg.Server.Environment,
			logg,
		)
		mgr.Register(preflight.NewFeature(svc))

		// Middleware Registration
		// RayID must be first to trace everything
		app.Use(rayid.New())

		// Request logging with Zap + RayID
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("base_dir", svc.BaseDir()),
			)
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
