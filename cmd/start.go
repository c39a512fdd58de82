package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"depot-planner/core/loader"
	"depot-planner/core/logger"
	"depot-planner/core/middleware/auth"
	"depot-planner/core/middleware/rayid"
	"depot-planner/core/session"
	"depot-planner/feature/depot"
	"depot-planner/feature/presets"
	"depot-planner/feature/roster"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "depot-planner/docs/swagger"
)

// @title Depot Planner API
// @version 1.0
// @description API for the crafting planner depot, roster and presets.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the depot planner server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Backends (config, logger, database, catalog, local store)
		rt, err := newRuntime(false)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer rt.close()
		logg := rt.log
		zap.ReplaceGlobals(logg)
		cfg := rt.cfg

		if !cfg.Server.SessionsEnabled() {
			logg.Warn("No JWT secret configured, every request is served the guest depot")
		}

		// 2. Depot registry
		factory := depot.NewFactory(cfg.Depot, rt.depotRemote(), rt.local, rt.catalog, logg, nil)
		registry := depot.NewRegistry(factory, logg)
		depotFeature := depot.NewFeature(registry, logg)

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(depotFeature)
		mgr.Register(roster.NewFeature(cfg.Server.RosterPath, logg))
		mgr.Register(presets.NewFeature(rt.db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging
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

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth, then the caller's identity
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))
		app.Use(session.Middleware(cfg.Server.JWTSecret))

		// 5. Load Features
		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown: stop taking requests, then push pending depot changes
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
		defer cancel()
		if err := depotFeature.Shutdown(ctx); err != nil {
			logg.Error("Some depot changes were not synced", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
