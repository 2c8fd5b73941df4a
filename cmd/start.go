package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"inventory-viewer/core/loader"
	"inventory-viewer/core/logger"
	"inventory-viewer/core/middleware/auth"
	"inventory-viewer/core/middleware/rayid"
	"inventory-viewer/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "inventory-viewer/docs/swagger"
)

// @title Inventory Viewer API
// @version 1.0
// @description API for ingesting and browsing Wuthering Waves inventory exports.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the inventory viewer server",
	Long:  `Starts the HTTP server, preloads the mapping dictionaries and optionally watches a folder for new exports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Configuration, logger, mapping source
		cfg, logg, provider, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Features
		inv := inventory.NewFeature(cfg.Inventory, provider, logg)
		preloadMapping(cmd.Context(), inv.Service(), logg)

		mgr := loader.NewManager(logg)
		mgr.Register(inv)

		// 3. Watch folder (optional)
		if cfg.Inventory.WatchDir != "" {
			w, err := inventory.NewWatcher(inv.Service(), cfg.Inventory.WatchDir, cfg.Inventory.WatchDebounce(), logg)
			if err != nil {
				return err
			}
			defer w.Close()
			logg.Info("Watching folder for exports", zap.String("dir", cfg.Inventory.WatchDir))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimit(),
		})

		// RayID first so every later log line carries it.
		app.Use(rayid.New())
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

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 4. Serve until interrupted
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
