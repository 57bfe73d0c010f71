package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/arashek/ade/internal/config"
	"github.com/arashek/ade/internal/container"
	"github.com/arashek/ade/internal/events"
	"github.com/arashek/ade/internal/logging"
	"github.com/arashek/ade/internal/security"
	"github.com/arashek/ade/internal/server"
	"github.com/arashek/ade/internal/template"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ADE server",
	Long:  `Start the container lifecycle service and its HTTP API`,
	Run:   runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	if err := logging.Setup(cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up logging")
	}

	log.Info().Msg("Starting ADE server...")
	log.Info().Int("port", cfg.Server.Port).Msg("HTTP API")
	log.Info().Str("runtime", cfg.Server.Runtime).Msg("Container runtime")
	log.Info().Str("templates", cfg.Templates.Dir).Msg("Template directory")

	eventBus := events.NewInMemoryEventBus(100)
	if err := eventBus.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start event bus")
	}
	if err := eventBus.Subscribe(events.NewAuditHandler()); err != nil {
		log.Fatal().Err(err).Msg("Failed to subscribe audit handler")
	}

	rt, err := container.CreateRuntime(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to container runtime")
	}

	loader := template.NewLoader(cfg.Templates.Dir)
	if _, err := loader.LoadTemplates(); err != nil {
		log.Fatal().Err(err).Msg("Failed to load templates")
	}

	manager, err := container.NewManager(cfg, rt, loader, eventBus)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize container manager")
	}

	monitor := container.NewMonitor(manager, cfg.HealthInterval())
	monitor.Start()

	// Live reload of the resource ceiling and timeouts on config file change.
	// Port, runtime and template directory changes need a restart.
	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Info().
			Str("file", e.Name).
			Str("op", e.Op.String()).
			Msg("Configuration file changed, reloading...")

		newCfg, err := config.Load()
		if err != nil {
			log.Error().Err(err).Msg("Failed to reload configuration")
			return
		}
		if err := manager.ApplyConfig(newCfg); err != nil {
			log.Error().Err(err).Msg("Failed to apply reloaded configuration")
			return
		}

		if err := eventBus.Publish(events.Event{Type: events.ConfigReload}); err != nil {
			log.Error().Err(err).Msg("Failed to publish config reload event")
		} else {
			log.Info().Msg("Configuration reloaded")
		}
	})

	srv := server.New(cfg, manager, loader, security.NewValidator())
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	monitor.Stop()

	if err := eventBus.Stop(); err != nil {
		log.Error().Err(err).Msg("Event bus shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}
