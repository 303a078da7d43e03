package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dtroode/tasktracker-server/internal/api/http/router"
	httpServer "github.com/dtroode/tasktracker-server/internal/api/http/server"
	"github.com/dtroode/tasktracker-server/internal/config"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
	"github.com/dtroode/tasktracker-server/internal/repository"
	"github.com/dtroode/tasktracker-server/internal/server"
	"github.com/dtroode/tasktracker-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	if err := run(ctx, stop, cfg, logger); err != nil {
		stop()
		logger.Fatal("server stopped with error", "error", err)
	}
}

// run serves until ctx is cancelled or the listener fails. Deferred cleanup
// runs before it returns so main can exit safely on error.
func run(ctx context.Context, stop context.CancelFunc, cfg *config.Config, logger *logger.Logger) error {
	if cfg.APIToken == "" {
		logger.Warn("API_TOKEN is not set, mutating endpoints will answer 500")
	}

	stores, err := repository.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize %s storage: %w", cfg.Database.Driver, err)
	}
	defer stores.Close()

	taskService := service.NewTask(stores.Tasks, stores.Users, logger)
	userService := service.NewUser(stores.Users, stores.Tasks, logger, cfg.Users.DefaultPassword, cfg.Users.BcryptCost)

	r := router.New(taskService, userService, cfg.APIToken, cfg.HTTP.ExposeErrors, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))
	sl := server.NewSecurityLayer(cfg.HTTP)

	var (
		wg       sync.WaitGroup
		startErr error
	)
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS, "driver", cfg.Database.Driver)
		if err := s.Start(sl); err != nil {
			startErr = fmt.Errorf("failed to start server: %w", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	if startErr != nil {
		return startErr
	}
	logger.Info("shutdown complete")
	return nil
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
