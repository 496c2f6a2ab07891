package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	_ "pcg_compliance/docs"
	"pcg_compliance/internal/adapter/http/routes"
	"pcg_compliance/internal/config"
	"pcg_compliance/internal/infrastructure/logger"
	"pcg_compliance/internal/infrastructure/scheduler"
	"pcg_compliance/internal/infrastructure/wiring"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog/log"
)

// @title           PCG Compliance API
// @version         1.0
// @description     Subcontractor document compliance (periods, submissions, reviews) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	lg := logger.New(cfg.LogLevel, cfg.Env, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := wiring.Build(ctx, cfg, lg)
	if err != nil {
		lg.Fatal().Err(err).Msg("failed to build application")
	}

	var wg sync.WaitGroup
	if cfg.SchedulerInProcess {
		runner := scheduler.NewRunner(c.SchedulerUseCase, lg, cfg.SchedulerJobTimeout)
		if err := runner.Schedule(ctx, cfg.SchedulerCron); err != nil {
			lg.Fatal().Err(err).Msg("failed to schedule daily pass")
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			runner.Start(ctx)
		}()
	}

	runErr := routes.Run(ctx, c)
	stop()
	wg.Wait()
	if runErr != nil {
		lg.Fatal().Err(runErr).Msg("http server stopped")
	}
	lg.Info().Msg("shutdown complete")
}
