package routes

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	_ "pcg_compliance/docs"
	"pcg_compliance/internal/adapter/http/middleware"
	"pcg_compliance/internal/infrastructure/wiring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const readHeaderTimeout = 10 * time.Second

// NewRouter builds the engine with every route registered.
func NewRouter(c *wiring.Container) *gin.Engine {
	if c.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	setMiddlewares(router, c)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addComplianceRoutes(v1, c)
	return router
}

// Run serves HTTP until ctx is done, then drains in-flight requests for at
// most ShutdownTimeout.
func Run(ctx context.Context, c *wiring.Container) error {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(c.Config.Port),
		Handler:           NewRouter(c),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	c.Log.Info().Dur("timeout", c.Config.ShutdownTimeout).Msg("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.Config.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func setMiddlewares(router *gin.Engine, c *wiring.Container) {
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(c.Log))
	router.Use(middleware.Recovery(c.Log))
}
