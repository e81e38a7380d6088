package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/easytripzy/tripbooking/api"
	"github.com/easytripzy/tripbooking/config"
	"github.com/easytripzy/tripbooking/internal/auth"
)

// NewRouter assembles the HTTP surface: public catalog reads, bearer-protected
// booking routes, health check and swagger docs.
func NewRouter(cfg *config.Config, bookings *api.BookingHandler, catalog *api.CatalogHandler) *gin.Engine {
	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalog.Register(router.Group("/"))

	protected := router.Group("/", auth.Middleware(cfg.Auth.Secret))
	bookings.Register(protected)

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFile("/swagger/doc.json", filepath.Join(cfg.HTTP.SwaggerDir, "swagger.json"))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
	}

	return router
}

// Run serves the router until the context is canceled or the server fails.
func Run(ctx context.Context, cfg *config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
