package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-world/api/i"
	service_i "github.com/beka-birhanu/vinom-world/service/i"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const defaultShutdownTimeout = 5 * time.Second

// Router manages the HTTP server and its controllers.
type Router struct {
	addr            string
	baseURL         string
	serviceName     string
	controllers     []i.Controller
	logger          service_i.Logger
	shutdownTimeout time.Duration
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr            string // Address to listen on
	BaseURL         string // Base URL for API routes
	ServiceName     string // Name reported in traces
	Controllers     []i.Controller
	Logger          service_i.Logger
	ShutdownTimeout time.Duration // Grace period for in-flight requests
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &Router{
		addr:            config.Addr,
		baseURL:         config.BaseURL,
		serviceName:     config.ServiceName,
		controllers:     config.Controllers,
		logger:          config.Logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// Handler builds the gin engine with every controller's routes mounted
// under baseURL/v1, plus GET /healthz.
func (r *Router) Handler() http.Handler {
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(r.serviceName), requestID(r.logger))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.RegisterPublic(v1)
		}
	}

	return router
}

// Run serves HTTP until ctx is cancelled, then drains in-flight requests.
func (r *Router) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", r.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", r.addr, err)
	}
	return r.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (r *Router) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           r.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	r.logger.Info(fmt.Sprintf("REST server listening at %v", listener.Addr()))
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown REST server: %w", err)
		}
		return httpResult(<-serveErr)
	case err := <-serveErr:
		return httpResult(err)
	}
}

func httpResult(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("serve REST: %w", err)
}
