package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-world/api"
	gameapi "github.com/beka-birhanu/vinom-world/api/game"
	api_i "github.com/beka-birhanu/vinom-world/api/i"
	"github.com/beka-birhanu/vinom-world/config"
	"github.com/beka-birhanu/vinom-world/game"
	"github.com/beka-birhanu/vinom-world/infrastruture/grpc/gamesvc"
	logger "github.com/beka-birhanu/vinom-world/infrastruture/log"
	"github.com/beka-birhanu/vinom-world/infrastruture/tracing"
	"github.com/beka-birhanu/vinom-world/service"
	"github.com/beka-birhanu/vinom-world/world"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

const serviceName = "vinom-world"

var appLogger *logger.Logger

func newLogger(prefix, color string) *logger.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating %s logger: %v", prefix, err))
		os.Exit(1)
	}
	return l
}

func loadConfig() config.Config {
	if err := config.LoadDotEnv(); err != nil {
		appLogger.Info(fmt.Sprintf(".env file not found or could not be loaded: %v", err))
	}

	cfg, err := config.Load()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading config: %v", err))
		os.Exit(1)
	}
	if err := config.ParseFlags(&cfg, flag.CommandLine, os.Args[1:]); err != nil {
		appLogger.Error(fmt.Sprintf("Parsing flags: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Config loaded")
	return cfg
}

func initTracing(ctx context.Context, cfg config.Config) func(context.Context) error {
	shutdown, err := tracing.Init(ctx, tracing.Config{
		ServiceName: serviceName,
		Environment: cfg.AppEnv,
		Exporter:    cfg.TracesExporter,
		PrettyPrint: cfg.TracesPrettyPrint,
		SampleRatio: cfg.TracesSampleRatio,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Initializing tracing: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Tracing initialized (exporter: %s)", cfg.TracesExporter))
	return shutdown
}

func initGenerator(cfg config.Config) (*world.Generator, error) {
	generator, err := world.NewGenerator(world.Config{
		Bounds: world.Bounds{
			MinWidth:  cfg.MapWidthMin,
			MaxWidth:  cfg.MapWidthMax,
			MinHeight: cfg.MapHeightMin,
			MaxHeight: cfg.MapHeightMax,
		},
		WallCountMin:  cfg.WallCountMin,
		WallCountMax:  cfg.WallCountMax,
		WallLengthMin: cfg.WallLengthMin,
	})
	if err != nil {
		return nil, fmt.Errorf("creating world generator: %w", err)
	}
	appLogger.Info("World generator initialized")
	return generator, nil
}

func initGameService(generator *world.Generator, registry *game.Registry) (*service.GameService, error) {
	gameService, err := service.NewGameService(&service.Config{
		Generator: generator,
		Registry:  registry,
		Logger:    newLogger("GAME-SERVICE", config.ColorCyan),
	})
	if err != nil {
		return nil, fmt.Errorf("creating game service: %w", err)
	}
	appLogger.Info("Game service initialized")
	return gameService, nil
}

func initGrpcServer(cfg config.Config, gameService *service.GameService) (*gamesvc.Server, error) {
	server, err := gamesvc.New(cfg.GRPCAddr(), gameService, newLogger("GRPC", config.ColorPurple))
	if err != nil {
		return nil, fmt.Errorf("creating gRPC server: %w", err)
	}
	appLogger.Info("gRPC server initialized")
	return server, nil
}

func initRouter(cfg config.Config, gameService *service.GameService) (*api.Router, error) {
	gameController, err := gameapi.NewGameController(gameService)
	if err != nil {
		return nil, fmt.Errorf("creating game controller: %w", err)
	}

	gin.SetMode(cfg.GinMode)
	router := api.NewRouter(api.Config{
		Addr:            cfg.RESTAddr(),
		BaseURL:         "/api",
		ServiceName:     serviceName,
		Controllers:     []api_i.Controller{gameController},
		Logger:          newLogger("REST", config.ColorBlue),
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
	appLogger.Info("Router initialized")
	return router, nil
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	if err := run(loadConfig()); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}

// run serves until SIGINT or SIGTERM. Pending spans are flushed before it
// returns, whatever the outcome.
func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := initTracing(ctx, cfg)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			appLogger.Warn(fmt.Sprintf("Shutting down tracing: %v", err))
		}
	}()

	generator, err := initGenerator(cfg)
	if err != nil {
		return err
	}
	// One registry for the whole process, shared by both transports.
	registry := game.NewRegistry()
	gameService, err := initGameService(generator, registry)
	if err != nil {
		return err
	}
	grpcServer, err := initGrpcServer(cfg, gameService)
	if err != nil {
		return err
	}
	router, err := initRouter(cfg, gameService)
	if err != nil {
		grpcServer.Close()
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error { return grpcServer.Serve(groupCtx) })
	group.Go(func() error { return router.Run(groupCtx) })

	start := time.Now()
	if err := group.Wait(); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	appLogger.Info(fmt.Sprintf("Stopped after %s with %d games created", time.Since(start).Round(time.Second), registry.Len()))
	return nil
}
