package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/geostreams/records"
	"github.com/geostreams/records/internal/config"
	"github.com/geostreams/records/internal/domain"
	"github.com/geostreams/records/internal/infra/cache"
	"github.com/geostreams/records/internal/infra/database"
	"github.com/geostreams/records/internal/infra/gateway"
	"github.com/geostreams/records/internal/infra/repository"
	"github.com/geostreams/records/internal/present/rest"
	"github.com/geostreams/records/internal/service"
	"github.com/geostreams/records/internal/usecase"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "recordsd",
	Short: "OGC API Records catalog server",
	RunE:  run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the configuration file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	conf, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := database.NewPostgres(conf.Server.PostgresDsn)
	if err != nil {
		return err
	}
	if err := database.MigratePostgres(db); err != nil {
		return err
	}

	if conf.Server.EnableTrace {
		shutdown, err := service.SetupTraceProvider(ctx, conf.Server.TraceEndpoint, "recordsd")
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(ctx); err != nil {
				slog.Error("failed to shut down the trace provider", "error", err)
			}
		}()
	}

	ttl := time.Duration(conf.Server.SchemaCacheTTL) * time.Second
	var schemaCache cache.Cache
	switch conf.Server.CacheBackend {
	case "redis":
		schemaCache = cache.NewRedis(conf.Server.RedisAddr, conf.Server.RedisPassword, conf.Server.RedisDB)
	case "memcached":
		schemaCache = cache.NewMemcached(conf.Server.MemcachedAddr)
	default:
		schemaCache = cache.NewMemory(ttl)
	}

	catalog := repository.NewCatalogRepository(db)
	schemas := gateway.NewSchemaGateway(catalog, schemaCache, ttl)

	info := domain.ServiceInfo{
		Title:             conf.Service.Title,
		Abstract:          conf.Service.Abstract,
		MapPreviewEnabled: conf.Service.MapPreviewEnabled,
	}
	uc := usecase.NewRecordsUsecase(catalog, schemas, info, rest.BasePath)
	handler := rest.NewHandler(uc, records.NewFormatRegistry())

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	if conf.Server.EnableTrace {
		e.Use(otelecho.Middleware("recordsd"))
	}
	handler.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(conf.Server.Listen))
	return nil
}
