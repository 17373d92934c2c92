package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"tripchat/cmd/fx/config_fx"
	"tripchat/cmd/fx/controllers_fx"
	"tripchat/cmd/fx/db_fx"
	"tripchat/cmd/fx/enrich_fx"
	"tripchat/cmd/fx/logger_fx"
	"tripchat/cmd/fx/memcache_fx"
	"tripchat/cmd/fx/prompt_fx"
	"tripchat/cmd/fx/session_fx"
	"tripchat/internal/api"
	"tripchat/internal/api/controllers"
	"tripchat/internal/config"
	"tripchat/pkg/middleware"
	"tripchat/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		prompt_fx.Module,
		enrich_fx.Module,
		session_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	sessionController *controllers.SessionController,
	tokens *utils.SessionTokenIssuer) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.MetricsMiddleware())

	api.RegisterRoutes(r, sessionController, tokens)

	return r
}
