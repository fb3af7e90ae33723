package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/hugohenrick/whop-relay/internal/adapter/api/controller"
	"github.com/hugohenrick/whop-relay/internal/adapter/api/route"
	"github.com/hugohenrick/whop-relay/internal/config"
	"github.com/hugohenrick/whop-relay/pkg/auth"
	"github.com/hugohenrick/whop-relay/pkg/logger"
	"github.com/hugohenrick/whop-relay/pkg/middleware"
	"github.com/hugohenrick/whop-relay/pkg/whop"

	_ "github.com/hugohenrick/whop-relay/docs"
)

const shutdownTimeout = 10 * time.Second

// App representa a aplicação e suas dependências
type App struct {
	config          *config.Config
	logger          logger.Logger
	router          *gin.Engine
	jwtService      *auth.JWTService
	relayController *controller.RelayController
}

// NewApp cria uma nova instância do aplicativo. messenger nil usa o cliente da API do Whop.
func NewApp(cfg *config.Config, log logger.Logger, messenger controller.Messenger) (*App, error) {
	if messenger == nil {
		messenger = whop.NewMessagingClient(cfg.WhopCredentials(), whop.WithLogger(log))
	}

	var jwtService *auth.JWTService
	if cfg.SessionAuthEnabled() {
		svc, err := auth.NewJWTService(cfg.JWTSecret, 0)
		if err != nil {
			return nil, err
		}
		jwtService = svc
	} else {
		log.Warn("RELAY_JWT_SECRET não configurado: rotas do relay sem autenticação")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))

	app := &App{
		config:          cfg,
		logger:          log,
		router:          router,
		jwtService:      jwtService,
		relayController: controller.NewRelayController(messenger, log),
	}
	app.SetupRoutes("/api")

	return app, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	route.SetupHealthRoutes(a.router)
	route.SetupRelayRoutes(a.router.Group(basePath), a.relayController, a.jwtService)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Start serve até o contexto ser cancelado e então encerra graciosamente
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + a.config.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info("Servidor iniciado", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info("Encerrando servidor")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.RequestIDHeader)

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
