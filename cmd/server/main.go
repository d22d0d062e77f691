package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rmancero11/club-dashboard-realtime/internal/api/handlers"
	"github.com/rmancero11/club-dashboard-realtime/internal/api/middleware"
	"github.com/rmancero11/club-dashboard-realtime/internal/config"
	"github.com/rmancero11/club-dashboard-realtime/internal/crypto"
	"github.com/rmancero11/club-dashboard-realtime/internal/database"
	"github.com/rmancero11/club-dashboard-realtime/internal/metrics"
	"github.com/rmancero11/club-dashboard-realtime/internal/models"
	"github.com/rmancero11/club-dashboard-realtime/internal/websocket"
	"github.com/rmancero11/club-dashboard-realtime/shared/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("%v; using info", err)
	}
	logger.SetLevel(level)

	if cfg.Debug {
		logger.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Infof("Opening database: %s", cfg.DatabasePath)
	db, err := database.Open(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	// Nobody is connected yet; clear flags left behind by an unclean exit.
	n, err := models.New(db.DB).ResetAllPresence(ctx, time.Now().UTC())
	if err != nil {
		logger.Warnf("Failed to reset presence: %v", err)
	} else if n > 0 {
		logger.Infof("Reset %d stale online flags", n)
	}

	jwtManager, err := crypto.NewJWTManager(cfg.JWTSecret)
	if err != nil {
		return err
	}

	logger.Infof("Initializing Socket.IO server...")
	socketIOServer := websocket.NewSocketIOServer(db.DB, jwtManager, websocket.Options{
		Path:              cfg.SocketPath,
		AllowedOrigins:    cfg.AllowedOrigins,
		PingInterval:      cfg.PingInterval,
		PingTimeout:       cfg.PingTimeout,
		SendRate:          cfg.SendRate,
		SendBurst:         cfg.SendBurst,
		LaneQueueSize:     cfg.LaneQueueSize,
		AllowInsecureAuth: cfg.Debug,
	})
	defer socketIOServer.Close()

	router := newRouter(cfg, db, jwtManager, socketIOServer)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if cfg.TLS != nil {
			logger.Infof("Chat server starting on https://%s", cfg.Addr)
			errCh <- srv.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
			return
		}
		logger.Infof("Chat server starting on http://%s", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Infof("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRouter(cfg *config.Config, db *database.DB, jwtManager *crypto.JWTManager, socketIOServer *websocket.SocketIOServer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.LoggingMiddleware())

	router.GET("/", handlers.Root)
	router.GET("/healthz", handlers.Healthz)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	queries := models.New(db.DB)
	blocksHandler := handlers.NewBlocksHandler(queries, socketIOServer)
	messagesHandler := handlers.NewMessagesHandler(queries, socketIOServer)
	presenceHandler := handlers.NewPresenceHandler(queries)

	protected := router.Group("/v1")
	protected.Use(middleware.AuthMiddleware(jwtManager))
	protected.Use(middleware.RateLimitMiddleware(cfg.RESTRate, cfg.RESTBurst))
	{
		protected.GET("/blocks", blocksHandler.ListBlocks)
		protected.POST("/blocks", blocksHandler.CreateBlock)
		protected.DELETE("/blocks/:uid", blocksHandler.DeleteBlock)

		protected.GET("/conversations/:uid/messages", messagesHandler.ListConversation)
		protected.DELETE("/conversations/:uid", messagesHandler.DeleteConversation)
		protected.DELETE("/messages/:id", messagesHandler.DeleteMessage)

		protected.GET("/presence", presenceHandler.GetPresence)
	}

	// The handshake authenticates itself; the endpoint sits outside the
	// bearer-protected group.
	router.Any(cfg.SocketPath, socketIOServer.HandleSocketIO())
	router.Any(cfg.SocketPath+"/*any", socketIOServer.HandleSocketIO())

	return router
}
