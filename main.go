package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Zoh007/WealthScore/handlers"
	"github.com/Zoh007/WealthScore/llm"
	"github.com/Zoh007/WealthScore/logger"
	"github.com/Zoh007/WealthScore/middleware"
	"github.com/Zoh007/WealthScore/models"
	"github.com/Zoh007/WealthScore/nessie"
	"github.com/Zoh007/WealthScore/poller"
	"github.com/Zoh007/WealthScore/sse"
	"github.com/Zoh007/WealthScore/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		// Not fatal: production supplies real env vars.
		os.Stderr.WriteString("Warning: .env file not found\n")
	}
}

func main() {
	if err := logger.InitFromEnv(); err != nil {
		panic(err)
	}
	defer logger.Sync()

	handlers.Bank = nessie.NewClientFromEnv()
	handlers.EventStore = store.NewFromEnv()
	handlers.Chat = llm.NewClientFromEnv()

	dataPoller := poller.NewFromEnv(handlers.Bank)
	dataPoller.OnUpdate(func(snapshot models.Snapshot) {
		handlers.BroadcastSnapshot(snapshot)
		if payload, err := json.Marshal(snapshot); err == nil {
			sse.Broadcast(string(payload))
		}
	})
	handlers.Snapshots = dataPoller

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"}) // Only trust local proxies
	router.Use(gin.Recovery())
	router.Use(middleware.CorsMiddleware)
	router.Use(middleware.RequestID)
	router.Use(middleware.AccessLog)

	api := router.Group("/api")
	{
		// Calendar events (flat JSON document)
		api.GET("/calendar/events", handlers.HandleListEvents)
		api.POST("/calendar/events", handlers.HandleCreateEvent)
		api.PUT("/calendar/events", handlers.HandleUpdateEvent)
		api.DELETE("/calendar/events", handlers.HandleDeleteEvent)
		api.GET("/calendar/users", handlers.HandleListUsers)

		// Enterprise bills
		api.GET("/enterprise/bills", handlers.HandleEnterpriseBills)
		api.GET("/enterprise/bills-debug", handlers.HandleEnterpriseBillsDebug)
		api.GET("/enterprise/bill-events", handlers.HandleBillEvents)

		// Chat + planning
		api.POST("/chat", handlers.HandleChat)
		api.POST("/planning/progress", handlers.HandlePlanningProgress)

		// Snapshot surfaces
		api.GET("/summary", handlers.HandleSummary)
		api.GET("/stream", handlers.HandleStream)
		api.GET("/ws", handlers.HandleWebSocket)
	}

	// Everything else under /api is forwarded to the banking API.
	router.NoRoute(handlers.HandleProxy)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataPoller.Start(ctx)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{Addr: ":" + port, Handler: router}

	go func() {
		logger.Get().Info("server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Get().Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Get().Info("shutting down")
	dataPoller.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Get().Error("server shutdown error", zap.Error(err))
	}
}
