package main

import (
	"Gobang/config"
	pgconfig "Gobang/config/postgres"
	_ "Gobang/config/swagger"
	"Gobang/middleware"
	"Gobang/routes"
	"Gobang/services/history"
	"Gobang/services/players"
	"Gobang/services/redis"
	"Gobang/services/rooms"
	"Gobang/services/session"
	"Gobang/services/socket_io"
	socketio_types "Gobang/services/socket_io/types"
	"Gobang/services/sweeper"
	"context"
	"errors"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// @title Gobang API
// @version 1.0
// @description Gin-Gonic server for the Gobang room server
// @BasePath /
func main() {
	// A missing .env is fine, the environment may already be set
	_ = godotenv.Load()
	cfg := config.Load()

	log.SetLevel(cfg.LogLevel)
	if cfg.Prod {
		log.SetFormatter(&log.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.Info("Setting up server...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	var workers sync.WaitGroup
	run := func(start func(context.Context)) {
		workers.Add(1)
		go func() {
			defer workers.Done()
			start(ctx)
		}()
	}

	registry := rooms.NewRegistry()
	directory := players.NewDirectory()
	sockets := socketio_types.NewSocketServer()

	coordinatorOptions := session.NewCoordinatorOptions{
		Registry:  registry,
		Directory: directory,
		Transport: sockets,
	}
	routesOptions := routes.RoutesOptions{
		Rooms:     registry,
		Directory: directory,
	}

	// Lobby mirror, only when redis is configured
	if cfg.RedisURL != "" {
		redisClient, err := config.Connect_redis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Error connecting to Redis: %v", err)
		}
		defer redis.CloseRedis(redisClient)

		mirror := redis.NewLobbyMirror(redisClient)
		coordinatorOptions.Lobby = mirror
		routesOptions.Lobby = redisClient
		run(mirror.Start)
	} else {
		log.Info("REDIS_URL not set, lobby mirror disabled")
	}

	// Match history, only when postgres is configured
	if cfg.Postgres.Enabled() {
		gormDB, err := pgconfig.ConnectGORM(cfg.Postgres)
		if err != nil {
			log.Fatalf("Error connecting to PostgreSQL: %v", err)
		}
		// Only migrate in development or during deployment
		if cfg.Postgres.Migrate {
			log.Info("Migrating PostgreSQL database...")
			if err := pgconfig.MigrateDatabase(gormDB); err != nil {
				log.Warnf("Database migration failed: %v", err)
			}
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			log.Fatalf("Error reading GORM PostgreSQL instance: %v", err)
		}
		defer sqlDB.Close()

		store := history.NewStore(gormDB)
		recorder := history.NewStoreRecorder(store)
		coordinatorOptions.Recorder = recorder
		routesOptions.History = store
		run(recorder.Start)
	} else {
		log.Info("POSTGRES_HOST not set, match history disabled")
	}

	coordinator := session.NewCoordinator(coordinatorOptions)
	processor := session.NewProcessor(coordinator, cfg.CommandQueueSize)
	routesOptions.Commands = processor
	run(processor.Start)

	settlements := sweeper.NewSweeper(sweeper.NewSweeperOptions{
		Source:   registry,
		Resetter: processor,
		Interval: cfg.SweepInterval,
	})
	run(settlements.Start)

	r := gin.New()
	middleware.SetUpMiddleware(r, cfg)
	routes.SetupRoutes(r, routesOptions)

	sio := (*socket_io.MySocketServer)(sockets)
	sio.Start(r, processor, directory, cfg.CorsOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		var err error
		if cfg.UseHTTPS {
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("Error starting server: %v", err)
			stop()
		}
	}()
	log.Infof("Server started on port %s", cfg.Port)

	<-ctx.Done()
	log.Info("Shutting down...")

	sio.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
	workers.Wait()
	log.Info("Server stopped")
}
