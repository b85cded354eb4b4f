package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"camp-admin/backend/internal/config"
	"camp-admin/backend/internal/domain/attendance"
	"camp-admin/backend/internal/domain/child"
	"camp-admin/backend/internal/domain/contact"
	"camp-admin/backend/internal/domain/crew"
	"camp-admin/backend/internal/domain/export"
	"camp-admin/backend/internal/domain/files"
	"camp-admin/backend/internal/domain/shift"
	"camp-admin/backend/internal/firebase"
	apihttp "camp-admin/backend/internal/http"
	"camp-admin/backend/internal/lock"
	"camp-admin/backend/internal/logging"
	"camp-admin/backend/internal/middleware"
	"camp-admin/backend/internal/report"
)

// release is stamped at build time: -ldflags "-X main.release=<id>".
var release = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", logging.Err(err))
		os.Stderr.WriteString(config.Usage())
		os.Exit(1)
	}

	log := logging.New(os.Stdout, cfg.Env)
	slog.SetDefault(log)
	log.Info("starting API", slog.String("release", release), slog.String("env", cfg.Env), slog.String("project", cfg.ProjectID))

	ctx := context.Background()
	clients, err := firebase.NewClients(ctx, cfg, log)
	if err != nil {
		log.Error("firebase init failed", logging.Err(err))
		os.Exit(1)
	}
	defer clients.Close()

	var locker lock.Locker = lock.NewLocal()
	if cfg.RedisAddr != "" {
		rl, err := lock.NewRedisLock(ctx, cfg.RedisAddr)
		if err != nil {
			log.Error("failed to init redis lock", logging.Err(err))
			os.Exit(1)
		}
		locker = rl
		log.Info("redis lock enabled", slog.String("addr", cfg.RedisAddr))
	} else {
		log.Info("REDIS_ADDR not set, export locks are per instance")
	}
	defer locker.Close()

	// Repositories
	childRepo := child.NewRepo(clients.Firestore)
	crewRepo := crew.NewRepo(clients.Firestore)
	contactRepo := contact.NewRepo(clients.Firestore)
	shiftRepo := shift.NewRepo(clients.Firestore)
	attendanceRepo := attendance.NewRepo(clients.Firestore)
	filesRepo := files.NewRepo(clients.Firestore)

	// Services
	attendanceSvc := attendance.NewService(attendanceRepo)
	exportSvc := export.NewService(childRepo, crewRepo, contactRepo, shiftRepo, attendanceSvc,
		report.NewBuilder(log.With(slog.String("component", "report"))))
	filesSvc := files.NewService(filesRepo,
		files.NewGCS(clients.Storage, clients.IAM, cfg.StorageBucket, cfg.SignedURLServiceAccountEmail),
		exportSvc, locker,
		files.Options{LockTTL: cfg.ExportLockTTL, URLTTL: cfg.SignedURLTTL, Log: log.With(slog.String("component", "files"))})

	router := apihttp.NewRouter(apihttp.RouterDeps{
		Cfg:           cfg,
		Log:           log,
		Auth:          middleware.WithAuth(clients.Auth),
		Exports:       exportSvc,
		Files:         filesSvc,
		AttendanceSvc: attendanceSvc,
		Release:       release,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("API listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		log.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil {
			log.Error("HTTP server stopped unexpectedly", logging.Err(err))
		}
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	log.Info("shutting down", slog.String("timeout", cfg.HTTPServer.ShutdownTimeout.String()))
	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Error("server shutdown failed", logging.Err(err))
	}
}
