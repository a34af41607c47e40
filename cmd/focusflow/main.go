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

	"focusflow/internal/config"
	"focusflow/internal/cortex"
	"focusflow/internal/notify"
	"focusflow/internal/repository"
	"focusflow/internal/server"
	"focusflow/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	taskRepo := repository.NewTaskRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	taskSvc := service.NewTaskService(taskRepo)
	sessionSvc := service.NewSessionService(sessionRepo)

	var cortexClient *cortex.Client
	if cfg.Cortex.Enabled() {
		cortexClient = cortex.NewClient(cfg.Cortex.AccountURL, cfg.Cortex.APIKey, cfg.Cortex.Model)
		log.Println("[info] cortex integration enabled")
	} else {
		log.Println("[info] cortex not configured, using offline parser")
	}
	fallback := cortex.NewFallback(nil)

	var notifier *notify.Telegram
	if cfg.TelegramEnabled() {
		notifier, err = notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
	}

	var journalSvc *service.JournalService
	var coachSvc *service.CoachService
	if cortexClient != nil {
		journalSvc = service.NewJournalService(taskSvc, cortexClient, fallback)
		coachSvc = service.NewCoachService(cortexClient, fallback, notifier)
	} else {
		journalSvc = service.NewJournalService(taskSvc, nil, fallback)
		coachSvc = service.NewCoachService(nil, fallback, notifier)
	}

	digestSvc := service.NewDigestService(taskRepo, sessionRepo, sessionSvc)

	scheduler := service.NewSchedulerService(time.Local)
	if notifier != nil {
		if _, err := scheduler.ScheduleDaily(cfg.DigestTime, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			digest, err := digestSvc.Daily(jobCtx, time.Now())
			if err != nil {
				log.Printf("digest: %v", err)
				return
			}
			if err := notifier.Send(digest); err != nil {
				log.Printf("digest delivery: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule digest: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := server.NewRouter(
		server.NewTaskController(taskSvc),
		server.NewSessionController(sessionSvc),
		server.NewJournalController(journalSvc, coachSvc),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[info] focus flow listening on %s", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped with error: %v", err)
		}
	}

	log.Println("Shutdown complete.")
}
