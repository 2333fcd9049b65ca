package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/joblens/joblens/config"
	"github.com/joblens/joblens/internal/logger"
	"github.com/joblens/joblens/internal/providers/registry"
	"github.com/joblens/joblens/internal/providers/search"
	pgrepo "github.com/joblens/joblens/internal/repositories/postgres"
	"github.com/joblens/joblens/internal/scheduler"
	"github.com/joblens/joblens/internal/workers"
)

func main() {
	_ = godotenv.Load()
	l := logger.New()

	if err := config.InitPostgres(); err != nil {
		log.Fatalf("PostgreSQL init error: %v", err)
	}
	if err := config.Migrate(); err != nil {
		log.Fatalf("PostgreSQL migration error: %v", err)
	}

	maxPages := 8
	if v := os.Getenv("MAX_PAGES_PER_QUERY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			maxPages = n
		}
	}

	db := config.PostgresDB
	worker := &workers.ExtractWorker{
		Configs:   pgrepo.NewConfigRepo(db),
		Postings:  pgrepo.NewPostingRepo(db),
		Links:     pgrepo.NewLinkRepo(db),
		Companies: pgrepo.NewCompanyRepo(db),
		Search: search.NewSerpClient(
			os.Getenv("SEARCH_API_URL"),
			os.Getenv("SEARCH_API_KEY"),
			os.Getenv("SEARCH_LOCALE"),
		),
		Registry: registry.NewClient(os.Getenv("REGISTRY_API_URL"), 500*time.Millisecond),
		Logger:   l,
		MaxPages: maxPages,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// With EXTRACT_CRON set the job keeps running on a schedule;
	// without it this is a plain one-shot batch.
	if spec := os.Getenv("EXTRACT_CRON"); spec != "" {
		s := scheduler.New(worker, spec, l)
		if err := s.Start(ctx); err != nil {
			log.Fatalf("scheduler error: %v", err)
		}
		<-ctx.Done()
		s.Stop()
		return
	}

	if err := worker.Run(ctx); err != nil {
		l.WithError(err).Error("extraction interrupted")
	}
	l.Info("extraction finished")
}
