// Package main seeds the curriculum database with the sample curriculum or
// a YAML fixture and bootstraps the admin account.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rpggio/curriculum/internal/config"
	"github.com/rpggio/curriculum/internal/domain/admin"
	"github.com/rpggio/curriculum/internal/domain/curriculum"
	"github.com/rpggio/curriculum/internal/domain/seedlog"
	"github.com/rpggio/curriculum/internal/sqlite"
)

func main() {
	var fixturePath string
	var dump bool
	var history int

	flag.StringVar(&fixturePath, "fixture", "", "seed from a YAML fixture instead of the built-in sample")
	flag.BoolVar(&dump, "dump", false, "write the curriculum as a YAML fixture to stdout and exit")
	flag.IntVar(&history, "history", 0, "print the N most recent seed log entries and exit")
	flag.Parse()

	if err := run(fixturePath, dump, history); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(fixturePath string, dump bool, history int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if dump {
		journeys, err := loadJourneys(fixturePath, curriculum.NewAllocator())
		if err != nil {
			return err
		}
		return curriculum.WriteFixture(os.Stdout, journeys)
	}

	db, err := sqlite.Open(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	seedLogSvc := seedlog.NewService(sqlite.NewSeedLogRepository(db), logger)
	if history > 0 {
		return printHistory(ctx, seedLogSvc, history)
	}

	result, err := seedDatabase(ctx, db, uuid.NewString(), cfg.Admin, fixturePath, logger)
	if err != nil {
		return err
	}
	logger.Info("seed complete", "run_id", result.RunID, "created", len(result.Created), "skipped", len(result.Skipped))
	return nil
}

// seedDatabase ensures the admin account and seeds journeys, logging every
// step under runID.
func seedDatabase(ctx context.Context, db *sqlite.DB, runID string, adminCfg config.AdminConfig, fixturePath string, logger *slog.Logger) (*curriculum.SeedResult, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	seedLogSvc := seedlog.NewService(sqlite.NewSeedLogRepository(db), logger)
	curriculumSvc := curriculum.NewService(sqlite.NewCurriculumRepository(db), seedLogSvc, logger)
	adminSvc := admin.NewService(sqlite.NewAdminRepository(db), logger)

	if err := ensureAdmin(ctx, runID, adminCfg, adminSvc, seedLogSvc, logger); err != nil {
		return nil, err
	}

	// New ids continue after whatever is already stored.
	existing, err := curriculumSvc.Tree(ctx)
	if err != nil {
		return nil, err
	}
	ids := curriculum.NewAllocator()
	ids.SkipPast(existing.MaxID())

	journeys, err := loadJourneys(fixturePath, ids)
	if err != nil {
		return nil, err
	}

	result, err := curriculumSvc.SeedRun(ctx, runID, journeys)
	if err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}
	return result, nil
}

func loadJourneys(fixturePath string, ids *curriculum.Allocator) ([]curriculum.Journey, error) {
	if fixturePath == "" {
		return curriculum.BuildSampleCurriculum(ids)
	}
	f, err := os.Open(fixturePath)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()
	return curriculum.LoadFixture(f, curriculum.NewBuilder(ids))
}

func ensureAdmin(ctx context.Context, runID string, cfg config.AdminConfig, svc *admin.Service, log *seedlog.Service, logger *slog.Logger) error {
	if cfg.Password == "" {
		logger.Warn("admin password not set, skipping admin account", "email", cfg.Email)
		return nil
	}
	user, created, err := svc.Ensure(ctx, admin.EnsureRequest{Email: cfg.Email, Password: cfg.Password})
	if err != nil {
		return fmt.Errorf("admin account: %w", err)
	}
	summary := "admin account exists"
	if created {
		summary = "created admin account"
	}
	if err := log.Log(ctx, &seedlog.Entry{RunID: runID, Kind: seedlog.KindAdminEnsured, Summary: fmt.Sprintf("%s %s", summary, user.Email)}); err != nil {
		logger.Warn("failed to write seed log", "error", err)
	}
	return nil
}

func printHistory(ctx context.Context, svc *seedlog.Service, limit int) error {
	entries, err := svc.Recent(ctx, seedlog.ListOptions{Limit: limit})
	if err != nil {
		return fmt.Errorf("seed history: %w", err)
	}
	for _, e := range entries {
		fmt.Printf("%s  %-16s %-30s %s\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Kind, e.Slug, e.Summary)
	}
	return nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
