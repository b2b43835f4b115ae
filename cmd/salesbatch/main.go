// salesbatch processes a directory of OCR'd receipt text files as one
// branch's submissions for a single day, using the same queue the daemon
// runs. File naming convention: <window>.txt or <window>-hd.txt, e.g.
// 7pm.txt, closing-hd.txt.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"salestracker/constants"
	"salestracker/internal/async"
	"salestracker/internal/common"
	"salestracker/internal/extraction"
	"salestracker/internal/intake"
	repo "salestracker/internal/repository"
	"salestracker/internal/utils"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir      = flag.String("dir", "", "directory of receipt text files (required)")
		branchID = flag.String("branch-id", "", "branch UUID the receipts belong to (required)")
		dateStr  = flag.String("date", "", "business date YYYY-MM-DD (defaults to today)")
	)
	flag.Parse()

	if *dir == "" || *branchID == "" {
		printError("Error: --dir and --branch-id are required\n")
		os.Exit(1)
	}
	bid, err := uuid.Parse(*branchID)
	if err != nil {
		printError("Error: --branch-id must be a UUID: %v\n", err)
		os.Exit(1)
	}

	date := time.Now().UTC().Truncate(24 * time.Hour)
	if *dateStr != "" {
		if date, err = utils.ParseYMD(*dateStr); err != nil {
			printError("Error: invalid --date, use YYYY-MM-DD: %v\n", err)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if cfg.Database.DSN == "" {
		printError("Error: DB_URL env var is required\n")
		os.Exit(2)
	}

	ctx := context.Background()
	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	salesRepo := repo.NewSalesRepository(entc, logger)
	branchRepo := repo.NewBranchRepository(entc, logger)
	processor := intake.NewProcessor(salesRepo, branchRepo, extraction.NewService(logger), logger)

	queue := async.NewProcessorQueue(processor, logger,
		async.WithWorkers(cfg.App.QueueWorkers),
		async.WithQueueSize(64),
	)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		logger.Error("read dir", "dir", *dir, "error", err)
		os.Exit(1)
	}

	queued := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		window, kind, ok := parseFilename(e.Name())
		if !ok {
			logger.Warn("skipping file with unrecognized name", "file", e.Name())
			continue
		}
		text, err := os.ReadFile(filepath.Join(*dir, e.Name()))
		if err != nil {
			logger.Error("read file", "file", e.Name(), "error", err)
			continue
		}

		_ = queue.Enqueue(ctx, async.Job{Submission: intake.Submission{
			BranchID:     bid,
			BusinessDate: date,
			Window:       window,
			Kind:         kind,
			Text:         string(text),
			SubmittedAt:  time.Now().UTC(),
			TraceID:      uuid.NewString(),
		}})
		queued++
	}

	logger.Info("batch queued", "files", queued, "date", date.Format("2006-01-02"))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	queue.Shutdown(shutdownCtx)
}

// parseFilename maps "<window>[-hd].txt" to a window and kind.
func parseFilename(name string) (string, constants.ReceiptKind, bool) {
	base := strings.TrimSuffix(name, ".txt")
	kind := constants.KindPointOfSale
	if strings.HasSuffix(base, "-hd") {
		kind = constants.KindHomeDelivery
		base = strings.TrimSuffix(base, "-hd")
	}
	if !constants.IsValidWindow(base) {
		return "", "", false
	}
	return base, kind, true
}
