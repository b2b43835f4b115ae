package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	v1 "salestracker/gen/proto/salestracker/v1"
	"salestracker/internal/common"
	"salestracker/internal/export"
	"salestracker/internal/extraction"
	"salestracker/internal/intake"
	repo "salestracker/internal/repository"
	svc "salestracker/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, cfg.Database.DialTimeout); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	branchRepo := repo.NewBranchRepository(entc, logger)
	salesRepo := repo.NewSalesRepository(entc, logger)
	budgetRepo := repo.NewBudgetRepository(entc, logger)
	invRepo := repo.NewInventoryRepository(entc, logger)

	extractor := extraction.NewService(logger)
	processor := intake.NewProcessor(salesRepo, branchRepo, extractor, logger)
	exportSvc := export.NewService(salesRepo, branchRepo, logger)

	v1.RegisterExtractionServiceServer(grpcServer, svc.NewExtractionServer(extractor, logger))
	v1.RegisterSalesServiceServer(grpcServer, svc.NewSalesServer(processor, salesRepo, exportSvc, logger))
	v1.RegisterBranchesServiceServer(grpcServer, svc.NewBranchesServer(branchRepo, logger))
	v1.RegisterBudgetServiceServer(grpcServer, svc.NewBudgetServer(budgetRepo, salesRepo, logger))
	v1.RegisterInventoryServiceServer(grpcServer, svc.NewInventoryServer(invRepo, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("salestracker listening", "addr", addr, "timezone", cfg.App.Timezone)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
