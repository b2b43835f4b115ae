package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"salestracker/internal/repository"
	"salestracker/internal/utils"

	salespb "salestracker/gen/proto/salestracker/v1"
)

type BranchesServer struct {
	salespb.UnimplementedBranchesServiceServer
	branchRepo repository.BranchRepository
	logger     *slog.Logger
}

func NewBranchesServer(branchRepo repository.BranchRepository, logger *slog.Logger) *BranchesServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &BranchesServer{branchRepo: branchRepo, logger: logger}
}

func (s *BranchesServer) ListTerritories(ctx context.Context, _ *salespb.ListTerritoriesRequest) (*salespb.ListTerritoriesResponse, error) {
	ts, err := s.branchRepo.ListTerritories(ctx)
	if err != nil {
		s.logger.Error("failed to list territories", "error", err)
		return nil, status.Errorf(codes.Internal, "list territories: %v", err)
	}
	out := make([]*salespb.Territory, 0, len(ts))
	for _, t := range ts {
		out = append(out, utils.ToPBTerritory(t))
	}
	return &salespb.ListTerritoriesResponse{Territories: out}, nil
}

func (s *BranchesServer) ListAreas(ctx context.Context, req *salespb.ListAreasRequest) (*salespb.ListAreasResponse, error) {
	territoryID, err := uuid.Parse(strings.TrimSpace(req.GetTerritoryId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "territory_id must be a UUID")
	}
	as, err := s.branchRepo.ListAreas(ctx, territoryID)
	if err != nil {
		s.logger.Error("failed to list areas", "territory_id", territoryID, "error", err)
		return nil, status.Errorf(codes.Internal, "list areas: %v", err)
	}
	out := make([]*salespb.Area, 0, len(as))
	for _, a := range as {
		out = append(out, utils.ToPBArea(a))
	}
	return &salespb.ListAreasResponse{Areas: out}, nil
}

func (s *BranchesServer) ListBranches(ctx context.Context, req *salespb.ListBranchesRequest) (*salespb.ListBranchesResponse, error) {
	var areaID *uuid.UUID
	if aid := strings.TrimSpace(req.GetAreaId()); aid != "" {
		id, err := uuid.Parse(aid)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "area_id must be a UUID")
		}
		areaID = &id
	}

	bs, err := s.branchRepo.ListBranches(ctx, areaID)
	if err != nil {
		s.logger.Error("failed to list branches", "error", err)
		return nil, status.Errorf(codes.Internal, "list branches: %v", err)
	}
	out := make([]*salespb.Branch, 0, len(bs))
	for _, b := range bs {
		out = append(out, utils.ToPBBranch(b))
	}
	return &salespb.ListBranchesResponse{Branches: out}, nil
}

func (s *BranchesServer) CreateBranch(ctx context.Context, req *salespb.CreateBranchRequest) (*salespb.CreateBranchResponse, error) {
	areaID, err := uuid.Parse(strings.TrimSpace(req.GetAreaId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "area_id must be a UUID")
	}
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	var code *string
	if c := strings.TrimSpace(req.GetCode()); c != "" {
		code = &c
	}

	b, err := s.branchRepo.CreateBranch(ctx, areaID, name, code)
	if err != nil {
		s.logger.Error("failed to create branch", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create branch: %v", err)
	}
	s.logger.Info("branch created", "branch_id", b.ID, "name", b.Name)
	return &salespb.CreateBranchResponse{Branch: utils.ToPBBranch(b)}, nil
}
