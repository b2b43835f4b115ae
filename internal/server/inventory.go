package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"salestracker/constants"
	"salestracker/internal/repository"

	salespb "salestracker/gen/proto/salestracker/v1"
)

type InventoryServer struct {
	salespb.UnimplementedInventoryServiceServer
	invRepo repository.InventoryRepository
	logger  *slog.Logger
}

func NewInventoryServer(invRepo repository.InventoryRepository, logger *slog.Logger) *InventoryServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &InventoryServer{invRepo: invRepo, logger: logger}
}

func (s *InventoryServer) ListFlavors(ctx context.Context, _ *salespb.ListFlavorsRequest) (*salespb.ListFlavorsResponse, error) {
	fs, err := s.invRepo.ListFlavors(ctx)
	if err != nil {
		s.logger.Error("failed to list flavors", "error", err)
		return nil, status.Errorf(codes.Internal, "list flavors: %v", err)
	}
	out := make([]*salespb.Flavor, 0, len(fs))
	for _, f := range fs {
		out = append(out, &salespb.Flavor{
			Id:       f.ID.String(),
			Name:     f.Name,
			Seasonal: f.Seasonal,
		})
	}
	return &salespb.ListFlavorsResponse{Flavors: out}, nil
}

func (s *InventoryServer) CreateFlavor(ctx context.Context, req *salespb.CreateFlavorRequest) (*salespb.CreateFlavorResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	f, err := s.invRepo.CreateFlavor(ctx, name, req.GetSeasonal())
	if err != nil {
		s.logger.Error("failed to create flavor", "name", name, "error", err)
		return nil, status.Errorf(codes.Internal, "create flavor: %v", err)
	}
	return &salespb.CreateFlavorResponse{Flavor: &salespb.Flavor{
		Id:       f.ID.String(),
		Name:     f.Name,
		Seasonal: f.Seasonal,
	}}, nil
}

func (s *InventoryServer) RecordMovement(ctx context.Context, req *salespb.RecordMovementRequest) (*salespb.RecordMovementResponse, error) {
	branchID, err := uuid.Parse(strings.TrimSpace(req.GetBranchId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "branch_id must be a UUID")
	}
	flavorID, err := uuid.Parse(strings.TrimSpace(req.GetFlavorId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "flavor_id must be a UUID")
	}

	kind := constants.MovementKind(req.GetKind())
	valid := false
	for _, k := range constants.MovementKinds {
		if k == string(kind) {
			valid = true
			break
		}
	}
	if !valid {
		return nil, status.Errorf(codes.InvalidArgument, "kind must be one of %s", strings.Join(constants.MovementKinds, ", "))
	}
	qty := int(req.GetQuantity())
	if qty == 0 {
		return nil, status.Error(codes.InvalidArgument, "quantity must be non-zero")
	}
	if qty < 0 && kind != constants.MovementAdjust {
		return nil, status.Error(codes.InvalidArgument, "only ADJUST movements may be negative")
	}

	var note *string
	if n := strings.TrimSpace(req.GetNote()); n != "" {
		note = &n
	}

	m, err := s.invRepo.RecordMovement(ctx, branchID, flavorID, kind, qty, note)
	if err != nil {
		s.logger.Error("failed to record movement", "branch_id", branchID, "flavor_id", flavorID, "error", err)
		return nil, status.Errorf(codes.Internal, "record movement: %v", err)
	}
	return &salespb.RecordMovementResponse{MovementId: m.ID.String()}, nil
}

func (s *InventoryServer) GetBalances(ctx context.Context, req *salespb.GetBalancesRequest) (*salespb.GetBalancesResponse, error) {
	branchID, err := uuid.Parse(strings.TrimSpace(req.GetBranchId()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "branch_id must be a UUID")
	}
	bs, err := s.invRepo.Balances(ctx, branchID)
	if err != nil {
		s.logger.Error("failed to load balances", "branch_id", branchID, "error", err)
		return nil, status.Errorf(codes.Internal, "load balances: %v", err)
	}
	out := make([]*salespb.TubBalance, 0, len(bs))
	for _, b := range bs {
		out = append(out, &salespb.TubBalance{
			FlavorId:   b.FlavorID.String(),
			FlavorName: b.FlavorName,
			OnHand:     int32(b.OnHand),
		})
	}
	return &salespb.GetBalancesResponse{Balances: out}, nil
}
