package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"salestracker/constants"
	"salestracker/gen/ent"
	"salestracker/gen/ent/flavor"
	"salestracker/gen/ent/tubmovement"
	"salestracker/internal/entity"
	"salestracker/internal/utils"
)

type InventoryRepository interface {
	ListFlavors(ctx context.Context) ([]*entity.Flavor, error)
	CreateFlavor(ctx context.Context, name string, seasonal bool) (*entity.Flavor, error)
	RecordMovement(ctx context.Context, branchID, flavorID uuid.UUID, kind constants.MovementKind, quantity int, note *string) (*entity.TubMovement, error)
	Balances(ctx context.Context, branchID uuid.UUID) ([]*entity.TubBalance, error)
}

type inventoryRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInventoryRepository(client *ent.Client, logger *slog.Logger) InventoryRepository {
	return &inventoryRepository{
		client: client,
		logger: logger,
	}
}

func (r *inventoryRepository) ListFlavors(ctx context.Context) ([]*entity.Flavor, error) {
	recs, err := r.client.Flavor.Query().Order(flavor.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list flavors", "error", err)
		return nil, err
	}
	result := make([]*entity.Flavor, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToFlavor(rec)
	}
	return result, nil
}

func (r *inventoryRepository) CreateFlavor(ctx context.Context, name string, seasonal bool) (*entity.Flavor, error) {
	rec, err := r.client.Flavor.Create().
		SetName(name).
		SetSeasonal(seasonal).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create flavor", "name", name, "error", err)
		return nil, err
	}
	return utils.ToFlavor(rec), nil
}

func (r *inventoryRepository) RecordMovement(ctx context.Context, branchID, flavorID uuid.UUID, kind constants.MovementKind, quantity int, note *string) (*entity.TubMovement, error) {
	rec, err := r.client.TubMovement.Create().
		SetBranchID(branchID).
		SetFlavorID(flavorID).
		SetKind(string(kind)).
		SetQuantity(quantity).
		SetNillableNote(note).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to record tub movement",
			"branch_id", branchID, "flavor_id", flavorID, "kind", kind, "error", err)
		return nil, err
	}
	return utils.ToTubMovement(rec), nil
}

// Balances folds the ledger into a net on-hand count per flavor. RECEIVE
// and positive ADJUST add; OPEN, WASTE and negative ADJUST subtract.
func (r *inventoryRepository) Balances(ctx context.Context, branchID uuid.UUID) ([]*entity.TubBalance, error) {
	moves, err := r.client.TubMovement.Query().
		Where(tubmovement.BranchID(branchID)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load tub ledger", "branch_id", branchID, "error", err)
		return nil, err
	}

	byFlavor := map[uuid.UUID]int{}
	for _, m := range moves {
		switch constants.MovementKind(m.Kind) {
		case constants.MovementReceive:
			byFlavor[m.FlavorID] += m.Quantity
		case constants.MovementOpen, constants.MovementWaste:
			byFlavor[m.FlavorID] -= m.Quantity
		case constants.MovementAdjust:
			byFlavor[m.FlavorID] += m.Quantity
		}
	}

	flavors, err := r.client.Flavor.Query().Order(flavor.ByName()).All(ctx)
	if err != nil {
		return nil, err
	}
	var result []*entity.TubBalance
	for _, f := range flavors {
		n, ok := byFlavor[f.ID]
		if !ok {
			continue
		}
		result = append(result, &entity.TubBalance{
			FlavorID:   f.ID,
			FlavorName: f.Name,
			OnHand:     n,
		})
	}
	return result, nil
}
