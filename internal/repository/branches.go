package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"salestracker/gen/ent"
	"salestracker/gen/ent/area"
	"salestracker/gen/ent/branch"
	"salestracker/gen/ent/territory"
	"salestracker/internal/entity"
	"salestracker/internal/utils"
)

type BranchRepository interface {
	ListTerritories(ctx context.Context) ([]*entity.Territory, error)
	ListAreas(ctx context.Context, territoryID uuid.UUID) ([]*entity.Area, error)
	ListBranches(ctx context.Context, areaID *uuid.UUID) ([]*entity.Branch, error)
	GetBranch(ctx context.Context, id uuid.UUID) (*entity.Branch, error)
	CreateBranch(ctx context.Context, areaID uuid.UUID, name string, code *string) (*entity.Branch, error)
}

type branchRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBranchRepository(client *ent.Client, logger *slog.Logger) BranchRepository {
	return &branchRepository{
		client: client,
		logger: logger,
	}
}

func (r *branchRepository) ListTerritories(ctx context.Context) ([]*entity.Territory, error) {
	recs, err := r.client.Territory.Query().Order(territory.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list territories", "error", err)
		return nil, err
	}
	result := make([]*entity.Territory, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToTerritory(rec)
	}
	return result, nil
}

func (r *branchRepository) ListAreas(ctx context.Context, territoryID uuid.UUID) ([]*entity.Area, error) {
	recs, err := r.client.Area.Query().
		Where(area.TerritoryID(territoryID)).
		Order(area.ByName()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list areas", "territory_id", territoryID, "error", err)
		return nil, err
	}
	result := make([]*entity.Area, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToArea(rec)
	}
	return result, nil
}

func (r *branchRepository) ListBranches(ctx context.Context, areaID *uuid.UUID) ([]*entity.Branch, error) {
	q := r.client.Branch.Query().Where(branch.Active(true))
	if areaID != nil {
		q = q.Where(branch.AreaID(*areaID))
	}
	recs, err := q.Order(branch.ByName()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list branches", "error", err)
		return nil, err
	}
	result := make([]*entity.Branch, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToBranch(rec)
	}
	return result, nil
}

func (r *branchRepository) GetBranch(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	rec, err := r.client.Branch.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get branch", "branch_id", id, "error", err)
		return nil, err
	}
	return utils.ToBranch(rec), nil
}

func (r *branchRepository) CreateBranch(ctx context.Context, areaID uuid.UUID, name string, code *string) (*entity.Branch, error) {
	rec, err := r.client.Branch.Create().
		SetAreaID(areaID).
		SetName(name).
		SetNillableCode(code).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create branch", "name", name, "error", err)
		return nil, err
	}
	return utils.ToBranch(rec), nil
}
