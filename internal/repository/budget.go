package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"salestracker/gen/ent"
	"salestracker/gen/ent/budgetday"
	"salestracker/internal/entity"
	"salestracker/internal/utils"
	"salestracker/internal/vision"
)

type BudgetRepository interface {
	UpsertDay(ctx context.Context, branchID uuid.UUID, day *entity.BudgetDay) (*entity.BudgetDay, error)
	UpsertSheet(ctx context.Context, branchID uuid.UUID, month time.Time, sheet *vision.BudgetSheet) (int, error)
	GetDay(ctx context.Context, branchID uuid.UUID, date time.Time) (*entity.BudgetDay, error)
	ListMonth(ctx context.Context, branchID uuid.UUID, month time.Time) ([]*entity.BudgetDay, error)
}

type budgetRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewBudgetRepository(client *ent.Client, logger *slog.Logger) BudgetRepository {
	return &budgetRepository{
		client: client,
		logger: logger,
	}
}

func (r *budgetRepository) UpsertDay(ctx context.Context, branchID uuid.UUID, day *entity.BudgetDay) (*entity.BudgetDay, error) {
	_, err := r.client.BudgetDay.Delete().
		Where(
			budgetday.BranchID(branchID),
			budgetday.BusinessDate(day.BusinessDate),
		).
		Exec(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := r.client.BudgetDay.Create().
		SetBranchID(branchID).
		SetBusinessDate(day.BusinessDate).
		SetWeekday(day.Weekday).
		SetBudgetAmount(day.BudgetAmount).
		SetNillableBudgetGuestCount(day.BudgetGuestCount).
		SetNillableLySales(day.LYSales).
		SetNillableLyGuestCount(day.LYGuestCount).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to upsert budget day",
			"branch_id", branchID, "date", day.BusinessDate, "error", err)
		return nil, err
	}
	return utils.ToBudgetDay(rec), nil
}

// UpsertSheet writes every populated day of a decoded budget sheet for the
// given month. Rows with no budget amount are skipped, not zeroed.
func (r *budgetRepository) UpsertSheet(ctx context.Context, branchID uuid.UUID, month time.Time, sheet *vision.BudgetSheet) (int, error) {
	saved := 0
	for _, d := range sheet.Days {
		if d.Budget == nil {
			continue
		}
		day := &entity.BudgetDay{
			BusinessDate: time.Date(month.Year(), month.Month(), d.Day, 0, 0, 0, 0, time.UTC),
			Weekday:      d.Weekday,
			BudgetAmount: *d.Budget,
			LYSales:      d.LYSales,
			LYGuestCount: d.LYGuestCount,
		}
		// Sheets carry no budgeted guest count per day; approximate it
		// from LY footfall so the advisor has a target to project from.
		if d.LYGuestCount != nil {
			day.BudgetGuestCount = d.LYGuestCount
		}
		if _, err := r.UpsertDay(ctx, branchID, day); err != nil {
			return saved, err
		}
		saved++
	}
	r.logger.Info("budget sheet saved", "branch_id", branchID, "month", month.Format("2006-01"), "days", saved)
	return saved, nil
}

func (r *budgetRepository) GetDay(ctx context.Context, branchID uuid.UUID, date time.Time) (*entity.BudgetDay, error) {
	rec, err := r.client.BudgetDay.Query().
		Where(
			budgetday.BranchID(branchID),
			budgetday.BusinessDate(date),
		).
		Only(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToBudgetDay(rec), nil
}

func (r *budgetRepository) ListMonth(ctx context.Context, branchID uuid.UUID, month time.Time) ([]*entity.BudgetDay, error) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	recs, err := r.client.BudgetDay.Query().
		Where(
			budgetday.BranchID(branchID),
			budgetday.BusinessDateGTE(first),
			budgetday.BusinessDateLTE(last),
		).
		Order(budgetday.ByBusinessDate()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list budget month", "branch_id", branchID, "error", err)
		return nil, err
	}
	result := make([]*entity.BudgetDay, len(recs))
	for i, rec := range recs {
		result[i] = utils.ToBudgetDay(rec)
	}
	return result, nil
}
