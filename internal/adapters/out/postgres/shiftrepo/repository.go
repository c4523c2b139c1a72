package shiftrepo

import (
	"context"
	"errors"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/shift"
	"foodtruck/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormShiftRepository implements ShiftRepository using GORM.
type GormShiftRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShiftRepository creates a new GORM shift repository.
func NewGormShiftRepository(db *gorm.DB, tracker aggregateTracker) *GormShiftRepository {
	return &GormShiftRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a newly started shift. A racing second start trips the partial
// unique index on the active flag and surfaces as ShiftAlreadyActive.
func (r *GormShiftRepository) Add(ctx context.Context, aggregate *shift.Shift) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewShiftAlreadyActiveError(aggregate.StaffName())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shift's running totals or closing state.
func (r *GormShiftRepository) Update(ctx context.Context, aggregate *shift.Shift) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ShiftDTO{}).
		Where("id = ?", dto.ID).
		Select(
			"ended_at", "is_active", "ending_cash", "total_orders",
			"total_revenue", "total_tips", "cash_sales", "card_sales", "notes",
		).
		Updates(map[string]any{
			"ended_at":      dto.EndedAt,
			"is_active":     dto.IsActive,
			"ending_cash":   dto.EndingCash,
			"total_orders":  dto.TotalOrders,
			"total_revenue": dto.TotalRevenue,
			"total_tips":    dto.TotalTips,
			"cash_sales":    dto.CashSales,
			"card_sales":    dto.CardSales,
			"notes":         dto.Notes,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActive retrieves the currently active shift.
func (r *GormShiftRepository) GetActive(ctx context.Context) (*shift.Shift, error) {
	return r.getActive(ctx, false)
}

// GetActiveForUpdate retrieves the active shift and locks its row until the
// surrounding transaction ends. Payment recording and close both read
// through this, so their read-modify-write cycles serialize: concurrent
// payments never lose an increment, and a payment racing a close either
// lands in the closing totals or sees no active shift.
func (r *GormShiftRepository) GetActiveForUpdate(ctx context.Context) (*shift.Shift, error) {
	return r.getActive(ctx, true)
}

func (r *GormShiftRepository) getActive(ctx context.Context, lock bool) (*shift.Shift, error) {
	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto ShiftDTO
	if err := tx.First(&dto, "is_active").Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active shift", nil)
		}
		return nil, err
	}

	return toDomain(dto)
}
