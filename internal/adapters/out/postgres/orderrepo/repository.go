package orderrepo

import (
	"context"
	"errors"
	"time"

	"foodtruck/internal/core/domain/model/kernel"
	"foodtruck/internal/core/domain/model/order"
	"foodtruck/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the lifecycle fields of an existing order. Line items never
// change after creation, so only the order row is written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("status", "paid", "ready_at", "completed_at").
		Updates(map[string]any{
			"status":       dto.Status,
			"paid":         dto.Paid,
			"ready_at":     dto.ReadyAt,
			"completed_at": dto.CompletedAt,
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

// Get retrieves an order by ID with its line items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves an order and locks its row until the surrounding
// transaction ends. Every mutation path reads through this, so concurrent
// status changes on the same order serialize instead of both passing the
// same transition check.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.get(ctx, id, true)
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, lock bool) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if lock {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	// Items load separately so the row lock stays on the orders table only.
	err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("id").
		Find(&dto.Items).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// NextOrderNumber atomically allocates the next order number for the given
// calendar day. A single upsert bumps the day's counter row and returns the
// new value, so concurrent creations never share a number and each day
// restarts at 1 when its first order inserts a fresh row.
func (r *GormOrderRepository) NextOrderNumber(ctx context.Context, day time.Time) (int, error) {
	var number int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (day, value)
		VALUES (?, 1)
		ON CONFLICT (day) DO UPDATE SET value = order_counters.value + 1
		RETURNING value
	`, day.Format("2006-01-02")).Scan(&number).Error
	if err != nil {
		return 0, err
	}

	return number, nil
}
