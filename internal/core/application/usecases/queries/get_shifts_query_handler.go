package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShiftsQueryHandler retrieves recent shifts from the database.
type GetShiftsQueryHandler struct {
	db *gorm.DB
}

// NewGetShiftsQueryHandler creates a handler for shift history queries.
func NewGetShiftsQueryHandler(db *gorm.DB) GetShiftsQueryHandler {
	return GetShiftsQueryHandler{db: db}
}

// Handle executes the query. Shifts come back newest first, the active one
// (if any) included.
func (h GetShiftsQueryHandler) Handle(ctx context.Context, query GetShiftsQuery) ([]ShiftResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(
		shiftSelect+` ORDER BY started_at DESC LIMIT ?`, query.Limit(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shifts := make([]ShiftResponse, 0, query.Limit())
	for rows.Next() {
		resp, scanErr := scanShiftRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shifts = append(shifts, resp)
	}

	return shifts, rows.Err()
}
