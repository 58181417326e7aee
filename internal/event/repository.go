// AngelaMos | 2026
// repository.go

package event

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/gigbook/internal/core"
)

type Repository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
	IDsByContract(ctx context.Context, contractID string) ([]string, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const eventColumns = `id, name, contract_id, profile_offeror_id,
	profile_offeree_id, contact_person, contact_phone, date, duration,
	start_time, end_time, arrive, stage_set, stage_check, catering_open,
	catering_close, meal_time, meal_location_name, meal_location_address,
	accommodation_id, created_at, updated_at`

func (r *repository) Create(ctx context.Context, event *Event) error {
	query := `
		INSERT INTO events (id, name, contract_id, profile_offeror_id,
		                    profile_offeree_id, contact_person, contact_phone,
		                    date, duration, start_time, end_time, arrive,
		                    stage_set, stage_check, catering_open,
		                    catering_close, meal_time, meal_location_name,
		                    meal_location_address, accommodation_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, event, query,
		event.ID,
		event.Name,
		event.ContractID,
		event.OfferorProfileID,
		event.OffereeProfileID,
		event.ContactPerson,
		event.ContactPhone,
		event.Date,
		event.Duration,
		event.Start,
		event.End,
		event.Arrive,
		event.StageSet,
		event.StageCheck,
		event.CateringOpen,
		event.CateringClose,
		event.MealTime,
		event.MealLocationName,
		event.MealLocationAddress,
		event.AccommodationID,
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events WHERE id = $1`, eventColumns)

	var event Event
	err := r.db.GetContext(ctx, &event, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get event: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	return &event, nil
}

func (r *repository) Update(ctx context.Context, event *Event) error {
	query := `
		UPDATE events
		SET name = $2, profile_offeror_id = $3, profile_offeree_id = $4,
		    contact_person = $5, contact_phone = $6, date = $7, duration = $8,
		    start_time = $9, end_time = $10, arrive = $11, stage_set = $12,
		    stage_check = $13, catering_open = $14, catering_close = $15,
		    meal_time = $16, meal_location_name = $17,
		    meal_location_address = $18, accommodation_id = $19,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &event.UpdatedAt, query,
		event.ID,
		event.Name,
		event.OfferorProfileID,
		event.OffereeProfileID,
		event.ContactPerson,
		event.ContactPhone,
		event.Date,
		event.Duration,
		event.Start,
		event.End,
		event.Arrive,
		event.StageSet,
		event.StageCheck,
		event.CateringOpen,
		event.CateringClose,
		event.MealTime,
		event.MealLocationName,
		event.MealLocationAddress,
		event.AccommodationID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update event: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM events WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete event: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) IDsByContract(
	ctx context.Context,
	contractID string,
) ([]string, error) {
	var ids []string
	err := r.db.SelectContext(ctx, &ids,
		`SELECT id FROM events WHERE contract_id = $1 ORDER BY date, start_time`,
		contractID,
	)
	if err != nil {
		return nil, fmt.Errorf("list event ids by contract: %w", err)
	}

	return ids, nil
}
