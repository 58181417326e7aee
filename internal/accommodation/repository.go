// AngelaMos | 2026
// repository.go

package accommodation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/angelamos/gigbook/internal/core"
)

type Repository interface {
	Create(ctx context.Context, accommodation *Accommodation) error
	GetByID(ctx context.Context, id string) (*Accommodation, error)
	Update(ctx context.Context, accommodation *Accommodation) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Accommodation, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const accommodationColumns = `id, name, contact_person, address, telephone,
	email, website, url, check_in, check_out, created_at, updated_at`

func (r *repository) Create(
	ctx context.Context,
	accommodation *Accommodation,
) error {
	query := `
		INSERT INTO accommodations (id, name, contact_person, address,
		                            telephone, email, website, url,
		                            check_in, check_out)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, accommodation, query,
		accommodation.ID,
		accommodation.Name,
		accommodation.ContactPerson,
		accommodation.Address,
		accommodation.Telephone,
		accommodation.Email,
		accommodation.Website,
		accommodation.URL,
		accommodation.CheckIn,
		accommodation.CheckOut,
	)
	if err != nil {
		return fmt.Errorf("create accommodation: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Accommodation, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM accommodations WHERE id = $1`,
		accommodationColumns,
	)

	var accommodation Accommodation
	err := r.db.GetContext(ctx, &accommodation, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get accommodation: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get accommodation: %w", err)
	}

	return &accommodation, nil
}

func (r *repository) Update(
	ctx context.Context,
	accommodation *Accommodation,
) error {
	query := `
		UPDATE accommodations
		SET name = $2, contact_person = $3, address = $4, telephone = $5,
		    email = $6, website = $7, url = $8, check_in = $9, check_out = $10,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &accommodation.UpdatedAt, query,
		accommodation.ID,
		accommodation.Name,
		accommodation.ContactPerson,
		accommodation.Address,
		accommodation.Telephone,
		accommodation.Email,
		accommodation.Website,
		accommodation.URL,
		accommodation.CheckIn,
		accommodation.CheckOut,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update accommodation: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update accommodation: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM accommodations WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete accommodation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete accommodation: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete accommodation: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) List(ctx context.Context) ([]Accommodation, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM accommodations ORDER BY name`,
		accommodationColumns,
	)

	var accommodations []Accommodation
	if err := r.db.SelectContext(ctx, &accommodations, query); err != nil {
		return nil, fmt.Errorf("list accommodations: %w", err)
	}

	return accommodations, nil
}

func (r *repository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM accommodations WHERE id = $1)`,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("accommodation exists: %w", err)
	}

	return exists, nil
}
