// AngelaMos | 2026
// repository.go

package contract

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/angelamos/gigbook/internal/core"
)

type Repository interface {
	Create(ctx context.Context, contract *Contract) error
	GetByID(ctx context.Context, id string) (*Contract, error)
	Update(ctx context.Context, contract *Contract) error
	Disable(ctx context.Context, id string, at time.Time) error
	ListByOfferor(ctx context.Context, offerorID string) ([]Contract, error)
}

// The contract repository holds the concrete pool rather than the DBTX
// capability: Disable needs to open its own transaction.
type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const contractColumns = `id, name, offeror_id, offeree_id, total_fee,
	currency_code, upon_signing, upon_completion, payment_method,
	travel_expenses, accommodation_expenses, other_expenses, disabled,
	disabled_at, signed_at, delete_at, created_at, updated_at`

func (r *repository) Create(ctx context.Context, contract *Contract) error {
	query := `
		INSERT INTO contracts (id, name, offeror_id, offeree_id, total_fee,
		                       currency_code, upon_signing, upon_completion,
		                       payment_method, travel_expenses,
		                       accommodation_expenses, other_expenses,
		                       signed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, contract, query,
		contract.ID,
		contract.Name,
		contract.OfferorID,
		contract.OffereeID,
		contract.TotalFee,
		contract.CurrencyCode,
		contract.UponSigning,
		contract.UponCompletion,
		contract.PaymentMethod,
		contract.TravelExpenses,
		contract.AccommodationExpenses,
		contract.OtherExpenses,
		contract.SignedAt,
	)
	if err != nil {
		return fmt.Errorf("create contract: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Contract, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM contracts WHERE id = $1`,
		contractColumns,
	)

	var contract Contract
	err := r.db.GetContext(ctx, &contract, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get contract: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get contract: %w", err)
	}

	return &contract, nil
}

func (r *repository) Update(ctx context.Context, contract *Contract) error {
	query := `
		UPDATE contracts
		SET name = $2, offeree_id = $3, total_fee = $4, currency_code = $5,
		    upon_signing = $6, upon_completion = $7, payment_method = $8,
		    travel_expenses = $9, accommodation_expenses = $10,
		    other_expenses = $11, updated_at = NOW()
		WHERE id = $1 AND disabled = FALSE
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &contract.UpdatedAt, query,
		contract.ID,
		contract.Name,
		contract.OffereeID,
		contract.TotalFee,
		contract.CurrencyCode,
		contract.UponSigning,
		contract.UponCompletion,
		contract.PaymentMethod,
		contract.TravelExpenses,
		contract.AccommodationExpenses,
		contract.OtherExpenses,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update contract: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}

	return nil
}

// Disable locks the row for the check-then-set so two concurrent disables
// cannot both pass the terminal-state check; the loser sees the contract
// already disabled.
func (r *repository) Disable(
	ctx context.Context,
	id string,
	at time.Time,
) error {
	return core.InTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var disabled bool
		err := tx.GetContext(ctx, &disabled,
			`SELECT disabled FROM contracts WHERE id = $1 FOR UPDATE`,
			id,
		)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("disable contract: %w", core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("disable contract: %w", err)
		}

		if disabled {
			return fmt.Errorf("disable contract: %w", ErrContractDisabled)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE contracts
			SET disabled = TRUE, disabled_at = $2, updated_at = NOW()
			WHERE id = $1`,
			id, at,
		)
		if err != nil {
			return fmt.Errorf("disable contract: %w", err)
		}

		return nil
	})
}

func (r *repository) ListByOfferor(
	ctx context.Context,
	offerorID string,
) ([]Contract, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM contracts
		WHERE offeror_id = $1
		ORDER BY created_at DESC`,
		contractColumns,
	)

	var contracts []Contract
	if err := r.db.SelectContext(ctx, &contracts, query, offerorID); err != nil {
		return nil, fmt.Errorf("list contracts by offeror: %w", err)
	}

	return contracts, nil
}
