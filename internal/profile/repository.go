// AngelaMos | 2026
// repository.go

package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/angelamos/gigbook/internal/core"
)

type Repository interface {
	Create(ctx context.Context, profile *Profile) error
	GetByID(ctx context.Context, id string) (*Profile, error)
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]Profile, error)
	List(ctx context.Context, params ListProfilesParams) ([]Profile, int, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

const profileColumns = `id, owner_id, name, performance_type, description,
	bio, social_media, stage_plan, tech_rider, photos, videos, audios,
	online_press, website, created_at, updated_at`

func (r *repository) Create(ctx context.Context, profile *Profile) error {
	query := `
		INSERT INTO profiles (id, owner_id, name, performance_type,
		                      description, bio, social_media, stage_plan,
		                      tech_rider, photos, videos, audios,
		                      online_press, website)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	err := r.db.GetContext(ctx, profile, query,
		profile.ID,
		profile.OwnerID,
		profile.Name,
		profile.PerformanceType,
		profile.Description,
		profile.Bio,
		profile.SocialMedia,
		profile.StagePlan,
		profile.TechRider,
		profile.Photos,
		profile.Videos,
		profile.Audios,
		profile.OnlinePress,
		profile.Website,
	)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Profile, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM profiles WHERE id = $1`,
		profileColumns,
	)

	var profile Profile
	err := r.db.GetContext(ctx, &profile, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

func (r *repository) Update(ctx context.Context, profile *Profile) error {
	query := `
		UPDATE profiles
		SET name = $2, performance_type = $3, description = $4, bio = $5,
		    social_media = $6, stage_plan = $7, tech_rider = $8, photos = $9,
		    videos = $10, audios = $11, online_press = $12, website = $13,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.GetContext(ctx, &profile.UpdatedAt, query,
		profile.ID,
		profile.Name,
		profile.PerformanceType,
		profile.Description,
		profile.Bio,
		profile.SocialMedia,
		profile.StagePlan,
		profile.TechRider,
		profile.Photos,
		profile.Videos,
		profile.Audios,
		profile.OnlinePress,
		profile.Website,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(
		ctx,
		`DELETE FROM profiles WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("delete profile: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) ListByOwner(
	ctx context.Context,
	ownerID string,
) ([]Profile, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM profiles WHERE owner_id = $1 ORDER BY created_at DESC`,
		profileColumns,
	)

	var profiles []Profile
	if err := r.db.SelectContext(ctx, &profiles, query, ownerID); err != nil {
		return nil, fmt.Errorf("list profiles by owner: %w", err)
	}

	return profiles, nil
}

func (r *repository) List(
	ctx context.Context,
	params ListProfilesParams,
) ([]Profile, int, error) {
	params.Normalize()

	whereClause := "TRUE"
	var args []any
	argIdx := 1

	if params.Search != "" {
		whereClause = fmt.Sprintf(
			"(name ILIKE $%d OR performance_type ILIKE $%d)",
			argIdx, argIdx)
		args = append(args, "%"+escapeLike(params.Search)+"%")
		argIdx++
	}

	countQuery := fmt.Sprintf(
		"SELECT COUNT(*) FROM profiles WHERE %s",
		whereClause,
	)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count profiles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM profiles
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`,
		profileColumns, whereClause, argIdx, argIdx+1)

	args = append(args, params.PageSize, params.Offset())

	var profiles []Profile
	if err := r.db.SelectContext(ctx, &profiles, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list profiles: %w", err)
	}

	return profiles, total, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
