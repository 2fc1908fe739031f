package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// ProfileReadRepository handles profile read operations.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByID retrieves a profile by its id. Returns (nil, nil) when no row exists.
func (r *ProfileReadRepository) GetByID(ctx context.Context, profileID uuid.UUID) (*models.ProfileDB, error) {
	const query = `
		SELECT profile_id, email, password_hash, full_name, avatar_url, plan,
		       credits, storage_used, generation_count, created_at, updated_at
		FROM profiles
		WHERE profile_id = $1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, profileID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profileID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByEmail retrieves a profile by email. Returns (nil, nil) when no row exists.
func (r *ProfileReadRepository) GetByEmail(ctx context.Context, email string) (*models.ProfileDB, error) {
	const query = `
		SELECT profile_id, email, password_hash, full_name, avatar_url, plan,
		       credits, storage_used, generation_count, created_at, updated_at
		FROM profiles
		WHERE email = $1
	`

	var profile models.ProfileDB
	err := r.db.GetContext(ctx, &profile, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileWriteRepository handles profile write operations.
type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

func (r *ProfileWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// StartingCredits is granted to every new profile.
const StartingCredits = 3

// Save inserts a new profile row with the starting credit grant.
func (r *ProfileWriteRepository) Save(ctx context.Context, email, passwordHash string, fullName *string) (uuid.UUID, error) {
	query := `
		INSERT INTO profiles (profile_id, email, password_hash, full_name, plan, credits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING profile_id
	`
	args := []any{uuid.New(), email, passwordHash, fullName, models.PlanFree, StartingCredits}

	var profileID uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &profileID, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email, fullName},
		"result", profileID,
		"error", err,
	)

	return profileID, err
}

// UpdateProfile mutates display fields; nil pointers leave a field unchanged.
func (r *ProfileWriteRepository) UpdateProfile(ctx context.Context, profileID uuid.UUID, fullName, avatarURL *string) error {
	query := `
		UPDATE profiles
		SET full_name = COALESCE($2, full_name),
		    avatar_url = COALESCE($3, avatar_url),
		    updated_at = NOW()
		WHERE profile_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, profileID, fullName, avatarURL)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profileID, fullName, avatarURL},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdatePasswordHash replaces the stored password hash.
func (r *ProfileWriteRepository) UpdatePasswordHash(ctx context.Context, profileID uuid.UUID, passwordHash string) error {
	query := `
		UPDATE profiles
		SET password_hash = $2, updated_at = NOW()
		WHERE profile_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, profileID, passwordHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profileID},
		"error", err,
	)

	return err
}

// DeductCredit decrements the balance in a single conditional statement so
// two concurrent requests cannot race past a zero balance. Returns
// sql.ErrNoRows when the balance is already zero.
func (r *ProfileWriteRepository) DeductCredit(ctx context.Context, profileID uuid.UUID) (int64, error) {
	query := `
		UPDATE profiles
		SET credits = credits - 1, updated_at = NOW()
		WHERE profile_id = $1 AND credits > 0
		RETURNING credits
	`

	var credits int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &credits, query, profileID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profileID},
		"result", credits,
		"error", err,
	)

	return credits, err
}

// AddCredits increments the balance and returns the new value.
func (r *ProfileWriteRepository) AddCredits(ctx context.Context, profileID uuid.UUID, amount int64) (int64, error) {
	query := `
		UPDATE profiles
		SET credits = credits + $2, updated_at = NOW()
		WHERE profile_id = $1
		RETURNING credits
	`

	var credits int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &credits, query, profileID, amount)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profileID, amount},
		"result", credits,
		"error", err,
	)

	return credits, err
}

// AddStorageUsed adjusts the cumulative storage counter by delta bytes,
// clamping at zero on the way down.
func (r *ProfileWriteRepository) AddStorageUsed(ctx context.Context, profileID uuid.UUID, delta int64) error {
	query := `
		UPDATE profiles
		SET storage_used = GREATEST(storage_used + $2, 0), updated_at = NOW()
		WHERE profile_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, profileID, delta)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profileID, delta},
		"error", err,
	)

	return err
}

// IncrementGenerationCount bumps the lifetime generation counter.
func (r *ProfileWriteRepository) IncrementGenerationCount(ctx context.Context, profileID uuid.UUID) error {
	query := `
		UPDATE profiles
		SET generation_count = generation_count + 1, updated_at = NOW()
		WHERE profile_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, profileID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profileID},
		"error", err,
	)

	return err
}

// Delete removes the profile row. Dependent rows must already be gone.
func (r *ProfileWriteRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	query := `DELETE FROM profiles WHERE profile_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, profileID)

	logger.Log.Infow(
		"query", query,
		"args", []any{profileID},
		"error", err,
	)

	return err
}
