package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// GenerationReadRepository handles ai_generations read operations.
type GenerationReadRepository struct {
	db *sqlx.DB
}

func NewGenerationReadRepository(db *sqlx.DB) *GenerationReadRepository {
	return &GenerationReadRepository{db: db}
}

// CountSince counts the user's generations created at or after the given
// time. This is the rate limiter's counting source.
func (r *GenerationReadRepository) CountSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	const query = `
		SELECT COUNT(*) FROM ai_generations
		WHERE user_id = $1 AND created_at >= $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, since)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, since},
		"result", count,
		"error", err,
	)

	return count, err
}

// ListByUserID returns the user's generation history, newest first.
func (r *GenerationReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIGenerationDB, error) {
	const query = `
		SELECT generation_id, user_id, image_id, model_name, prompt, negative_prompt,
		       parameters, status, inference_time, created_at
		FROM ai_generations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	if limit <= 0 {
		limit = 10
	}

	var generations []models.AIGenerationDB
	err := r.db.SelectContext(ctx, &generations, query, userID, limit)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(generations),
		"error", err,
	)

	return generations, err
}

// GenerationWriteRepository handles ai_generations write operations.
type GenerationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewGenerationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *GenerationWriteRepository {
	return &GenerationWriteRepository{db: db, txGetter: txGetter}
}

func (r *GenerationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a generation row and returns its id.
func (r *GenerationWriteRepository) Save(ctx context.Context, gen models.AIGenerationDB) (uuid.UUID, error) {
	query := `
		INSERT INTO ai_generations (generation_id, user_id, image_id, model_name, prompt,
		                            negative_prompt, parameters, status, inference_time, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING generation_id
	`
	generationID := gen.GenerationID
	if generationID == uuid.Nil {
		generationID = uuid.New()
	}

	var saved uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query,
		generationID, gen.UserID, gen.ImageID, gen.ModelName, gen.Prompt,
		gen.NegativePrompt, gen.Parameters, gen.Status, gen.InferenceTime)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{generationID, gen.UserID, gen.ModelName, gen.Status},
		"result", saved,
		"error", err,
	)

	return saved, err
}

// DeleteByUserID removes all of a user's generation rows.
func (r *GenerationWriteRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM ai_generations WHERE user_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID)

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}
