package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// PurchaseReadRepository handles purchase read operations.
type PurchaseReadRepository struct {
	db *sqlx.DB
}

func NewPurchaseReadRepository(db *sqlx.DB) *PurchaseReadRepository {
	return &PurchaseReadRepository{db: db}
}

// ListByUserID returns the user's purchase history, newest first.
func (r *PurchaseReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PurchaseDB, error) {
	const query = `
		SELECT purchase_id, user_id, amount, credits, status, created_at
		FROM purchases
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var purchases []models.PurchaseDB
	err := r.db.SelectContext(ctx, &purchases, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(purchases),
		"error", err,
	)

	return purchases, err
}

// PurchaseWriteRepository handles purchase write operations.
type PurchaseWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPurchaseWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PurchaseWriteRepository {
	return &PurchaseWriteRepository{db: db, txGetter: txGetter}
}

func (r *PurchaseWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a purchase row and returns its id.
func (r *PurchaseWriteRepository) Save(ctx context.Context, purchase models.PurchaseDB) (uuid.UUID, error) {
	query := `
		INSERT INTO purchases (purchase_id, user_id, amount, credits, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING purchase_id
	`
	purchaseID := purchase.PurchaseID
	if purchaseID == uuid.Nil {
		purchaseID = uuid.New()
	}

	var saved uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query,
		purchaseID, purchase.UserID, purchase.Amount, purchase.Credits, purchase.Status)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{purchaseID, purchase.UserID, purchase.Credits, purchase.Status},
		"result", saved,
		"error", err,
	)

	return saved, err
}

// DeleteByUserID removes all of a user's purchase rows.
func (r *PurchaseWriteRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM purchases WHERE user_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID)

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}
