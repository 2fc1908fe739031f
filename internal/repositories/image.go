package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jewelshot/jewelshot-api/internal/logger"
	"github.com/jewelshot/jewelshot-api/internal/models"
)

// ImageListFilter narrows and pages a gallery listing.
type ImageListFilter struct {
	JewelryType string // matches metadata->>'jewelryType'
	Mode        string // matches metadata->>'mode'
	SortOldest  bool   // default is newest first
	Limit       int    // default 20
	Offset      int
}

// ImageReadRepository handles image read operations.
type ImageReadRepository struct {
	db *sqlx.DB
}

func NewImageReadRepository(db *sqlx.DB) *ImageReadRepository {
	return &ImageReadRepository{db: db}
}

// GetByID retrieves one image owned by userID. Returns (nil, nil) when no
// row exists.
func (r *ImageReadRepository) GetByID(ctx context.Context, imageID, userID uuid.UUID) (*models.ImageDB, error) {
	const query = `
		SELECT image_id, user_id, original_url, edited_url, storage_path,
		       file_name, file_size, metadata, created_at
		FROM images
		WHERE image_id = $1 AND user_id = $2
	`

	var image models.ImageDB
	err := r.db.GetContext(ctx, &image, query, imageID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID, userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// ListByUserID returns a filtered, sorted, paged slice of the user's images
// together with the unpaged total.
func (r *ImageReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, filter ImageListFilter) ([]models.ImageDB, int64, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}

	if filter.JewelryType != "" {
		args = append(args, filter.JewelryType)
		where = append(where, fmt.Sprintf("metadata->>'jewelryType' = $%d", len(args)))
	}
	if filter.Mode != "" {
		args = append(args, filter.Mode)
		where = append(where, fmt.Sprintf("metadata->>'mode' = $%d", len(args)))
	}

	countQuery := "SELECT COUNT(*) FROM images WHERE " + strings.Join(where, " AND ")

	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Log.Errorw("failed to count images", "userID", userID, "error", err)
		return nil, 0, err
	}

	order := "DESC"
	if filter.SortOldest {
		order = "ASC"
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	args = append(args, limit)
	limitPos := len(args)
	args = append(args, filter.Offset)
	offsetPos := len(args)

	query := fmt.Sprintf(`
		SELECT image_id, user_id, original_url, edited_url, storage_path,
		       file_name, file_size, metadata, created_at
		FROM images
		WHERE %s
		ORDER BY created_at %s
		LIMIT $%d OFFSET $%d
	`, strings.Join(where, " AND "), order, limitPos, offsetPos)

	var images []models.ImageDB
	err := r.db.SelectContext(ctx, &images, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(images),
		"error", err,
	)

	return images, total, err
}

// ListStoragePaths returns every storage path referenced by the user's
// images, both originals and generated results. Used by the deletion cascade.
func (r *ImageReadRepository) ListStoragePaths(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const query = `
		SELECT storage_path FROM images WHERE user_id = $1 AND storage_path <> ''
		UNION
		SELECT metadata->>'originalPath' FROM images
		WHERE user_id = $1 AND metadata->>'originalPath' IS NOT NULL
	`

	var paths []string
	err := r.db.SelectContext(ctx, &paths, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(paths),
		"error", err,
	)

	return paths, err
}

// ImageWriteRepository handles image write operations.
type ImageWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewImageWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ImageWriteRepository {
	return &ImageWriteRepository{db: db, txGetter: txGetter}
}

func (r *ImageWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts an image row and returns its id.
func (r *ImageWriteRepository) Save(ctx context.Context, image models.ImageDB) (uuid.UUID, error) {
	query := `
		INSERT INTO images (image_id, user_id, original_url, edited_url, storage_path,
		                    file_name, file_size, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING image_id
	`
	imageID := image.ImageID
	if imageID == uuid.Nil {
		imageID = uuid.New()
	}

	var saved uuid.UUID
	err := sqlx.GetContext(ctx, r.executor(ctx), &saved, query,
		imageID, image.UserID, image.OriginalURL, image.EditedURL,
		image.StoragePath, image.FileName, image.FileSize, image.Metadata)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{imageID, image.UserID, image.FileName, image.FileSize},
		"result", saved,
		"error", err,
	)

	return saved, err
}

// Delete removes one image row owned by userID.
func (r *ImageWriteRepository) Delete(ctx context.Context, imageID, userID uuid.UUID) error {
	query := `DELETE FROM images WHERE image_id = $1 AND user_id = $2`

	res, err := r.executor(ctx).ExecContext(ctx, query, imageID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", query,
		"args", []any{imageID, userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByUserID removes all of a user's image rows.
func (r *ImageWriteRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM images WHERE user_id = $1`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID)

	logger.Log.Infow(
		"query", query,
		"args", []any{userID},
		"error", err,
	)

	return err
}
