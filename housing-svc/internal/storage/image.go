package storage

import (
	"context"
	"database/sql"
	"fmt"

	"housing-reviews/housing-svc/internal/domain"

	"github.com/lib/pq"
)

const imageColumns = `id, post_id, url, path, timestamp, deleted_at`

func scanImage(row rowScanner) (*domain.PostImage, error) {
	var (
		img       domain.PostImage
		postID    sql.NullString
		deletedAt sql.NullTime
	)
	if err := row.Scan(&img.ID, &postID, &img.URL, &img.Path, &img.Timestamp, &deletedAt); err != nil {
		return nil, err
	}
	if postID.Valid {
		img.PostID = &postID.String
	}
	if deletedAt.Valid {
		img.DeletedAt = &deletedAt.Time
	}
	return &img, nil
}

func (r *PostgresRepository) queryImages(ctx context.Context, query string, args ...interface{}) ([]domain.PostImage, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var images []domain.PostImage
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		images = append(images, *img)
	}
	return images, rows.Err()
}

func (r *PostgresRepository) ListImages(ctx context.Context, postID string) ([]domain.PostImage, error) {
	return r.queryImages(ctx, "SELECT "+imageColumns+` FROM post_images
		WHERE post_id = $1 AND deleted_at IS NULL
		ORDER BY timestamp ASC`, postID)
}

func (r *PostgresRepository) AddImages(ctx context.Context, images []domain.PostImage) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, img := range images {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO post_images (id, post_id, url, path, timestamp)
			VALUES ($1, $2, $3, $4, $5)`,
			img.ID, nullString(img.PostID), img.URL, img.Path, img.Timestamp); err != nil {
			if pqCode(err) == pqForeignKeyViolation {
				return domain.ErrPostNotFound
			}
			return err
		}
	}
	return tx.Commit()
}

func (r *PostgresRepository) SoftDeleteImages(ctx context.Context, postID string, ids []string) (int64, error) {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE post_images SET deleted_at = NOW()
		WHERE post_id = $1 AND id = ANY($2) AND deleted_at IS NULL`,
		postID, pq.Array(ids))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) ListPurgeable(ctx context.Context) ([]domain.PostImage, error) {
	return r.queryImages(ctx, "SELECT "+imageColumns+` FROM post_images
		WHERE deleted_at IS NOT NULL OR post_id IS NULL`)
}

func (r *PostgresRepository) HardDeleteImages(ctx context.Context, ids []string) error {
	_, err := r.DB.ExecContext(ctx, "DELETE FROM post_images WHERE id = ANY($1)", pq.Array(ids))
	return err
}
