package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"housing-reviews/housing-svc/internal/domain"
	"housing-reviews/housing-svc/internal/service"

	"github.com/lib/pq"
)

const reviewColumns = `r.id, r.housing_id, r.user_id, r.content, r.rating, r.timestamp, r.upvote_count, r.liked_by`

func scanReview(row rowScanner, extra ...interface{}) (*domain.Review, error) {
	var review domain.Review
	dest := []interface{}{&review.ID, &review.HousingID, &review.UserID, &review.Content, &review.Rating,
		&review.Timestamp, &review.UpvoteCount, pq.Array(&review.LikedBy)}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	if review.LikedBy == nil {
		review.LikedBy = []int64{}
	}
	return &review, nil
}

// WithHousingLock serializes review mutations per housing with SELECT ... FOR UPDATE.
func (r *PostgresRepository) WithHousingLock(ctx context.Context, housingID string, fn func(tx service.ReviewTx, housing domain.Housing) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	housing, err := scanHousing(tx.QueryRowContext(ctx,
		"SELECT "+housingColumns+" FROM housings WHERE id = $1 FOR UPDATE", housingID))
	if err != nil {
		return notFound(err, domain.ErrHousingNotFound)
	}

	if err := fn(&reviewTx{tx: tx, housingID: housingID}, *housing); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit review mutation: %w", err)
	}
	return nil
}

type reviewTx struct {
	tx        *sql.Tx
	housingID string
}

func (t *reviewTx) ListReviews(ctx context.Context) ([]domain.Review, error) {
	rows, err := t.tx.QueryContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews r WHERE r.housing_id = $1 ORDER BY r.timestamp DESC", t.housingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *review)
	}
	return reviews, rows.Err()
}

func (t *reviewTx) GetReview(ctx context.Context, reviewID string) (*domain.Review, error) {
	review, err := scanReview(t.tx.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews r WHERE r.id = $1 AND r.housing_id = $2", reviewID, t.housingID))
	if err != nil {
		return nil, notFound(err, domain.ErrReviewNotFound)
	}
	return review, nil
}

func (t *reviewTx) InsertReview(ctx context.Context, review *domain.Review) error {
	_, err := t.tx.ExecContext(ctx, `
		INSERT INTO reviews (id, housing_id, user_id, content, rating, timestamp, upvote_count, liked_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		review.ID, t.housingID, review.UserID, review.Content, review.Rating, review.Timestamp,
		review.UpvoteCount, pq.Array(review.LikedBy))
	if pqCode(err) == pqForeignKeyViolation {
		return domain.ErrUserNotFound
	}
	return err
}

func (t *reviewTx) DeleteReview(ctx context.Context, reviewID string) error {
	result, err := t.tx.ExecContext(ctx, "DELETE FROM reviews WHERE id = $1 AND housing_id = $2", reviewID, t.housingID)
	if err != nil {
		return err
	}
	return expectAffected(result, domain.ErrReviewNotFound)
}

func (t *reviewTx) SaveAggregates(ctx context.Context, result domain.ReviewMutationResult) error {
	_, err := t.tx.ExecContext(ctx, `
		UPDATE housings SET avg_rating = $1, review_count = $2, aggregate_review = $3
		WHERE id = $4`,
		result.Stats.AvgRating, result.Stats.ReviewCount, nullString(result.AggregateReview), t.housingID)
	return err
}

func (r *PostgresRepository) GetReview(ctx context.Context, housingID, reviewID string) (*domain.Review, error) {
	review, err := scanReview(r.DB.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews r WHERE r.id = $1 AND r.housing_id = $2", reviewID, housingID))
	if err != nil {
		return nil, notFound(err, domain.ErrReviewNotFound)
	}
	return review, nil
}

func (r *PostgresRepository) ListReviews(ctx context.Context, housingID string, q domain.ReviewQuery) ([]domain.Review, int, error) {
	conditions := []string{"r.housing_id = $1"}
	args := []interface{}{housingID}
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		conditions = append(conditions, fmt.Sprintf("r.content ILIKE $%d", len(args)))
	}
	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM reviews r"+where, args...).Scan(&total); err != nil {
		return nil, 0, notFound(err, domain.ErrHousingNotFound)
	}

	order := "r.timestamp DESC"
	if q.SortBy == domain.SortByPopularity {
		order = "r.upvote_count DESC, r.timestamp DESC"
	}

	args = append(args, q.Limit, q.Offset)
	rows, err := r.DB.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s, u.first_name, u.last_name, u.avatar
		FROM reviews r
		JOIN users u ON u.id = r.user_id%s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`, reviewColumns, where, order, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var author domain.PublicUser
		review, err := scanReview(rows, &author.FirstName, &author.LastName, &author.Avatar)
		if err != nil {
			return nil, 0, err
		}
		if q.WithUserData {
			author.ID = review.UserID
			review.User = &author
		}
		reviews = append(reviews, *review)
	}
	return reviews, total, rows.Err()
}

func (r *PostgresRepository) UpdateLedger(ctx context.Context, housingID, reviewID string, fn func(review *domain.Review) error) (*domain.Review, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	review, err := scanReview(tx.QueryRowContext(ctx,
		"SELECT "+reviewColumns+" FROM reviews r WHERE r.id = $1 AND r.housing_id = $2 FOR UPDATE", reviewID, housingID))
	if err != nil {
		return nil, notFound(err, domain.ErrReviewNotFound)
	}

	if err := fn(review); err != nil {
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, "UPDATE reviews SET upvote_count = $1, liked_by = $2 WHERE id = $3",
		review.UpvoteCount, pq.Array(review.LikedBy), review.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit upvote: %w", err)
	}
	return review, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
