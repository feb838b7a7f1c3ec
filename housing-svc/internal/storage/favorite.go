package storage

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"
)

func (r *PostgresRepository) AddFavoriteHousing(ctx context.Context, fav *domain.FavoriteHousing) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO favorite_housings (id, housing_id, user_id) VALUES ($1, $2, $3)",
		fav.ID, fav.HousingID, fav.UserID)
	switch pqCode(err) {
	case pqUniqueViolation:
		return domain.ErrFavoriteExists
	case pqForeignKeyViolation:
		return domain.ErrHousingNotFound
	}
	return err
}

func (r *PostgresRepository) GetFavoriteHousing(ctx context.Context, userID int64, housingID string) (*domain.FavoriteHousing, error) {
	var fav domain.FavoriteHousing
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, housing_id, user_id FROM favorite_housings WHERE user_id = $1 AND housing_id = $2",
		userID, housingID).Scan(&fav.ID, &fav.HousingID, &fav.UserID)
	if err != nil {
		return nil, notFound(err, domain.ErrFavoriteNotFound)
	}
	return &fav, nil
}

func (r *PostgresRepository) RemoveFavoriteHousing(ctx context.Context, userID int64, housingID string) error {
	result, err := r.DB.ExecContext(ctx,
		"DELETE FROM favorite_housings WHERE user_id = $1 AND housing_id = $2", userID, housingID)
	if err != nil {
		return notFound(err, domain.ErrFavoriteNotFound)
	}
	return expectAffected(result, domain.ErrFavoriteNotFound)
}

func (r *PostgresRepository) ListFavoriteHousings(ctx context.Context, userID int64) ([]domain.Housing, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT h.id, h.name, h.address, h.latitude, h.longitude, h.image_url, h.price, h.distance,
			h.avg_rating, h.review_count, h.aggregate_review
		FROM favorite_housings f
		JOIN housings h ON h.id = f.housing_id
		WHERE f.user_id = $1
		ORDER BY h.name ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var housings []domain.Housing
	for rows.Next() {
		h, err := scanHousing(rows)
		if err != nil {
			return nil, err
		}
		housings = append(housings, *h)
	}
	return housings, rows.Err()
}

func (r *PostgresRepository) AddFavoritePost(ctx context.Context, fav *domain.FavoritePost) error {
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO favorite_posts (id, post_id, user_id) VALUES ($1, $2, $3)",
		fav.ID, fav.PostID, fav.UserID)
	switch pqCode(err) {
	case pqUniqueViolation:
		return domain.ErrFavoriteExists
	case pqForeignKeyViolation:
		return domain.ErrPostNotFound
	}
	return err
}

func (r *PostgresRepository) GetFavoritePost(ctx context.Context, userID int64, postID string) (*domain.FavoritePost, error) {
	var fav domain.FavoritePost
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, post_id, user_id FROM favorite_posts WHERE user_id = $1 AND post_id = $2",
		userID, postID).Scan(&fav.ID, &fav.PostID, &fav.UserID)
	if err != nil {
		return nil, notFound(err, domain.ErrFavoriteNotFound)
	}
	return &fav, nil
}

func (r *PostgresRepository) RemoveFavoritePost(ctx context.Context, userID int64, postID string) error {
	result, err := r.DB.ExecContext(ctx,
		"DELETE FROM favorite_posts WHERE user_id = $1 AND post_id = $2", userID, postID)
	if err != nil {
		return notFound(err, domain.ErrFavoriteNotFound)
	}
	return expectAffected(result, domain.ErrFavoriteNotFound)
}

func (r *PostgresRepository) ListFavoritePosts(ctx context.Context, userID int64) ([]domain.Post, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+postColumns+`
		FROM favorite_posts f
		JOIN posts p ON p.id = f.post_id
		WHERE f.user_id = $1
		ORDER BY p.timestamp DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}
