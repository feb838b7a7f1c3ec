package storage

import (
	"context"
	"fmt"
	"strings"

	"housing-reviews/housing-svc/internal/domain"
)

const postColumns = `p.id, p.title, p.content, p.cost, p.address, p.type, p.user_id, p.timestamp`

func scanPost(row rowScanner, extra ...interface{}) (*domain.Post, error) {
	var p domain.Post
	dest := []interface{}{&p.ID, &p.Title, &p.Content, &p.Cost, &p.Address, &p.Type, &p.UserID, &p.Timestamp}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) CreatePost(ctx context.Context, p *domain.Post) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO posts (id, title, content, cost, address, type, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING timestamp`,
		p.ID, p.Title, p.Content, p.Cost, p.Address, p.Type, p.UserID).Scan(&p.Timestamp)
}

func (r *PostgresRepository) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	p, err := scanPost(r.DB.QueryRowContext(ctx, "SELECT "+postColumns+" FROM posts p WHERE p.id = $1", id))
	if err != nil {
		return nil, notFound(err, domain.ErrPostNotFound)
	}
	return p, nil
}

func (r *PostgresRepository) ListPosts(ctx context.Context, q domain.PostQuery) ([]domain.Post, int, error) {
	var (
		conditions []string
		args       []interface{}
	)
	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", len(args), len(args)))
	}
	if q.UserID != nil {
		args = append(args, *q.UserID)
		conditions = append(conditions, fmt.Sprintf("p.user_id = $%d", len(args)))
	}
	if q.Type != "" {
		args = append(args, q.Type)
		conditions = append(conditions, fmt.Sprintf("p.type = $%d", len(args)))
	}
	if q.MaxCost != nil {
		args = append(args, *q.MaxCost)
		conditions = append(conditions, fmt.Sprintf("p.cost <= $%d", len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts p"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, q.Limit, q.Offset)
	rows, err := r.DB.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s, u.first_name, u.last_name, u.avatar
		FROM posts p
		JOIN users u ON u.id = p.user_id%s
		ORDER BY p.timestamp DESC
		LIMIT $%d OFFSET $%d`, postColumns, where, len(args)-1, len(args)), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var author domain.PublicUser
		p, err := scanPost(rows, &author.FirstName, &author.LastName, &author.Avatar)
		if err != nil {
			return nil, 0, err
		}
		if q.WithUserData {
			author.ID = p.UserID
			p.User = &author
		}
		posts = append(posts, *p)
	}
	return posts, total, rows.Err()
}

func (r *PostgresRepository) UpdatePost(ctx context.Context, p *domain.Post) error {
	result, err := r.DB.ExecContext(ctx, `
		UPDATE posts SET title = $1, content = $2, cost = $3, address = $4, type = $5
		WHERE id = $6`,
		p.Title, p.Content, p.Cost, p.Address, p.Type, p.ID)
	if err != nil {
		return notFound(err, domain.ErrPostNotFound)
	}
	return expectAffected(result, domain.ErrPostNotFound)
}

func (r *PostgresRepository) DeletePost(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return notFound(err, domain.ErrPostNotFound)
	}
	return expectAffected(result, domain.ErrPostNotFound)
}
