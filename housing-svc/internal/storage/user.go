package storage

import (
	"context"

	"housing-reviews/housing-svc/internal/domain"
)

const userColumns = `id, email, password_hash, is_email_verified, verification_code, notifications,
	first_name, last_name, avatar, bio, age, gender, major, grad_year, stay_length, budget,
	ideal_distance, pet_preference, cleanliness, smoker, social_preference, peak_productivity`

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	p := &u.Profile
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.IsEmailVerified, &u.VerificationCode, &u.Notifications,
		&p.FirstName, &p.LastName, &p.Avatar, &p.Bio, &p.Age, &p.Gender, &p.Major, &p.GradYear, &p.StayLength,
		&p.Budget, &p.IdealDistance, &p.PetPreference, &p.Cleanliness, &p.Smoker, &p.SocialPreference,
		&p.PeakProductivity); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, u *domain.User) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash, verification_code, first_name, last_name, avatar)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		u.Email, u.PasswordHash, u.VerificationCode, u.FirstName, u.LastName, u.Avatar).Scan(&u.ID)
	if pqCode(err) == pqUniqueViolation {
		return domain.ErrEmailTaken
	}
	return err
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email))
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return u, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id))
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return u, nil
}

func (r *PostgresRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int64, p domain.Profile) (*domain.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, `
		UPDATE users SET
			first_name = $1, last_name = $2, avatar = $3, bio = $4, age = $5, gender = $6, major = $7,
			grad_year = $8, stay_length = $9, budget = $10, ideal_distance = $11, pet_preference = $12,
			cleanliness = $13, smoker = $14, social_preference = $15, peak_productivity = $16
		WHERE id = $17
		RETURNING `+userColumns,
		p.FirstName, p.LastName, p.Avatar, p.Bio, p.Age, p.Gender, p.Major, p.GradYear, p.StayLength,
		p.Budget, p.IdealDistance, p.PetPreference, p.Cleanliness, p.Smoker, p.SocialPreference,
		p.PeakProductivity, id))
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return u, nil
}

func (r *PostgresRepository) MarkEmailVerified(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE users SET is_email_verified = TRUE, verification_code = '' WHERE id = $1", id)
	if err != nil {
		return err
	}
	return expectAffected(result, domain.ErrUserNotFound)
}

func (r *PostgresRepository) DeleteUser(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return err
	}
	return expectAffected(result, domain.ErrUserNotFound)
}

func (r *PostgresRepository) AddNotifications(ctx context.Context, email string, delta int) (*domain.User, error) {
	u, err := scanUser(r.DB.QueryRowContext(ctx, `
		UPDATE users
		SET notifications = CASE WHEN $2 = 0 THEN 0 ELSE notifications + $2 END
		WHERE email = $1
		RETURNING `+userColumns, email, delta))
	if err != nil {
		return nil, notFound(err, domain.ErrUserNotFound)
	}
	return u, nil
}
