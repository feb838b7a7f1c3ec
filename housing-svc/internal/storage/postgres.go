package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// PostgresRepository implements every repository interface of the service layer.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqInvalidText         = "22P02"
)

func pqCode(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}
	return ""
}

// notFound maps missing rows and malformed uuids to the given domain error.
func notFound(err, target error) error {
	if errors.Is(err, sql.ErrNoRows) || pqCode(err) == pqInvalidText {
		return target
	}
	return err
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			is_email_verified BOOLEAN NOT NULL DEFAULT FALSE,
			verification_code TEXT NOT NULL DEFAULT '',
			notifications INTEGER NOT NULL DEFAULT 0,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			avatar TEXT NOT NULL DEFAULT '',
			bio TEXT NOT NULL DEFAULT '',
			age TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			major TEXT NOT NULL DEFAULT '',
			grad_year TEXT NOT NULL DEFAULT '',
			stay_length TEXT NOT NULL DEFAULT '',
			budget TEXT NOT NULL DEFAULT '',
			ideal_distance TEXT NOT NULL DEFAULT '',
			pet_preference TEXT NOT NULL DEFAULT '',
			cleanliness TEXT NOT NULL DEFAULT '',
			smoker TEXT NOT NULL DEFAULT '',
			social_preference TEXT NOT NULL DEFAULT '',
			peak_productivity TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS housings (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT NOT NULL,
			latitude DOUBLE PRECISION NOT NULL,
			longitude DOUBLE PRECISION NOT NULL,
			image_url TEXT NOT NULL DEFAULT '',
			price TEXT NOT NULL DEFAULT '$',
			distance DOUBLE PRECISION NOT NULL,
			avg_rating DOUBLE PRECISION NOT NULL DEFAULT 0,
			review_count INTEGER NOT NULL DEFAULT 0 CHECK (review_count >= 0),
			aggregate_review TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id UUID PRIMARY KEY,
			housing_id UUID NOT NULL REFERENCES housings(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			rating DOUBLE PRECISION NOT NULL CHECK (rating >= 0),
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			upvote_count INTEGER NOT NULL DEFAULT 0 CHECK (upvote_count >= 0),
			liked_by BIGINT[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_housing ON reviews (housing_id, timestamp DESC)`,
		`CREATE TABLE IF NOT EXISTS posts (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			cost INTEGER NOT NULL,
			address TEXT NOT NULL,
			type TEXT NOT NULL CHECK (type IN ('Roommate', 'Sublet', 'Housing')),
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS post_images (
			id UUID PRIMARY KEY,
			post_id UUID REFERENCES posts(id) ON DELETE SET NULL,
			url TEXT NOT NULL,
			path TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS favorite_housings (
			id UUID PRIMARY KEY,
			housing_id UUID NOT NULL REFERENCES housings(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			UNIQUE (user_id, housing_id)
		)`,
		`CREATE TABLE IF NOT EXISTS favorite_posts (
			id UUID PRIMARY KEY,
			post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
			user_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			UNIQUE (user_id, post_id)
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
