package repository

import (
	"context"
	"errors"
	"fmt"

	"marketplace/ecommerce/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("not found")

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail returns the first user with the given email, or ErrNotFound
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	var u model.User
	err := getExecutor(ctx, r.db).QueryRow(ctx,
		"SELECT id, email, password FROM users WHERE email = $1 ORDER BY id LIMIT 1", email,
	).Scan(&u.ID, &u.Email, &u.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Save(ctx context.Context, u model.User) (model.User, error) {
	err := getExecutor(ctx, r.db).QueryRow(ctx,
		"INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id", u.Email, u.Password,
	).Scan(&u.ID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}
