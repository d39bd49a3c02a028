package repository

import (
	"context"
	"errors"
	"fmt"

	"acme_dashboard/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user. The unique index on email is the only
// duplicate guard; a violation surfaces as a plain storage error.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (firstname, lastname, name, profile, email, password, createddate)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, sql,
		user.FirstName, user.LastName, user.Name, user.Profile, user.Email, user.PasswordHash, user.CreatedDate)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	sql := `SELECT firstname, lastname, name, profile, email, password, createddate::text
            FROM users WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(
		&user.FirstName, &user.LastName, &user.Name, &user.Profile,
		&user.Email, &user.PasswordHash, &user.CreatedDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // User not found is not an error for this method's contract
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// List retrieves all users ordered by creation date
func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	sql := `SELECT firstname, lastname, name, profile, email, password, createddate::text
            FROM users ORDER BY createddate DESC, email`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(
			&u.FirstName, &u.LastName, &u.Name, &u.Profile,
			&u.Email, &u.PasswordHash, &u.CreatedDate,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
