package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/recipe-share/internal/model"
)

type UserRepository struct {
	db *Database
}

func NewUserRepository(db *Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and its hashed password. The password lives in
// its own table so user listings never touch credential rows.
func (r *UserRepository) Create(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := model.User{
		ID:             uuid.New(),
		Username:       req.Username,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		DateRegistered: now(),
		Role:           model.RoleUser,
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, username, first_name, last_name, date_registered, role)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.FirstName, user.LastName, user.DateRegistered, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_passwords (user_id, hashed_password) VALUES ($1, $2)`,
		user.ID, hashed)
	if err != nil {
		return nil, fmt.Errorf("failed to store password: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit user: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	query := `SELECT id, username, first_name, last_name, date_registered, role FROM users WHERE username = $1`
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	query := `SELECT id, username, first_name, last_name, date_registered, role FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return &user, nil
}

// ValidatePassword compares a candidate password against the stored
// hash for the user.
func (r *UserRepository) ValidatePassword(ctx context.Context, userID uuid.UUID, password string) (bool, error) {
	var stored model.UserPassword
	query := `SELECT user_id, hashed_password FROM user_passwords WHERE user_id = $1`
	err := r.db.GetContext(ctx, &stored, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to load password: %w", err)
	}

	return bcrypt.CompareHashAndPassword(stored.HashedPassword, []byte(password)) == nil, nil
}

// List returns users in registration order.
func (r *UserRepository) List(ctx context.Context, limit, offset int) ([]model.User, error) {
	var users []model.User
	query := `
		SELECT id, username, first_name, last_name, date_registered, role
		FROM users ORDER BY date_registered LIMIT $1 OFFSET $2
	`
	err := r.db.SelectContext(ctx, &users, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	return count, err
}
