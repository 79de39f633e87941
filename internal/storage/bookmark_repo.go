package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/recipe-share/internal/model"
)

type BookmarkRepository struct {
	db *Database
}

func NewBookmarkRepository(db *Database) *BookmarkRepository {
	return &BookmarkRepository{db: db}
}

func (r *BookmarkRepository) Add(ctx context.Context, userID, recipeID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO bookmarked_recipes (user_id, recipe_id, date_added) VALUES ($1, $2, $3)`,
		userID, recipeID, now())
	if err != nil {
		return fmt.Errorf("failed to add bookmark: %w", err)
	}
	return nil
}

// Delete removes a bookmark; the bool reports whether one existed.
func (r *BookmarkRepository) Delete(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM bookmarked_recipes WHERE user_id = $1 AND recipe_id = $2`,
		userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("failed to delete bookmark: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

func (r *BookmarkRepository) Exists(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM bookmarked_recipes WHERE user_id = $1 AND recipe_id = $2)`
	err := r.db.GetContext(ctx, &exists, query, userID, recipeID)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}
	return exists, nil
}

// ListByUser returns the caller's bookmarks, most recently added first.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.BookmarkedRecipe, error) {
	var bookmarks []model.BookmarkedRecipe
	query := `
		SELECT user_id, recipe_id, date_added FROM bookmarked_recipes
		WHERE user_id = $1 ORDER BY date_added DESC LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &bookmarks, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *BookmarkRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM bookmarked_recipes WHERE user_id = $1`, userID)
	return count, err
}
