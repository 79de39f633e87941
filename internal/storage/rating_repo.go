package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/recipe-share/internal/model"
)

type RatingRepository struct {
	db *Database
}

func NewRatingRepository(db *Database) *RatingRepository {
	return &RatingRepository{db: db}
}

// Rate replaces the caller's rating for a recipe and recomputes the
// recipe's aggregate as the plain mean of all its scores. The delete,
// insert and aggregate update commit together; concurrent raters of
// the same recipe race benignly, last committed aggregate wins.
func (r *RatingRepository) Rate(ctx context.Context, recipeID, userID uuid.UUID, score float64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`DELETE FROM rated_recipes WHERE user_id = $1 AND recipe_id = $2`,
		userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to delete previous rating: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO rated_recipes (user_id, recipe_id, score) VALUES ($1, $2, $3)`,
		userID, recipeID, score)
	if err != nil {
		return fmt.Errorf("failed to insert rating: %w", err)
	}

	var scores []float64
	err = tx.SelectContext(ctx, &scores,
		`SELECT score FROM rated_recipes WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return fmt.Errorf("failed to load ratings: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE recipes SET rating = $1 WHERE id = $2`, Mean(scores), recipeID)
	if err != nil {
		return fmt.Errorf("failed to update recipe rating: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit rating: %w", err)
	}
	return nil
}

// UserScore returns the caller's own score for a recipe, or nil when
// the caller has not rated it.
func (r *RatingRepository) UserScore(ctx context.Context, userID, recipeID uuid.UUID) (*float64, error) {
	var rated model.RatedRecipe
	query := `SELECT user_id, recipe_id, score FROM rated_recipes WHERE user_id = $1 AND recipe_id = $2`
	err := r.db.GetContext(ctx, &rated, query, userID, recipeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user score: %w", err)
	}
	return &rated.Score, nil
}

// ReconcileAll recomputes every stored aggregate from the rating rows
// and returns how many recipe rows changed.
func (r *RatingRepository) ReconcileAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE recipes SET rating = COALESCE(
			(SELECT AVG(score) FROM rated_recipes WHERE rated_recipes.recipe_id = recipes.id), 0)
		WHERE rating IS DISTINCT FROM COALESCE(
			(SELECT AVG(score) FROM rated_recipes WHERE rated_recipes.recipe_id = recipes.id), 0)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to reconcile ratings: %w", err)
	}
	rows, _ := res.RowsAffected()
	return rows, nil
}

// Mean is the unweighted arithmetic average of scores, 0 when empty.
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
