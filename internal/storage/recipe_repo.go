package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/recipe-share/internal/model"
)

type RecipeRepository struct {
	db *Database
}

func NewRecipeRepository(db *Database) *RecipeRepository {
	return &RecipeRepository{db: db}
}

const recipeColumns = `id, source, author_id, date_created, date_edited, rating, status`

// Create inserts a recipe in PENDING status with a zero rating and
// attaches the given tags, all in one transaction.
func (r *RecipeRepository) Create(ctx context.Context, authorID uuid.UUID, source string, tags []string) (*model.Recipe, error) {
	ts := now()
	recipe := model.Recipe{
		ID:          uuid.New(),
		Source:      source,
		AuthorID:    authorID,
		DateCreated: ts,
		DateEdited:  ts,
		Rating:      0,
		Status:      model.StatusPending,
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO recipes (`+recipeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		recipe.ID, recipe.Source, recipe.AuthorID, recipe.DateCreated, recipe.DateEdited, recipe.Rating, recipe.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	if err := attachTags(ctx, tx, recipe.ID, tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit recipe: %w", err)
	}

	return &recipe, nil
}

// AttachTags associates the given tag texts with a recipe, creating
// missing tags on the way. Attaching an already-attached tag is a no-op.
func (r *RecipeRepository) AttachTags(ctx context.Context, recipeID uuid.UUID, tags []string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := attachTags(ctx, tx, recipeID, tags); err != nil {
		return err
	}

	return tx.Commit()
}

func attachTags(ctx context.Context, tx *sqlx.Tx, recipeID uuid.UUID, tags []string) error {
	for _, text := range tags {
		var tagID uuid.UUID
		err := tx.GetContext(ctx, &tagID, `SELECT id FROM tags WHERE text = $1`, text)
		if errors.Is(err, sql.ErrNoRows) {
			tagID = uuid.New()
			// Another writer may have created the tag in between.
			_, err = tx.ExecContext(ctx,
				`INSERT INTO tags (id, text) VALUES ($1, $2) ON CONFLICT (text) DO NOTHING`,
				tagID, text)
			if err == nil {
				err = tx.GetContext(ctx, &tagID, `SELECT id FROM tags WHERE text = $1`, text)
			}
		}
		if err != nil {
			return fmt.Errorf("failed to resolve tag %q: %w", text, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO recipes_tags (recipe_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			recipeID, tagID)
		if err != nil {
			return fmt.Errorf("failed to attach tag %q: %w", text, err)
		}
	}
	return nil
}

func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var recipe model.Recipe
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`
	err := r.db.GetContext(ctx, &recipe, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find recipe: %w", err)
	}
	return &recipe, nil
}

// SetStatus overwrites the moderation status and bumps the edit
// timestamp. Returns nil when the recipe does not exist.
func (r *RecipeRepository) SetStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Recipe, error) {
	var recipe model.Recipe
	query := `
		UPDATE recipes SET status = $1, date_edited = $2 WHERE id = $3
		RETURNING ` + recipeColumns + `
	`
	err := r.db.QueryRowxContext(ctx, query, status, now(), id).StructScan(&recipe)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update recipe status: %w", err)
	}
	return &recipe, nil
}

// ListByStatus returns recipes in one moderation state, most
// recently created first. Used by the pending/denied listings.
func (r *RecipeRepository) ListByStatus(ctx context.Context, status model.Status, limit, offset int) ([]model.Recipe, error) {
	var recipes []model.Recipe
	query := `
		SELECT ` + recipeColumns + ` FROM recipes
		WHERE status = $1 ORDER BY date_created DESC LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &recipes, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes by status: %w", err)
	}
	return recipes, nil
}

// ListApproved returns publicly visible recipes ordered by rating,
// newest first among equals.
func (r *RecipeRepository) ListApproved(ctx context.Context, limit, offset int) ([]model.Recipe, error) {
	var recipes []model.Recipe
	query := `
		SELECT ` + recipeColumns + ` FROM recipes
		WHERE status = $1 ORDER BY rating DESC, date_created DESC LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &recipes, query, model.StatusApproved, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved recipes: %w", err)
	}
	return recipes, nil
}

// ListByAuthor returns all of one author's recipes regardless of status.
func (r *RecipeRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]model.Recipe, error) {
	var recipes []model.Recipe
	query := `
		SELECT ` + recipeColumns + ` FROM recipes
		WHERE author_id = $1 ORDER BY rating DESC, date_created DESC LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &recipes, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes by author: %w", err)
	}
	return recipes, nil
}

// SearchByTags returns APPROVED recipes tagged with any of the given
// texts (tag-OR), ordered like the public listing.
func (r *RecipeRepository) SearchByTags(ctx context.Context, tags []string, limit, offset int) ([]model.Recipe, error) {
	var recipes []model.Recipe
	query := `
		SELECT DISTINCT r.id, r.source, r.author_id, r.date_created, r.date_edited, r.rating, r.status
		FROM recipes r
		JOIN recipes_tags rt ON rt.recipe_id = r.id
		JOIN tags t ON t.id = rt.tag_id
		WHERE t.text = ANY($1) AND r.status = $2
		ORDER BY r.rating DESC, r.date_created DESC
		LIMIT $3 OFFSET $4
	`
	err := r.db.SelectContext(ctx, &recipes, query, pq.Array(tags), model.StatusApproved, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search recipes by tags: %w", err)
	}
	return recipes, nil
}

func (r *RecipeRepository) CountByStatus(ctx context.Context, status model.Status) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM recipes WHERE status = $1`, status)
	return count, err
}

func (r *RecipeRepository) CountByAuthor(ctx context.Context, authorID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM recipes WHERE author_id = $1`, authorID)
	return count, err
}

func (r *RecipeRepository) CountByTags(ctx context.Context, tags []string) (int, error) {
	var count int
	query := `
		SELECT COUNT(DISTINCT r.id)
		FROM recipes r
		JOIN recipes_tags rt ON rt.recipe_id = r.id
		JOIN tags t ON t.id = rt.tag_id
		WHERE t.text = ANY($1) AND r.status = $2
	`
	err := r.db.GetContext(ctx, &count, query, pq.Array(tags), model.StatusApproved)
	return count, err
}
