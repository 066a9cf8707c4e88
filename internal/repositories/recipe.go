package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prepit-kitchen/prepit/internal/models"
)

const recipeColumns = `recipe_id, name, ingredients, instructions, is_viewable, created_at, updated_at`

// RecipeReadRepository handles recipe read operations
type RecipeReadRepository struct {
	db *sqlx.DB
}

func NewRecipeReadRepository(db *sqlx.DB) *RecipeReadRepository {
	return &RecipeReadRepository{db: db}
}

func (r *RecipeReadRepository) GetByID(ctx context.Context, recipeID string) (*models.RecipeDB, error) {
	const query = `SELECT ` + recipeColumns + ` FROM recipes WHERE recipe_id = $1`

	var recipe models.RecipeDB
	err := r.db.GetContext(ctx, &recipe, query, recipeID)
	logQuery(query, []any{recipeID}, recipe.Name, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &recipe, nil
}

// List returns one page of recipes ordered by id.
func (r *RecipeReadRepository) List(ctx context.Context, cursor string, limit int) (models.Page[models.RecipeDB], error) {
	const query = `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE ($1 = '' OR recipe_id > $1)
		ORDER BY recipe_id
		LIMIT $2
	`
	limit = pageLimit(limit)

	var recipes []models.RecipeDB
	err := r.db.SelectContext(ctx, &recipes, query, cursor, limit+1)
	logQuery(query, []any{cursor, limit + 1}, len(recipes), err)
	if err != nil {
		return models.Page[models.RecipeDB]{}, mapError(err)
	}
	return toPage(recipes, limit, func(rc models.RecipeDB) string { return rc.RecipeID }), nil
}

func (r *RecipeReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM recipes`

	var n int64
	err := r.db.GetContext(ctx, &n, query)
	logQuery(query, nil, n, err)
	return n, mapError(err)
}

// RecipeWriteRepository handles recipe write operations
type RecipeWriteRepository struct {
	db *sqlx.DB
}

func NewRecipeWriteRepository(db *sqlx.DB) *RecipeWriteRepository {
	return &RecipeWriteRepository{db: db}
}

func (r *RecipeWriteRepository) Create(ctx context.Context, recipe *models.RecipeDB) error {
	const query = `
		INSERT INTO recipes (recipe_id, name, ingredients, instructions, is_viewable, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
	`
	id := newID()
	now := time.Now().UTC()
	args := []any{id, recipe.Name, recipe.Ingredients, recipe.Instructions, recipe.IsViewable, now}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, recipe.Name}, rowsAffected, err)
	if err != nil {
		return mapError(err)
	}

	recipe.RecipeID = id
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	return nil
}

// Update overwrites the editable fields of a recipe.
func (r *RecipeWriteRepository) Update(ctx context.Context, recipe *models.RecipeDB) error {
	const query = `
		UPDATE recipes
		SET name = $2, ingredients = $3, instructions = $4, is_viewable = $5, updated_at = $6
		WHERE recipe_id = $1
	`
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, query,
		recipe.RecipeID, recipe.Name, recipe.Ingredients, recipe.Instructions, recipe.IsViewable, now)
	var n int64
	if err == nil {
		n, err = checkAffected(res)
	}
	logQuery(query, []any{recipe.RecipeID, recipe.Name, recipe.IsViewable}, n, err)
	if err != nil {
		return mapError(err)
	}

	recipe.UpdatedAt = now
	return nil
}

func (r *RecipeWriteRepository) Delete(ctx context.Context, recipeID string) error {
	const query = `DELETE FROM recipes WHERE recipe_id = $1`

	res, err := r.db.ExecContext(ctx, query, recipeID)
	var n int64
	if err == nil {
		n, err = checkAffected(res)
	}
	logQuery(query, []any{recipeID}, n, err)
	return mapError(err)
}
