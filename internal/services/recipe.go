package services

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/repositories"
)

//go:generate mockgen -source=recipe.go -destination=recipe_mock.go -package=services

var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeReader defines read-only operations for recipes.
type RecipeReader interface {
	GetByID(ctx context.Context, recipeID string) (*models.RecipeDB, error)
	List(ctx context.Context, cursor string, limit int) (models.Page[models.RecipeDB], error)
}

// RecipeWriter defines write operations for recipes.
type RecipeWriter interface {
	Create(ctx context.Context, recipe *models.RecipeDB) error
	Update(ctx context.Context, recipe *models.RecipeDB) error
	Delete(ctx context.Context, recipeID string) error
}

// RecipeService manages recipes.
type RecipeService struct {
	reader RecipeReader
	writer RecipeWriter
}

// NewRecipeService creates a new RecipeService instance.
func NewRecipeService(reader RecipeReader, writer RecipeWriter) *RecipeService {
	return &RecipeService{
		reader: reader,
		writer: writer,
	}
}

func (svc *RecipeService) Create(ctx context.Context, recipe *models.RecipeDB) error {
	recipe.Name = strings.TrimSpace(recipe.Name)
	if recipe.Name == "" {
		return ErrEmptyName
	}
	if err := svc.writer.Create(ctx, recipe); err != nil {
		logger.Log.Errorw("failed to create recipe", "name", recipe.Name, "err", err)
		return err
	}
	return nil
}

// List returns recipes sorted case-insensitively by name.
// With viewableOnly set, hidden recipes are left out.
func (svc *RecipeService) List(ctx context.Context, viewableOnly bool) ([]models.RecipeDB, error) {
	recipes, err := repositories.CollectAll(ctx, func(ctx context.Context, cursor string) (models.Page[models.RecipeDB], error) {
		return svc.reader.List(ctx, cursor, repositories.DefaultPageSize)
	})
	if err != nil {
		logger.Log.Errorw("failed to list recipes", "err", err)
		return nil, err
	}

	if viewableOnly {
		visible := recipes[:0]
		for _, r := range recipes {
			if r.IsViewable {
				visible = append(visible, r)
			}
		}
		recipes = visible
	}

	sort.SliceStable(recipes, func(i, j int) bool {
		a, b := strings.ToLower(recipes[i].Name), strings.ToLower(recipes[j].Name)
		if a != b {
			return a < b
		}
		return recipes[i].RecipeID < recipes[j].RecipeID
	})
	return recipes, nil
}

// Get returns one recipe. Hidden recipes are reported as missing when viewableOnly is set.
func (svc *RecipeService) Get(ctx context.Context, recipeID string, viewableOnly bool) (*models.RecipeDB, error) {
	recipe, err := svc.reader.GetByID(ctx, recipeID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrRecipeNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to get recipe", "recipe_id", recipeID, "err", err)
		return nil, err
	}
	if viewableOnly && !recipe.IsViewable {
		return nil, ErrRecipeNotFound
	}
	return recipe, nil
}

func (svc *RecipeService) Update(ctx context.Context, recipe *models.RecipeDB) error {
	recipe.Name = strings.TrimSpace(recipe.Name)
	if recipe.Name == "" {
		return ErrEmptyName
	}
	err := svc.writer.Update(ctx, recipe)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrRecipeNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to update recipe", "recipe_id", recipe.RecipeID, "err", err)
		return err
	}
	return nil
}

func (svc *RecipeService) Delete(ctx context.Context, recipeID string) error {
	err := svc.writer.Delete(ctx, recipeID)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrRecipeNotFound
	}
	if err != nil {
		logger.Log.Errorw("failed to delete recipe", "recipe_id", recipeID, "err", err)
		return err
	}
	return nil
}
