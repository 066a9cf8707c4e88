package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/middlewares"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/services"
)

//go:generate mockgen -source=recipes.go -destination=recipes_mock.go -package=handlers

// RecipeReader reads recipes, optionally hiding non-viewable ones.
type RecipeReader interface {
	List(ctx context.Context, viewableOnly bool) ([]models.RecipeDB, error)
	Get(ctx context.Context, recipeID string, viewableOnly bool) (*models.RecipeDB, error)
}

// RecipeWriter changes recipes.
type RecipeWriter interface {
	Create(ctx context.Context, recipe *models.RecipeDB) error
	Update(ctx context.Context, recipe *models.RecipeDB) error
	Delete(ctx context.Context, recipeID string) error
}

// RecipeRequest is the body for creating or replacing a recipe
// swagger:model RecipeRequest
type RecipeRequest struct {
	// required: true
	// default: Chimichurri
	Name         string `json:"name"`
	Ingredients  string `json:"ingredients"`
	Instructions string `json:"instructions"`
	IsViewable   *bool  `json:"is_viewable,omitempty"`
}

func (req RecipeRequest) recipe(id string) *models.RecipeDB {
	return &models.RecipeDB{
		RecipeID:     id,
		Name:         req.Name,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		IsViewable:   deref(req.IsViewable, true),
	}
}

// viewableOnly hides non-viewable recipes from sessions that cannot manage them.
func viewableOnly(r *http.Request) bool {
	session := middlewares.SessionFromContext(r.Context())
	return session == nil || !session.PrivLevel.Can(models.CapManageRecipes)
}

// NewListRecipesHandler lists recipes sorted by name.
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Success 200 {array} models.RecipeDB
// @Router /recipes [get]
// @Security BearerAuth
func NewListRecipesHandler(svc RecipeReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipes, err := svc.List(r.Context(), viewableOnly(r))
		if err != nil {
			logger.Log.Errorw("failed to list recipes", "error", err)
			writeInternalError(w)
			return
		}
		writeJSON(w, http.StatusOK, recipes)
	}
}

// NewGetRecipeHandler returns one recipe.
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe id"
// @Success 200 {object} models.RecipeDB
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /recipes/{id} [get]
// @Security BearerAuth
func NewGetRecipeHandler(svc RecipeReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID := chi.URLParam(r, "id")

		recipe, err := svc.Get(r.Context(), recipeID, viewableOnly(r))
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, recipe)
		case errors.Is(err, services.ErrRecipeNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Errorw("failed to get recipe", "recipe_id", recipeID, "error", err)
			writeInternalError(w)
		}
	}
}

// NewCreateRecipeHandler creates a recipe.
// @Summary Create recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body handlers.RecipeRequest true "Recipe"
// @Success 201 {object} models.RecipeDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /recipes [post]
// @Security BearerAuth
func NewCreateRecipeHandler(svc RecipeWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		recipe := req.recipe("")
		err := svc.Create(r.Context(), recipe)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, recipe)
		case errors.Is(err, services.ErrEmptyName):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			logger.Log.Errorw("failed to create recipe", "name", req.Name, "error", err)
			writeInternalError(w)
		}
	}
}

// NewUpdateRecipeHandler replaces a recipe's fields.
// @Summary Update recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param id path string true "Recipe id"
// @Param request body handlers.RecipeRequest true "Recipe"
// @Success 200 {object} models.RecipeDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /recipes/{id} [put]
// @Security BearerAuth
func NewUpdateRecipeHandler(svc RecipeWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecipeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		recipe := req.recipe(chi.URLParam(r, "id"))
		err := svc.Update(r.Context(), recipe)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, recipe)
		case errors.Is(err, services.ErrEmptyName):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrRecipeNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Errorw("failed to update recipe", "recipe_id", recipe.RecipeID, "error", err)
			writeInternalError(w)
		}
	}
}

// NewDeleteRecipeHandler deletes a recipe. Prep items referencing it are detached.
// @Summary Delete recipe
// @Tags recipes
// @Param id path string true "Recipe id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse "Recipe not found"
// @Router /recipes/{id} [delete]
// @Security BearerAuth
func NewDeleteRecipeHandler(svc RecipeWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID := chi.URLParam(r, "id")

		err := svc.Delete(r.Context(), recipeID)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, services.ErrRecipeNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Errorw("failed to delete recipe", "recipe_id", recipeID, "error", err)
			writeInternalError(w)
		}
	}
}
