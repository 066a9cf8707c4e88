package models

import "time"

// RecipeDB represents a recipe row.
type RecipeDB struct {
	RecipeID     string    `json:"id" db:"recipe_id"`
	Name         string    `json:"name" db:"name"`
	Ingredients  string    `json:"ingredients" db:"ingredients"`
	Instructions string    `json:"instructions" db:"instructions"`
	IsViewable   bool      `json:"is_viewable" db:"is_viewable"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
