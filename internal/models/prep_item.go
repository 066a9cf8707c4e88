package models

import "time"

// PrepItemDB is one par line on a station's prep list.
type PrepItemDB struct {
	PrepItemID   string    `json:"id" db:"prep_item_id"`               // ULID primary key
	Title        string    `json:"title" db:"title"`                   // Task name
	ParAmount    string    `json:"par_amount" db:"par_amount"`         // Target quantity, free text
	ParLabel     string    `json:"par_label" db:"par_label"`           // Unit, e.g. "pans"
	IsViewable   bool      `json:"is_viewable" db:"is_viewable"`       // Hidden items are not submitted
	CurrentValue string    `json:"current_value" db:"current_value"`   // Last entered completed value
	Owner        string    `json:"owner" db:"owner"`                   // Free text owner
	MoreInfo     string    `json:"more_info" db:"more_info"`           // Instructions shown with the item
	StationName  string    `json:"station_name" db:"station_name"`     // Station reference by name
	RecipeID     *string   `json:"recipe_id,omitempty" db:"recipe_id"` // Optional attached recipe
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PrepItemPatch carries a partial update; nil fields are left unchanged.
// An empty RecipeID detaches the recipe.
type PrepItemPatch struct {
	Title        *string
	ParAmount    *string
	ParLabel     *string
	IsViewable   *bool
	CurrentValue *string
	Owner        *string
	MoreInfo     *string
	StationName  *string
	RecipeID     *string
}
