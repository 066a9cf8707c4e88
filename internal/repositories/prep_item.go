package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prepit-kitchen/prepit/internal/models"
)

const prepItemColumns = `prep_item_id, title, par_amount, par_label, is_viewable, current_value, owner, more_info, station_name, recipe_id, created_at`

// PrepItemReadRepository handles prep item read operations
type PrepItemReadRepository struct {
	db *sqlx.DB
}

func NewPrepItemReadRepository(db *sqlx.DB) *PrepItemReadRepository {
	return &PrepItemReadRepository{db: db}
}

func (r *PrepItemReadRepository) GetByID(ctx context.Context, prepItemID string) (*models.PrepItemDB, error) {
	const query = `SELECT ` + prepItemColumns + ` FROM prep_items WHERE prep_item_id = $1`

	var item models.PrepItemDB
	err := r.db.GetContext(ctx, &item, query, prepItemID)
	logQuery(query, []any{prepItemID}, item.Title, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

// ListByStation returns one page of a station's prep items ordered by id.
func (r *PrepItemReadRepository) ListByStation(ctx context.Context, stationName, cursor string, limit int) (models.Page[models.PrepItemDB], error) {
	const query = `
		SELECT ` + prepItemColumns + `
		FROM prep_items
		WHERE station_name = $1
		  AND ($2 = '' OR prep_item_id > $2)
		ORDER BY prep_item_id
		LIMIT $3
	`
	limit = pageLimit(limit)

	var items []models.PrepItemDB
	err := r.db.SelectContext(ctx, &items, query, stationName, cursor, limit+1)
	logQuery(query, []any{stationName, cursor, limit + 1}, len(items), err)
	if err != nil {
		return models.Page[models.PrepItemDB]{}, mapError(err)
	}
	return toPage(items, limit, func(i models.PrepItemDB) string { return i.PrepItemID }), nil
}

func (r *PrepItemReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM prep_items`

	var n int64
	err := r.db.GetContext(ctx, &n, query)
	logQuery(query, nil, n, err)
	return n, mapError(err)
}

// PrepItemWriteRepository handles prep item write operations
type PrepItemWriteRepository struct {
	db *sqlx.DB
}

func NewPrepItemWriteRepository(db *sqlx.DB) *PrepItemWriteRepository {
	return &PrepItemWriteRepository{db: db}
}

func (r *PrepItemWriteRepository) Create(ctx context.Context, item *models.PrepItemDB) error {
	const query = `
		INSERT INTO prep_items (prep_item_id, title, par_amount, par_label, is_viewable, current_value, owner, more_info, station_name, recipe_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	id := newID()
	now := time.Now().UTC()

	res, err := r.db.ExecContext(ctx, query,
		id, item.Title, item.ParAmount, item.ParLabel, item.IsViewable, item.CurrentValue,
		item.Owner, item.MoreInfo, item.StationName, item.RecipeID, now)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, item.Title, item.StationName}, rowsAffected, err)
	if err != nil {
		return mapError(err)
	}

	item.PrepItemID = id
	item.CreatedAt = now
	return nil
}

// Update applies a partial update. An empty RecipeID in the patch clears the recipe.
func (r *PrepItemWriteRepository) Update(ctx context.Context, prepItemID string, patch models.PrepItemPatch) error {
	const query = `
		UPDATE prep_items
		SET title = COALESCE($2, title),
		    par_amount = COALESCE($3, par_amount),
		    par_label = COALESCE($4, par_label),
		    is_viewable = COALESCE($5, is_viewable),
		    current_value = COALESCE($6, current_value),
		    owner = COALESCE($7, owner),
		    more_info = COALESCE($8, more_info),
		    station_name = COALESCE($9, station_name),
		    recipe_id = CASE WHEN $10::BOOLEAN THEN NULLIF($11::VARCHAR, '') ELSE recipe_id END
		WHERE prep_item_id = $1
	`
	recipeSet := patch.RecipeID != nil
	recipeID := ""
	if recipeSet {
		recipeID = *patch.RecipeID
	}

	res, err := r.db.ExecContext(ctx, query,
		prepItemID, patch.Title, patch.ParAmount, patch.ParLabel, patch.IsViewable,
		patch.CurrentValue, patch.Owner, patch.MoreInfo, patch.StationName, recipeSet, recipeID)
	var n int64
	if err == nil {
		n, err = checkAffected(res)
	}
	logQuery(query, []any{prepItemID, recipeSet, recipeID}, n, err)
	return mapError(err)
}

func (r *PrepItemWriteRepository) Delete(ctx context.Context, prepItemID string) error {
	const query = `DELETE FROM prep_items WHERE prep_item_id = $1`

	res, err := r.db.ExecContext(ctx, query, prepItemID)
	var n int64
	if err == nil {
		n, err = checkAffected(res)
	}
	logQuery(query, []any{prepItemID}, n, err)
	return mapError(err)
}
