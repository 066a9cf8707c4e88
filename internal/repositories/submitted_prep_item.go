package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/prepit-kitchen/prepit/internal/models"
)

// SubmittedPrepItemReadRepository handles submitted prep item read operations
type SubmittedPrepItemReadRepository struct {
	db *sqlx.DB
}

func NewSubmittedPrepItemReadRepository(db *sqlx.DB) *SubmittedPrepItemReadRepository {
	return &SubmittedPrepItemReadRepository{db: db}
}

// List returns one page of submitted items ordered by id.
func (r *SubmittedPrepItemReadRepository) List(ctx context.Context, cursor string, limit int) (models.Page[models.SubmittedPrepItem], error) {
	const query = `
		SELECT submitted_prep_item_id, prep_name, par_label, par_amount, prep_complete,
		       user_submit, notes, submitted_at, station_name
		FROM submitted_prep_items
		WHERE ($1 = '' OR submitted_prep_item_id > $1)
		ORDER BY submitted_prep_item_id
		LIMIT $2
	`
	limit = pageLimit(limit)

	var items []models.SubmittedPrepItem
	err := r.db.SelectContext(ctx, &items, query, cursor, limit+1)
	logQuery(query, []any{cursor, limit + 1}, len(items), err)
	if err != nil {
		return models.Page[models.SubmittedPrepItem]{}, mapError(err)
	}
	return toPage(items, limit, func(i models.SubmittedPrepItem) string { return i.ID }), nil
}

func (r *SubmittedPrepItemReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM submitted_prep_items`

	var n int64
	err := r.db.GetContext(ctx, &n, query)
	logQuery(query, nil, n, err)
	return n, mapError(err)
}

// SubmittedPrepItemWriteRepository handles submitted prep item write operations.
// Rows are insert-only.
type SubmittedPrepItemWriteRepository struct {
	db *sqlx.DB
}

func NewSubmittedPrepItemWriteRepository(db *sqlx.DB) *SubmittedPrepItemWriteRepository {
	return &SubmittedPrepItemWriteRepository{db: db}
}

// Create inserts one submitted item and fills in its id. The caller owns Date.
func (r *SubmittedPrepItemWriteRepository) Create(ctx context.Context, item *models.SubmittedPrepItem) error {
	const query = `
		INSERT INTO submitted_prep_items (submitted_prep_item_id, prep_name, par_label, par_amount,
		                                  prep_complete, user_submit, notes, submitted_at, station_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	id := newID()

	res, err := r.db.ExecContext(ctx, query,
		id, item.PrepName, item.ParLabel, item.ParAmount, item.PrepComplete,
		item.UserSubmit, item.Notes, item.Date, item.StationName)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, item.PrepName, item.StationName, item.Date}, rowsAffected, err)
	if err != nil {
		return mapError(err)
	}

	item.ID = id
	return nil
}
