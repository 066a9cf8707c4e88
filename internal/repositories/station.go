package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prepit-kitchen/prepit/internal/models"
)

// StationReadRepository handles station read operations
type StationReadRepository struct {
	db *sqlx.DB
}

func NewStationReadRepository(db *sqlx.DB) *StationReadRepository {
	return &StationReadRepository{db: db}
}

func (r *StationReadRepository) GetByID(ctx context.Context, stationID string) (*models.StationDB, error) {
	const query = `SELECT station_id, station_name, created_at FROM stations WHERE station_id = $1`

	var station models.StationDB
	err := r.db.GetContext(ctx, &station, query, stationID)
	logQuery(query, []any{stationID}, station, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &station, nil
}

// List returns one page of stations ordered by id.
func (r *StationReadRepository) List(ctx context.Context, cursor string, limit int) (models.Page[models.StationDB], error) {
	const query = `
		SELECT station_id, station_name, created_at
		FROM stations
		WHERE ($1 = '' OR station_id > $1)
		ORDER BY station_id
		LIMIT $2
	`
	limit = pageLimit(limit)

	var stations []models.StationDB
	err := r.db.SelectContext(ctx, &stations, query, cursor, limit+1)
	logQuery(query, []any{cursor, limit + 1}, len(stations), err)
	if err != nil {
		return models.Page[models.StationDB]{}, mapError(err)
	}
	return toPage(stations, limit, func(s models.StationDB) string { return s.StationID }), nil
}

func (r *StationReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM stations`

	var n int64
	err := r.db.GetContext(ctx, &n, query)
	logQuery(query, nil, n, err)
	return n, mapError(err)
}

// StationWriteRepository handles station write operations
type StationWriteRepository struct {
	db *sqlx.DB
}

func NewStationWriteRepository(db *sqlx.DB) *StationWriteRepository {
	return &StationWriteRepository{db: db}
}

// Create inserts a station. Station names are unique.
func (r *StationWriteRepository) Create(ctx context.Context, station *models.StationDB) error {
	const query = `INSERT INTO stations (station_id, station_name, created_at) VALUES ($1, $2, $3)`

	id := newID()
	now := time.Now().UTC()
	args := []any{id, station.StationName, now}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return mapError(err)
	}

	station.StationID = id
	station.CreatedAt = now
	return nil
}

func (r *StationWriteRepository) Delete(ctx context.Context, stationID string) error {
	const query = `DELETE FROM stations WHERE station_id = $1`

	res, err := r.db.ExecContext(ctx, query, stationID)
	var n int64
	if err == nil {
		n, err = checkAffected(res)
	}
	logQuery(query, []any{stationID}, n, err)
	return mapError(err)
}
