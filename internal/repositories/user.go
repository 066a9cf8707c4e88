package repositories

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prepit-kitchen/prepit/internal/models"
)

const userColumns = `user_id, display_name, user_name, priv_level, password_salt, password_hash, created_at, updated_at`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the user with the given id.
func (r *UserReadRepository) GetByID(ctx context.Context, userID string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID)
	logQuery(query, []any{userID}, user.UserName, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// GetByUserName returns the user with the given login name. The match is case-sensitive.
func (r *UserReadRepository) GetByUserName(ctx context.Context, userName string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_name = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userName)
	logQuery(query, []any{userName}, user.UserID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// List returns one page of users ordered by id.
func (r *UserReadRepository) List(ctx context.Context, cursor string, limit int) (models.Page[models.UserDB], error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1 = '' OR user_id > $1)
		ORDER BY user_id
		LIMIT $2
	`
	limit = pageLimit(limit)

	var users []models.UserDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, cursor, limit+1)
	logQuery(query, []any{cursor, limit + 1}, len(users), err)
	if err != nil {
		return models.Page[models.UserDB]{}, mapError(err)
	}
	return toPage(users, limit, func(u models.UserDB) string { return u.UserID }), nil
}

// Count returns the number of users.
func (r *UserReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM users`

	var n int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)
	logQuery(query, nil, n, err)
	return n, mapError(err)
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user and fills in its id and timestamps.
// A taken user name returns ErrConflict.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (user_id, display_name, user_name, priv_level, password_salt, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
	`
	id := newID()
	now := time.Now().UTC()

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		id, user.DisplayName, user.UserName, user.PrivLevel, user.PasswordSalt, user.PasswordHash, now)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id, user.DisplayName, user.UserName, user.PrivLevel}, rowsAffected, err)
	if err != nil {
		return mapError(err)
	}

	user.UserID = id
	user.CreatedAt = now
	user.UpdatedAt = now
	return nil
}

// Update changes the display name and, when salt and hash are given, the stored credential.
// Nil arguments leave the column unchanged.
func (r *UserWriteRepository) Update(ctx context.Context, userID string, displayName, salt, hash *string) error {
	const query = `
		UPDATE users
		SET display_name = COALESCE($2, display_name),
		    password_salt = COALESCE($3, password_salt),
		    password_hash = COALESCE($4, password_hash),
		    updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, displayName, salt, hash)
	if err == nil {
		_, err = checkAffected(res)
	}
	logQuery(query, []any{userID, displayName, salt != nil}, res != nil, err)
	return mapError(err)
}

// Delete removes a user.
func (r *UserWriteRepository) Delete(ctx context.Context, userID string) error {
	const query = `DELETE FROM users WHERE user_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID)
	var n int64
	if err == nil {
		n, err = checkAffected(res)
	}
	logQuery(query, []any{userID}, n, err)
	return mapError(err)
}
