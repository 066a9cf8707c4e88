package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/migrations"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, migrations.Up(ctx, db.DB))

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestPostgres_Repositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()
	ctx := context.Background()

	t.Run("Users", func(t *testing.T) {
		w := NewUserWriteRepository(db, nil)
		r := NewUserReadRepository(db, nil)

		user := &models.UserDB{DisplayName: "Root", UserName: "root", PrivLevel: "Admin", PasswordSalt: "s", PasswordHash: "h"}
		require.NoError(t, w.Create(ctx, user))

		dup := &models.UserDB{DisplayName: "Other", UserName: "root", PrivLevel: "User", PasswordSalt: "s", PasswordHash: "h"}
		assert.ErrorIs(t, w.Create(ctx, dup), ErrConflict)

		_, err := r.GetByUserName(ctx, "Root")
		assert.ErrorIs(t, err, ErrNotFound)

		salt, hash := "s2", "h2"
		require.NoError(t, w.Update(ctx, user.UserID, nil, &salt, &hash))

		got, err := r.GetByUserName(ctx, "root")
		require.NoError(t, err)
		assert.Equal(t, "Root", got.DisplayName)
		assert.Equal(t, "s2", got.PasswordSalt)
		assert.Equal(t, "h2", got.PasswordHash)

		n, err := r.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		require.NoError(t, w.Delete(ctx, user.UserID))
		assert.ErrorIs(t, w.Delete(ctx, user.UserID), ErrNotFound)
	})

	t.Run("StationsPagination", func(t *testing.T) {
		w := NewStationWriteRepository(db)
		r := NewStationReadRepository(db)

		for _, name := range []string{"Grill", "Fry", "Salad", "Pastry", "Sauté"} {
			require.NoError(t, w.Create(ctx, &models.StationDB{StationName: name}))
		}
		assert.ErrorIs(t, w.Create(ctx, &models.StationDB{StationName: "Grill"}), ErrConflict)

		all, err := CollectAll(ctx, func(ctx context.Context, cursor string) (models.Page[models.StationDB], error) {
			return r.List(ctx, cursor, 2)
		})
		require.NoError(t, err)
		assert.Len(t, all, 5)
		for i := 1; i < len(all); i++ {
			assert.Less(t, all[i-1].StationID, all[i].StationID)
		}

		got, err := r.GetByID(ctx, all[0].StationID)
		require.NoError(t, err)
		assert.Equal(t, "Grill", got.StationName)
	})

	t.Run("PrepItemsAndRecipes", func(t *testing.T) {
		rw := NewRecipeWriteRepository(db)
		rr := NewRecipeReadRepository(db)
		pw := NewPrepItemWriteRepository(db)
		pr := NewPrepItemReadRepository(db)

		recipe := &models.RecipeDB{Name: "Aioli", Ingredients: "garlic, oil", Instructions: "whisk", IsViewable: true}
		require.NoError(t, rw.Create(ctx, recipe))

		item := &models.PrepItemDB{Title: "Aioli", ParAmount: "2", ParLabel: "qt", IsViewable: true, StationName: "Fry", RecipeID: &recipe.RecipeID}
		require.NoError(t, pw.Create(ctx, item))

		title := "Garlic aioli"
		require.NoError(t, pw.Update(ctx, item.PrepItemID, models.PrepItemPatch{Title: &title}))

		got, err := pr.GetByID(ctx, item.PrepItemID)
		require.NoError(t, err)
		assert.Equal(t, "Garlic aioli", got.Title)
		assert.Equal(t, "2", got.ParAmount)
		require.NotNil(t, got.RecipeID)
		assert.Equal(t, recipe.RecipeID, *got.RecipeID)

		empty := ""
		require.NoError(t, pw.Update(ctx, item.PrepItemID, models.PrepItemPatch{RecipeID: &empty}))
		got, err = pr.GetByID(ctx, item.PrepItemID)
		require.NoError(t, err)
		assert.Nil(t, got.RecipeID)

		page, err := pr.ListByStation(ctx, "Fry", "", 10)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
		page, err = pr.ListByStation(ctx, "Grill", "", 10)
		require.NoError(t, err)
		assert.Empty(t, page.Items)

		recipe.IsViewable = false
		require.NoError(t, rw.Update(ctx, recipe))
		gotRecipe, err := rr.GetByID(ctx, recipe.RecipeID)
		require.NoError(t, err)
		assert.False(t, gotRecipe.IsViewable)

		require.NoError(t, pw.Delete(ctx, item.PrepItemID))
		require.NoError(t, rw.Delete(ctx, recipe.RecipeID))
		_, err = rr.GetByID(ctx, recipe.RecipeID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SubmittedPrepItems", func(t *testing.T) {
		w := NewSubmittedPrepItemWriteRepository(db)
		r := NewSubmittedPrepItemReadRepository(db)
		at := time.Date(2024, 3, 1, 14, 5, 30, 0, time.UTC)

		for _, name := range []string{"Aioli", "Fries"} {
			item := &models.SubmittedPrepItem{PrepName: name, PrepComplete: "1", UserSubmit: "Sam", Date: at, StationName: "Fry"}
			require.NoError(t, w.Create(ctx, item))
			assert.NotEmpty(t, item.ID)
		}

		page, err := r.List(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.True(t, at.Equal(page.Items[0].Date))
		assert.Equal(t, "Aioli", page.Items[0].PrepName)

		n, err := r.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
	})
}
