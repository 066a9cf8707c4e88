package services_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prepit-kitchen/prepit/internal/models"
	"github.com/prepit-kitchen/prepit/internal/repositories"
	"github.com/prepit-kitchen/prepit/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecipeService(t *testing.T) (*services.RecipeService, *services.MockRecipeReader, *services.MockRecipeWriter) {
	ctrl := gomock.NewController(t)
	reader := services.NewMockRecipeReader(ctrl)
	writer := services.NewMockRecipeWriter(ctrl)
	return services.NewRecipeService(reader, writer), reader, writer
}

func recipePage() models.Page[models.RecipeDB] {
	return models.Page[models.RecipeDB]{Items: []models.RecipeDB{
		{RecipeID: "1", Name: "pesto", IsViewable: true},
		{RecipeID: "2", Name: "Aioli", IsViewable: false},
		{RecipeID: "3", Name: "Brine", IsViewable: true},
	}}
}

func TestRecipeService_List(t *testing.T) {
	svc, reader, _ := newRecipeService(t)
	ctx := context.Background()

	reader.EXPECT().List(gomock.Any(), "", repositories.DefaultPageSize).Return(recipePage(), nil)
	all, err := svc.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Aioli", "Brine", "pesto"}, []string{all[0].Name, all[1].Name, all[2].Name})

	reader.EXPECT().List(gomock.Any(), "", repositories.DefaultPageSize).Return(recipePage(), nil)
	visible, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, "Brine", visible[0].Name)
	assert.Equal(t, "pesto", visible[1].Name)
}

func TestRecipeService_Get(t *testing.T) {
	svc, reader, _ := newRecipeService(t)
	ctx := context.Background()
	hidden := &models.RecipeDB{RecipeID: "2", Name: "Aioli"}

	reader.EXPECT().GetByID(ctx, "2").Return(hidden, nil).Times(2)

	got, err := svc.Get(ctx, "2", false)
	require.NoError(t, err)
	assert.Equal(t, hidden, got)

	_, err = svc.Get(ctx, "2", true)
	assert.ErrorIs(t, err, services.ErrRecipeNotFound)

	reader.EXPECT().GetByID(ctx, "9").Return(nil, errNotFound)
	_, err = svc.Get(ctx, "9", false)
	assert.ErrorIs(t, err, services.ErrRecipeNotFound)
}

func TestRecipeService_CreateUpdateDelete(t *testing.T) {
	svc, _, writer := newRecipeService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Create(ctx, &models.RecipeDB{Name: " "}), services.ErrEmptyName)

	recipe := &models.RecipeDB{Name: " Aioli "}
	writer.EXPECT().Create(ctx, recipe).Return(nil)
	require.NoError(t, svc.Create(ctx, recipe))
	assert.Equal(t, "Aioli", recipe.Name)

	writer.EXPECT().Update(ctx, recipe).Return(errNotFound)
	assert.ErrorIs(t, svc.Update(ctx, recipe), services.ErrRecipeNotFound)

	writer.EXPECT().Delete(ctx, "1").Return(nil)
	assert.NoError(t, svc.Delete(ctx, "1"))
}
