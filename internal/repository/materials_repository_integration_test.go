//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signcraft/sheet-pricing-service/internal/domain/model"
	"github.com/signcraft/sheet-pricing-service/internal/testutil"
)

func setupMaterialsRepo(t *testing.T) *MaterialsRepository {
	t.Helper()
	ctx := context.Background()

	container, err := testutil.GetSharedMongoDB(ctx)
	require.NoError(t, err)

	db, err := NewMongoDB(container.URI, testutil.SanitizeDBName(t.Name()))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Database.Drop(context.Background())
		_ = db.Close(context.Background())
	})

	return NewMaterialsRepository(db)
}

func TestMaterialsRepository_UpsertAndGet(t *testing.T) {
	repo := setupMaterialsRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := repo.Upsert(ctx, "acm-3mm-white", MaterialConfig{
		Name:      "3mm white ACM",
		Sheet:     model.SheetSpec{Width: 48, Height: 96, BaseCost: 20},
		CreatedBy: "test",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Version)
	assert.Equal(t, "acm-3mm-white", created.MaterialID)

	got, err := repo.GetByMaterialID(ctx, "acm-3mm-white")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "3mm white ACM", got.Name)
	assert.Equal(t, 20.0, got.Sheet.BaseCost)
}

func TestMaterialsRepository_UpsertBumpsVersion(t *testing.T) {
	repo := setupMaterialsRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := repo.Upsert(ctx, "coroplast-4mm", MaterialConfig{
		Name:  "4mm coroplast",
		Sheet: model.SheetSpec{Width: 48, Height: 96, BaseCost: 8},
	})
	require.NoError(t, err)

	updated, err := repo.Upsert(ctx, "coroplast-4mm", MaterialConfig{
		Name:  "4mm coroplast",
		Sheet: model.SheetSpec{Width: 48, Height: 96, BaseCost: 9.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)
	assert.Equal(t, 9.5, updated.Sheet.BaseCost)
}

func TestMaterialsRepository_GetMissing(t *testing.T) {
	repo := setupMaterialsRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	got, err := repo.GetByMaterialID(ctx, "does-not-exist")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMaterialsRepository_ListAndDelete(t *testing.T) {
	repo := setupMaterialsRepo(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, m := range []struct{ id, name string }{
		{"acm-3mm-white", "3mm white ACM"},
		{"coroplast-4mm", "4mm coroplast"},
	} {
		_, err := repo.Upsert(ctx, m.id, MaterialConfig{
			Name:  m.name,
			Sheet: model.SheetSpec{Width: 48, Height: 96, BaseCost: 10},
		})
		require.NoError(t, err)
	}

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	deleted, err := repo.Delete(ctx, "acm-3mm-white")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "acm-3mm-white")
	require.NoError(t, err)
	assert.False(t, deleted)

	list, err = repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
