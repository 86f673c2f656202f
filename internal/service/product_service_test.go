package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"go-magmart-api/internal/domain"
	"go-magmart-api/internal/repo"
)

func seedProduct(t *testing.T, db *gorm.DB, name string, mut ...func(*domain.Product)) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Name:         name,
		Description:  "test product",
		Price:        49.99,
		CountInStock: 5,
		SKU:          fmt.Sprintf("SKU-%s", name),
		CategoryID:   1000,
		Sizes:        domain.StringArray{"S", "M"},
		Colours:      domain.StringArray{"black"},
		Collections:  "summer",
		Gender:       "unisex",
		IsPublished:  true,
		CreatorID:    1000,
	}
	for _, m := range mut {
		m(p)
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestProductGetByID_WithoutCacheHitsDB(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)
	ctx := context.Background()

	p := seedProduct(t, db, "Linen Shirt")

	got, err := svc.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Linen Shirt", got.Name)
	assert.Equal(t, domain.StringArray{"S", "M"}, got.Sizes)

	got, err = svc.GetByID(ctx, 424242)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductList_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)
	ctx := context.Background()

	seedProduct(t, db, "Shirt")
	seedProduct(t, db, "Hidden Coat", func(p *domain.Product) { p.IsPublished = false })
	seedProduct(t, db, "Star Boots", func(p *domain.Product) {
		p.IsFeatured = true
		p.CategoryID = 1001
	})

	all, err := svc.List(ctx, repo.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	published := true
	got, err := svc.List(ctx, repo.ProductFilter{Published: &published})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	featured := true
	got, err = svc.List(ctx, repo.ProductFilter{Featured: &featured})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Star Boots", got[0].Name)

	got, err = svc.List(ctx, repo.ProductFilter{CategoryID: 1001})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Star Boots", got[0].Name)
}

func TestProductUpdate_PatchesArraysAndFlags(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)
	ctx := context.Background()

	p := seedProduct(t, db, "Shirt")

	price := 39.99
	sizes := []string{"L", "XL"}
	featured := true
	got, err := svc.Update(ctx, p.ID, UpdateProductInput{
		Price:      &price,
		Sizes:      &sizes,
		IsFeatured: &featured,
	})
	require.NoError(t, err)
	require.NotNil(t, got)

	var reread domain.Product
	require.NoError(t, db.First(&reread, p.ID).Error)
	assert.Equal(t, 39.99, reread.Price)
	assert.Equal(t, domain.StringArray{"L", "XL"}, reread.Sizes)
	assert.True(t, reread.IsFeatured)
	assert.Equal(t, "Shirt", reread.Name)
}

func TestProductUpdate_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)

	price := 1.0
	got, err := svc.Update(context.Background(), 424242, UpdateProductInput{Price: &price})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewProductService(db, nil)
	ctx := context.Background()

	p := seedProduct(t, db, "Shirt")

	ok, err := svc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Delete(ctx, p.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
