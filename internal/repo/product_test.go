package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/catalog_admin/internal/models"
)

func TestListProducts_OrderedByID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	for _, desc := range []string{"Widget", "Gadget", "Sprocket"} {
		require.NoError(t, r.CreateProduct(ctx, &models.Product{Description: desc, Price: 1}))
	}

	products, err := r.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	for i := 1; i < len(products); i++ {
		assert.Less(t, products[i-1].ID, products[i].ID)
	}
}

func TestUpdateProduct(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := models.Product{Description: "Widget", Price: 9.99}
	require.NoError(t, r.CreateProduct(ctx, &product))

	updated, err := r.UpdateProduct(ctx, product.ID, "Improved Widget", 12.50)
	require.NoError(t, err)
	assert.Equal(t, "Improved Widget", updated.Description)
	assert.Equal(t, 12.50, updated.Price)

	_, err = r.UpdateProduct(ctx, 999, "Nothing", 1)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestGetProductImage_AbsentWithoutUpload(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := models.Product{Description: "Widget", Price: 9.99}
	require.NoError(t, r.CreateProduct(ctx, &product))

	_, err := r.GetProductImage(ctx, product.ID)
	require.ErrorIs(t, err, ErrImageNotFound)
}

func TestSetProductImage_ReplacesExisting(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := models.Product{Description: "Widget", Price: 9.99}
	require.NoError(t, r.CreateProduct(ctx, &product))

	require.NoError(t, r.SetProductImage(ctx, product.ID, "old.png", "image/png", []byte("old-bytes")))

	first, err := r.GetProductImage(ctx, product.ID)
	require.NoError(t, err)

	require.NoError(t, r.SetProductImage(ctx, product.ID, "new.jpg", "image/jpeg", []byte("new-bytes")))

	second, err := r.GetProductImage(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "new.jpg", second.FileName)
	assert.Equal(t, "image/jpeg", second.ContentType)
	assert.Equal(t, []byte("new-bytes"), second.ImageData)

	// exactly one row remains and the old row's id no longer resolves
	var count int64
	require.NoError(t, r.DB.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var stale models.ProductImage
	err = r.DB.First(&stale, first.ID).Error
	require.Error(t, err)
}

func TestSetProductImage_UnknownProduct(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	err := r.SetProductImage(ctx, 42, "a.png", "image/png", []byte("x"))
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestDeleteProduct_RemovesImage(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	product := models.Product{Description: "Widget", Price: 9.99}
	require.NoError(t, r.CreateProduct(ctx, &product))
	require.NoError(t, r.SetProductImage(ctx, product.ID, "a.png", "image/png", []byte("x")))

	require.NoError(t, r.DeleteProduct(ctx, product.ID))

	_, err := r.GetProduct(ctx, product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)

	var count int64
	require.NoError(t, r.DB.Model(&models.ProductImage{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	err = r.DeleteProduct(ctx, product.ID)
	require.ErrorIs(t, err, ErrProductNotFound)
}
