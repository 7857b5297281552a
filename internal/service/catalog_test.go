package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/catalog_admin/internal/status"
)

func TestCatalogService_CreateProduct(t *testing.T) {
	pub := &fakePublisher{}
	svc := &CatalogService{Repo: newTestRepo(t), Producer: pub}
	ctx := context.Background()

	product, st := svc.CreateProduct(ctx, "Widget", 9.99)
	require.True(t, st.OK(), "unexpected status %q", st)
	require.NotNil(t, product)
	assert.True(t, strings.HasPrefix(st.String(), "success|"))
	assert.Contains(t, st.Detail, "Widget")

	recorded := pub.Events()
	require.Len(t, recorded, 1)
	assert.Equal(t, "product_created", recorded[0].Type)
	assert.Equal(t, product.ID, recorded[0].ProductID)
}

func TestCatalogService_CreateProduct_Validation(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	tests := []struct {
		name        string
		description string
		price       float64
	}{
		{name: "empty description", description: "", price: 1},
		{name: "blank description", description: "   ", price: 1},
		{name: "negative price", description: "Widget", price: -0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, st := svc.CreateProduct(ctx, tt.description, tt.price)
			assert.Nil(t, product)
			assert.Equal(t, status.KindError, st.Kind)
		})
	}

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_UpdateProduct(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	product, st := svc.CreateProduct(ctx, "Widget", 9.99)
	require.True(t, st.OK())

	updated, st := svc.UpdateProduct(ctx, product.ID, "Improved Widget", 11)
	require.True(t, st.OK())
	assert.Equal(t, "Improved Widget", updated.Description)

	_, st = svc.UpdateProduct(ctx, 999, "Nothing", 1)
	assert.Equal(t, status.KindWarning, st.Kind)
	assert.Contains(t, st.Detail, "not found")
}

func TestCatalogService_DeleteProduct_EndToEnd(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, st := svc.CreateProduct(ctx, "Widget", 9.99)
	require.True(t, st.OK())

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.EqualValues(t, 1, products[0].ID)
	assert.Equal(t, "Widget", products[0].Description)
	assert.Equal(t, 9.99, products[0].Price)

	st = svc.DeleteProduct(ctx, 1)
	assert.True(t, strings.HasPrefix(st.String(), "success|"))

	products, err = svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	st = svc.DeleteProduct(ctx, 1)
	assert.Equal(t, status.KindWarning, st.Kind)
}

func TestCatalogService_SetProductImage(t *testing.T) {
	svc := &CatalogService{Repo: newTestRepo(t)}
	ctx := context.Background()

	product, st := svc.CreateProduct(ctx, "Widget", 9.99)
	require.True(t, st.OK())

	st = svc.SetProductImage(ctx, product.ID, "a.png", "image/png", nil)
	assert.Equal(t, status.KindError, st.Kind)
	assert.Contains(t, st.Detail, "No image selected")

	st = svc.SetProductImage(ctx, 999, "a.png", "image/png", []byte("x"))
	assert.Equal(t, status.KindError, st.Kind)
	assert.Contains(t, st.Detail, "not found")

	st = svc.SetProductImage(ctx, product.ID, "a.png", "image/png", []byte("x"))
	require.True(t, st.OK())

	image, err := svc.GetProductImage(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), image.ImageData)
}
