package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/adapters/logger"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/ports"
	apperrors "github.com/athebyme/gomarket-platform/storefront-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalog реализация CatalogPort для тестов
type fakeCatalog struct {
	mu sync.Mutex

	products   []models.Product
	categories []models.Category
	brands     []string

	productsErr    error
	categoriesErr  error
	categoryErr    error
	brandsErr      error
	categoryLookup int

	lastParams ports.ListParams
}

func (f *fakeCatalog) ListProducts(_ context.Context, params ports.ListParams) ([]models.Product, error) {
	f.mu.Lock()
	f.lastParams = params
	f.mu.Unlock()
	return f.products, f.productsErr
}

func (f *fakeCatalog) ListProductsOnSale(_ context.Context, params ports.ListParams) ([]models.Product, error) {
	f.mu.Lock()
	f.lastParams = params
	f.mu.Unlock()
	var onSale []models.Product
	for _, p := range f.products {
		if p.OnSale {
			onSale = append(onSale, p)
		}
	}
	return onSale, f.productsErr
}

func (f *fakeCatalog) GetProduct(_ context.Context, slugOrID string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == slugOrID || f.products[i].Slug == slugOrID {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeCatalog) ListCategories(context.Context) ([]models.Category, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeCatalog) GetCategory(_ context.Context, slugOrID string) (*models.Category, error) {
	f.categoryLookup++
	if f.categoryErr != nil {
		return nil, f.categoryErr
	}
	for i := range f.categories {
		if f.categories[i].ID == slugOrID || f.categories[i].Slug == slugOrID {
			c := f.categories[i]
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (f *fakeCatalog) ListBrands(context.Context) ([]string, error) {
	return f.brands, f.brandsErr
}

func TestStorefrontService_LoadCatalog(t *testing.T) {
	catalog := &fakeCatalog{
		products:   []models.Product{{ID: "1", Name: "Filtro"}},
		categories: []models.Category{{ID: "c1", Name: "Frenos"}},
		brands:     []string{"Bosch"},
	}
	service := NewStorefrontService(catalog, logger.NewNopLogger(), 0)

	snapshot, err := service.LoadCatalog(context.Background())

	require.NoError(t, err)
	assert.Len(t, snapshot.Products, 1)
	assert.Len(t, snapshot.Categories, 1)
	assert.Equal(t, []string{"Bosch"}, snapshot.Brands)
	assert.Equal(t, DefaultFetchLimit, catalog.lastParams.Limit)
}

func TestStorefrontService_LoadCatalogPassesLimit(t *testing.T) {
	catalog := &fakeCatalog{}
	service := NewStorefrontService(catalog, logger.NewNopLogger(), 40)

	snapshot, err := service.LoadCatalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 40, catalog.lastParams.Limit)
	assert.NotNil(t, snapshot.Products)
	assert.NotNil(t, snapshot.Categories)
	assert.NotNil(t, snapshot.Brands)
}

func TestStorefrontService_LoadCatalogFailsWhenAnyRequestFails(t *testing.T) {
	networkErr := apperrors.NewNetworkError("list categories", 503, nil)

	tests := []struct {
		name    string
		catalog *fakeCatalog
	}{
		{"products", &fakeCatalog{productsErr: networkErr}},
		{"categories", &fakeCatalog{categoriesErr: networkErr}},
		{"brands", &fakeCatalog{brandsErr: networkErr}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewStorefrontService(tt.catalog, logger.NewNopLogger(), 10)

			snapshot, err := service.LoadCatalog(context.Background())

			require.Error(t, err)
			assert.Nil(t, snapshot)
			assert.True(t, apperrors.IsNetwork(err))
			assert.Contains(t, err.Error(), tt.name)
		})
	}
}

func TestStorefrontService_GetProduct(t *testing.T) {
	catalog := &fakeCatalog{products: []models.Product{{ID: "1", Slug: "filtro-aceite", Name: "Filtro"}}}
	service := NewStorefrontService(catalog, logger.NewNopLogger(), 10)

	product, err := service.GetProduct(context.Background(), "filtro-aceite")
	require.NoError(t, err)
	assert.Equal(t, "1", product.ID)

	_, err = service.GetProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStorefrontService_ListCategoriesAndBrandsWrapErrors(t *testing.T) {
	boom := errors.New("boom")
	catalog := &fakeCatalog{categoriesErr: boom, brandsErr: boom}
	service := NewStorefrontService(catalog, logger.NewNopLogger(), 10)

	_, err := service.ListCategories(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = service.ListBrands(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStorefrontService_GetProductResolvesBareCategory(t *testing.T) {
	catalog := &fakeCatalog{
		products: []models.Product{
			{ID: "1", Name: "Filtro", Category: &models.CategoryRef{ID: "c1"}},
			{ID: "2", Name: "Bujía", Category: &models.CategoryRef{ID: "c2", Name: "Motor"}},
		},
		categories: []models.Category{{ID: "c1", Slug: "frenos", Name: "Frenos"}},
	}
	service := NewStorefrontService(catalog, logger.NewNopLogger(), 10)

	product, err := service.GetProduct(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, &models.CategoryRef{ID: "c1", Slug: "frenos", Name: "Frenos"}, product.Category)
	assert.Equal(t, &models.CategoryRef{ID: "c1"}, catalog.products[0].Category)

	product, err = service.GetProduct(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Motor", product.Category.Name)
	assert.Equal(t, 1, catalog.categoryLookup)
}

func TestStorefrontService_GetProductKeepsProductWhenCategoryFails(t *testing.T) {
	catalog := &fakeCatalog{
		products:    []models.Product{{ID: "1", Name: "Filtro", Category: &models.CategoryRef{ID: "c9"}}},
		categoryErr: apperrors.NewNetworkError("get category", 500, nil),
	}
	service := NewStorefrontService(catalog, logger.NewNopLogger(), 10)

	product, err := service.GetProduct(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, "c9", product.Category.ID)
	assert.Empty(t, product.Category.Name)
}

func TestStorefrontService_LoadCatalogResolvesBareCategories(t *testing.T) {
	catalog := &fakeCatalog{
		products: []models.Product{
			{ID: "1", Name: "Filtro", Category: &models.CategoryRef{ID: "c1"}},
			{ID: "2", Name: "Bujía", Category: &models.CategoryRef{ID: "zz"}},
			{ID: "3", Name: "Correa"},
		},
		categories: []models.Category{{ID: "c1", Slug: "frenos", Name: "Frenos"}},
	}
	service := NewStorefrontService(catalog, logger.NewNopLogger(), 10)

	snapshot, err := service.LoadCatalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Frenos", snapshot.Products[0].Category.Name)
	assert.True(t, snapshot.Products[0].Category.Matches("frenos"))
	assert.Equal(t, &models.CategoryRef{ID: "zz"}, snapshot.Products[1].Category)
	assert.Nil(t, snapshot.Products[2].Category)
	assert.Empty(t, catalog.products[0].Category.Name)
	assert.Zero(t, catalog.categoryLookup)
}

func TestStorefrontService_ListOnSale(t *testing.T) {
	catalog := &fakeCatalog{products: []models.Product{
		{ID: "1", Name: "Filtro", OnSale: true},
		{ID: "2", Name: "Bujía"},
	}}
	service := NewStorefrontService(catalog, logger.NewNopLogger(), 30)

	products, err := service.ListOnSale(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Filtro", products[0].Name)
	assert.Equal(t, 30, catalog.lastParams.Limit)

	catalog.productsErr = apperrors.NewNetworkError("list products on sale", 502, nil)
	_, err = service.ListOnSale(context.Background())
	assert.True(t, apperrors.IsNetwork(err))
}
