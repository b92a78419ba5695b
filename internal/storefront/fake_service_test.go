package storefront

import (
	"context"
	"fmt"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	apperrors "github.com/athebyme/gomarket-platform/storefront-service/pkg/errors"
)

// fakeService реализация StorefrontServiceInterface в памяти
type fakeService struct {
	snapshot *models.CatalogSnapshot
	loadErr  error
	loads    int
}

func (f *fakeService) LoadCatalog(context.Context) (*models.CatalogSnapshot, error) {
	f.loads++
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.snapshot, nil
}

func (f *fakeService) GetProduct(_ context.Context, slugOrID string) (*models.Product, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	for i := range f.snapshot.Products {
		p := f.snapshot.Products[i]
		if p.ID == slugOrID || p.Slug == slugOrID {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("failed to get product %q: %w", slugOrID, apperrors.ErrNotFound)
}

func (f *fakeService) ListOnSale(context.Context) ([]models.Product, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	var onSale []models.Product
	for _, p := range f.snapshot.Products {
		if p.OnSale {
			onSale = append(onSale, p)
		}
	}
	return onSale, nil
}

func (f *fakeService) ListCategories(context.Context) ([]models.Category, error) {
	return f.snapshot.Categories, f.loadErr
}

func (f *fakeService) ListBrands(context.Context) ([]string, error) {
	return f.snapshot.Brands, f.loadErr
}

// catalogOf строит каталог из n товаров с чередующимися признаками
func catalogOf(n int) *models.CatalogSnapshot {
	products := make([]models.Product, n)
	for i := range products {
		products[i] = models.Product{
			ID:            fmt.Sprintf("p%02d", i),
			Slug:          fmt.Sprintf("producto-%02d", i),
			Name:          fmt.Sprintf("Producto %02d", i),
			Brand:         []string{"Bosch", "NGK"}[i%2],
			Price:         float64(1000 * (i + 1)),
			OnSale:        i%3 == 0,
			StockQuantity: i % 4,
		}
	}
	return &models.CatalogSnapshot{
		Products:   products,
		Categories: []models.Category{{ID: "c1", Name: "Frenos", Slug: "frenos"}},
		Brands:     []string{"Bosch", "NGK"},
	}
}
