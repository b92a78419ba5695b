package ports

import (
	"context"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
)

// ListParams параметры запроса списка товаров у удаленного API.
// Фильтрация витрины выполняется локально, на сервер уходит только лимит.
type ListParams struct {
	Limit int
}

// CatalogPort определяет интерфейс доступа к удаленному каталогу товаров
// Реализация может ходить в HTTP API, читать фикстуры и т.д.
type CatalogPort interface {
	// ListProducts возвращает товары каталога
	ListProducts(ctx context.Context, params ListParams) ([]models.Product, error)

	// ListProductsOnSale возвращает только товары со скидкой
	ListProductsOnSale(ctx context.Context, params ListParams) ([]models.Product, error)

	// GetProduct возвращает товар по slug или ID
	// Возвращает errors.ErrNotFound, если товар не найден
	GetProduct(ctx context.Context, slugOrID string) (*models.Product, error)

	// ListCategories возвращает категории каталога
	ListCategories(ctx context.Context) ([]models.Category, error)

	// GetCategory возвращает категорию по slug или ID
	GetCategory(ctx context.Context, slugOrID string) (*models.Category, error)

	// ListBrands возвращает список различных марок
	ListBrands(ctx context.Context) ([]string, error)
}
