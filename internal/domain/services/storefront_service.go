package services

import (
	"context"
	"fmt"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/ports"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
	"golang.org/x/sync/errgroup"
)

// DefaultFetchLimit сколько товаров запрашивается у API при открытии витрины
const DefaultFetchLimit = 100

// StorefrontServiceInterface определяет операции витрины, нужные контроллерам и обработчикам
type StorefrontServiceInterface interface {
	LoadCatalog(ctx context.Context) (*models.CatalogSnapshot, error)
	GetProduct(ctx context.Context, slugOrID string) (*models.Product, error)
	ListOnSale(ctx context.Context) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBrands(ctx context.Context) ([]string, error)
}

// StorefrontService предоставляет данные каталога для витрины.
// Фильтрация выполняется на стороне витрины, у API запрашивается только лимит.
type StorefrontService struct {
	catalog    ports.CatalogPort
	logger     interfaces.LoggerPort
	fetchLimit int
}

// NewStorefrontService создает новый экземпляр StorefrontService
func NewStorefrontService(catalog ports.CatalogPort, logger interfaces.LoggerPort, fetchLimit int) *StorefrontService {
	if fetchLimit <= 0 {
		fetchLimit = DefaultFetchLimit
	}
	return &StorefrontService{
		catalog:    catalog,
		logger:     logger,
		fetchLimit: fetchLimit,
	}
}

// LoadCatalog параллельно загружает товары, категории и марки.
// Результат либо полный, либо ошибка первого упавшего запроса.
func (s *StorefrontService) LoadCatalog(ctx context.Context) (*models.CatalogSnapshot, error) {
	var snapshot models.CatalogSnapshot

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		products, err := s.catalog.ListProducts(gctx, ports.ListParams{Limit: s.fetchLimit})
		if err != nil {
			return fmt.Errorf("failed to load products: %w", err)
		}
		snapshot.Products = products
		return nil
	})

	g.Go(func() error {
		categories, err := s.catalog.ListCategories(gctx)
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		snapshot.Categories = categories
		return nil
	})

	g.Go(func() error {
		brands, err := s.catalog.ListBrands(gctx)
		if err != nil {
			return fmt.Errorf("failed to load brands: %w", err)
		}
		snapshot.Brands = brands
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.ErrorWithContext(ctx, "Ошибка загрузки каталога",
			interfaces.LogField{Key: "error", Value: err.Error()})
		return nil, err
	}

	if snapshot.Products == nil {
		snapshot.Products = []models.Product{}
	}
	snapshot.Products = resolveCategoryRefs(snapshot.Products, snapshot.Categories)
	if snapshot.Categories == nil {
		snapshot.Categories = []models.Category{}
	}
	if snapshot.Brands == nil {
		snapshot.Brands = []string{}
	}

	s.logger.DebugWithContext(ctx, "Каталог загружен",
		interfaces.LogField{Key: "products", Value: len(snapshot.Products)},
		interfaces.LogField{Key: "categories", Value: len(snapshot.Categories)},
		interfaces.LogField{Key: "brands", Value: len(snapshot.Brands)},
	)

	return &snapshot, nil
}

// GetProduct получает товар по slug или ID.
// Если API прислало только ID категории, название догружается отдельно;
// ошибка этого запроса не мешает показать товар.
func (s *StorefrontService) GetProduct(ctx context.Context, slugOrID string) (*models.Product, error) {
	product, err := s.catalog.GetProduct(ctx, slugOrID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product %q: %w", slugOrID, err)
	}

	if product != nil && product.Category.Unresolved() {
		key := product.Category.ID
		if key == "" {
			key = product.Category.Slug
		}
		category, err := s.catalog.GetCategory(ctx, key)
		if err != nil {
			s.logger.WarnWithContext(ctx, "Категория товара не загружена",
				interfaces.LogField{Key: "category", Value: key},
				interfaces.LogField{Key: "error", Value: err.Error()})
			return product, nil
		}
		resolved := *product
		resolved.Category = categoryRef(category)
		product = &resolved
	}

	return product, nil
}

// ListOnSale возвращает товары со скидкой в порядке API
func (s *StorefrontService) ListOnSale(ctx context.Context) ([]models.Product, error) {
	products, err := s.catalog.ListProductsOnSale(ctx, ports.ListParams{Limit: s.fetchLimit})
	if err != nil {
		return nil, fmt.Errorf("failed to list products on sale: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// ListCategories возвращает категории каталога
func (s *StorefrontService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// ListBrands возвращает список марок
func (s *StorefrontService) ListBrands(ctx context.Context) ([]string, error) {
	brands, err := s.catalog.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	return brands, nil
}

// resolveCategoryRefs дополняет ссылки на категории, пришедшие одним ID,
// данными из загруженного списка категорий. Исходный срез не изменяется.
func resolveCategoryRefs(products []models.Product, categories []models.Category) []models.Product {
	var out []models.Product
	for i := range products {
		ref := products[i].Category
		if !ref.Unresolved() {
			continue
		}
		for j := range categories {
			if ref.Matches(categories[j].ID) || ref.Matches(categories[j].Slug) {
				if out == nil {
					out = append([]models.Product(nil), products...)
				}
				out[i].Category = categoryRef(&categories[j])
				break
			}
		}
	}
	if out == nil {
		return products
	}
	return out
}

func categoryRef(c *models.Category) *models.CategoryRef {
	return &models.CategoryRef{ID: c.ID, Slug: c.Slug, Name: c.Name}
}
