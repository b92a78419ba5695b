package services

import (
	"sort"
	"strings"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/utils"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// QueryResult страница витрины, полученная из полного списка товаров
type QueryResult struct {
	Items        []models.Product  `json:"items"`
	TotalMatched int               `json:"total_matched"`
	TotalPages   int               `json:"total_pages"`
	Pagination   *utils.Pagination `json:"pagination"`
}

type queryOptions struct {
	locale language.Tag
}

// QueryOption настраивает выполнение Query
type QueryOption func(*queryOptions)

// WithLocale задает локаль для сортировки по названию
func WithLocale(tag language.Tag) QueryOption {
	return func(o *queryOptions) {
		o.locale = tag
	}
}

// productPredicate условие отбора товара
type productPredicate func(p *models.Product) bool

// Query отбирает, сортирует и разбивает на страницы товары по фильтру.
// Исходный срез не изменяется. Функция не имеет побочных эффектов
// и может вызываться конкурентно.
//
// Товары с отсутствующими полями не вызывают ошибок: при сортировке
// отсутствующее поле считается нулевым значением ("" / 0 / нулевое время).
func Query(products []models.Product, filter models.ProductFilter, opts ...QueryOption) QueryResult {
	options := queryOptions{locale: language.Und}
	for _, opt := range opts {
		opt(&options)
	}

	predicates := buildPredicates(filter)

	matched := make([]models.Product, 0, len(products))
	for i := range products {
		if matchesAll(&products[i], predicates) {
			matched = append(matched, products[i])
		}
	}

	sortProducts(matched, filter.SortKey, options.locale)

	pagination := utils.NewPagination(filter.Page, filter.PageSize, string(filter.SortKey))
	pagination.SetTotal(int64(len(matched)))
	start, end := pagination.Bounds(len(matched))

	return QueryResult{
		Items:        matched[start:end:end],
		TotalMatched: len(matched),
		TotalPages:   pagination.TotalPages,
		Pagination:   pagination,
	}
}

// buildPredicates собирает активные фильтры в порядке применения:
// поиск, категория, марка, цена, флаги
func buildPredicates(filter models.ProductFilter) []productPredicate {
	var predicates []productPredicate

	if filter.SearchTerm != "" {
		fold := cases.Fold()
		term := fold.String(filter.SearchTerm)
		predicates = append(predicates, func(p *models.Product) bool {
			for _, field := range []string{p.Name, p.Description, p.Brand} {
				if field != "" && strings.Contains(fold.String(field), term) {
					return true
				}
			}
			return false
		})
	}

	if filter.CategoryID != "" {
		predicates = append(predicates, func(p *models.Product) bool {
			return p.Category.Matches(filter.CategoryID)
		})
	}

	if filter.Brand != "" {
		predicates = append(predicates, func(p *models.Product) bool {
			return p.Brand == filter.Brand
		})
	}

	if filter.PriceMin != nil {
		min := *filter.PriceMin
		predicates = append(predicates, func(p *models.Product) bool { return p.Price >= min })
	}
	if filter.PriceMax != nil {
		max := *filter.PriceMax
		predicates = append(predicates, func(p *models.Product) bool { return p.Price <= max })
	}

	if filter.OnlyOnSale {
		predicates = append(predicates, func(p *models.Product) bool { return p.OnSale })
	}
	if filter.OnlyInStock {
		predicates = append(predicates, func(p *models.Product) bool { return p.InStock() })
	}
	if filter.OnlyFeatured {
		predicates = append(predicates, func(p *models.Product) bool { return p.Featured })
	}

	return predicates
}

func matchesAll(p *models.Product, predicates []productPredicate) bool {
	for _, match := range predicates {
		if !match(p) {
			return false
		}
	}
	return true
}

// sortProducts выполняет устойчивую сортировку по ключу.
// Неизвестный ключ сохраняет исходный порядок.
func sortProducts(products []models.Product, key models.SortKey, locale language.Tag) {
	var less func(a, b *models.Product) bool

	switch key {
	case models.SortByName:
		collator := collate.New(locale)
		less = func(a, b *models.Product) bool {
			return collator.CompareString(a.Name, b.Name) < 0
		}
	case models.SortByPriceAsc:
		less = func(a, b *models.Product) bool { return a.Price < b.Price }
	case models.SortByPriceDesc:
		less = func(a, b *models.Product) bool { return a.Price > b.Price }
	case models.SortByNewest:
		less = func(a, b *models.Product) bool { return a.CreatedAt.After(b.CreatedAt.Time) }
	case models.SortByDiscount:
		less = func(a, b *models.Product) bool { return a.EffectiveDiscount() > b.EffectiveDiscount() }
	default:
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(&products[i], &products[j])
	})
}
