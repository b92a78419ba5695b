package services

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func floatPtr(v float64) *float64 { return &v }

func sampleProducts() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Widget", Brand: "Acme", Price: 10, OnSale: true, DiscountPercentage: 20, StockQuantity: 3,
			Category: &models.CategoryRef{ID: "c1", Slug: "frenos"},
			CreatedAt: models.Timestamp{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}},
		{ID: "2", Name: "Gadget", Brand: "Acme", Price: 5, OnSale: true, DiscountPercentage: 10, StockQuantity: 0,
			Category: &models.CategoryRef{ID: "c2", Slug: "motor"},
			CreatedAt: models.Timestamp{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}},
		{ID: "3", Name: "Bujía", Brand: "Bosch", Description: "Encendido premium", Price: 7.5, StockQuantity: 10, Featured: true,
			Category: &models.CategoryRef{ID: "c2", Slug: "motor"},
			CreatedAt: models.Timestamp{Time: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)}},
		{ID: "4", Name: "Amortiguador", Brand: "Monroe", Price: 50, OnSale: false, DiscountPercentage: 30, StockQuantity: 1},
	}
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestQuery_NoFiltersMatchesEverything(t *testing.T) {
	products := sampleProducts()

	result := Query(products, models.NewProductFilter(12))

	assert.Equal(t, len(products), result.TotalMatched)
	assert.Equal(t, 1, result.TotalPages)
	assert.Len(t, result.Items, len(products))
}

func TestQuery_OnSaleSortedByPriceAsc(t *testing.T) {
	products := []models.Product{
		{ID: "a", Name: "Widget", Price: 10, OnSale: true},
		{ID: "b", Name: "Gadget", Price: 5, OnSale: true},
		{ID: "c", Name: "Gizmo", Price: 1, OnSale: false},
	}
	filter := models.NewProductFilter(12).WithOnlyOnSale(true).WithSortKey(models.SortByPriceAsc)

	result := Query(products, filter)

	assert.Equal(t, []string{"Gadget", "Widget"}, names(result.Items))
	assert.Equal(t, 2, result.TotalMatched)
	assert.Equal(t, 1, result.TotalPages)
}

func TestQuery_EveryItemSatisfiesFilters(t *testing.T) {
	filter := models.NewProductFilter(12).
		WithBrand("Acme").
		WithPriceRange(floatPtr(6), floatPtr(10)).
		WithOnlyInStock(true)

	result := Query(sampleProducts(), filter)

	require.Equal(t, 1, result.TotalMatched)
	for _, p := range result.Items {
		assert.Equal(t, "Acme", p.Brand)
		assert.GreaterOrEqual(t, p.Price, 6.0)
		assert.LessOrEqual(t, p.Price, 10.0)
		assert.Greater(t, p.StockQuantity, 0)
	}
}

func TestQuery_PriceBoundsInclusive(t *testing.T) {
	filter := models.NewProductFilter(12).WithPriceRange(floatPtr(5), floatPtr(10))

	result := Query(sampleProducts(), filter)

	assert.ElementsMatch(t, []string{"Widget", "Gadget", "Bujía"}, names(result.Items))
}

func TestQuery_SearchIsCaseInsensitive(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{"by name", "WIDGET", []string{"Widget"}},
		{"by description", "premium", []string{"Bujía"}},
		{"by brand", "monroe", []string{"Amortiguador"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Query(sampleProducts(), models.NewProductFilter(12).WithSearchTerm(tt.term))
			assert.ElementsMatch(t, tt.want, names(result.Items))
		})
	}
}

func TestQuery_CategoryMatchesIDOrSlug(t *testing.T) {
	byID := Query(sampleProducts(), models.NewProductFilter(12).WithCategory("c2"))
	bySlug := Query(sampleProducts(), models.NewProductFilter(12).WithCategory("motor"))

	assert.ElementsMatch(t, []string{"Gadget", "Bujía"}, names(byID.Items))
	assert.Equal(t, names(byID.Items), names(bySlug.Items))
}

func TestQuery_FeaturedFilter(t *testing.T) {
	result := Query(sampleProducts(), models.NewProductFilter(12).WithOnlyFeatured(true))

	assert.Equal(t, []string{"Bujía"}, names(result.Items))
}

func TestQuery_SortKeys(t *testing.T) {
	tests := []struct {
		key  models.SortKey
		want []string
	}{
		{models.SortByName, []string{"Amortiguador", "Bujía", "Gadget", "Widget"}},
		{models.SortByPriceAsc, []string{"Gadget", "Bujía", "Widget", "Amortiguador"}},
		{models.SortByPriceDesc, []string{"Amortiguador", "Widget", "Bujía", "Gadget"}},
		{models.SortByNewest, []string{"Gadget", "Bujía", "Widget", "Amortiguador"}},
		{models.SortByDiscount, []string{"Widget", "Gadget", "Bujía", "Amortiguador"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			result := Query(sampleProducts(), models.NewProductFilter(12).WithSortKey(tt.key))
			assert.Equal(t, tt.want, names(result.Items))
		})
	}
}

func TestQuery_UnknownSortKeepsInputOrder(t *testing.T) {
	result := Query(sampleProducts(), models.NewProductFilter(12).WithSortKey("popularity"))

	assert.Equal(t, names(sampleProducts()), names(result.Items))
}

func TestQuery_NameSortUsesLocaleCollation(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Ñandú"},
		{ID: "2", Name: "Nube"},
		{ID: "3", Name: "Oso"},
	}

	result := Query(products, models.NewProductFilter(12), WithLocale(language.Spanish))

	assert.Equal(t, []string{"Nube", "Ñandú", "Oso"}, names(result.Items))
}

func TestQuery_SortIsStableAndIdempotent(t *testing.T) {
	products := []models.Product{
		{ID: "1", Name: "Filtro", Price: 3},
		{ID: "2", Name: "Aceite", Price: 3},
		{ID: "3", Name: "Filtro", Price: 1},
	}
	filter := models.NewProductFilter(12)

	first := Query(products, filter)
	second := Query(first.Items, filter)

	assert.Equal(t, []string{"2", "1", "3"}, ids(first.Items))
	assert.Equal(t, ids(first.Items), ids(second.Items))
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestQuery_Pagination(t *testing.T) {
	products := make([]models.Product, 25)
	for i := range products {
		products[i] = models.Product{ID: fmt.Sprintf("%02d", i), Name: fmt.Sprintf("Producto %02d", i)}
	}

	tests := []struct {
		page     int
		wantLen  int
		wantNext bool
	}{
		{1, 12, true},
		{2, 12, true},
		{3, 1, false},
		{4, 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page %d", tt.page), func(t *testing.T) {
			result := Query(products, models.NewProductFilter(12).WithPage(tt.page))

			assert.Equal(t, 25, result.TotalMatched)
			assert.Equal(t, 3, result.TotalPages)
			assert.Len(t, result.Items, tt.wantLen)
			assert.Equal(t, tt.wantNext, result.Pagination.HasNext)
		})
	}

	third := Query(products, models.NewProductFilter(12).WithPage(3))
	assert.Equal(t, "24", third.Items[0].ID)
}

func TestQuery_HugePageIsEmpty(t *testing.T) {
	var result QueryResult
	require.NotPanics(t, func() {
		result = Query(sampleProducts(), models.NewProductFilter(12).WithPage(math.MaxInt))
	})

	assert.Empty(t, result.Items)
	assert.Equal(t, 4, result.TotalMatched)
	assert.Equal(t, 1, result.TotalPages)
}

func TestQuery_EmptyInput(t *testing.T) {
	result := Query(nil, models.NewProductFilter(12))

	assert.Equal(t, 0, result.TotalMatched)
	assert.Equal(t, 0, result.TotalPages)
	assert.Empty(t, result.Items)
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	before := ids(products)

	result := Query(products, models.NewProductFilter(12).WithSortKey(models.SortByPriceDesc))
	result.Items = append(result.Items, models.Product{ID: "extra"})

	assert.Equal(t, before, ids(products))
	assert.Len(t, products, 4)
}

func TestQuery_MissingFieldsAreTolerated(t *testing.T) {
	products := []models.Product{
		{ID: "1"},
		{ID: "2", Name: "Con nombre", Price: 2, CreatedAt: models.Timestamp{Time: time.Now()}},
		{ID: "3", Category: nil},
	}

	for _, key := range models.SortKeys {
		t.Run(string(key), func(t *testing.T) {
			filter := models.NewProductFilter(12).WithSortKey(key).WithCategory("")
			assert.NotPanics(t, func() {
				result := Query(products, filter)
				assert.Equal(t, 3, result.TotalMatched)
			})
		})
	}

	withCategory := Query(products, models.NewProductFilter(12).WithCategory("c1"))
	assert.Equal(t, 0, withCategory.TotalMatched)
}

func TestQuery_OnlyOnSaleScenario(t *testing.T) {
	products := []models.Product{
		{ID: "w", Name: "A Widget", Price: 100, OnSale: true, DiscountPercentage: 10},
		{ID: "g", Name: "B Gadget", Price: 50, OnSale: false},
	}
	filter := models.NewProductFilter(12).WithOnlyOnSale(true).WithSortKey(models.SortByPriceAsc)

	result := Query(products, filter)

	assert.Equal(t, []string{"A Widget"}, names(result.Items))
	assert.Equal(t, 1, result.TotalMatched)
}
