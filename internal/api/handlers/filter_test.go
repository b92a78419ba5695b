package handlers

import (
	"errors"
	"net/url"
	"testing"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	apperrors "github.com/athebyme/gomarket-platform/storefront-service/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter_Defaults(t *testing.T) {
	filter, err := ParseFilter(url.Values{}, 12)

	require.NoError(t, err)
	assert.Equal(t, models.NewProductFilter(12), filter)
}

func TestParseFilter_AllParams(t *testing.T) {
	query, _ := url.ParseQuery("q=+freno+&category=frenos&brand=Bosch&min=1000&max=5000&sale=on&stock=true&featured=1&sort=price-desc&page=2")

	filter, err := ParseFilter(query, 12)

	require.NoError(t, err)
	assert.Equal(t, "freno", filter.SearchTerm)
	assert.Equal(t, "frenos", filter.CategoryID)
	assert.Equal(t, "Bosch", filter.Brand)
	require.NotNil(t, filter.PriceMin)
	require.NotNil(t, filter.PriceMax)
	assert.Equal(t, 1000.0, *filter.PriceMin)
	assert.Equal(t, 5000.0, *filter.PriceMax)
	assert.True(t, filter.OnlyOnSale)
	assert.True(t, filter.OnlyInStock)
	assert.True(t, filter.OnlyFeatured)
	assert.Equal(t, models.SortByPriceDesc, filter.SortKey)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 12, filter.PageSize)
}

func TestParseFilter_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non numeric min", "min=abc"},
		{"negative max", "max=-5"},
		{"min above max", "min=10&max=5"},
		{"bad flag", "sale=maybe"},
		{"unknown sort", "sort=popularity"},
		{"zero page", "page=0"},
		{"non numeric page", "page=two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _ := url.ParseQuery(tt.query)

			_, err := ParseFilter(query, 12)

			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrInvalidFilter))
		})
	}
}

func TestEncodeFilter_RoundTrip(t *testing.T) {
	min, max := 1500.5, 3000.0
	filter := models.NewProductFilter(12).
		WithSearchTerm("bujía").
		WithBrand("NGK").
		WithPriceRange(&min, &max).
		WithOnlyInStock(true).
		WithSortKey(models.SortByNewest).
		WithPage(3)

	values := EncodeFilter(filter)
	parsed, err := ParseFilter(values, 12)

	require.NoError(t, err)
	assert.Equal(t, filter, parsed)
}

func TestEncodeFilter_OmitsDefaults(t *testing.T) {
	assert.Empty(t, EncodeFilter(models.NewProductFilter(12)))
	assert.Equal(t, "/catalog", catalogURL(models.NewProductFilter(12)))
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{apperrors.ErrInvalidFilter, 400},
		{apperrors.ErrNotFound, 404},
		{apperrors.NewNetworkError("list products", 503, nil), 502},
		{errors.New("boom"), 500},
	}

	for _, tt := range tests {
		status, _ := statusFor(tt.err)
		assert.Equal(t, tt.want, status, tt.err.Error())
	}
}
