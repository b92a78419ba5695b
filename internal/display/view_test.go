package display

import (
	"testing"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOptions = Options{MediaBaseURL: "http://media", Locale: "en-US", Currency: "USD"}

func TestNewProductView_Discount(t *testing.T) {
	p := &models.Product{
		ID:                 "p1",
		Slug:               "widget",
		Name:               "Widget",
		Price:              200,
		OnSale:             true,
		DiscountPercentage: 25,
		StockQuantity:      10,
		Category:           &models.CategoryRef{ID: "c1", Name: "Frenos"},
	}

	v := NewProductView(p, testOptions)

	assert.True(t, v.HasDiscount)
	assert.Equal(t, 150.0, v.FinalPrice)
	assert.Equal(t, 50.0, v.Savings)
	assert.Equal(t, FormatCurrency(150, "en-US", "USD"), v.FinalPriceText)
	assert.Equal(t, FormatCurrency(200, "en-US", "USD"), v.PriceText)
	assert.Equal(t, "widget", v.RouteKey)
	assert.Equal(t, "Frenos", v.CategoryName)
	assert.Equal(t, StockIn, v.Stock)
}

func TestNewProductView_DiscountIgnoredWhenNotOnSale(t *testing.T) {
	v := NewProductView(&models.Product{Price: 100, DiscountPercentage: 40}, testOptions)

	assert.False(t, v.HasDiscount)
	assert.Equal(t, 100.0, v.FinalPrice)
	assert.Empty(t, v.SavingsText)
}

func TestNewProductView_StockStatus(t *testing.T) {
	tests := []struct {
		quantity int
		want     StockStatus
	}{
		{0, StockOut},
		{1, StockLow},
		{5, StockLow},
		{6, StockIn},
	}

	for _, tt := range tests {
		v := NewProductView(&models.Product{StockQuantity: tt.quantity}, testOptions)
		assert.Equal(t, tt.want, v.Stock, "quantity %d", tt.quantity)
	}

	v := NewProductView(&models.Product{StockQuantity: 8}, Options{LowStockThreshold: 10})
	assert.True(t, v.IsLowStock())
}

func TestNewProductView_DetailsAndMedia(t *testing.T) {
	p := &models.Product{
		ID:             "p2",
		Images:         []string{"a.jpg", "b.jpg"},
		Specifications: map[string]string{"Peso": "1kg", "Material": "Acero"},
		CompatibleModels: []models.CompatibleModel{
			{Text: "Universal"},
			{Make: "Kia", Model: "Rio", Year: "2020"},
		},
		AverageRating: 4.6,
		NumReviews:    12,
	}

	v := NewProductView(p, testOptions)

	assert.Equal(t, "p2", v.RouteKey)
	assert.Equal(t, "http://media/uploads/a.jpg", v.ImageURL)
	assert.Len(t, v.Gallery, 2)
	require.Len(t, v.Specifications, 2)
	assert.Equal(t, "Material", v.Specifications[0].Name)
	assert.Equal(t, []string{"Universal", "Kia Rio 2020"}, v.CompatibleModels)
	assert.Equal(t, 4, v.FullStars)
}

func TestNewProductViews(t *testing.T) {
	views := NewProductViews([]models.Product{{ID: "a"}, {ID: "b"}}, testOptions)
	require.Len(t, views, 2)
	assert.Equal(t, "b", views[1].ID)
	assert.True(t, views[0].IsOutOfStock())
}
