package display

import (
	"math"
	"sort"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
)

// DefaultLowStockThreshold остаток, начиная с которого показывается "осталось мало"
const DefaultLowStockThreshold = 5

// StockStatus состояние остатка товара
type StockStatus string

const (
	StockOut StockStatus = "out_of_stock"
	StockLow StockStatus = "low_stock"
	StockIn  StockStatus = "in_stock"
)

// Options параметры представления товаров
type Options struct {
	MediaBaseURL      string
	Locale            string
	Currency          string
	LowStockThreshold int
}

// SpecRow строка таблицы характеристик
type SpecRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ProductView готовый к отображению товар
type ProductView struct {
	ID          string `json:"id"`
	RouteKey    string `json:"route_key"`
	Name        string `json:"name"`
	Brand       string `json:"brand,omitempty"`
	Description string `json:"description,omitempty"`
	SKU         string `json:"sku,omitempty"`

	CategoryID   string `json:"category_id,omitempty"`
	CategoryName string `json:"category_name,omitempty"`

	HasDiscount        bool    `json:"has_discount"`
	DiscountPercentage float64 `json:"discount_percentage,omitempty"`
	Price              float64 `json:"price"`
	FinalPrice         float64 `json:"final_price"`
	Savings            float64 `json:"savings,omitempty"`
	PriceText          string  `json:"price_text"`
	FinalPriceText     string  `json:"final_price_text"`
	SavingsText        string  `json:"savings_text,omitempty"`

	StockQuantity int         `json:"stock_quantity"`
	Stock         StockStatus `json:"stock"`
	Featured      bool        `json:"featured"`

	ImageURL string   `json:"image_url"`
	Gallery  []string `json:"gallery"`

	Specifications   []SpecRow `json:"specifications,omitempty"`
	CompatibleModels []string  `json:"compatible_models,omitempty"`

	AverageRating float64 `json:"average_rating,omitempty"`
	NumReviews    int     `json:"num_reviews,omitempty"`
	FullStars     int     `json:"full_stars"`
}

// NewProductView строит представление товара
func NewProductView(p *models.Product, opts Options) ProductView {
	threshold := opts.LowStockThreshold
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	v := ProductView{
		ID:            p.ID,
		RouteKey:      p.RouteKey(),
		Name:          p.Name,
		Brand:         p.Brand,
		Description:   p.Description,
		SKU:           p.SKU,
		Price:         p.Price,
		FinalPrice:    p.Price,
		StockQuantity: p.StockQuantity,
		Stock:         stockStatus(p.StockQuantity, threshold),
		Featured:      p.Featured,
		ImageURL:      ResolveProductImageURL(p, opts.MediaBaseURL),
		Gallery:       ResolveGallery(p, opts.MediaBaseURL),
		AverageRating: p.AverageRating,
		NumReviews:    p.NumReviews,
		FullStars:     fullStars(p.AverageRating),
	}

	if p.Category != nil {
		v.CategoryID = p.Category.ID
		v.CategoryName = p.Category.Name
	}

	if p.OnSale && p.DiscountPercentage > 0 {
		v.HasDiscount = true
		v.DiscountPercentage = p.DiscountPercentage
		v.FinalPrice = ApplyDiscount(p.Price, p.DiscountPercentage)
		v.Savings = p.Price - v.FinalPrice
		v.SavingsText = FormatCurrency(v.Savings, opts.Locale, opts.Currency)
	}
	v.PriceText = FormatCurrency(v.Price, opts.Locale, opts.Currency)
	v.FinalPriceText = FormatCurrency(v.FinalPrice, opts.Locale, opts.Currency)

	for name, value := range p.Specifications {
		v.Specifications = append(v.Specifications, SpecRow{Name: name, Value: value})
	}
	sort.Slice(v.Specifications, func(i, j int) bool {
		return v.Specifications[i].Name < v.Specifications[j].Name
	})

	for _, m := range p.CompatibleModels {
		if label := m.String(); label != "" {
			v.CompatibleModels = append(v.CompatibleModels, label)
		}
	}

	return v
}

// NewProductViews строит представления для страницы товаров
func NewProductViews(products []models.Product, opts Options) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i := range products {
		views = append(views, NewProductView(&products[i], opts))
	}
	return views
}

// IsOutOfStock удобство для шаблонов
func (v ProductView) IsOutOfStock() bool { return v.Stock == StockOut }

// IsLowStock удобство для шаблонов
func (v ProductView) IsLowStock() bool { return v.Stock == StockLow }

func stockStatus(quantity, threshold int) StockStatus {
	switch {
	case quantity <= 0:
		return StockOut
	case quantity <= threshold:
		return StockLow
	default:
		return StockIn
	}
}

func fullStars(rating float64) int {
	stars := int(math.Floor(rating))
	if stars < 0 {
		return 0
	}
	if stars > 5 {
		return 5
	}
	return stars
}
