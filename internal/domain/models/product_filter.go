package models

// SortKey ключ сортировки витрины
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price-asc"
	SortByPriceDesc SortKey = "price-desc"
	SortByNewest    SortKey = "newest"
	SortByDiscount  SortKey = "discount"
)

// SortKeys все ключи сортировки в порядке показа в интерфейсе
var SortKeys = []SortKey{SortByName, SortByPriceAsc, SortByPriceDesc, SortByNewest, SortByDiscount}

// Valid сообщает, известен ли ключ
func (k SortKey) Valid() bool {
	for _, known := range SortKeys {
		if k == known {
			return true
		}
	}
	return false
}

// Next возвращает следующий ключ по кругу
func (k SortKey) Next() SortKey {
	for i, known := range SortKeys {
		if k == known {
			return SortKeys[(i+1)%len(SortKeys)]
		}
	}
	return SortByName
}

// ProductFilter описывает фильтрацию, сортировку и пагинацию витрины.
// Значение неизменяемое: каждый переход возвращает новый фильтр.
type ProductFilter struct {
	SearchTerm string `json:"search_term,omitempty"`
	CategoryID string `json:"category_id,omitempty"`
	Brand      string `json:"brand,omitempty"`

	// Границы цены включительные, nil означает отсутствие границы
	PriceMin *float64 `json:"price_min,omitempty" validate:"omitempty,gte=0"`
	PriceMax *float64 `json:"price_max,omitempty" validate:"omitempty,gte=0"`

	OnlyOnSale   bool `json:"only_on_sale,omitempty"`
	OnlyInStock  bool `json:"only_in_stock,omitempty"`
	OnlyFeatured bool `json:"only_featured,omitempty"`

	SortKey  SortKey `json:"sort_key" validate:"oneof=name price-asc price-desc newest discount"`
	Page     int     `json:"page" validate:"gte=1"`
	PageSize int     `json:"page_size" validate:"gte=1,lte=100"`
}

// NewProductFilter создает фильтр по умолчанию
func NewProductFilter(pageSize int) ProductFilter {
	return ProductFilter{
		SortKey:  SortByName,
		Page:     1,
		PageSize: pageSize,
	}
}

// changed применяет изменение поля фильтра и сбрасывает страницу на первую
func (f ProductFilter) changed(apply func(*ProductFilter)) ProductFilter {
	apply(&f)
	f.Page = 1
	return f
}

// WithSearchTerm меняет поисковую строку
func (f ProductFilter) WithSearchTerm(term string) ProductFilter {
	return f.changed(func(f *ProductFilter) { f.SearchTerm = term })
}

// WithCategory меняет категорию (ID или slug)
func (f ProductFilter) WithCategory(idOrSlug string) ProductFilter {
	return f.changed(func(f *ProductFilter) { f.CategoryID = idOrSlug })
}

// WithBrand меняет марку
func (f ProductFilter) WithBrand(brand string) ProductFilter {
	return f.changed(func(f *ProductFilter) { f.Brand = brand })
}

// WithPriceRange меняет границы цены
func (f ProductFilter) WithPriceRange(min, max *float64) ProductFilter {
	return f.changed(func(f *ProductFilter) {
		f.PriceMin = copyFloat(min)
		f.PriceMax = copyFloat(max)
	})
}

// WithOnlyOnSale включает или выключает показ только товаров со скидкой
func (f ProductFilter) WithOnlyOnSale(on bool) ProductFilter {
	return f.changed(func(f *ProductFilter) { f.OnlyOnSale = on })
}

// WithOnlyInStock включает или выключает показ только товаров в наличии
func (f ProductFilter) WithOnlyInStock(on bool) ProductFilter {
	return f.changed(func(f *ProductFilter) { f.OnlyInStock = on })
}

// WithOnlyFeatured включает или выключает показ только рекомендуемых товаров
func (f ProductFilter) WithOnlyFeatured(on bool) ProductFilter {
	return f.changed(func(f *ProductFilter) { f.OnlyFeatured = on })
}

// WithSortKey меняет сортировку. Сортировка не является фильтром:
// количество найденных товаров не меняется, поэтому страница сохраняется.
func (f ProductFilter) WithSortKey(key SortKey) ProductFilter {
	f.SortKey = key
	return f
}

// WithPage меняет только номер страницы
func (f ProductFilter) WithPage(page int) ProductFilter {
	if page < 1 {
		page = 1
	}
	f.Page = page
	return f
}

// Cleared сбрасывает все фильтры и страницу, сохраняя сортировку и размер страницы
func (f ProductFilter) Cleared() ProductFilter {
	cleared := NewProductFilter(f.PageSize)
	cleared.SortKey = f.SortKey
	return cleared
}

// ActiveFilterCount возвращает количество заданных фильтров
func (f ProductFilter) ActiveFilterCount() int {
	count := 0
	for _, set := range []bool{
		f.SearchTerm != "",
		f.CategoryID != "",
		f.Brand != "",
		f.PriceMin != nil,
		f.PriceMax != nil,
		f.OnlyOnSale,
		f.OnlyInStock,
		f.OnlyFeatured,
	} {
		if set {
			count++
		}
	}
	return count
}

// HasFilters сообщает, задан ли хотя бы один фильтр
func (f ProductFilter) HasFilters() bool {
	return f.ActiveFilterCount() > 0
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
