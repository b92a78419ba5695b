package storefront

import (
	"context"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/display"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/services"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/utils"
	"golang.org/x/text/language"
)

// CatalogOptions параметры страницы каталога
type CatalogOptions struct {
	PageSize int
	Locale   string
}

// CatalogPage контроллер страницы каталога.
// Хранит загруженный каталог и фильтр, после каждого перехода
// синхронно пересчитывает выдачу. Не безопасен для конкурентного использования:
// все вызовы должны идти из одного потока интерфейса.
type CatalogPage struct {
	service services.StorefrontServiceInterface
	logger  interfaces.LoggerPort
	locale  language.Tag

	state     State
	err       error
	snapshot  *models.CatalogSnapshot
	filter    models.ProductFilter
	result    services.QueryResult
	unmounted bool
}

// NewCatalogPage создает контроллер с фильтром по умолчанию
func NewCatalogPage(service services.StorefrontServiceInterface, logger interfaces.LoggerPort, opts CatalogOptions) *CatalogPage {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = utils.DefaultPageSize
	}

	locale, err := language.Parse(opts.Locale)
	if err != nil {
		locale = language.Und
	}

	return &CatalogPage{
		service: service,
		logger:  logger,
		locale:  locale,
		state:   StateIdle,
		filter:  models.NewProductFilter(pageSize),
	}
}

// Mount загружает каталог. Готовое состояние наступает только
// после успешного завершения всех трех запросов.
func (c *CatalogPage) Mount(ctx context.Context) {
	c.BeginLoad()
	snapshot, err := c.service.LoadCatalog(ctx)
	c.CompleteLoad(snapshot, err)
}

// Retry повторяет загрузку по запросу пользователя
func (c *CatalogPage) Retry(ctx context.Context) {
	c.Mount(ctx)
}

// BeginLoad переводит страницу в состояние загрузки
func (c *CatalogPage) BeginLoad() {
	if c.unmounted {
		return
	}
	c.state = StateLoading
	c.err = nil
}

// CompleteLoad принимает результат загрузки. После Unmount вызов игнорируется.
func (c *CatalogPage) CompleteLoad(snapshot *models.CatalogSnapshot, err error) {
	if c.unmounted || c.state != StateLoading {
		return
	}

	if err != nil || snapshot == nil {
		c.state = StateError
		c.err = err
		c.snapshot = nil
		c.result = services.QueryResult{}
		if err != nil {
			c.logger.Warn("Каталог не загружен", interfaces.LogField{Key: "error", Value: err.Error()})
		}
		return
	}

	c.state = StateReady
	c.snapshot = snapshot
	c.recompute()
}

// Unmount закрывает страницу, поздние результаты загрузки отбрасываются
func (c *CatalogPage) Unmount() {
	c.unmounted = true
}

// SetSearchTerm меняет поисковую строку
func (c *CatalogPage) SetSearchTerm(term string) {
	c.apply(c.filter.WithSearchTerm(term))
}

// SetCategory меняет категорию
func (c *CatalogPage) SetCategory(idOrSlug string) {
	c.apply(c.filter.WithCategory(idOrSlug))
}

// SetBrand меняет марку
func (c *CatalogPage) SetBrand(brand string) {
	c.apply(c.filter.WithBrand(brand))
}

// SetPriceRange меняет границы цены
func (c *CatalogPage) SetPriceRange(min, max *float64) {
	c.apply(c.filter.WithPriceRange(min, max))
}

// SetOnlyOnSale переключает фильтр товаров со скидкой
func (c *CatalogPage) SetOnlyOnSale(on bool) {
	c.apply(c.filter.WithOnlyOnSale(on))
}

// SetOnlyInStock переключает фильтр товаров в наличии
func (c *CatalogPage) SetOnlyInStock(on bool) {
	c.apply(c.filter.WithOnlyInStock(on))
}

// SetOnlyFeatured переключает фильтр рекомендуемых товаров
func (c *CatalogPage) SetOnlyFeatured(on bool) {
	c.apply(c.filter.WithOnlyFeatured(on))
}

// SetSortKey меняет сортировку, страница сохраняется
func (c *CatalogPage) SetSortKey(key models.SortKey) {
	c.apply(c.filter.WithSortKey(key))
}

// SetPage переходит на страницу, номер ограничивается диапазоном [1, TotalPages]
func (c *CatalogPage) SetPage(page int) {
	if total := c.result.TotalPages; total > 0 && page > total {
		page = total
	}
	c.apply(c.filter.WithPage(page))
}

// NextPage переходит на следующую страницу, если она есть
func (c *CatalogPage) NextPage() {
	if c.filter.Page < c.result.TotalPages {
		c.SetPage(c.filter.Page + 1)
	}
}

// PrevPage переходит на предыдущую страницу, если она есть
func (c *CatalogPage) PrevPage() {
	if c.filter.Page > 1 {
		c.SetPage(c.filter.Page - 1)
	}
}

// ClearFilters сбрасывает фильтры и страницу, сортировка не меняется
func (c *CatalogPage) ClearFilters() {
	c.apply(c.filter.Cleared())
}

// Restore целиком заменяет фильтр, например состоянием из URL
func (c *CatalogPage) Restore(filter models.ProductFilter) {
	if filter.PageSize <= 0 {
		filter.PageSize = c.filter.PageSize
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	c.apply(filter)
}

func (c *CatalogPage) apply(filter models.ProductFilter) {
	c.filter = filter
	c.recompute()
}

// recompute пересчитывает выдачу без обращения к сети
func (c *CatalogPage) recompute() {
	if c.snapshot == nil {
		return
	}
	c.result = services.Query(c.snapshot.Products, c.filter, services.WithLocale(c.locale))
}

// State возвращает состояние загрузки
func (c *CatalogPage) State() State {
	return c.state
}

// Err возвращает ошибку загрузки
func (c *CatalogPage) Err() error {
	return c.err
}

// ErrorMessage возвращает сообщение об ошибке для покупателя
func (c *CatalogPage) ErrorMessage() string {
	if c.state != StateError {
		return ""
	}
	return MsgCatalogLoadFailed
}

// Filter возвращает текущий фильтр
func (c *CatalogPage) Filter() models.ProductFilter {
	return c.filter
}

// Result возвращает последнюю выдачу
func (c *CatalogPage) Result() services.QueryResult {
	return c.result
}

// Categories возвращает категории каталога
func (c *CatalogPage) Categories() []models.Category {
	if c.snapshot == nil {
		return nil
	}
	return c.snapshot.Categories
}

// Brands возвращает марки каталога
func (c *CatalogPage) Brands() []string {
	if c.snapshot == nil {
		return nil
	}
	return c.snapshot.Brands
}

// ActiveFilterCount количество заданных фильтров для кнопки "Limpiar (n)"
func (c *CatalogPage) ActiveFilterCount() int {
	return c.filter.ActiveFilterCount()
}

// EmptyMessage возвращает подсказку для пустой выдачи: предложить изменить
// фильтры или сообщить, что товаров нет вообще. Для непустой выдачи пусто.
func (c *CatalogPage) EmptyMessage() string {
	if c.state != StateReady || c.result.TotalMatched > 0 {
		return ""
	}
	if c.filter.HasFilters() {
		return MsgAdjustFilters
	}
	return MsgNoProductsInStore
}

// Views возвращает товары текущей страницы в виде для отображения
func (c *CatalogPage) Views(opts display.Options) []display.ProductView {
	return display.NewProductViews(c.result.Items, opts)
}
