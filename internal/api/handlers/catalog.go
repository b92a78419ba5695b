package handlers

import (
	"net/http"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/display"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/services"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/storefront"
	apperrors "github.com/athebyme/gomarket-platform/storefront-service/pkg/errors"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
)

// Options настройки обработчиков витрины
type Options struct {
	AppName  string
	PageSize int
	Locale   string
	Display  display.Options
}

// CatalogHandler обработчик запросов каталога
type CatalogHandler struct {
	service services.StorefrontServiceInterface
	logger  interfaces.LoggerPort
	opts    Options
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(service services.StorefrontServiceInterface, logger interfaces.LoggerPort, opts Options) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
		opts:    opts,
	}
}

// catalogMeta метаданные выдачи каталога
type catalogMeta struct {
	Pagination    interface{} `json:"pagination"`
	TotalMatched  int         `json:"total_matched"`
	TotalPages    int         `json:"total_pages"`
	ActiveFilters int         `json:"active_filters"`
	Filter        interface{} `json:"filter"`
}

// loadPage открывает страницу каталога для одного запроса и применяет фильтр из URL
func (h *CatalogHandler) loadPage(r *http.Request) (*storefront.CatalogPage, error) {
	filter, err := ParseFilter(r.URL.Query(), h.opts.PageSize)
	if err != nil {
		return nil, err
	}

	page := storefront.NewCatalogPage(h.service, h.logger, storefront.CatalogOptions{
		PageSize: h.opts.PageSize,
		Locale:   h.opts.Locale,
	})
	page.Mount(r.Context())
	if page.State() != storefront.StateReady {
		if err := page.Err(); err != nil {
			return page, err
		}
		return page, apperrors.NewNetworkError("load catalog", 0, nil)
	}

	page.Restore(filter)
	return page, nil
}

// ListCatalog обрабатывает запрос на получение страницы каталога
// @Summary Страница каталога
// @Description Фильтрация, сортировка и пагинация выполняются витриной
// @Tags catalog
// @Produce json
// @Param q query string false "Поисковая строка"
// @Param category query string false "ID или slug категории"
// @Param brand query string false "Марка"
// @Param min query number false "Минимальная цена"
// @Param max query number false "Максимальная цена"
// @Param sale query bool false "Только со скидкой"
// @Param stock query bool false "Только в наличии"
// @Param featured query bool false "Только рекомендуемые"
// @Param sort query string false "name, price-asc, price-desc, newest, discount"
// @Param page query int false "Номер страницы"
// @Success 200 {object} response
// @Failure 400 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/v1/catalog [get]
func (h *CatalogHandler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	page, err := h.loadPage(r)
	if err != nil {
		writeError(w, r, h.logger, err, "Ошибка получения каталога")
		return
	}

	result := page.Result()
	writeJSON(w, r, page.Views(h.opts.Display), catalogMeta{
		Pagination:    result.Pagination,
		TotalMatched:  result.TotalMatched,
		TotalPages:    result.TotalPages,
		ActiveFilters: page.ActiveFilterCount(),
		Filter:        page.Filter(),
	})
}

// ListOnSale обрабатывает запрос на получение товаров со скидкой
// @Summary Товары со скидкой
// @Description Список в порядке API каталога, без локальной фильтрации
// @Tags catalog
// @Produce json
// @Success 200 {object} response
// @Failure 502 {object} errorResponse
// @Router /api/v1/products/on-sale [get]
func (h *CatalogHandler) ListOnSale(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListOnSale(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "Ошибка получения товаров со скидкой")
		return
	}
	writeJSON(w, r, display.NewProductViews(products, h.opts.Display), nil)
}

// ListCategories обрабатывает запрос на получение категорий
// @Summary Категории каталога
// @Tags catalog
// @Produce json
// @Success 200 {object} response
// @Failure 502 {object} errorResponse
// @Router /api/v1/categories [get]
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "Ошибка получения категорий")
		return
	}
	writeJSON(w, r, categories, nil)
}

// ListBrands обрабатывает запрос на получение марок
// @Summary Марки каталога
// @Tags catalog
// @Produce json
// @Success 200 {object} response
// @Failure 502 {object} errorResponse
// @Router /api/v1/brands [get]
func (h *CatalogHandler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.service.ListBrands(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err, "Ошибка получения марок")
		return
	}
	writeJSON(w, r, brands, nil)
}

// CatalogPage отдает HTML страницу каталога
func (h *CatalogHandler) CatalogPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.loadPage(r)
	if err != nil {
		status, _ := statusFor(err)
		message := err.Error()
		if page != nil {
			message = page.ErrorMessage()
		}
		if status >= http.StatusInternalServerError {
			h.logger.ErrorWithContext(r.Context(), "Ошибка получения каталога",
				interfaces.LogField{Key: "error", Value: err.Error()})
		}
		renderPage(w, r, h.logger, status, "error", errorPageData{
			basePage: basePage{Title: "Catálogo", AppName: h.opts.AppName},
			Message:  message,
			RetryURL: r.URL.RequestURI(),
		})
		return
	}

	filter := page.Filter()
	result := page.Result()
	links, prev, next := pageLinks(filter, result)

	renderPage(w, r, h.logger, http.StatusOK, "catalog", catalogPageData{
		basePage:      basePage{Title: "Catálogo", AppName: h.opts.AppName},
		Filter:        filter,
		MinText:       priceText(filter.PriceMin),
		MaxText:       priceText(filter.PriceMax),
		Result:        result,
		Products:      page.Views(h.opts.Display),
		Categories:    page.Categories(),
		Brands:        page.Brands(),
		SortOptions:   sortOptions(filter.SortKey),
		ActiveFilters: page.ActiveFilterCount(),
		ClearURL:      catalogURL(filter.Cleared()),
		EmptyTitle:    storefront.MsgNoProductsTitle,
		EmptyMessage:  page.EmptyMessage(),
		Pages:         links,
		PrevURL:       prev,
		NextURL:       next,
	})
}
