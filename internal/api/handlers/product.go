package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/services"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/storefront"
	apperrors "github.com/athebyme/gomarket-platform/storefront-service/pkg/errors"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// ProductHandler обработчик запросов для товаров
type ProductHandler struct {
	service services.StorefrontServiceInterface
	logger  interfaces.LoggerPort
	opts    Options
}

// NewProductHandler создает новый обработчик товаров
func NewProductHandler(service services.StorefrontServiceInterface, logger interfaces.LoggerPort, opts Options) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
		opts:    opts,
	}
}

// loadPage открывает страницу товара из параметра маршрута
func (h *ProductHandler) loadPage(r *http.Request) (*storefront.ProductPage, error) {
	slugOrID := chi.URLParam(r, "slugOrID")
	if slugOrID == "" {
		return nil, fmt.Errorf("%w: slug or id is required", apperrors.ErrInvalidFilter)
	}

	page := storefront.NewProductPage(h.service, h.logger, h.opts.Display)
	page.Mount(r.Context(), slugOrID)

	switch page.State() {
	case storefront.StateReady:
	case storefront.StateNotFound:
		return page, apperrors.ErrNotFound
	default:
		return page, page.Err()
	}

	if raw := r.URL.Query().Get("image"); raw != "" {
		if i, err := strconv.Atoi(raw); err == nil {
			page.SelectImage(i)
		}
	}
	return page, nil
}

// GetProduct обрабатывает запрос на получение товара по slug или ID
// @Summary Товар
// @Tags products
// @Produce json
// @Param slugOrID path string true "Slug или ID товара"
// @Success 200 {object} response
// @Failure 404 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/v1/products/{slugOrID} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	page, err := h.loadPage(r)
	if err != nil {
		message := "Ошибка получения товара"
		if page != nil {
			message = page.ErrorMessage()
		}
		writeError(w, r, h.logger, err, message)
		return
	}

	view, _ := page.View()
	render.Status(r, http.StatusOK)
	render.JSON(w, r, response{
		Success: true,
		Data:    view,
	})
}

// ProductPage отдает HTML страницу товара
func (h *ProductHandler) ProductPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.loadPage(r)
	if err != nil {
		status, _ := statusFor(err)
		message := err.Error()
		if page != nil {
			message = page.ErrorMessage()
		}
		if status >= http.StatusInternalServerError {
			h.logger.ErrorWithContext(r.Context(), "Ошибка получения товара",
				interfaces.LogField{Key: "error", Value: err.Error()})
		}
		renderPage(w, r, h.logger, status, "error", errorPageData{
			basePage: basePage{Title: "Producto", AppName: h.opts.AppName},
			Message:  message,
			RetryURL: r.URL.RequestURI(),
		})
		return
	}

	view, _ := page.View()
	renderPage(w, r, h.logger, http.StatusOK, "product", productPageData{
		basePage: basePage{Title: view.Name, AppName: h.opts.AppName},
		View:     view,
	})
}
