package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	apperrors "github.com/athebyme/gomarket-platform/storefront-service/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// Параметры строки запроса каталога
const (
	paramSearch   = "q"
	paramCategory = "category"
	paramBrand    = "brand"
	paramMin      = "min"
	paramMax      = "max"
	paramSale     = "sale"
	paramStock    = "stock"
	paramFeatured = "featured"
	paramSort     = "sort"
	paramPage     = "page"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ParseFilter строит фильтр витрины из строки запроса.
// Размер страницы не задается клиентом и берется из настроек.
func ParseFilter(query url.Values, pageSize int) (models.ProductFilter, error) {
	filter := models.NewProductFilter(pageSize)

	filter.SearchTerm = strings.TrimSpace(query.Get(paramSearch))
	filter.CategoryID = strings.TrimSpace(query.Get(paramCategory))
	filter.Brand = strings.TrimSpace(query.Get(paramBrand))

	var err error
	if filter.PriceMin, err = parsePrice(query, paramMin); err != nil {
		return filter, err
	}
	if filter.PriceMax, err = parsePrice(query, paramMax); err != nil {
		return filter, err
	}

	if filter.OnlyOnSale, err = parseFlag(query, paramSale); err != nil {
		return filter, err
	}
	if filter.OnlyInStock, err = parseFlag(query, paramStock); err != nil {
		return filter, err
	}
	if filter.OnlyFeatured, err = parseFlag(query, paramFeatured); err != nil {
		return filter, err
	}

	if sort := query.Get(paramSort); sort != "" {
		filter.SortKey = models.SortKey(sort)
	}

	if raw := query.Get(paramPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("%w: page %q is not a number", apperrors.ErrInvalidFilter, raw)
		}
		filter.Page = page
	}

	if err := validate.Struct(filter); err != nil {
		return filter, fmt.Errorf("%w: %s", apperrors.ErrInvalidFilter, describeValidation(err))
	}

	if filter.PriceMin != nil && filter.PriceMax != nil && *filter.PriceMin > *filter.PriceMax {
		return filter, fmt.Errorf("%w: min is greater than max", apperrors.ErrInvalidFilter)
	}

	return filter, nil
}

// EncodeFilter превращает фильтр обратно в строку запроса.
// Значения по умолчанию не выводятся.
func EncodeFilter(filter models.ProductFilter) url.Values {
	values := url.Values{}
	if filter.SearchTerm != "" {
		values.Set(paramSearch, filter.SearchTerm)
	}
	if filter.CategoryID != "" {
		values.Set(paramCategory, filter.CategoryID)
	}
	if filter.Brand != "" {
		values.Set(paramBrand, filter.Brand)
	}
	if filter.PriceMin != nil {
		values.Set(paramMin, strconv.FormatFloat(*filter.PriceMin, 'f', -1, 64))
	}
	if filter.PriceMax != nil {
		values.Set(paramMax, strconv.FormatFloat(*filter.PriceMax, 'f', -1, 64))
	}
	if filter.OnlyOnSale {
		values.Set(paramSale, "1")
	}
	if filter.OnlyInStock {
		values.Set(paramStock, "1")
	}
	if filter.OnlyFeatured {
		values.Set(paramFeatured, "1")
	}
	if filter.SortKey != "" && filter.SortKey != models.SortByName {
		values.Set(paramSort, string(filter.SortKey))
	}
	if filter.Page > 1 {
		values.Set(paramPage, strconv.Itoa(filter.Page))
	}
	return values
}

func parsePrice(query url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not a number", apperrors.ErrInvalidFilter, key, raw)
	}
	return &value, nil
}

// parseFlag принимает значения strconv.ParseBool и "on" от HTML флажков
func parseFlag(query url.Values, key string) (bool, error) {
	raw := strings.TrimSpace(query.Get(key))
	switch strings.ToLower(raw) {
	case "":
		return false, nil
	case "on", "yes":
		return true, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s %q is not a boolean", apperrors.ErrInvalidFilter, key, raw)
	}
	return value, nil
}

func describeValidation(err error) string {
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err.Error()
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s failed on %s", f.Field(), f.Tag()))
	}
	return strings.Join(parts, "; ")
}
