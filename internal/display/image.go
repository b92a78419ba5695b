package display

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
)

// Placeholder встроенное SVG-изображение "изображение недоступно".
// Это data URI, поэтому браузер не делает сетевой запрос за отсутствующей картинкой.
const Placeholder = "data:image/svg+xml,%3csvg width='400' height='400' xmlns='http://www.w3.org/2000/svg'%3e" +
	"%3crect width='100%25' height='100%25' fill='%23f3f4f6'/%3e%3cg%3e" +
	"%3crect x='150' y='150' width='100' height='60' rx='8' fill='%23d1d5db'/%3e" +
	"%3ccircle cx='170' cy='170' r='8' fill='%23f3f4f6'/%3e" +
	"%3cpath d='m185 185 15-15 25 25 15-15' stroke='%23f3f4f6' stroke-width='2' fill='none'/%3e%3c/g%3e" +
	"%3ctext x='50%25' y='280' font-family='Arial, sans-serif' font-size='16' fill='%236b7280' text-anchor='middle'%3e" +
	"Imagen no disponible%3c/text%3e%3c/svg%3e"

const uploadsPrefix = "uploads/"

// ResolveImageURL строит полный адрес изображения товара.
// Пустая ссылка дает Placeholder, ссылка с любой URI схемой возвращается как есть,
// остальные приводятся к baseURL + "/uploads/" + имя файла.
func ResolveImageURL(ref, baseURL string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Placeholder
	}

	if u, err := url.Parse(ref); err == nil && u.Scheme != "" {
		return ref
	}

	path := strings.TrimLeft(ref, "/")
	path = strings.TrimPrefix(path, uploadsPrefix)
	path = strings.TrimLeft(path, "/")

	return strings.TrimRight(baseURL, "/") + "/" + uploadsPrefix + path
}

// ResolveProductImageURL возвращает адрес первого изображения товара
func ResolveProductImageURL(product *models.Product, baseURL string) string {
	if product == nil || len(product.Images) == 0 {
		return Placeholder
	}
	return ResolveImageURL(product.Images[0], baseURL)
}

// ResolveGallery возвращает адреса всех изображений товара.
// Товар без изображений получает один слот с Placeholder.
func ResolveGallery(product *models.Product, baseURL string) []string {
	if product == nil || len(product.Images) == 0 {
		return []string{Placeholder}
	}
	urls := make([]string, 0, len(product.Images))
	for _, ref := range product.Images {
		urls = append(urls, ResolveImageURL(ref, baseURL))
	}
	return urls
}

// ImageFallbackScript обработчик onerror для <img>: подменяет источник
// на Placeholder один раз, повторная ошибка уже не обрабатывается
func ImageFallbackScript() template.JS {
	return template.JS("if(!this.dataset.fallback){this.dataset.fallback='1';this.src=" + strconv.Quote(Placeholder) + ";}")
}
