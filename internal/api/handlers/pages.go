package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/display"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/services"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"imgFallback": display.ImageFallbackScript,
	"safeImage":   safeImage,
	"stars": func(full int) []bool {
		stars := make([]bool, 5)
		for i := 0; i < full && i < len(stars); i++ {
			stars[i] = true
		}
		return stars
	},
}).ParseFS(templateFS, "templates/*.html"))

// safeImage помечает адрес изображения как доверенный для атрибута src.
// Доверяются только встроенная заглушка и http(s) адреса, остальное
// проходит обычное экранирование html/template.
func safeImage(url string) interface{} {
	if url == display.Placeholder {
		return template.URL(url)
	}
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return template.URL(url)
	}
	return url
}

// sortLabels подписи сортировок для интерфейса
var sortLabels = map[models.SortKey]string{
	models.SortByName:      "Nombre A-Z",
	models.SortByPriceAsc:  "Precio: menor a mayor",
	models.SortByPriceDesc: "Precio: mayor a menor",
	models.SortByNewest:    "Más recientes",
	models.SortByDiscount:  "Mayor descuento",
}

type basePage struct {
	Title   string
	AppName string
}

type sortOption struct {
	Key      models.SortKey
	Label    string
	Selected bool
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

type catalogPageData struct {
	basePage
	Filter        models.ProductFilter
	MinText       string
	MaxText       string
	Result        services.QueryResult
	Products      []display.ProductView
	Categories    []models.Category
	Brands        []string
	SortOptions   []sortOption
	ActiveFilters int
	ClearURL      string
	EmptyTitle    string
	EmptyMessage  string
	Pages         []pageLink
	PrevURL       string
	NextURL       string
}

type productPageData struct {
	basePage
	View display.ProductView
}

type errorPageData struct {
	basePage
	Message  string
	RetryURL string
}

// renderPage выполняет шаблон в буфер и отдает его целиком
func renderPage(w http.ResponseWriter, r *http.Request, logger interfaces.LoggerPort, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		logger.ErrorWithContext(r.Context(), "Ошибка отрисовки страницы",
			interfaces.LogField{Key: "template", Value: name},
			interfaces.LogField{Key: "error", Value: err.Error()})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// catalogURL ссылка на каталог с заданным фильтром
func catalogURL(filter models.ProductFilter) string {
	query := EncodeFilter(filter).Encode()
	if query == "" {
		return "/catalog"
	}
	return "/catalog?" + query
}

func sortOptions(selected models.SortKey) []sortOption {
	options := make([]sortOption, 0, len(models.SortKeys))
	for _, key := range models.SortKeys {
		options = append(options, sortOption{Key: key, Label: sortLabels[key], Selected: key == selected})
	}
	return options
}

func pageLinks(filter models.ProductFilter, result services.QueryResult) (links []pageLink, prev, next string) {
	if result.Pagination == nil {
		return nil, "", ""
	}
	for _, n := range result.Pagination.Pages() {
		links = append(links, pageLink{Number: n, URL: catalogURL(filter.WithPage(n)), Current: n == filter.Page})
	}
	if result.Pagination.HasPrev && filter.Page <= result.TotalPages {
		prev = catalogURL(filter.WithPage(filter.Page - 1))
	}
	if result.Pagination.HasNext {
		next = catalogURL(filter.WithPage(filter.Page + 1))
	}
	return links, prev, next
}

func priceText(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
