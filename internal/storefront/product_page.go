package storefront

import (
	"context"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/display"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/services"
	apperrors "github.com/athebyme/gomarket-platform/storefront-service/pkg/errors"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
)

// ProductPage контроллер страницы товара: загрузка по slug или ID,
// галерея изображений и локальная отметка "избранное"
type ProductPage struct {
	service services.StorefrontServiceInterface
	logger  interfaces.LoggerPort
	opts    display.Options

	state     State
	err       error
	product   *models.Product
	gallery   []*ImageSource
	selected  int
	favorite  bool
	unmounted bool
}

// NewProductPage создает контроллер страницы товара
func NewProductPage(service services.StorefrontServiceInterface, logger interfaces.LoggerPort, opts display.Options) *ProductPage {
	return &ProductPage{
		service: service,
		logger:  logger,
		opts:    opts,
		state:   StateIdle,
	}
}

// Mount загружает товар
func (p *ProductPage) Mount(ctx context.Context, slugOrID string) {
	p.BeginLoad()
	product, err := p.service.GetProduct(ctx, slugOrID)
	p.CompleteLoad(product, err)
}

// BeginLoad переводит страницу в состояние загрузки
func (p *ProductPage) BeginLoad() {
	if p.unmounted {
		return
	}
	p.state = StateLoading
	p.err = nil
}

// CompleteLoad принимает результат загрузки товара.
// Отсутствующий товар и ошибка сети дают разные состояния.
func (p *ProductPage) CompleteLoad(product *models.Product, err error) {
	if p.unmounted || p.state != StateLoading {
		return
	}

	switch {
	case apperrors.IsNotFound(err), err == nil && product == nil:
		p.state = StateNotFound
		p.err = err
		p.product = nil
		p.gallery = nil
		return
	case err != nil:
		p.state = StateError
		p.err = err
		p.product = nil
		p.gallery = nil
		p.logger.Warn("Товар не загружен", interfaces.LogField{Key: "error", Value: err.Error()})
		return
	}

	p.state = StateReady
	p.product = product
	p.selected = 0
	p.gallery = p.gallery[:0]
	for _, url := range display.ResolveGallery(product, p.opts.MediaBaseURL) {
		p.gallery = append(p.gallery, NewImageSource(url))
	}
}

// Unmount закрывает страницу
func (p *ProductPage) Unmount() {
	p.unmounted = true
}

// State возвращает состояние загрузки
func (p *ProductPage) State() State {
	return p.state
}

// Err возвращает ошибку загрузки
func (p *ProductPage) Err() error {
	return p.err
}

// ErrorMessage возвращает сообщение для покупателя
func (p *ProductPage) ErrorMessage() string {
	switch p.state {
	case StateNotFound:
		return MsgProductNotFound
	case StateError:
		return MsgProductLoadFailed
	default:
		return ""
	}
}

// Product возвращает загруженный товар
func (p *ProductPage) Product() *models.Product {
	return p.product
}

// View возвращает представление загруженного товара
func (p *ProductPage) View() (display.ProductView, bool) {
	if p.product == nil {
		return display.ProductView{}, false
	}
	view := display.NewProductView(p.product, p.opts)
	view.Gallery = p.Images()
	if len(view.Gallery) > 0 {
		view.ImageURL = view.Gallery[p.selected]
	}
	return view, true
}

// Images возвращает текущие адреса изображений галереи
func (p *ProductPage) Images() []string {
	urls := make([]string, 0, len(p.gallery))
	for _, src := range p.gallery {
		urls = append(urls, src.URL())
	}
	return urls
}

// SelectedImage возвращает индекс выбранного изображения
func (p *ProductPage) SelectedImage() int {
	return p.selected
}

// CurrentImage возвращает адрес выбранного изображения
func (p *ProductPage) CurrentImage() string {
	if len(p.gallery) == 0 {
		return display.Placeholder
	}
	return p.gallery[p.selected].URL()
}

// SelectImage выбирает изображение, индекс вне диапазона игнорируется
func (p *ProductPage) SelectImage(i int) {
	if i >= 0 && i < len(p.gallery) {
		p.selected = i
	}
}

// NextImage переходит к следующему изображению по кругу
func (p *ProductPage) NextImage() {
	if n := len(p.gallery); n > 0 {
		p.selected = (p.selected + 1) % n
	}
}

// PrevImage переходит к предыдущему изображению по кругу
func (p *ProductPage) PrevImage() {
	if n := len(p.gallery); n > 0 {
		p.selected = (p.selected - 1 + n) % n
	}
}

// ImageFailed сообщает об ошибке загрузки выбранного изображения.
// Возвращает true, если изображение заменено заглушкой.
func (p *ProductPage) ImageFailed() bool {
	if len(p.gallery) == 0 {
		return false
	}
	return p.gallery[p.selected].Fail()
}

// ToggleFavorite переключает локальную отметку "избранное"
func (p *ProductPage) ToggleFavorite() bool {
	p.favorite = !p.favorite
	return p.favorite
}

// Favorite сообщает, отмечен ли товар
func (p *ProductPage) Favorite() bool {
	return p.favorite
}
