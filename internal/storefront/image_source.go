package storefront

import "github.com/athebyme/gomarket-platform/storefront-service/internal/display"

// ImageSource источник изображения с однократной подменой на заглушку.
// Если не загрузилась и сама заглушка, подмены больше не происходит.
type ImageSource struct {
	url      string
	fellBack bool
}

// NewImageSource создает источник для уже разрешенного URL
func NewImageSource(url string) *ImageSource {
	if url == "" {
		url = display.Placeholder
	}
	return &ImageSource{url: url, fellBack: url == display.Placeholder}
}

// URL возвращает текущий адрес изображения
func (s *ImageSource) URL() string {
	return s.url
}

// Fail сообщает об ошибке загрузки. Возвращает true, если адрес был заменен.
func (s *ImageSource) Fail() bool {
	if s.fellBack {
		return false
	}
	s.url = display.Placeholder
	s.fellBack = true
	return true
}

// FellBack сообщает, показывается ли заглушка
func (s *ImageSource) FellBack() bool {
	return s.fellBack
}
