package utils

// DefaultPageSize размер страницы витрины по умолчанию
const DefaultPageSize = 12

// Pagination представляет расширенную модель для пагинации
type Pagination struct {
	Page       int    `json:"page"`        // Номер страницы (начиная с 1)
	PageSize   int    `json:"page_size"`   // Размер страницы
	TotalItems int64  `json:"total_items"` // Общее количество элементов
	TotalPages int    `json:"total_pages"` // Общее количество страниц
	SortBy     string `json:"sort_by"`     // Ключ сортировки
	HasNext    bool   `json:"has_next"`    // Есть ли следующая страница
	HasPrev    bool   `json:"has_prev"`    // Есть ли предыдущая страница
}

// NewPagination создает новый экземпляр Pagination с заданными параметрами
func NewPagination(page, pageSize int, sortBy string) *Pagination {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	return &Pagination{
		Page:     page,
		PageSize: pageSize,
		SortBy:   sortBy,
	}
}

// SetTotal устанавливает общее количество элементов и пересчитывает зависимые поля
func (p *Pagination) SetTotal(totalItems int64) {
	p.TotalItems = totalItems
	p.TotalPages = int((totalItems + int64(p.PageSize) - 1) / int64(p.PageSize))
	p.HasNext = p.Page < p.TotalPages
	p.HasPrev = p.Page > 1
}

// GetOffset возвращает смещение первого элемента страницы
func (p *Pagination) GetOffset() int {
	return (p.Page - 1) * p.PageSize
}

// GetLimit возвращает размер страницы
func (p *Pagination) GetLimit() int {
	return p.PageSize
}

// Bounds возвращает полуоткрытый диапазон [start, end) страницы,
// ограниченный количеством элементов n. Для страницы за пределами
// диапазона start == end.
func (p *Pagination) Bounds(n int) (start, end int) {
	// номер страницы сравнивается до умножения, иначе большое значение переполняет смещение
	if n <= 0 || p.Page-1 > (n-1)/p.PageSize {
		return n, n
	}
	start = p.GetOffset()
	end = n
	if n-start > p.GetLimit() {
		end = start + p.GetLimit()
	}
	return start, end
}

// Pages возвращает номера всех страниц для навигации
func (p *Pagination) Pages() []int {
	pages := make([]int, 0, p.TotalPages)
	for i := 1; i <= p.TotalPages; i++ {
		pages = append(pages, i)
	}
	return pages
}
