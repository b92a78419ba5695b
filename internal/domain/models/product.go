package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// Product представляет товар витрины в том виде, в котором его отдает API каталога.
// Витрина товары не изменяет.
type Product struct {
	ID          string `json:"_id"`
	Slug        string `json:"slug,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Brand       string `json:"brand,omitempty"`
	SKU         string `json:"sku,omitempty"`

	Price              float64 `json:"price"`
	OnSale             bool    `json:"onSale"`
	DiscountPercentage float64 `json:"discountPercentage,omitempty"`
	StockQuantity      int     `json:"stockQuantity"`

	Category *CategoryRef `json:"category,omitempty"`
	Featured bool         `json:"featured"`

	Images []string `json:"images,omitempty"`

	CreatedAt        Timestamp         `json:"createdAt"`
	Specifications   map[string]string `json:"specifications,omitempty"`
	CompatibleModels []CompatibleModel `json:"compatibleModels,omitempty"`

	AverageRating float64 `json:"averageRating,omitempty"`
	NumReviews    int     `json:"numReviews,omitempty"`
}

// UnmarshalJSON разбирает товар нестрого: поле неожиданного типа получает
// нулевое значение, а не отбрасывает весь товар. Числа принимаются и строкой,
// категория принимается и строкой с ID, значения характеристик и числом.
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var raw struct {
		plain
		Price              json.RawMessage            `json:"price"`
		OnSale             json.RawMessage            `json:"onSale"`
		DiscountPercentage json.RawMessage            `json:"discountPercentage"`
		StockQuantity      json.RawMessage            `json:"stockQuantity"`
		Featured           json.RawMessage            `json:"featured"`
		Images             json.RawMessage            `json:"images"`
		Specifications     map[string]json.RawMessage `json:"specifications"`
		AverageRating      json.RawMessage            `json:"averageRating"`
		NumReviews         json.RawMessage            `json:"numReviews"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Product(raw.plain)
	p.Price = lenientFloat(raw.Price)
	p.OnSale = lenientBool(raw.OnSale)
	p.DiscountPercentage = lenientFloat(raw.DiscountPercentage)
	p.StockQuantity = lenientInt(raw.StockQuantity)
	p.Featured = lenientBool(raw.Featured)
	p.Images = lenientStrings(raw.Images)
	p.AverageRating = lenientFloat(raw.AverageRating)
	p.NumReviews = lenientInt(raw.NumReviews)

	p.Specifications = nil
	if len(raw.Specifications) > 0 {
		p.Specifications = make(map[string]string, len(raw.Specifications))
		for name, value := range raw.Specifications {
			p.Specifications[name] = rawScalar(value)
		}
	}

	if p.Category != nil && *p.Category == (CategoryRef{}) {
		p.Category = nil
	}
	return nil
}

// RouteKey возвращает ключ для ссылки на товар: slug, если он есть, иначе ID
func (p *Product) RouteKey() string {
	if p.Slug != "" {
		return p.Slug
	}
	return p.ID
}

// EffectiveDiscount возвращает процент скидки, учитывая флаг onSale
func (p *Product) EffectiveDiscount() float64 {
	if !p.OnSale || p.DiscountPercentage < 0 {
		return 0
	}
	return p.DiscountPercentage
}

// InStock сообщает, есть ли товар в наличии
func (p *Product) InStock() bool {
	return p.StockQuantity > 0
}

// CategoryRef ссылка на категорию внутри товара
type CategoryRef struct {
	ID   string `json:"_id"`
	Slug string `json:"slug,omitempty"`
	Name string `json:"name,omitempty"`
}

// Unresolved сообщает, что API прислало только ID категории без названия
func (c *CategoryRef) Unresolved() bool {
	return c != nil && c.Name == "" && (c.ID != "" || c.Slug != "")
}

// UnmarshalJSON принимает и объект категории, и строку с ее ID
func (c *CategoryRef) UnmarshalJSON(data []byte) error {
	*c = CategoryRef{}
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &c.ID)
	}

	var raw struct {
		ID   json.RawMessage `json:"_id"`
		Slug json.RawMessage `json:"slug"`
		Name json.RawMessage `json:"name"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		// некатегорийное значение игнорируется
		return nil
	}
	c.ID = rawScalar(raw.ID)
	c.Slug = rawScalar(raw.Slug)
	c.Name = rawScalar(raw.Name)
	return nil
}

// Matches сообщает, совпадает ли категория с ID или slug
func (c *CategoryRef) Matches(idOrSlug string) bool {
	if c == nil || idOrSlug == "" {
		return false
	}
	return c.ID == idOrSlug || c.Slug == idOrSlug
}

// CompatibleModel модель техники, с которой совместим товар.
// API отдает либо строку, либо объект {make, model, year}.
type CompatibleModel struct {
	Text  string `json:"-"`
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
	Year  string `json:"year,omitempty"`
}

// Structured сообщает, пришла ли модель объектом
func (m CompatibleModel) Structured() bool {
	return m.Text == "" && (m.Make != "" || m.Model != "" || m.Year != "")
}

// String возвращает подпись модели для отображения
func (m CompatibleModel) String() string {
	if !m.Structured() {
		return m.Text
	}
	return strings.Join(strings.Fields(m.Make+" "+m.Model+" "+m.Year), " ")
}

// UnmarshalJSON принимает и строку, и объект
func (m *CompatibleModel) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &m.Text)
	}

	var raw struct {
		Make  string          `json:"make"`
		Model string          `json:"model"`
		Year  json.RawMessage `json:"year"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Make = raw.Make
	m.Model = raw.Model
	m.Year = rawScalar(raw.Year)
	return nil
}

// MarshalJSON сохраняет исходную форму
func (m CompatibleModel) MarshalJSON() ([]byte, error) {
	if !m.Structured() {
		return json.Marshal(m.Text)
	}
	type plain CompatibleModel
	return json.Marshal(plain(m))
}

// rawScalar превращает число или строку JSON в строку
func rawScalar(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

// lenientFloat читает число или строку с числом, остальное дает 0
func lenientFloat(raw json.RawMessage) float64 {
	s := rawScalar(raw)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// lenientInt читает целое число, дробная часть отбрасывается
func lenientInt(raw json.RawMessage) int {
	f := lenientFloat(raw)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

// lenientBool читает true/false, строки "true"/"1" и ненулевые числа
func lenientBool(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	switch strings.ToLower(strings.TrimSpace(rawScalar(raw))) {
	case "true", "1", "yes":
		return true
	}
	return lenientFloat(raw) != 0
}

// lenientStrings читает список строк, пропуская пустые и нестроковые элементы.
// Одиночная строка дает список из одного элемента.
func lenientStrings(raw json.RawMessage) []string {
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		if strings.TrimSpace(single) == "" {
			return nil
		}
		return []string{single}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var out []string
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil && strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// Timestamp время с нестрогим разбором: некорректное значение
// превращается в нулевое время, а не в ошибку декодирования
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// UnmarshalJSON разбирает RFC3339, дату или unix-миллисекунды
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}

	if unquoted, err := strconv.Unquote(s); err == nil {
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, unquoted); err == nil {
				t.Time = parsed.UTC()
				return nil
			}
		}
		return nil
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
	}
	return nil
}

// MarshalJSON отдает RFC3339 или null для нулевого времени
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}
