package models

// Category представляет категорию каталога
type Category struct {
	ID          string `json:"_id"`
	Slug        string `json:"slug,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent,omitempty"`
	Image       string `json:"image,omitempty"`
}

// CatalogSnapshot содержит данные, загружаемые при открытии витрины.
// После загрузки не изменяется.
type CatalogSnapshot struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
	Brands     []string   `json:"brands"`
}
