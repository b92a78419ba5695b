package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/athebyme/gomarket-platform/storefront-service/internal/display"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/models"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/domain/services"
	"github.com/athebyme/gomarket-platform/storefront-service/internal/storefront"
	"github.com/athebyme/gomarket-platform/storefront-service/pkg/interfaces"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// screen текущий экран терминальной витрины
type screen int

const (
	screenCatalog screen = iota
	screenSearch
	screenProduct
)

// catalogLoadedMsg результат загрузки каталога
type catalogLoadedMsg struct {
	snapshot *models.CatalogSnapshot
	err      error
}

// productLoadedMsg результат загрузки товара для страницы page
type productLoadedMsg struct {
	page    *storefront.ProductPage
	product *models.Product
	err     error
}

// Options параметры терминальной витрины
type Options struct {
	PageSize int
	Locale   string
	Display  display.Options
}

// Model модель bubbletea поверх контроллеров витрины.
// Запросы к API выполняются командами tea.Cmd, результат возвращается
// сообщением в Update, поэтому контроллеры используются из одного потока.
type Model struct {
	ctx     context.Context
	service services.StorefrontServiceInterface
	logger  interfaces.LoggerPort
	opts    Options
	styles  Styles

	catalog *storefront.CatalogPage
	product *storefront.ProductPage

	screen  screen
	cursor  int
	search  textinput.Model
	spinner spinner.Model

	width  int
	height int
}

// NewModel создает модель терминальной витрины
func NewModel(ctx context.Context, service services.StorefrontServiceInterface, logger interfaces.LoggerPort, opts Options) Model {
	styles := DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "Buscar productos..."
	ti.Prompt = "/ "
	ti.CharLimit = 128
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	return Model{
		ctx:     ctx,
		service: service,
		logger:  logger,
		opts:    opts,
		styles:  styles,
		catalog: storefront.NewCatalogPage(service, logger, storefront.CatalogOptions{
			PageSize: opts.PageSize,
			Locale:   opts.Locale,
		}),
		screen:  screenCatalog,
		search:  ti,
		spinner: sp,
	}
}

// Init запускает загрузку каталога
func (m Model) Init() tea.Cmd {
	m.catalog.BeginLoad()
	return tea.Batch(m.spinner.Tick, m.loadCatalog())
}

func (m Model) loadCatalog() tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		snapshot, err := service.LoadCatalog(ctx)
		return catalogLoadedMsg{snapshot: snapshot, err: err}
	}
}

func (m Model) loadProduct(page *storefront.ProductPage, slugOrID string) tea.Cmd {
	ctx, service := m.ctx, m.service
	return func() tea.Msg {
		product, err := service.GetProduct(ctx, slugOrID)
		return productLoadedMsg{page: page, product: product, err: err}
	}
}

// Update обрабатывает сообщения
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.loading() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case catalogLoadedMsg:
		m.catalog.CompleteLoad(msg.snapshot, msg.err)
		m.cursor = 0
		return m, nil

	case productLoadedMsg:
		// ответ для уже закрытой страницы не должен попасть на новую
		msg.page.CompleteLoad(msg.product, msg.err)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.screen {
		case screenSearch:
			return m.updateSearch(msg)
		case screenProduct:
			return m.updateProduct(msg)
		default:
			return m.updateCatalog(msg)
		}
	}

	return m, nil
}

func (m Model) loading() bool {
	if m.screen == screenProduct && m.product != nil {
		return m.product.State() == storefront.StateLoading
	}
	return m.catalog.State() == storefront.StateLoading
}

func (m Model) updateCatalog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.catalog.Result().Items

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		if m.catalog.State() == storefront.StateError {
			m.catalog.BeginLoad()
			return m, tea.Batch(m.spinner.Tick, m.loadCatalog())
		}
	case "/":
		m.screen = screenSearch
		m.search.SetValue(m.catalog.Filter().SearchTerm)
		return m, m.search.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "right", "n":
		m.catalog.NextPage()
		m.cursor = 0
	case "left", "p":
		m.catalog.PrevPage()
		m.cursor = 0
	case "s":
		m.catalog.SetSortKey(m.catalog.Filter().SortKey.Next())
	case "o":
		m.catalog.SetOnlyOnSale(!m.catalog.Filter().OnlyOnSale)
		m.cursor = 0
	case "i":
		m.catalog.SetOnlyInStock(!m.catalog.Filter().OnlyInStock)
		m.cursor = 0
	case "f":
		m.catalog.SetOnlyFeatured(!m.catalog.Filter().OnlyFeatured)
		m.cursor = 0
	case "b":
		m.catalog.SetBrand(nextOption(m.catalog.Brands(), m.catalog.Filter().Brand))
		m.cursor = 0
	case "g":
		m.catalog.SetCategory(nextOption(categoryIDs(m.catalog.Categories()), m.catalog.Filter().CategoryID))
		m.cursor = 0
	case "c":
		m.catalog.ClearFilters()
		m.cursor = 0
	case "enter":
		if m.cursor < len(items) {
			m.product = storefront.NewProductPage(m.service, m.logger, m.opts.Display)
			m.product.BeginLoad()
			m.screen = screenProduct
			return m, tea.Batch(m.spinner.Tick, m.loadProduct(m.product, items[m.cursor].RouteKey()))
		}
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.catalog.SetSearchTerm(strings.TrimSpace(m.search.Value()))
		m.search.Blur()
		m.screen = screenCatalog
		m.cursor = 0
		return m, nil
	case "esc":
		m.search.Blur()
		m.screen = screenCatalog
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) updateProduct(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "backspace":
		if m.product != nil {
			m.product.Unmount()
		}
		m.product = nil
		m.screen = screenCatalog
	case "right", "l":
		m.product.NextImage()
	case "left", "h":
		m.product.PrevImage()
	case "x":
		m.product.ImageFailed()
	case "*":
		m.product.ToggleFavorite()
	}
	return m, nil
}

// nextOption возвращает следующее значение по кругу, после последнего пустое
func nextOption(options []string, current string) string {
	if current == "" {
		if len(options) == 0 {
			return ""
		}
		return options[0]
	}
	for i, option := range options {
		if option == current && i+1 < len(options) {
			return options[i+1]
		}
	}
	return ""
}

func categoryIDs(categories []models.Category) []string {
	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}
	return ids
}

// View отрисовывает текущий экран
func (m Model) View() string {
	if m.screen == screenProduct && m.product != nil {
		return m.viewProduct()
	}
	return m.viewCatalog()
}

func (m Model) viewCatalog() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Header.Render("Catálogo"))
	sb.WriteString("\n\n")

	switch m.catalog.State() {
	case storefront.StateIdle, storefront.StateLoading:
		sb.WriteString(m.styles.Spinner.Render(m.spinner.View()) + " Cargando catálogo...\n")
		return sb.String()
	case storefront.StateError:
		sb.WriteString(m.styles.Error.Render(m.catalog.ErrorMessage()))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Help.Render("r: reintentar · q: salir"))
		return sb.String()
	}

	if m.screen == screenSearch {
		sb.WriteString(m.search.View())
		sb.WriteString("\n\n")
	}

	sb.WriteString(m.filterSummary())
	sb.WriteString("\n\n")

	result := m.catalog.Result()
	views := m.catalog.Views(m.opts.Display)
	if len(views) == 0 {
		sb.WriteString(m.styles.Title.Render(storefront.MsgNoProductsTitle))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(m.catalog.EmptyMessage()))
		sb.WriteString("\n")
	}
	for i, v := range views {
		sb.WriteString(m.renderItem(v, i == m.cursor))
		sb.WriteString("\n")
	}

	if result.TotalPages > 0 {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Página %d de %d · %d productos",
			m.catalog.Filter().Page, result.TotalPages, result.TotalMatched)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("/: buscar · s: ordenar · o: oferta · i: stock · f: destacados · b: marca · g: categoría · c: limpiar · ←/→: página · enter: ver · q: salir"))
	return sb.String()
}

func (m Model) filterSummary() string {
	filter := m.catalog.Filter()
	parts := []string{"Orden: " + string(filter.SortKey)}
	if filter.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("Búsqueda: %q", filter.SearchTerm))
	}
	if filter.CategoryID != "" {
		parts = append(parts, "Categoría: "+m.categoryName(filter.CategoryID))
	}
	if filter.Brand != "" {
		parts = append(parts, "Marca: "+filter.Brand)
	}
	if filter.OnlyOnSale {
		parts = append(parts, "En oferta")
	}
	if filter.OnlyInStock {
		parts = append(parts, "En stock")
	}
	if filter.OnlyFeatured {
		parts = append(parts, "Destacados")
	}
	if n := m.catalog.ActiveFilterCount(); n > 0 {
		parts = append(parts, fmt.Sprintf("Limpiar (%d)", n))
	}
	return m.styles.Muted.Render(strings.Join(parts, " · "))
}

func (m Model) categoryName(id string) string {
	for _, c := range m.catalog.Categories() {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}

func (m Model) renderItem(v display.ProductView, selected bool) string {
	cursor := "  "
	name := m.styles.Item.Render(v.Name)
	if selected {
		cursor = "> "
		name = m.styles.Selected.Render(v.Name)
	}

	price := m.styles.Price.Render(v.FinalPriceText)
	if v.HasDiscount {
		price = m.styles.OldPrice.Render(v.PriceText) + " " + price + " " +
			m.styles.Sale.Render(fmt.Sprintf("-%g%%", v.DiscountPercentage))
	}

	return cursor + name + "  " + price + "  " + m.stockLabel(v)
}

func (m Model) stockLabel(v display.ProductView) string {
	switch v.Stock {
	case display.StockOut:
		return m.styles.Muted.Render("Agotado")
	case display.StockLow:
		return m.styles.LowStock.Render(fmt.Sprintf("¡Últimas %d unidades!", v.StockQuantity))
	default:
		return m.styles.InStock.Render("En stock")
	}
}

func (m Model) viewProduct() string {
	var sb strings.Builder

	switch m.product.State() {
	case storefront.StateIdle, storefront.StateLoading:
		sb.WriteString(m.styles.Spinner.Render(m.spinner.View()) + " Cargando producto...\n")
		return sb.String()
	case storefront.StateNotFound, storefront.StateError:
		sb.WriteString(m.styles.Error.Render(m.product.ErrorMessage()))
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Help.Render("esc: volver · q: salir"))
		return sb.String()
	}

	v, _ := m.product.View()

	title := v.Name
	if m.product.Favorite() {
		title = "♥ " + title
	}
	sb.WriteString(m.styles.Header.Render(title))
	sb.WriteString("\n\n")

	if v.Brand != "" {
		sb.WriteString("Marca: " + v.Brand + "\n")
	}
	if v.CategoryName != "" {
		sb.WriteString("Categoría: " + v.CategoryName + "\n")
	}

	if v.HasDiscount {
		sb.WriteString(m.styles.OldPrice.Render(v.PriceText) + " " + m.styles.Price.Render(v.FinalPriceText) + " " +
			m.styles.Sale.Render(fmt.Sprintf("Ahorras %s", v.SavingsText)) + "\n")
	} else {
		sb.WriteString(m.styles.Price.Render(v.FinalPriceText) + "\n")
	}
	sb.WriteString(m.stockLabel(v) + "\n\n")

	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Imagen %d/%d: %s",
		m.product.SelectedImage()+1, len(v.Gallery), imageLabel(m.product.CurrentImage()))))
	sb.WriteString("\n\n")

	if v.Description != "" {
		sb.WriteString(v.Description + "\n\n")
	}

	if len(v.Specifications) > 0 {
		sb.WriteString(m.styles.Title.Render("Especificaciones") + "\n")
		for _, row := range v.Specifications {
			sb.WriteString(fmt.Sprintf("  %-20s %s\n", row.Name, row.Value))
		}
		sb.WriteString("\n")
	}

	if len(v.CompatibleModels) > 0 {
		sb.WriteString(m.styles.Title.Render("Modelos compatibles") + "\n")
		for _, label := range v.CompatibleModels {
			sb.WriteString("  • " + label + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Help.Render("←/→: imágenes · *: favorito · esc: volver · q: salir"))
	return sb.String()
}

// imageLabel не выводит встроенную заглушку целиком
func imageLabel(url string) string {
	if url == display.Placeholder {
		return "Imagen no disponible"
	}
	return url
}

// Run запускает терминальную витрину
func Run(ctx context.Context, service services.StorefrontServiceInterface, logger interfaces.LoggerPort, opts Options) error {
	p := tea.NewProgram(
		NewModel(ctx, service, logger, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
