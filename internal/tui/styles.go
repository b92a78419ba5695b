package tui

import "github.com/charmbracelet/lipgloss"

// Палитра витрины
var (
	colorPrimary = lipgloss.Color("#2563eb")
	colorMuted   = lipgloss.Color("#6b7280")
	colorSale    = lipgloss.Color("#dc2626")
	colorWarning = lipgloss.Color("#d97706")
	colorSuccess = lipgloss.Color("#16a34a")
)

// Styles стили терминальной витрины
type Styles struct {
	Header   lipgloss.Style
	Title    lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	Muted    lipgloss.Style
	Price    lipgloss.Style
	OldPrice lipgloss.Style
	Sale     lipgloss.Style
	LowStock lipgloss.Style
	InStock  lipgloss.Style
	Error    lipgloss.Style
	Spinner  lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles возвращает стили по умолчанию
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")).Background(colorPrimary).Padding(0, 1),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(colorPrimary),
		Item:     lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Price:    lipgloss.NewStyle().Bold(true),
		OldPrice: lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted),
		Sale:     lipgloss.NewStyle().Bold(true).Foreground(colorSale),
		LowStock: lipgloss.NewStyle().Foreground(colorWarning),
		InStock:  lipgloss.NewStyle().Foreground(colorSuccess),
		Error:    lipgloss.NewStyle().Bold(true).Foreground(colorSale),
		Spinner:  lipgloss.NewStyle().Foreground(colorPrimary),
		Help:     lipgloss.NewStyle().Foreground(colorMuted),
	}
}
