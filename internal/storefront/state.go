package storefront

// State состояние загрузки страницы
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateNotFound
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateNotFound:
		return "not_found"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Сообщения, которые видит покупатель
const (
	MsgCatalogLoadFailed = "Error al cargar el catálogo. Intente nuevamente."
	MsgProductLoadFailed = "Error al cargar el producto. Intente nuevamente."
	MsgProductNotFound   = "Producto no encontrado"

	MsgNoProductsTitle   = "No se encontraron productos"
	MsgAdjustFilters     = "Intenta ajustar los filtros de búsqueda"
	MsgNoProductsInStore = "No hay productos disponibles en este momento"
)
