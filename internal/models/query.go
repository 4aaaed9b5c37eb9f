package models

type FilterState struct {
	Categories  []Category `json:"categories"`
	OnlyInStock bool       `json:"only_in_stock"`
	SearchQuery string     `json:"search_query"`
}

type SortField string

const (
	SortByName      SortField = "name"
	SortByCategory  SortField = "category"
	SortByPrice     SortField = "price"
	SortByStock     SortField = "stock"
	SortByUpdatedAt SortField = "updatedAt"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByName, SortByCategory, SortByPrice, SortByStock, SortByUpdatedAt:
		return true
	}
	return false
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type SortState struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// DefaultSort orders by name, ascending.
func DefaultSort() SortState {
	return SortState{Field: SortByName, Direction: SortAsc}
}

// PaginationState describes the visible window. TotalItems is derived from
// the filtered count and ignored when set by callers.
type PaginationState struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
}

// ListView is the current page of the filtered, sorted collection.
type ListView struct {
	Items      []*Product
	TotalItems int
	Pagination PaginationState
}

type CategoryCount struct {
	Category Category `json:"name"`
	Count    int      `json:"value"`
}
