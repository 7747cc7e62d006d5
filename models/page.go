package models

// PageSize is the number of items fetched per page.
const PageSize = 21

// PageRequest selects a range of the owner's items ordered pinned-first,
// then by purchase date descending.
type PageRequest struct {
	UserID    int64 `json:"-"`
	Offset    int   `json:"offset"`
	Limit     int   `json:"limit"`
	WithCount bool  `json:"with_count"`
}

// ItemPage is one page of items. Total is set only when the request asked for
// an exact count.
type ItemPage struct {
	Items   []CollectionItem `json:"items"`
	Total   *int             `json:"total,omitempty"`
	HasMore bool             `json:"has_more"`
}
