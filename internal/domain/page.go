package domain

// DefaultPageSize is the number of offers revealed per page.
const DefaultPageSize = 10

// Page is a paginated view over a filtered and sorted result set.
// Items is always a prefix of the full sequence.
type Page struct {
	// Items contains the revealed offers in display order
	Items []Offer `json:"items"`

	// PageSize is the number of offers revealed per page
	PageSize int `json:"pageSize"`

	// PageIndex is the current page, starting at 1
	PageIndex int `json:"pageIndex"`

	// Total is the number of offers that passed the filter
	Total int `json:"total"`

	// HasMore is true while PageIndex*PageSize < Total
	HasMore bool `json:"hasMore"`
}

// Remaining returns how many filtered offers are not yet revealed.
func (p Page) Remaining() int {
	return p.Total - len(p.Items)
}

// NextBatch returns how many offers the next page would reveal.
func (p Page) NextBatch() int {
	if p.Remaining() < p.PageSize {
		return p.Remaining()
	}
	return p.PageSize
}
