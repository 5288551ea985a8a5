package usecase

import (
	"sync"

	"github.com/flysnipe/flysnipe/internal/domain"
)

// ResultSet holds the offers of the latest search and derives the visible
// page from them: filter, then stable sort, then paginate.
//
// Every mutator resets pagination to the first page. Mutators that receive a
// malformed argument fail with domain.ErrInvalidArgument and leave the state
// untouched. ResultSet is safe for concurrent use.
type ResultSet struct {
	mu sync.RWMutex

	offers   []domain.Offer
	filter   domain.FilterSpec
	sortKey  domain.SortKey
	pageSize int
	page     int

	// view is offers filtered and sorted under the current filter and sortKey
	view []domain.Offer
}

// NewResultSet creates an empty result set with the default page size.
func NewResultSet() *ResultSet {
	return &ResultSet{
		offers:   []domain.Offer{},
		view:     []domain.Offer{},
		pageSize: domain.DefaultPageSize,
		page:     1,
	}
}

// SetOffers replaces the working set with a copy of offers.
// An empty slice is valid and produces an empty page.
func (r *ResultSet) SetOffers(offers []domain.Offer) {
	owned := make([]domain.Offer, len(offers))
	copy(owned, offers)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.offers = owned
	r.recompute()
}

// SetFilter replaces the active filter.
func (r *ResultSet) SetFilter(spec domain.FilterSpec) error {
	if err := spec.Validate(); err != nil {
		return err
	}
	spec = cloneFilter(spec)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.filter = spec
	r.recompute()
	return nil
}

// SetSort replaces the active sort key.
func (r *ResultSet) SetSort(key domain.SortKey) error {
	if !key.IsValid() {
		return domain.WrapInvalidArgument("unknown sort key %q", string(key))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sortKey = key
	r.recompute()
	return nil
}

// SetPageSize changes how many offers each page reveals.
func (r *ResultSet) SetPageSize(n int) error {
	if n <= 0 {
		return domain.WrapInvalidArgument("page size must be positive, got %d", n)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pageSize = n
	r.page = 1
	return nil
}

// NextPage reveals the next page. It is a no-op when nothing is left to reveal.
func (r *ResultSet) NextPage() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasMore() {
		r.page++
	}
}

// CurrentPage returns the revealed prefix of the filtered, sorted offers.
func (r *ResultSet) CurrentPage() domain.Page {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := len(r.view)
	end := r.page * r.pageSize
	if end > total {
		end = total
	}

	items := make([]domain.Offer, end)
	copy(items, r.view[:end])

	return domain.Page{
		Items:     items,
		PageSize:  r.pageSize,
		PageIndex: r.page,
		Total:     total,
		HasMore:   r.hasMore(),
	}
}

// Filter returns the active filter.
func (r *ResultSet) Filter() domain.FilterSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneFilter(r.filter)
}

// SortKey returns the active sort key.
func (r *ResultSet) SortKey() domain.SortKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortKey
}

// Len returns the size of the unfiltered working set.
func (r *ResultSet) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.offers)
}

// recompute rebuilds the view and returns to the first page. Caller holds the lock.
func (r *ResultSet) recompute() {
	r.view = SortOffers(ApplyFilter(r.offers, r.filter), r.sortKey)
	r.page = 1
}

func (r *ResultSet) hasMore() bool {
	return r.page*r.pageSize < len(r.view)
}

// cloneFilter detaches the spec from pointers the caller still holds.
func cloneFilter(spec domain.FilterSpec) domain.FilterSpec {
	out := domain.FilterSpec{Stops: spec.Stops}
	if spec.Class != nil {
		c := *spec.Class
		out.Class = &c
	}
	if spec.MaxPrice != nil {
		p := *spec.MaxPrice
		out.MaxPrice = &p
	}
	return out
}
