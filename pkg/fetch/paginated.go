package fetch

import (
	"context"
	"sync"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/errorx"
)

// ListFunc adapts one list endpoint to the paginated helper.
type ListFunc[T any] func(ctx context.Context, params model.ListParams) ([]T, model.Pagination, error)

const defaultLimit = 10

// Paginated manages the cursor over one list endpoint. Items are replaced
// wholesale on every successful load. Cursor operations overlay only the
// fields they own, so filters set through the default params survive page
// flips and searches.
type Paginated[T any] struct {
	mu       sync.Mutex
	fn       ListFunc[T]
	defaults model.ListParams

	params     model.ListParams
	items      []T
	pagination model.Pagination
	loading    bool
	err        *errorx.Error
}

func NewPaginated[T any](fn ListFunc[T], defaults model.ListParams) *Paginated[T] {
	if defaults.Page <= 0 {
		defaults.Page = 1
	}
	if defaults.Limit <= 0 {
		defaults.Limit = defaultLimit
	}

	return &Paginated[T]{
		fn:         fn,
		defaults:   defaults,
		params:     defaults,
		pagination: model.Pagination{Page: 1, Limit: defaults.Limit, TotalPages: 1},
	}
}

// Load fetches with the current parameters.
func (p *Paginated[T]) Load(ctx context.Context) error {
	return p.load(ctx, nil)
}

// NextPage is a no-op on the last page.
func (p *Paginated[T]) NextPage(ctx context.Context) error {
	p.mu.Lock()
	atEnd := p.pagination.Page >= p.pagination.TotalPages
	page := p.pagination.Page + 1
	p.mu.Unlock()

	if atEnd {
		return nil
	}

	return p.load(ctx, func(params *model.ListParams) { params.Page = page })
}

// PrevPage is a no-op on page 1.
func (p *Paginated[T]) PrevPage(ctx context.Context) error {
	p.mu.Lock()
	atStart := p.pagination.Page <= 1
	page := p.pagination.Page - 1
	p.mu.Unlock()

	if atStart {
		return nil
	}

	return p.load(ctx, func(params *model.ListParams) { params.Page = page })
}

func (p *Paginated[T]) GoToPage(ctx context.Context, page int) error {
	return p.load(ctx, func(params *model.ListParams) { params.Page = page })
}

// SetLimit changes the page size and rewinds to page 1.
func (p *Paginated[T]) SetLimit(ctx context.Context, limit int) error {
	return p.load(ctx, func(params *model.ListParams) {
		params.Page = 1
		params.Limit = limit
	})
}

// Search applies the term and rewinds to page 1; the limit is preserved.
func (p *Paginated[T]) Search(ctx context.Context, term string) error {
	return p.load(ctx, func(params *model.ListParams) {
		params.Page = 1
		params.Search = term
	})
}

// Refresh repeats the last request unchanged.
func (p *Paginated[T]) Refresh(ctx context.Context) error {
	return p.load(ctx, nil)
}

func (p *Paginated[T]) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.params = p.defaults
	p.items = nil
	p.pagination = model.Pagination{Page: 1, Limit: p.defaults.Limit, TotalPages: 1}
	p.err = nil
}

func (p *Paginated[T]) load(ctx context.Context, overlay func(*model.ListParams)) error {
	p.mu.Lock()
	p.err = nil
	p.loading = true
	next := p.params
	if overlay != nil {
		overlay(&next)
	}
	p.mu.Unlock()

	items, pagination, err := p.fn(ctx, next)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.loading = false
	if err != nil {
		norm := errorx.Normalize(err)
		p.err = &norm
		p.items = nil
		return norm
	}

	p.items = items
	p.pagination = pagination
	p.params = next
	return nil
}

// Items returns the current page, replaced wholesale on each load.
func (p *Paginated[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.items
}

func (p *Paginated[T]) Pagination() model.Pagination {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.pagination
}

func (p *Paginated[T]) Params() model.ListParams {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.params
}

func (p *Paginated[T]) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.loading
}

func (p *Paginated[T]) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err == nil {
		return nil
	}

	return *p.err
}
