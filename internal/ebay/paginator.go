package ebay

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	defaultPageSize = 100
	defaultMaxPages = 5
)

// Paginator walks the seller's inventory items page by page.
type Paginator struct {
	api      SellAPI
	logger   *slog.Logger
	pageSize int
	maxPages int
}

// PaginatorOption configures the Paginator.
type PaginatorOption func(*Paginator)

// WithPageSize overrides the default page size.
func WithPageSize(size int) PaginatorOption {
	return func(p *Paginator) {
		p.pageSize = size
	}
}

// WithMaxPages overrides the default max pages.
func WithMaxPages(n int) PaginatorOption {
	return func(p *Paginator) {
		p.maxPages = n
	}
}

// WithPaginatorLogger sets the logger.
func WithPaginatorLogger(l *slog.Logger) PaginatorOption {
	return func(p *Paginator) {
		p.logger = l
	}
}

// NewPaginator creates a new Paginator.
func NewPaginator(api SellAPI, opts ...PaginatorOption) *Paginator {
	p := &Paginator{
		api:      api,
		logger:   slog.New(slog.DiscardHandler),
		pageSize: defaultPageSize,
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// PaginateResult holds the items gathered across pages.
type PaginateResult struct {
	Items     []InventoryItem
	Total     int
	PagesUsed int
	StoppedAt string // "max_pages", "no_more_results"
}

// Paginate fetches inventory items until eBay reports no next page, a page
// comes back empty, or max pages is reached. An error on any page aborts the
// walk so callers can react to the upstream status.
func (p *Paginator) Paginate(ctx context.Context, token string) (*PaginateResult, error) {
	result := &PaginateResult{}

	for page := range p.maxPages {
		resp, err := p.api.ListInventoryItems(ctx, token, p.pageSize, page*p.pageSize)
		if err != nil {
			return nil, fmt.Errorf("listing inventory page %d: %w", page, err)
		}

		result.PagesUsed++
		result.Total = resp.Total
		result.Items = append(result.Items, resp.InventoryItems...)

		if len(resp.InventoryItems) == 0 || resp.Next == "" {
			result.StoppedAt = "no_more_results"
			return result, nil
		}
	}

	p.logger.Warn(
		"inventory pagination stopped at max pages",
		"pages", result.PagesUsed,
		"collected", len(result.Items),
		"total", result.Total,
	)
	result.StoppedAt = "max_pages"
	return result, nil
}
