// Package model holds the payload shapes exchanged with the DrawHub
// backend. Field names mirror the wire contract exactly; the client never
// invents an id or mutates an entity locally.
package model

import "github.com/drawhub-lab/client/pkg/api"

// Pagination accompanies every list response. Page is 1-based.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// ListParams is the common cursor every paginated endpoint understands.
// Extra carries resource-specific filters in a fixed insertion order.
type ListParams struct {
	Page   int
	Limit  int
	Search string
	Extra  *api.Parameter
}

func (p ListParams) Values() *api.Parameter {
	out := api.Params()
	if p.Page > 0 {
		out.Add("page", p.Page)
	}
	if p.Limit > 0 {
		out.Add("limit", p.Limit)
	}
	out.Add("search", p.Search)

	if p.Extra != nil {
		out.Merge(p.Extra)
	}

	return out
}
