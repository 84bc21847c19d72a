package model

type Prize struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	TotalQuantity     int     `json:"total_quantity"`
	RemainingQuantity int     `json:"remaining_quantity"`
	Probability       float64 `json:"probability"`
	SortOrder         int     `json:"sort_order"`
}

type CreatePrizeRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	TotalQuantity int     `json:"total_quantity"`
	Probability   float64 `json:"probability"`
	SortOrder     *int    `json:"sort_order,omitempty"`
}

// UpdatePrizeRequest is a partial update; only non-nil fields change.
type UpdatePrizeRequest struct {
	Name          *string  `json:"name,omitempty"`
	Description   *string  `json:"description,omitempty"`
	TotalQuantity *int     `json:"total_quantity,omitempty"`
	Probability   *float64 `json:"probability,omitempty"`
	SortOrder     *int     `json:"sort_order,omitempty"`
}

type PrizeResponse struct {
	Prize Prize `json:"prize"`
}

type PrizeListResponse struct {
	Prizes []Prize `json:"prizes"`
}
