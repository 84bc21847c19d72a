package prize

import (
	"context"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api"
)

// Listing and creation are activity-scoped; update and delete address the
// prize directly.
type Endpoint struct {
	apiGenerator api.Generator
}

func New(apiGenerator api.Generator) *Endpoint {
	return &Endpoint{apiGenerator: apiGenerator}
}

func (e *Endpoint) List(ctx context.Context, activityID int) ([]model.Prize, error) {
	resp, err := e.apiGenerator.New("/admin/activities/%d/prizes", activityID).GET(ctx)
	if err != nil {
		return nil, err
	}

	var out model.PrizeListResponse
	if err := api.Bind(resp, &out); err != nil {
		return nil, err
	}

	return out.Prizes, nil
}

func (e *Endpoint) Create(ctx context.Context, activityID int, req model.CreatePrizeRequest) (model.Prize, error) {
	resp, err := e.apiGenerator.New("/admin/activities/%d/prizes", activityID).
		Body(api.JSONBody(req)).
		POST(ctx)
	if err != nil {
		return model.Prize{}, err
	}

	var out model.PrizeResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.Prize{}, err
	}

	return out.Prize, nil
}

func (e *Endpoint) Update(ctx context.Context, prizeID int, req model.UpdatePrizeRequest) (model.Prize, error) {
	resp, err := e.apiGenerator.New("/admin/prizes/%d", prizeID).
		Body(api.JSONBody(req)).
		PUT(ctx)
	if err != nil {
		return model.Prize{}, err
	}

	var out model.PrizeResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.Prize{}, err
	}

	return out.Prize, nil
}

func (e *Endpoint) Delete(ctx context.Context, prizeID int) error {
	_, err := e.apiGenerator.New("/admin/prizes/%d", prizeID).DELETE(ctx)
	return err
}
