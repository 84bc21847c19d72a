package activity

import (
	"context"

	"github.com/drawhub-lab/client/model"
	"github.com/drawhub-lab/client/pkg/api"
)

type Endpoint struct {
	apiGenerator api.Generator
}

func New(apiGenerator api.Generator) *Endpoint {
	return &Endpoint{apiGenerator: apiGenerator}
}

func (e *Endpoint) List(ctx context.Context, params model.ActivityListParams) (model.ActivityListResponse, error) {
	resp, err := e.apiGenerator.New("/admin/activities").
		Query(params.Values()).
		GET(ctx)
	if err != nil {
		return model.ActivityListResponse{}, err
	}

	var out model.ActivityListResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.ActivityListResponse{}, err
	}

	return out, nil
}

func (e *Endpoint) Create(ctx context.Context, req model.CreateActivityRequest) (model.Activity, error) {
	resp, err := e.apiGenerator.New("/admin/activities").
		Body(api.JSONBody(req)).
		POST(ctx)
	if err != nil {
		return model.Activity{}, err
	}

	var out model.ActivityResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.Activity{}, err
	}

	return out.Activity, nil
}

func (e *Endpoint) Get(ctx context.Context, id int) (model.Activity, error) {
	resp, err := e.apiGenerator.New("/admin/activities/%d", id).GET(ctx)
	if err != nil {
		return model.Activity{}, err
	}

	var out model.ActivityResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.Activity{}, err
	}

	return out.Activity, nil
}

func (e *Endpoint) Update(ctx context.Context, id int, req model.UpdateActivityRequest) (model.Activity, error) {
	resp, err := e.apiGenerator.New("/admin/activities/%d", id).
		Body(api.JSONBody(req)).
		PUT(ctx)
	if err != nil {
		return model.Activity{}, err
	}

	var out model.ActivityResponse
	if err := api.Bind(resp, &out); err != nil {
		return model.Activity{}, err
	}

	return out.Activity, nil
}

func (e *Endpoint) Delete(ctx context.Context, id int) error {
	_, err := e.apiGenerator.New("/admin/activities/%d", id).DELETE(ctx)
	return err
}

// WebhookInfo returns the integration credentials third parties use to feed
// codes into the activity.
func (e *Endpoint) WebhookInfo(ctx context.Context, id int) (model.WebhookInfo, error) {
	resp, err := e.apiGenerator.New("/admin/activities/%d/webhook-info", id).GET(ctx)
	if err != nil {
		return model.WebhookInfo{}, err
	}

	var out model.WebhookInfo
	if err := api.Bind(resp, &out); err != nil {
		return model.WebhookInfo{}, err
	}

	return out, nil
}
