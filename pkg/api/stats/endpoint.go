package stats

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

func (e *Endpoint) System(ctx context.Context) (model.SystemStats, error) {
	resp, err := e.apiGenerator.New("/stats").GET(ctx)
	if err != nil {
		return model.SystemStats{}, err
	}

	var out model.SystemStats
	if err := api.Bind(resp, &out); err != nil {
		return model.SystemStats{}, err
	}

	return out, nil
}
