package stats

import (
	"context"

	"github.com/drawhub-lab/client/model"
)

type IEndpoint interface {
	System(ctx context.Context) (model.SystemStats, error)
}
